package dto

type CoverMediaRequest struct {
	URL string `json:"url"`
}

type CreatePostRequest struct {
	Title      string             `json:"title" binding:"required,max=80"`
	Author     string             `json:"author" binding:"required,max=30"`
	Content    string             `json:"content" binding:"required"`
	Excerpt    string             `json:"excerpt" binding:"omitempty,max=250"`
	CoverImage *CoverMediaRequest `json:"coverImage"`
	CoverVideo *CoverMediaRequest `json:"coverVideo"`
}

// UpdatePostRequest is a partial patch: nil fields are left untouched in the
// stored document. There is deliberately no identifier field here.
type UpdatePostRequest struct {
	Title      *string            `json:"title" binding:"omitempty,max=80"`
	Author     *string            `json:"author" binding:"omitempty,max=30"`
	Content    *string            `json:"content"`
	Excerpt    *string            `json:"excerpt" binding:"omitempty,max=250"`
	CoverImage *CoverMediaRequest `json:"coverImage"`
	CoverVideo *CoverMediaRequest `json:"coverVideo"`
}
