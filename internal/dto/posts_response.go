package dto

type CreatePostResponse struct {
	InsertedID string `json:"insertedId"`
}

type UpdatePostResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeletePostResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
