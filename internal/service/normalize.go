package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/purehouse/post-service/internal/dto"
	"github.com/purehouse/post-service/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	maxTitleLen   = 80
	maxAuthorLen  = 30
	maxExcerptLen = 250
)

// normalizeCreate turns a creation payload into its canonical stored shape:
// text fields trimmed, optional fields dropped entirely when blank, and the
// creation instant stamped.
func normalizeCreate(req dto.CreatePostRequest, now time.Time) model.Post {
	return model.Post{
		Title:      strings.TrimSpace(req.Title),
		Author:     strings.TrimSpace(req.Author),
		Content:    strings.TrimSpace(req.Content),
		Excerpt:    strings.TrimSpace(req.Excerpt),
		CoverImage: normalizeCover(req.CoverImage),
		CoverVideo: normalizeCover(req.CoverVideo),
		Date:       now,
	}
}

func normalizeCover(req *dto.CoverMediaRequest) *model.CoverMedia {
	if req == nil {
		return nil
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return nil
	}

	return &model.CoverMedia{URL: url}
}

// validateCreate checks constraints on the already-trimmed record, before
// any store interaction.
func validateCreate(post model.Post) error {
	switch {
	case post.Title == "":
		return ErrTitleRequired
	case post.Author == "":
		return ErrAuthorRequired
	case utf8.RuneCountInString(post.Title) > maxTitleLen:
		return ErrTitleTooLong
	case utf8.RuneCountInString(post.Author) > maxAuthorLen:
		return ErrAuthorTooLong
	case utf8.RuneCountInString(post.Excerpt) > maxExcerptLen:
		return ErrExcerptTooLong
	}

	return nil
}

// buildPatch maps the present fields of an update payload to a $set
// document. Updates are partial patches taken as given, not re-normalized;
// identifier and date fields are unrepresentable here and so can never be
// overwritten.
func buildPatch(req dto.UpdatePostRequest) bson.M {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Author != nil {
		set["author"] = *req.Author
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Excerpt != nil {
		set["excerpt"] = *req.Excerpt
	}
	if req.CoverImage != nil {
		set["coverImage"] = model.CoverMedia{URL: req.CoverImage.URL}
	}
	if req.CoverVideo != nil {
		set["coverVideo"] = model.CoverMedia{URL: req.CoverVideo.URL}
	}

	return set
}
