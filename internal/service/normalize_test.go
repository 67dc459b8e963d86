package service

import (
	"strings"
	"testing"
	"time"

	"github.com/purehouse/post-service/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCreate_TrimsTextFields(t *testing.T) {
	now := time.Now()

	post := normalizeCreate(dto.CreatePostRequest{
		Title:   "  Hello World  ",
		Author:  " Al Ice ",
		Content: "\tBody text\n",
		Excerpt: "  short  ",
	}, now)

	assert.Equal(t, "Hello World", post.Title)
	assert.Equal(t, "Al Ice", post.Author)
	assert.Equal(t, "Body text", post.Content)
	assert.Equal(t, "short", post.Excerpt)
	assert.Equal(t, now, post.Date)
}

func TestNormalizeCreate_DropsBlankCoverMedia(t *testing.T) {
	post := normalizeCreate(dto.CreatePostRequest{
		Title:      "t",
		Author:     "a",
		Content:    "c",
		CoverImage: &dto.CoverMediaRequest{URL: "   "},
		CoverVideo: nil,
	}, time.Now())

	assert.Nil(t, post.CoverImage)
	assert.Nil(t, post.CoverVideo)
	assert.Empty(t, post.Excerpt)
}

func TestNormalizeCreate_KeepsTrimmedCoverMedia(t *testing.T) {
	post := normalizeCreate(dto.CreatePostRequest{
		Title:      "t",
		Author:     "a",
		Content:    "c",
		CoverImage: &dto.CoverMediaRequest{URL: "  https://cdn.example.com/a.png  "},
	}, time.Now())

	if assert.NotNil(t, post.CoverImage) {
		assert.Equal(t, "https://cdn.example.com/a.png", post.CoverImage.URL)
	}
}

func TestValidateCreate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		req  dto.CreatePostRequest
		want error
	}{
		{"valid", dto.CreatePostRequest{Title: "t", Author: "a", Content: "c"}, nil},
		{"blank title", dto.CreatePostRequest{Title: "   ", Author: "a", Content: "c"}, ErrTitleRequired},
		{"blank author", dto.CreatePostRequest{Title: "t", Author: " ", Content: "c"}, ErrAuthorRequired},
		{"long title", dto.CreatePostRequest{Title: strings.Repeat("x", 81), Author: "a", Content: "c"}, ErrTitleTooLong},
		{"long author", dto.CreatePostRequest{Title: "t", Author: strings.Repeat("x", 31), Content: "c"}, ErrAuthorTooLong},
		{"long excerpt", dto.CreatePostRequest{Title: "t", Author: "a", Content: "c", Excerpt: strings.Repeat("x", 251)}, ErrExcerptTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreate(normalizeCreate(tt.req, now))
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestBuildPatch_OnlyPresentFields(t *testing.T) {
	title := "new title"

	set := buildPatch(dto.UpdatePostRequest{Title: &title})

	assert.Len(t, set, 1)
	assert.Equal(t, "new title", set["title"])
}

func TestBuildPatch_EmptyPayload(t *testing.T) {
	set := buildPatch(dto.UpdatePostRequest{})

	assert.Empty(t, set)
}

func TestBuildPatch_NeverCarriesDate(t *testing.T) {
	title := "x"
	content := "y"

	set := buildPatch(dto.UpdatePostRequest{Title: &title, Content: &content})

	_, hasDate := set["date"]
	assert.False(t, hasDate)
	_, hasID := set["_id"]
	assert.False(t, hasID)
}
