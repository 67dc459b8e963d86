package service

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidPostID = errors.New("invalid post ID")

	ErrTitleRequired  = errors.New("title must not be blank")
	ErrAuthorRequired = errors.New("author must not be blank")
	ErrTitleTooLong   = errors.New("title must be at most 80 characters")
	ErrAuthorTooLong  = errors.New("author must be at most 30 characters")
	ErrExcerptTooLong = errors.New("excerpt must be at most 250 characters")
)
