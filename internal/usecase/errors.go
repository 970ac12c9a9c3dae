package usecase

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidParent         = errors.New("parent comment does not belong to this post")
	ErrSlugTaken             = errors.New("slug already in use")
	ErrInvalidPostInput      = errors.New("invalid post input")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidWallpaperInput = errors.New("invalid wallpaper input")
)
