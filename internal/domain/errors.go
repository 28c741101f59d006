package domain

import "errors"

// Domain errors.
var (
	ErrUnknownLocale   = errors.New("unknown locale")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrFeedFetch       = errors.New("feed fetch failed")
	ErrEmptyFeed       = errors.New("feed returned no items")
)
