package domain

import "errors"

// Sentinel errors used across layers.
var (
	// ErrNotText is the single unrecoverable extractor error: the payload
	// cannot be interpreted as text at all.
	ErrNotText = errors.New("input is not processable as text")

	ErrInvalidRecord     = errors.New("record failed validation")
	ErrInvalidVocabulary = errors.New("invalid template vocabulary")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrNotFound          = errors.New("not found")
)
