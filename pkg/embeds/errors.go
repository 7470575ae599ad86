package embeds

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImages is returned by WithMultipleImages when no images are passed.
	ErrNoImages = errors.New("embeds: at least one image is required")

	// ErrMissingEmbedURL is returned by WithMultipleImages when the embed has
	// no URL set. The multi-image trick only works when every embed in the
	// message shares the same non-empty URL.
	ErrMissingEmbedURL = errors.New("embeds: multi-image embeds require the embed URL to be set")

	// ErrNoMediaSource is returned when a media is constructed without a URL or file.
	ErrNoMediaSource = errors.New("embeds: either a url or a file must be provided")
)

// LimitError is returned when a documented platform limit is exceeded.
// The limits themselves live in Limits and can be edited or disabled per embed.
type LimitError struct {
	// LimitOf names the limit that was exceeded, e.g. "title" or "field_value".
	LimitOf string
	// Limit is the configured ceiling.
	Limit int
	// Current is the measured size that exceeded it.
	Current int
	// FieldIndex is the index of the offending field, or -1 when the
	// limit is not field related.
	FieldIndex int
}

func (e *LimitError) Error() string {
	if e.FieldIndex >= 0 {
		return fmt.Sprintf("embeds: %s limit exceeded at field index %d (%d/%d)", e.LimitOf, e.FieldIndex, e.Current, e.Limit)
	}
	return fmt.Sprintf("embeds: %s limit exceeded (%d/%d)", e.LimitOf, e.Current, e.Limit)
}

func newLimitError(limitOf string, limit, current int) *LimitError {
	return &LimitError{LimitOf: limitOf, Limit: limit, Current: current, FieldIndex: -1}
}
