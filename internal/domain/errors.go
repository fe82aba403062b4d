package domain

import "errors"

var (
	// ErrUnsupportedLanguage is returned when no language profile exists for the request.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrInvalidSummaryLength is returned when the requested sentence count is not positive.
	ErrInvalidSummaryLength = errors.New("invalid summary length")

	// ErrInvalidRatio is returned when a summary ratio falls outside [0, 1].
	ErrInvalidRatio = errors.New("invalid summary ratio")
)
