package domain

import "errors"

var (
	// ErrInvalidRequest is returned when the query or question is missing or empty
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrLanguageModelFailure is returned when the external language model call fails
	ErrLanguageModelFailure = errors.New("language model request failed")

	// ErrCatalogUnavailable is returned when the catalog file cannot be opened or read
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrCatalogMalformed is returned when a catalog line cannot be decoded
	ErrCatalogMalformed = errors.New("catalog line malformed")
)
