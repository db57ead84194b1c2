package model

import "errors"

// Sentinel errors for input-shape problems and lookups.
// Callers should use errors.Is() to check for these.
var (
	// ErrEmptyTitle indicates a report or finding without a title.
	ErrEmptyTitle = errors.New("model: empty title")

	// ErrMissingDescription indicates a finding without the required
	// description text.
	ErrMissingDescription = errors.New("model: missing description")

	// ErrInvalidRiskLevel indicates a risk level outside the known enum.
	ErrInvalidRiskLevel = errors.New("model: invalid risk level")

	// ErrInvalidOwaspCategory indicates an OWASP category outside the
	// ten 2021 classes.
	ErrInvalidOwaspCategory = errors.New("model: invalid owasp category")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("model: not found")
)
