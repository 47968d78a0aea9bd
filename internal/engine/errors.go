package engine

import "errors"

var (
	// ErrTemplateNotFound is returned when a caller names a base template
	// that is absent from the catalog.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNoTemplateMatch means the catalog has no usable fallback. This is
	// a seeding defect, not a runtime condition worth recovering from.
	ErrNoTemplateMatch = errors.New("no template matched and no fallback template is available")

	// ErrConfigNotFound is returned when a modification is requested but
	// there is no existing configuration to modify.
	ErrConfigNotFound = errors.New("no devcontainer configuration found")
)
