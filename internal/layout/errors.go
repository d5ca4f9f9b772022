package layout

import "errors"

// Parse errors returned by ParseValue, ParseSpacing and the enum parsers.
var (
	ErrInvalidValue   = errors.New("invalid size value")
	ErrInvalidSpacing = errors.New("invalid spacing")
	ErrInvalidEdge    = errors.New("invalid dock edge")
	ErrInvalidAlign   = errors.New("invalid alignment")
	ErrInvalidDisplay = errors.New("invalid display")
)
