package flow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grindlemire/go-arrange/internal/layout"
)

// ErrUnknownLayout is returned by Parse for an unrecognised layout name.
var ErrUnknownLayout = errors.New("unknown flow layout")

// Parse returns the layout named by name: "vertical" (or empty),
// "horizontal" or "grid". columns, rows and gutter only apply to grids.
func Parse(name string, columns, rows, gutter int) (layout.FlowLayout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "vertical":
		return Vertical{}, nil
	case "horizontal":
		return Horizontal{}, nil
	case "grid":
		return Grid{Columns: columns, Rows: rows, Gutter: gutter}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}

// Name returns the name Parse accepts for l, or "custom" for layouts this
// package does not define.
func Name(l layout.FlowLayout) string {
	switch l.(type) {
	case nil, Vertical, *Vertical:
		return "vertical"
	case Horizontal, *Horizontal:
		return "horizontal"
	case Grid, *Grid:
		return "grid"
	}
	return "custom"
}
