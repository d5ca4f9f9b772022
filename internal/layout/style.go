package layout

import (
	"fmt"
	"strings"
)

// Display controls whether a widget takes part in arrangement.
type Display uint8

const (
	DisplayBlock Display = iota // Arranged normally
	DisplayNone                 // Skipped entirely
)

// Edge names the container edge a widget is docked to.
type Edge uint8

const (
	EdgeNone   Edge = iota // Not docked; arranged by the flow layout
	EdgeTop                // Docked to the top edge
	EdgeRight              // Docked to the right edge
	EdgeBottom             // Docked to the bottom edge
	EdgeLeft               // Docked to the left edge
)

// AlignHorizontal positions a box horizontally inside its container.
type AlignHorizontal uint8

const (
	AlignLeft   AlignHorizontal = iota // Flush with the left edge
	AlignCenter                        // Centered
	AlignRight                         // Flush with the right edge
)

// AlignVertical positions a box vertically inside its container.
type AlignVertical uint8

const (
	AlignTop    AlignVertical = iota // Flush with the top edge
	AlignMiddle                      // Centered
	AlignBottom                      // Flush with the bottom edge
)

// DefaultLayer is the layer of widgets that do not name one.
const DefaultLayer = "default"

// Style is the resolved, read-only set of arrangement properties of one
// widget. It is produced by whatever style system the host uses.
type Style struct {
	Display Display
	Layer   string
	Dock    Edge

	AlignHorizontal AlignHorizontal
	AlignVertical   AlignVertical

	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Spacing
	Margin  Spacing
	Padding Spacing
}

// DefaultStyle returns a Style that fills its container in the default layer.
func DefaultStyle() Style {
	return Style{}
}

// IsDisplayed reports whether the widget takes part in arrangement.
func (s Style) IsDisplayed() bool {
	return s.Display != DisplayNone
}

// LayerName returns the layer, substituting DefaultLayer when unset.
func (s Style) LayerName() string {
	if s.Layer == "" {
		return DefaultLayer
	}
	return s.Layer
}

// AlignOffset returns the offset that aligns a box of size outer inside a
// container of size container.
func (s Style) AlignOffset(outer, container Size) Offset {
	var o Offset
	switch s.AlignHorizontal {
	case AlignCenter:
		o.X = floorDiv(container.Width-outer.Width, 2)
	case AlignRight:
		o.X = container.Width - outer.Width
	}
	switch s.AlignVertical {
	case AlignMiddle:
		o.Y = floorDiv(container.Height-outer.Height, 2)
	case AlignBottom:
		o.Y = container.Height - outer.Height
	}
	return o
}

// floorDiv divides rounding toward negative infinity, so oversized boxes
// center the same way on both sides of zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

var edgeNames = []string{"", "top", "right", "bottom", "left"}

func (e Edge) String() string {
	if int(e) < len(edgeNames) {
		if e == EdgeNone {
			return "none"
		}
		return edgeNames[e]
	}
	return fmt.Sprintf("edge(%d)", uint8(e))
}

// ParseEdge parses "", "none", "top", "right", "bottom" or "left".
func ParseEdge(text string) (Edge, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "none" {
		return EdgeNone, nil
	}
	for i, name := range edgeNames {
		if s == name {
			return Edge(i), nil
		}
	}
	return EdgeNone, fmt.Errorf("%w: %q", ErrInvalidEdge, text)
}

var horizontalNames = []string{"left", "center", "right"}

func (a AlignHorizontal) String() string {
	if int(a) < len(horizontalNames) {
		return horizontalNames[a]
	}
	return fmt.Sprintf("align(%d)", uint8(a))
}

var verticalNames = []string{"top", "middle", "bottom"}

func (a AlignVertical) String() string {
	if int(a) < len(verticalNames) {
		return verticalNames[a]
	}
	return fmt.Sprintf("align(%d)", uint8(a))
}

// ParseAlign parses a CSS-like "horizontal vertical" pair such as
// "center middle". Either part may be omitted: "right" or "bottom".
func ParseAlign(text string) (AlignHorizontal, AlignVertical, error) {
	var h AlignHorizontal
	var v AlignVertical
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if i := indexOf(horizontalNames, word); i >= 0 {
			h = AlignHorizontal(i)
			continue
		}
		if i := indexOf(verticalNames, word); i >= 0 {
			v = AlignVertical(i)
			continue
		}
		return AlignLeft, AlignTop, fmt.Errorf("%w: %q", ErrInvalidAlign, text)
	}
	return h, v, nil
}

// ParseDisplay parses "", "block" or "none".
func ParseDisplay(text string) (Display, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "block":
		return DisplayBlock, nil
	case "none":
		return DisplayNone, nil
	}
	return DisplayBlock, fmt.Errorf("%w: %q", ErrInvalidDisplay, text)
}

func indexOf(names []string, s string) int {
	for i, n := range names {
		if n == s {
			return i
		}
	}
	return -1
}
