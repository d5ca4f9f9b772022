package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Spacing holds thicknesses for the four sides of a box, in CSS order.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// SpacingAll creates Spacing with the same value on all sides.
func SpacingAll(n int) Spacing {
	return Spacing{Top: n, Right: n, Bottom: n, Left: n}
}

// SpacingSymmetric creates Spacing with vertical (top/bottom) and horizontal (left/right) values.
func SpacingSymmetric(v, h int) Spacing {
	return Spacing{Top: v, Right: h, Bottom: v, Left: h}
}

// SpacingTRBL creates Spacing following CSS order: Top, Right, Bottom, Left.
func SpacingTRBL(t, r, b, l int) Spacing {
	return Spacing{Top: t, Right: r, Bottom: b, Left: l}
}

// Width returns the sum of Left and Right.
func (s Spacing) Width() int {
	return s.Left + s.Right
}

// Height returns the sum of Top and Bottom.
func (s Spacing) Height() int {
	return s.Top + s.Bottom
}

// Totals returns the horizontal and vertical totals as a Size.
func (s Spacing) Totals() Size {
	return Size{Width: s.Width(), Height: s.Height()}
}

// IsZero returns true if all side values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// GrowMaximum returns the component-wise maximum of s and other.
func (s Spacing) GrowMaximum(other Spacing) Spacing {
	return Spacing{
		Top:    max(s.Top, other.Top),
		Right:  max(s.Right, other.Right),
		Bottom: max(s.Bottom, other.Bottom),
		Left:   max(s.Left, other.Left),
	}
}

// String formats the spacing as "top right bottom left".
func (s Spacing) String() string {
	return fmt.Sprintf("%d %d %d %d", s.Top, s.Right, s.Bottom, s.Left)
}

// ParseSpacing parses CSS shorthand with one, two or four non-negative
// integers separated by spaces or commas.
func ParseSpacing(text string) (Spacing, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == ',' })
	values := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Spacing{}, fmt.Errorf("%w: %q", ErrInvalidSpacing, text)
		}
		values[i] = n
	}
	return SpacingFromInts(values)
}

// SpacingFromInts builds Spacing from one, two or four values using CSS
// shorthand rules.
func SpacingFromInts(values []int) (Spacing, error) {
	for _, v := range values {
		if v < 0 {
			return Spacing{}, fmt.Errorf("%w: negative value %d", ErrInvalidSpacing, v)
		}
	}
	switch len(values) {
	case 1:
		return SpacingAll(values[0]), nil
	case 2:
		return SpacingSymmetric(values[0], values[1]), nil
	case 4:
		return SpacingTRBL(values[0], values[1], values[2], values[3]), nil
	default:
		return Spacing{}, fmt.Errorf("%w: want 1, 2 or 4 values, got %d", ErrInvalidSpacing, len(values))
	}
}
