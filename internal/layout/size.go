package layout

import "fmt"

// Size is a width and height in cells.
type Size struct {
	Width, Height int
}

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Region returns the region of this size anchored at the origin.
func (s Size) Region() Region {
	return Region{Width: s.Width, Height: s.Height}
}

// Sub returns the size left after removing the spacing totals, floored at zero.
func (s Size) Sub(sp Spacing) Size {
	return Size{
		Width:  max(0, s.Width-sp.Width()),
		Height: max(0, s.Height-sp.Height()),
	}
}

// String formats the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
