package layout

// Region is an integer rectangle in parent content coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Region struct {
	X, Y          int
	Width, Height int
}

// NewRegion creates a new Region with the given position and dimensions.
func NewRegion(x, y, width, height int) Region {
	return Region{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Region) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Region) Bottom() int {
	return r.Y + r.Height
}

// Offset returns the top-left corner of the region.
func (r Region) Offset() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the region.
func (r Region) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the region has zero or negative area.
func (r Region) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Shrink returns a new Region inset by the given Spacing.
// Width and height never go below zero, so over-constrained regions collapse
// to an empty region anchored at the inset origin.
func (r Region) Shrink(s Spacing) Region {
	return Region{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  max(0, r.Width-s.Width()),
		Height: max(0, r.Height-s.Height()),
	}
}

// Translate returns a new Region moved by the offset.
func (r Region) Translate(o Offset) Region {
	return Region{X: r.X + o.X, Y: r.Y + o.Y, Width: r.Width, Height: r.Height}
}

// Clip returns the part of r that lies inside bounds. Regions that do not
// overlap bounds clip to an empty region at r's clamped origin.
func (r Region) Clip(bounds Region) Region {
	x := min(max(r.X, bounds.X), bounds.Right())
	y := min(max(r.Y, bounds.Y), bounds.Bottom())
	return Region{
		X:      x,
		Y:      y,
		Width:  max(0, min(r.Right(), bounds.Right())-x),
		Height: max(0, min(r.Bottom(), bounds.Bottom())-y),
	}
}
