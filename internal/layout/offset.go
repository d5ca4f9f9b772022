package layout

// Offset is an (X, Y) displacement in cells.
type Offset struct {
	X, Y int
}

// IsZero reports whether the offset moves nothing.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}
