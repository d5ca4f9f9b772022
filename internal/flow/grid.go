package flow

import (
	"github.com/grindlemire/go-arrange/internal/layout"
)

// Grid places children into equal cells, filling each row left to right.
type Grid struct {
	// Columns per row; values below one are treated as one.
	Columns int

	// Rows caps the number of rows. Zero adds as many rows as the children
	// need; otherwise children beyond Columns*Rows are left unplaced.
	Rows int

	// Gutter is the number of blank cells between adjacent columns and rows.
	Gutter int
}

// Arrange implements layout.FlowLayout.
func (g Grid) Arrange(parent layout.Container, children []layout.Widget, size, viewport layout.Size) ([]layout.WidgetPlacement, []layout.Widget, error) {
	if len(children) == 0 {
		return nil, nil, nil
	}

	columns := max(1, g.Columns)
	rows := g.Rows
	if rows <= 0 {
		rows = (len(children) + columns - 1) / columns
	}
	if capacity := columns * rows; len(children) > capacity {
		children = children[:capacity]
	}

	xs := cellEdges(size.Width, columns, g.Gutter)
	ys := cellEdges(size.Height, rows, g.Gutter)

	placements := make([]layout.WidgetPlacement, 0, len(children))
	placed := make([]layout.Widget, 0, len(children))
	for i, child := range children {
		col, row := i%columns, i/columns
		cell := layout.NewRegion(xs[col][0], ys[row][0], xs[col][1]-xs[col][0], ys[row][1]-ys[row][0])
		region := cell.Shrink(child.LayoutStyle().Margin)

		placements = append(placements, layout.WidgetPlacement{Region: region, Widget: child})
		placed = append(placed, child)
	}
	return placements, placed, nil
}

// cellEdges splits length into n tracks separated by gutter and returns the
// [start, end) of each. Boundaries are computed cumulatively so the tracks
// always sum to the available length.
func cellEdges(length, n, gutter int) [][2]int {
	gutter = max(0, gutter)
	available := max(0, length-gutter*(n-1))
	edges := make([][2]int, n)
	for i := range n {
		start := available*i/n + gutter*i
		end := available*(i+1)/n + gutter*i
		edges[i] = [2]int{start, end}
	}
	return edges
}
