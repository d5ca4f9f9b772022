package flow

import (
	"fmt"
	"math/big"

	"github.com/grindlemire/go-arrange/internal/boxmodel"
	"github.com/grindlemire/go-arrange/internal/layout"
)

// Vertical stacks children top to bottom.
type Vertical struct {
	// Resolver sizes each child. Nil uses boxmodel.Resolver.
	Resolver layout.BoxModelResolver
}

// Arrange implements layout.FlowLayout.
func (v Vertical) Arrange(parent layout.Container, children []layout.Widget, size, viewport layout.Size) ([]layout.WidgetPlacement, []layout.Widget, error) {
	return stack(resolverOrDefault(v.Resolver), children, size, viewport, false)
}

// Horizontal stacks children left to right.
type Horizontal struct {
	// Resolver sizes each child. Nil uses boxmodel.Resolver.
	Resolver layout.BoxModelResolver
}

// Arrange implements layout.FlowLayout.
func (h Horizontal) Arrange(parent layout.Container, children []layout.Widget, size, viewport layout.Size) ([]layout.WidgetPlacement, []layout.Widget, error) {
	return stack(resolverOrDefault(h.Resolver), children, size, viewport, true)
}

func resolverOrDefault(r layout.BoxModelResolver) layout.BoxModelResolver {
	if r == nil {
		return boxmodel.Resolver{}
	}
	return r
}

// stackItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on widgets.
type stackItem struct {
	widget layout.Widget
	box    layout.BoxModel
	fr     bool
}

// stack places children one after another along the main axis. Children
// sized in "fr" share whatever the others leave; adjacent margins collapse.
func stack(resolver layout.BoxModelResolver, children []layout.Widget, size, viewport layout.Size, isRow bool) ([]layout.WidgetPlacement, []layout.Widget, error) {
	if len(children) == 0 {
		return nil, nil, nil
	}

	mainSize := size.Height
	if isRow {
		mainSize = size.Width
	}

	// Phase 1: resolve children with a definite main size and total the fr
	// weights of the others.
	items := make([]stackItem, len(children))
	used := new(big.Rat)
	totalFr := new(big.Rat)
	for i, child := range children {
		item := &items[i]
		item.widget = child

		mainValue := mainAxisValue(child.LayoutStyle(), isRow)
		if mainValue.IsFraction() {
			item.fr = true
			totalFr.Add(totalFr, mainValue.Rat())
			continue
		}

		box, err := resolver.ResolveBoxModel(child, size, viewport, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("stack child %d: %w", i, err)
		}
		item.box = box
		used.Add(used, mainLength(box, isRow))
	}

	// Phase 2: size fr children from the space the others left.
	if totalFr.Sign() > 0 {
		remaining := big.NewRat(int64(mainSize-collapsedMargins(children, isRow)), 1)
		remaining.Sub(remaining, used)
		if remaining.Sign() < 0 {
			remaining.SetInt64(0)
		}
		unit := remaining.Quo(remaining, totalFr)

		for i := range items {
			if !items[i].fr {
				continue
			}
			box, err := resolver.ResolveBoxModel(items[i].widget, size, viewport, unit)
			if err != nil {
				return nil, nil, fmt.Errorf("stack child %d: %w", i, err)
			}
			items[i].box = box
		}
	}

	// Phase 3: position along the main axis. Positions accumulate exactly
	// and are floored once, so rounding never opens gaps between children.
	placements := make([]layout.WidgetPlacement, 0, len(items))
	placed := make([]layout.Widget, 0, len(items))
	cursor := new(big.Rat)
	prevEnd := 0
	for i, item := range items {
		start, end := mainMargins(item.box.Margin, isRow)
		gap := start
		if i > 0 {
			gap = max(prevEnd, start)
		}
		pos := new(big.Rat).Add(cursor, big.NewRat(int64(gap), 1))
		next := new(big.Rat).Add(pos, mainLength(item.box, isRow))

		mainPos := layout.Floor(pos)
		mainLen := max(0, layout.Floor(next)-mainPos)
		crossPos, crossLen := crossPlacement(item.box, isRow)

		var region layout.Region
		if isRow {
			region = layout.NewRegion(mainPos, crossPos, mainLen, crossLen)
		} else {
			region = layout.NewRegion(crossPos, mainPos, crossLen, mainLen)
		}

		placements = append(placements, layout.WidgetPlacement{Region: region, Widget: item.widget})
		placed = append(placed, item.widget)
		cursor = next
		prevEnd = end
	}

	return placements, placed, nil
}

func mainAxisValue(style layout.Style, isRow bool) layout.Value {
	if isRow {
		return style.Width
	}
	return style.Height
}

// mainLength returns the box's content length on the main axis, margins excluded.
func mainLength(box layout.BoxModel, isRow bool) *big.Rat {
	if isRow {
		return new(big.Rat).Set(box.Width)
	}
	return new(big.Rat).Set(box.Height)
}

// mainMargins returns the leading and trailing margin on the main axis.
func mainMargins(m layout.Spacing, isRow bool) (start, end int) {
	if isRow {
		return m.Left, m.Right
	}
	return m.Top, m.Bottom
}

// crossPlacement returns the position and length on the cross axis.
func crossPlacement(box layout.BoxModel, isRow bool) (pos, length int) {
	if isRow {
		return box.Margin.Top, max(0, layout.Trunc(box.Height))
	}
	return box.Margin.Left, max(0, layout.Trunc(box.Width))
}

// collapsedMargins totals main-axis margins with adjacent margins collapsed
// to the larger of the two.
func collapsedMargins(children []layout.Widget, isRow bool) int {
	total := 0
	prevEnd := 0
	for i, child := range children {
		start, end := mainMargins(child.LayoutStyle().Margin, isRow)
		if i == 0 {
			total += start
		} else {
			total += max(prevEnd, start)
		}
		prevEnd = end
	}
	return total + prevEnd
}
