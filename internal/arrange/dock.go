package arrange

import (
	"fmt"
	"math/big"

	"github.com/grindlemire/go-arrange/internal/layout"
)

// dock places each docked widget against its edge and returns the placements
// together with the inset reserved on every edge.
//
// Widgets docked to the same edge are all anchored at that edge and may
// overlap; only the thickest one is reserved.
func (a *Arranger) dock(widgets []layout.Widget, size, viewport layout.Size) ([]layout.WidgetPlacement, layout.Spacing, error) {
	var reserved layout.Spacing
	placements := make([]layout.WidgetPlacement, 0, len(widgets))

	for _, w := range widgets {
		style := w.LayoutStyle()
		edge := style.Dock

		fractionUnit := big.NewRat(int64(size.Width), 1)
		if edge == layout.EdgeTop || edge == layout.EdgeBottom {
			fractionUnit = big.NewRat(int64(size.Height), 1)
		}

		box, err := a.resolver().ResolveBoxModel(w, size, viewport, fractionUnit)
		if err != nil {
			return nil, layout.Spacing{}, fmt.Errorf("dock %v: %w", w, err)
		}
		outer := box.OuterSize()

		var region layout.Region
		switch edge {
		case layout.EdgeBottom:
			region = layout.NewRegion(0, size.Height-outer.Height, outer.Width, outer.Height)
			reserved.Bottom = max(reserved.Bottom, outer.Height)
		case layout.EdgeTop:
			region = layout.NewRegion(0, 0, outer.Width, outer.Height)
			reserved.Top = max(reserved.Top, outer.Height)
		case layout.EdgeLeft:
			region = layout.NewRegion(0, 0, outer.Width, outer.Height)
			reserved.Left = max(reserved.Left, outer.Width)
		case layout.EdgeRight:
			region = layout.NewRegion(size.Width-outer.Width, 0, outer.Width, outer.Height)
			reserved.Right = max(reserved.Right, outer.Width)
		default:
			return nil, layout.Spacing{}, fmt.Errorf("dock %v: %w: %v", w, ErrInvalidDock, edge)
		}

		region = region.Shrink(box.Margin).Translate(style.AlignOffset(outer, size))
		placements = append(placements, layout.WidgetPlacement{
			Region: region,
			Widget: w,
			Order:  TopOrder,
			Fixed:  true,
		})
	}

	return placements, reserved, nil
}
