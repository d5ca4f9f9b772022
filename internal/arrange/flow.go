package arrange

import (
	"fmt"

	"github.com/grindlemire/go-arrange/internal/flow"
	"github.com/grindlemire/go-arrange/internal/layout"
)

// flowLayer runs the container's flow layout over the region left after the
// reserved dock spacing and returns placements in parent coordinates along
// with the widgets the layout chose to place.
func flowLayer(container layout.Container, widgets []layout.Widget, size, viewport layout.Size, reserved layout.Spacing) ([]layout.WidgetPlacement, []layout.Widget, error) {
	region := size.Region().Shrink(reserved)

	strategy := container.FlowLayout()
	if strategy == nil {
		strategy = flow.Vertical{}
	}

	placements, placed, err := strategy.Arrange(container, widgets, region.Size(), viewport)
	if err != nil {
		return nil, nil, fmt.Errorf("flow layout: %w", err)
	}
	if err := checkFlow(widgets, placements, placed); err != nil {
		return nil, nil, err
	}

	// Placements are only moved into parent coordinates once the layout
	// reports placing something.
	if offset := region.Offset(); len(placed) > 0 && !offset.IsZero() {
		translated := make([]layout.WidgetPlacement, len(placements))
		for i, p := range placements {
			translated[i] = p.Translate(offset)
		}
		placements = translated
	}
	return placements, placed, nil
}

// checkFlow enforces the flow layout contract: orders stay below TopOrder,
// nothing is fixed, and only the widgets handed to the layout are placed.
func checkFlow(given []layout.Widget, placements []layout.WidgetPlacement, placed []layout.Widget) error {
	allowed := layout.NewWidgetSet(given...)
	for _, p := range placements {
		if p.Order >= TopOrder {
			return fmt.Errorf("%w: %v has order %d", ErrFlowOrder, p.Widget, p.Order)
		}
		if p.Fixed {
			return fmt.Errorf("%w: %v", ErrFlowFixed, p.Widget)
		}
		if !allowed.Contains(p.Widget) {
			return fmt.Errorf("%w: %v", ErrForeignWidget, p.Widget)
		}
	}
	for _, w := range placed {
		if !allowed.Contains(w) {
			return fmt.Errorf("%w: %v", ErrForeignWidget, w)
		}
	}
	return nil
}
