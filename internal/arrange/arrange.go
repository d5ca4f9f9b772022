package arrange

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-arrange/internal/boxmodel"
	"github.com/grindlemire/go-arrange/internal/debug"
	"github.com/grindlemire/go-arrange/internal/layout"
)

// TopOrder is the paint order of every docked placement. Flow layouts must
// emit orders strictly below it, so docks always paint over flow content.
const TopOrder = math.MaxInt32

// Result is the outcome of arranging one container.
type Result struct {
	// Placements in paint order: layer by layer, docks before flow.
	Placements []layout.WidgetPlacement

	// Arranged holds every child that received a placement.
	Arranged *layout.WidgetSet

	// ScrollSpacing is the largest dock inset of any layer that had flow
	// content placed.
	ScrollSpacing layout.Spacing
}

// Arranger arranges containers. The zero value uses boxmodel.Resolver and
// the debug logger.
type Arranger struct {
	Resolver layout.BoxModelResolver
	Logger   *log.Logger
}

// New creates an Arranger that sizes docked widgets with resolver.
func New(resolver layout.BoxModelResolver) *Arranger {
	return &Arranger{Resolver: resolver}
}

func (a *Arranger) resolver() layout.BoxModelResolver {
	if a.Resolver == nil {
		return boxmodel.Resolver{}
	}
	return a.Resolver
}

func (a *Arranger) logger() *log.Logger {
	if a.Logger == nil {
		return debug.Logger()
	}
	return a.Logger
}

// Arrange places the displayed children of container inside a region of the
// given size. viewport is the size of the whole terminal.
func (a *Arranger) Arrange(container layout.Container, size, viewport layout.Size) (Result, error) {
	placements := []layout.WidgetPlacement{}
	arranged := layout.NewWidgetSet()
	var scrollSpacing layout.Spacing

	for _, layer := range Layers(container.LayoutChildren()) {
		flowWidgets, dockWidgets := splitDocked(layer.Widgets)

		docked, reserved, err := a.dock(dockWidgets, size, viewport)
		if err != nil {
			return Result{}, fmt.Errorf("layer %q: %w", layer.Name, err)
		}
		placements = append(placements, docked...)
		arranged.Add(dockWidgets...)

		if len(flowWidgets) > 0 {
			flowed, placed, err := flowLayer(container, flowWidgets, size, viewport, reserved)
			if err != nil {
				return Result{}, fmt.Errorf("layer %q: %w", layer.Name, err)
			}
			if len(placed) > 0 {
				scrollSpacing = scrollSpacing.GrowMaximum(reserved)
				arranged.Add(placed...)
			}
			placements = append(placements, flowed...)
		}

		a.logger().Debug("arranged layer",
			"layer", layer.Name,
			"docked", len(dockWidgets),
			"flow", len(flowWidgets),
			"reserved", reserved,
		)
	}

	return Result{
		Placements:    placements,
		Arranged:      arranged,
		ScrollSpacing: scrollSpacing,
	}, nil
}

// Arrange arranges container with a zero-value Arranger.
func Arrange(container layout.Container, size, viewport layout.Size) (Result, error) {
	var a Arranger
	return a.Arrange(container, size, viewport)
}
