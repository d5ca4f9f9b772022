package layout

import "math/big"

// Widget is anything that can be arranged inside a container. The engine
// only reads the style; it never owns or mutates the widget. Widgets are used
// as set keys, so implementations must be comparable (usually pointers).
type Widget interface {
	// LayoutStyle returns the resolved arrangement properties of this widget.
	LayoutStyle() Style
}

// Container is a widget whose children are arranged by the engine.
type Container interface {
	Widget

	// LayoutChildren returns the children in declaration order, including
	// hidden ones.
	LayoutChildren() []Widget

	// FlowLayout returns the strategy for non-docked children.
	// A nil strategy selects the vertical layout.
	FlowLayout() FlowLayout
}

// IntrinsicSizer is implemented by widgets with a natural content size,
// used for auto width and height.
type IntrinsicSizer interface {
	IntrinsicSize() (width, height int)
}

// BoxModel is the resolved content size and margin of one widget under one
// candidate container size.
type BoxModel struct {
	Width  *big.Rat
	Height *big.Rat
	Margin Spacing
}

// OuterSize returns the truncated content size plus margins.
func (b BoxModel) OuterSize() Size {
	return Size{
		Width:  Trunc(b.Width) + b.Margin.Width(),
		Height: Trunc(b.Height) + b.Margin.Height(),
	}
}

// BoxModelResolver turns a widget's size expressions into a BoxModel.
// Implementations must be pure for the duration of one arrangement.
type BoxModelResolver interface {
	ResolveBoxModel(w Widget, container, viewport Size, fractionUnit *big.Rat) (BoxModel, error)
}

// FlowLayout arranges non-docked children inside a region of the given size.
// Returned regions are relative to the region's own origin. A layout may
// place a strict subset of children; the second result lists the placed ones.
type FlowLayout interface {
	Arrange(parent Container, children []Widget, size, viewport Size) ([]WidgetPlacement, []Widget, error)
}
