// layout.go re-exports types from internal/layout and internal/flow.
// Any changes to those types must be mirrored here.
package arrange

import (
	"github.com/grindlemire/go-arrange/internal/flow"
	"github.com/grindlemire/go-arrange/internal/layout"
)

// Region is an integer rectangle in parent content coordinates.
type Region = layout.Region

// Spacing holds thicknesses for the four sides of a box.
type Spacing = layout.Spacing

// Size represents a width/height pair.
type Size = layout.Size

// Offset is an (X, Y) displacement.
type Offset = layout.Offset

// Value represents a dimension value.
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUnset          = layout.UnitUnset
	UnitAuto           = layout.UnitAuto
	UnitFixed          = layout.UnitFixed
	UnitPercent        = layout.UnitPercent
	UnitFraction       = layout.UnitFraction
	UnitViewportWidth  = layout.UnitViewportWidth
	UnitViewportHeight = layout.UnitViewportHeight
)

// Style holds the arrangement properties of a widget.
type Style = layout.Style

// Display controls whether a widget takes part in arrangement.
type Display = layout.Display

const (
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// Edge names the container edge a widget is docked to.
type Edge = layout.Edge

const (
	EdgeNone   = layout.EdgeNone
	EdgeTop    = layout.EdgeTop
	EdgeRight  = layout.EdgeRight
	EdgeBottom = layout.EdgeBottom
	EdgeLeft   = layout.EdgeLeft
)

// AlignHorizontal positions a docked box horizontally.
type AlignHorizontal = layout.AlignHorizontal

const (
	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight
)

// AlignVertical positions a docked box vertically.
type AlignVertical = layout.AlignVertical

const (
	AlignTop    = layout.AlignTop
	AlignMiddle = layout.AlignMiddle
	AlignBottom = layout.AlignBottom
)

// DefaultLayer is the layer of widgets that do not name one.
const DefaultLayer = layout.DefaultLayer

// Widget is anything that can be arranged.
type Widget = layout.Widget

// Container is a widget whose children can be arranged.
type Container = layout.Container

// FlowLayout arranges non-docked children.
type FlowLayout = layout.FlowLayout

// BoxModel is a resolved content size and margin.
type BoxModel = layout.BoxModel

// BoxModelResolver sizes widgets.
type BoxModelResolver = layout.BoxModelResolver

// WidgetPlacement is the computed position of one widget.
type WidgetPlacement = layout.WidgetPlacement

// WidgetSet is an insertion-ordered set of widgets.
type WidgetSet = layout.WidgetSet

// Vertical stacks children top to bottom.
type Vertical = flow.Vertical

// Horizontal stacks children left to right.
type Horizontal = flow.Horizontal

// Grid places children into equal cells.
type Grid = flow.Grid

// NewRegion creates a Region.
func NewRegion(x, y, width, height int) Region {
	return layout.NewRegion(x, y, width, height)
}

// NewSize creates a Size.
func NewSize(width, height int) Size {
	return layout.NewSize(width, height)
}

// SpacingAll creates Spacing with the same value on all sides.
func SpacingAll(n int) Spacing {
	return layout.SpacingAll(n)
}

// SpacingSymmetric creates Spacing with vertical and horizontal values.
func SpacingSymmetric(v, h int) Spacing {
	return layout.SpacingSymmetric(v, h)
}

// SpacingTRBL creates Spacing in CSS order.
func SpacingTRBL(t, r, b, l int) Spacing {
	return layout.SpacingTRBL(t, r, b, l)
}

// Unset returns a Value that fills the available space.
func Unset() Value { return layout.Unset() }

// Auto returns a Value sized by content.
func Auto() Value { return layout.Auto() }

// Fixed returns a Value in terminal cells.
func Fixed(n int) Value { return layout.Fixed(n) }

// Percent returns a Value relative to the container.
func Percent(p float64) Value { return layout.Percent(p) }

// Fraction returns a Value in fraction units.
func Fraction(fr float64) Value { return layout.Fraction(fr) }

// ViewportWidth returns a Value relative to the viewport width.
func ViewportWidth(p float64) Value { return layout.ViewportWidth(p) }

// ViewportHeight returns a Value relative to the viewport height.
func ViewportHeight(p float64) Value { return layout.ViewportHeight(p) }

// DefaultStyle returns a Style that fills its container in the default layer.
func DefaultStyle() Style { return layout.DefaultStyle() }
