// Package boxmodel resolves a widget's size expressions into a concrete
// content size and margin.
//
// Sizes are border-box: an explicit width or height includes padding, an
// auto size is the widget's intrinsic content size plus padding, and an unset
// size fills the container minus the widget's margin. All arithmetic is done
// on exact rationals so fractional units never accumulate rounding error.
package boxmodel

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/grindlemire/go-arrange/internal/layout"
)

// ErrUnknownUnit is returned for a size Value whose unit is not recognised.
var ErrUnknownUnit = errors.New("unknown size unit")

// Resolver is the default layout.BoxModelResolver. The zero value is ready to use.
type Resolver struct{}

var _ layout.BoxModelResolver = Resolver{}

// ResolveBoxModel resolves w's box model inside container. fractionUnit is the
// length of one "fr"; nil means one cell.
func (Resolver) ResolveBoxModel(w layout.Widget, container, viewport layout.Size, fractionUnit *big.Rat) (layout.BoxModel, error) {
	style := w.LayoutStyle()
	if err := checkUnits(style); err != nil {
		return layout.BoxModel{}, fmt.Errorf("resolve box model of %v: %w", w, err)
	}

	margin := style.Margin
	padding := style.Padding
	sizing := container.Sub(margin)

	intrinsicW, intrinsicH := 0, 0
	if s, ok := w.(layout.IntrinsicSizer); ok {
		intrinsicW, intrinsicH = s.IntrinsicSize()
	}

	width := resolveAxis(axis{
		value:     style.Width,
		min:       style.MinWidth,
		max:       style.MaxWidth,
		sizing:    sizing.Width,
		intrinsic: intrinsicW,
		gutter:    padding.Width(),
	}, viewport, fractionUnit)

	height := resolveAxis(axis{
		value:     style.Height,
		min:       style.MinHeight,
		max:       style.MaxHeight,
		sizing:    sizing.Height,
		intrinsic: intrinsicH,
		gutter:    padding.Height(),
	}, viewport, fractionUnit)

	return layout.BoxModel{Width: width, Height: height, Margin: margin}, nil
}

// axis holds the inputs for resolving one dimension.
type axis struct {
	value     layout.Value
	min       layout.Value
	max       layout.Value
	sizing    int // container length minus margin
	intrinsic int // content length without padding
	gutter    int // padding on this axis
}

func resolveAxis(a axis, viewport layout.Size, fractionUnit *big.Rat) *big.Rat {
	var size *big.Rat
	switch a.value.Unit {
	case layout.UnitUnset:
		size = big.NewRat(int64(a.sizing), 1)
	case layout.UnitAuto:
		size = big.NewRat(int64(a.intrinsic+a.gutter), 1)
	default:
		size, _ = a.value.Resolve(a.sizing, viewport, fractionUnit)
	}

	// Unset and auto bounds mean no constraint.
	if lo, ok := a.min.Resolve(a.sizing, viewport, fractionUnit); ok && size.Cmp(lo) < 0 {
		size = lo
	}
	if hi, ok := a.max.Resolve(a.sizing, viewport, fractionUnit); ok && size.Cmp(hi) > 0 {
		size = hi
	}

	// The box never shrinks below its own padding, nor below zero.
	if floor := big.NewRat(int64(max(0, a.gutter)), 1); size.Cmp(floor) < 0 {
		size = floor
	}
	return size
}

func checkUnits(style layout.Style) error {
	fields := []struct {
		name  string
		value layout.Value
	}{
		{"width", style.Width},
		{"height", style.Height},
		{"min-width", style.MinWidth},
		{"min-height", style.MinHeight},
		{"max-width", style.MaxWidth},
		{"max-height", style.MaxHeight},
	}
	for _, f := range fields {
		if !f.value.Unit.Valid() {
			return fmt.Errorf("%s: %w %d", f.name, ErrUnknownUnit, f.value.Unit)
		}
	}
	return nil
}
