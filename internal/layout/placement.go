package layout

import "fmt"

// WidgetPlacement is the computed position of one widget for one frame.
type WidgetPlacement struct {
	Region Region
	Widget Widget

	// Order is the paint order; larger values are drawn later, on top.
	Order int

	// Fixed placements are docked and do not move when the content scrolls.
	Fixed bool
}

// Translate returns a copy of the placement moved by the offset.
func (p WidgetPlacement) Translate(o Offset) WidgetPlacement {
	p.Region = p.Region.Translate(o)
	return p
}

func (p WidgetPlacement) String() string {
	return fmt.Sprintf("%v (%d,%d %dx%d) order=%d fixed=%t",
		p.Widget, p.Region.X, p.Region.Y, p.Region.Width, p.Region.Height, p.Order, p.Fixed)
}

// WidgetSet is a set of widgets that remembers insertion order.
// The zero value is not usable; create one with NewWidgetSet.
type WidgetSet struct {
	index map[Widget]struct{}
	order []Widget
}

// NewWidgetSet creates a set holding the given widgets.
func NewWidgetSet(widgets ...Widget) *WidgetSet {
	s := &WidgetSet{index: make(map[Widget]struct{}, len(widgets))}
	s.Add(widgets...)
	return s
}

// Add inserts widgets not already present.
func (s *WidgetSet) Add(widgets ...Widget) {
	for _, w := range widgets {
		if _, ok := s.index[w]; ok {
			continue
		}
		s.index[w] = struct{}{}
		s.order = append(s.order, w)
	}
}

// Contains reports whether w is in the set.
func (s *WidgetSet) Contains(w Widget) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[w]
	return ok
}

// Len returns the number of widgets in the set.
func (s *WidgetSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Widgets returns the members in insertion order.
func (s *WidgetSet) Widgets() []Widget {
	if s == nil {
		return nil
	}
	out := make([]Widget, len(s.order))
	copy(out, s.order)
	return out
}
