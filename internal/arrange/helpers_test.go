package arrange

import (
	"math/big"

	"github.com/grindlemire/go-arrange/internal/flow"
	"github.com/grindlemire/go-arrange/internal/layout"
)

type testWidget struct {
	Name  string
	Style layout.Style
}

func (w *testWidget) LayoutStyle() layout.Style { return w.Style }
func (w *testWidget) String() string            { return w.Name }

func widget(name string, style layout.Style) *testWidget {
	return &testWidget{Name: name, Style: style}
}

type testContainer struct {
	testWidget
	Children []layout.Widget
	Flow     layout.FlowLayout
}

func (c *testContainer) LayoutChildren() []layout.Widget { return c.Children }
func (c *testContainer) FlowLayout() layout.FlowLayout   { return c.Flow }

func container(flowLayout layout.FlowLayout, children ...layout.Widget) *testContainer {
	return &testContainer{
		testWidget: testWidget{Name: "container"},
		Children:   children,
		Flow:       flowLayout,
	}
}

// recordingLayout remembers the sizes it was asked to fill and delegates to
// the vertical layout.
type recordingLayout struct {
	sizes    []layout.Size
	children [][]layout.Widget
}

func (r *recordingLayout) Arrange(parent layout.Container, children []layout.Widget, size, viewport layout.Size) ([]layout.WidgetPlacement, []layout.Widget, error) {
	r.sizes = append(r.sizes, size)
	r.children = append(r.children, children)
	return flow.Vertical{}.Arrange(parent, children, size, viewport)
}

// funcLayout adapts a function to layout.FlowLayout.
type funcLayout func(children []layout.Widget, size layout.Size) ([]layout.WidgetPlacement, []layout.Widget, error)

func (f funcLayout) Arrange(_ layout.Container, children []layout.Widget, size, _ layout.Size) ([]layout.WidgetPlacement, []layout.Widget, error) {
	return f(children, size)
}

type failingResolver struct {
	err error
}

func (f failingResolver) ResolveBoxModel(layout.Widget, layout.Size, layout.Size, *big.Rat) (layout.BoxModel, error) {
	return layout.BoxModel{}, f.err
}

// unitRecorder captures the fraction unit passed for each widget.
type unitRecorder struct {
	units map[layout.Widget]*big.Rat
	inner layout.BoxModelResolver
}

func (u *unitRecorder) ResolveBoxModel(w layout.Widget, container, viewport layout.Size, fractionUnit *big.Rat) (layout.BoxModel, error) {
	u.units[w] = fractionUnit
	return u.inner.ResolveBoxModel(w, container, viewport, fractionUnit)
}

// placementNames projects placements onto their widget names, keeping order.
func placementNames(placements []layout.WidgetPlacement) []string {
	names := make([]string, len(placements))
	for i, p := range placements {
		names[i] = p.Widget.(*testWidget).Name
	}
	return names
}

func regionOf(t interface{ Fatalf(string, ...any) }, placements []layout.WidgetPlacement, w layout.Widget) layout.Region {
	for _, p := range placements {
		if p.Widget == w {
			return p.Region
		}
	}
	t.Fatalf("no placement for %v", w)
	return layout.Region{}
}
