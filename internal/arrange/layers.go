package arrange

import "github.com/grindlemire/go-arrange/internal/layout"

// Layer is one named z-partition of a container's children.
type Layer struct {
	Name    string
	Widgets []layout.Widget
}

// Layers returns the displayed children grouped by layer name. Layers appear
// in the order their name is first seen; widgets keep declaration order.
// Hidden children are dropped.
func Layers(children []layout.Widget) []Layer {
	var layers []Layer
	index := make(map[string]int)
	for _, child := range children {
		style := child.LayoutStyle()
		if !style.IsDisplayed() {
			continue
		}
		name := style.LayerName()
		i, ok := index[name]
		if !ok {
			i = len(layers)
			index[name] = i
			layers = append(layers, Layer{Name: name})
		}
		layers[i].Widgets = append(layers[i].Widgets, child)
	}
	return layers
}

// splitDocked partitions widgets into flow and docked sets, keeping order.
func splitDocked(widgets []layout.Widget) (flow, docked []layout.Widget) {
	for _, w := range widgets {
		if w.LayoutStyle().Dock == layout.EdgeNone {
			flow = append(flow, w)
		} else {
			docked = append(docked, w)
		}
	}
	return flow, docked
}
