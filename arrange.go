package arrange

import "github.com/grindlemire/go-arrange/internal/arrange"

// TopOrder is the paint order of docked placements.
const TopOrder = arrange.TopOrder

// Result is the outcome of arranging one container.
type Result = arrange.Result

// Arranger arranges containers with a configurable box model resolver and logger.
type Arranger = arrange.Arranger

// Contract violations returned by Arrange.
var (
	ErrInvalidDock   = arrange.ErrInvalidDock
	ErrFlowOrder     = arrange.ErrFlowOrder
	ErrFlowFixed     = arrange.ErrFlowFixed
	ErrForeignWidget = arrange.ErrForeignWidget
)

// Arrange places the displayed children of container inside size, using the
// default box model resolver. viewport is the size of the whole terminal.
func Arrange(container Container, size, viewport Size) (Result, error) {
	return arrange.Arrange(container, size, viewport)
}

// NewArranger creates an Arranger that sizes docked widgets with resolver.
func NewArranger(resolver BoxModelResolver) *Arranger {
	return arrange.New(resolver)
}

// Placed pairs a placement with its absolute region on screen.
type Placed struct {
	WidgetPlacement

	// Depth is the nesting level; children of the root are at depth 1.
	Depth int

	// Screen is Region translated into root coordinates.
	Screen Region

	// Visible is Screen clipped to the content regions of every ancestor.
	// It is empty when the widget lies entirely outside its parent.
	Visible Region
}

// ArrangeTree arranges root and then, depth first, every placed Node that has
// children, inside its region minus padding. maxDepth limits recursion;
// zero or less means unlimited.
func ArrangeTree(root *Node, size, viewport Size, maxDepth int) ([]Placed, error) {
	var out []Placed
	area := size.Region()
	if err := arrangeTree(root, area, area, viewport, 1, maxDepth, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// arrangeTree arranges n's children inside content, a region in root
// coordinates of which only bounds is visible.
func arrangeTree(n *Node, content, bounds Region, viewport Size, depth, maxDepth int, out *[]Placed) error {
	result, err := Arrange(n, content.Size(), viewport)
	if err != nil {
		return err
	}
	for _, p := range result.Placements {
		screen := p.Region.Translate(content.Offset())
		visible := screen.Clip(bounds)
		*out = append(*out, Placed{WidgetPlacement: p, Depth: depth, Screen: screen, Visible: visible})

		child, ok := p.Widget.(*Node)
		if !ok || len(child.children) == 0 || (maxDepth > 0 && depth >= maxDepth) {
			continue
		}
		inner := screen.Shrink(child.style.Padding)
		if err := arrangeTree(child, inner, inner.Clip(visible), viewport, depth+1, maxDepth, out); err != nil {
			return err
		}
	}
	return nil
}
