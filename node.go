package arrange

import "github.com/grindlemire/go-arrange/internal/flow"

// Node is a widget in an arrangement tree. A Node with children is also a
// Container and can be passed to Arrange.
type Node struct {
	// ID names the node in placements and logs.
	ID string

	style    Style
	flow     FlowLayout
	children []*Node
	parent   *Node

	// Intrinsic content size used for auto width/height.
	contentWidth  int
	contentHeight int
}

// NewNode creates a node with the given id and style.
func NewNode(id string, style Style) *Node {
	return &Node{ID: id, style: style}
}

// AddChild appends children, detaching each from any previous parent.
// A child that is n itself or one of its ancestors is skipped, since
// adding it would make the tree cyclic.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child == nil || child.encloses(n) {
			continue
		}
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = n
		n.children = append(n.children, child)
	}
}

// encloses reports whether other is n or lies in n's subtree.
func (n *Node) encloses(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// RemoveChild removes a child by pointer, keeping the order of the rest.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// SetStyle replaces the node's style.
func (n *Node) SetStyle(style Style) {
	n.style = style
}

// Style returns the node's style.
func (n *Node) Style() Style {
	return n.style
}

// SetFlowLayout sets the strategy used for non-docked children.
// nil selects Vertical.
func (n *Node) SetFlowLayout(l FlowLayout) {
	n.flow = l
}

// SetContent sets the intrinsic content size used by auto dimensions.
func (n *Node) SetContent(width, height int) {
	n.contentWidth = max(0, width)
	n.contentHeight = max(0, height)
}

// IntrinsicSize implements the intrinsic sizing hook of the box model resolver.
func (n *Node) IntrinsicSize() (int, int) {
	return n.contentWidth, n.contentHeight
}

// LayoutStyle implements Widget.
func (n *Node) LayoutStyle() Style {
	return n.style
}

// LayoutChildren implements Container.
func (n *Node) LayoutChildren() []Widget {
	out := make([]Widget, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// FlowLayout implements Container.
func (n *Node) FlowLayout() FlowLayout {
	if n.flow == nil {
		return flow.Vertical{}
	}
	return n.flow
}

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Find returns the first node with the given id in the subtree rooted at n.
func (n *Node) Find(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.ID
}
