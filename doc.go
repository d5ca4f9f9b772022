// Package arrange places the children of a terminal UI container for one frame.
//
// Users import this single package for the public API: geometry and style
// types, the Node widget tree, the built-in flow layouts and [Arrange].
//
// A container's displayed children are grouped into layers. Within a layer,
// children with a dock edge are pinned to that edge of the container and
// painted above everything else, while the rest are arranged by the
// container's flow layout in the space the docks leave free:
//
//	root := arrange.NewNode("screen", arrange.DefaultStyle())
//	root.AddChild(
//		arrange.NewNode("header", arrange.Style{Dock: arrange.EdgeTop, Height: arrange.Fixed(1)}),
//		arrange.NewNode("body", arrange.DefaultStyle()),
//	)
//	result, err := arrange.Arrange(root, arrange.NewSize(80, 24), arrange.NewSize(80, 24))
package arrange
