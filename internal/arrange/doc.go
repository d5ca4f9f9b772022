// Package arrange computes where a container's displayed children go for one
// frame.
//
// Children are grouped into layers in first-seen order. Within each layer,
// docked children are pinned to their container edge and painted above
// everything else; the remaining children are handed to the container's flow
// layout inside the region the docks leave free. The result lists every
// placement in paint order, the set of widgets that were placed, and the
// spacing docks permanently reserve around scrollable content.
//
// Arrangement is a pure function of the widget tree: it keeps no state
// between calls and either succeeds completely or returns an error.
package arrange
