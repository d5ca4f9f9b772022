// Package flow implements the layouts that arrange a container's non-docked
// children: Vertical and Horizontal stacks and a fixed-column Grid.
//
// Every layout returns regions relative to the origin of the size it was
// given. Orders are always zero, far below the order reserved for docked
// widgets, and no flow placement is ever fixed.
package flow
