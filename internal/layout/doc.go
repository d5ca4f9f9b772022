// Package layout holds the value types and collaborator contracts shared by
// the arrangement engine: integer geometry (Region, Spacing, Size, Offset),
// sizing values, the per-widget Style record, resolved box models and widget
// placements.
//
// Every geometry type is an immutable value. Operations such as
// [Region.Shrink] and [Region.Translate] return new values. Types are
// re-exported through the root arrange package for public consumption.
package layout
