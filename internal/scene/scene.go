// Package scene loads TOML scene descriptions into arrangement trees.
//
// A scene names a viewport and a root widget with nested children:
//
//	[viewport]
//	width = 80
//	height = 24
//
//	[root]
//	layout = "vertical"
//
//	[[root.children]]
//	id = "header"
//	dock = "top"
//	height = "3"
//
//	[[root.children]]
//	id = "body"
//	layout = "grid"
//	columns = 2
//	padding = [1, 2]
package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/grindlemire/go-arrange"
	"github.com/grindlemire/go-arrange/internal/flow"
	"github.com/grindlemire/go-arrange/internal/layout"
)

// ErrNoRoot is returned for a scene without a [root] table.
var ErrNoRoot = errors.New("scene has no root")

// Scene is a loaded scene.
type Scene struct {
	// Path is the file the scene was loaded from, empty for Parse.
	Path string

	// Viewport is the terminal size declared by the scene. Zero when the
	// scene leaves it to the caller.
	Viewport arrange.Size

	Root *arrange.Node
}

type file struct {
	Viewport struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"viewport"`
	Root *widget `toml:"root"`
}

type widget struct {
	ID      string   `toml:"id"`
	Layout  string   `toml:"layout"`
	Columns int      `toml:"columns"`
	Rows    int      `toml:"rows"`
	Gutter  int      `toml:"gutter"`
	Display string   `toml:"display"`
	Layer   string   `toml:"layer"`
	Dock    string   `toml:"dock"`
	Align   string   `toml:"align"`
	Width   value    `toml:"width"`
	Height  value    `toml:"height"`
	MinW    value    `toml:"min_width"`
	MinH    value    `toml:"min_height"`
	MaxW    value    `toml:"max_width"`
	MaxH    value    `toml:"max_height"`
	Margin  spacing  `toml:"margin"`
	Padding spacing  `toml:"padding"`
	Content []int    `toml:"content"`
	Nodes   []widget `toml:"children"`
}

// value accepts a plain number of cells or a string such as "50%" or "1fr".
type value struct {
	layout.Value
}

// UnmarshalTOML implements toml.Unmarshaler.
func (v *value) UnmarshalTOML(data any) error {
	var err error
	switch d := data.(type) {
	case int64:
		if d < 0 {
			return fmt.Errorf("%w: %d", layout.ErrInvalidValue, d)
		}
		v.Value = layout.Fixed(int(d))
	case string:
		v.Value, err = layout.ParseValue(d)
	default:
		err = fmt.Errorf("%w: unsupported type %T", layout.ErrInvalidValue, data)
	}
	return err
}

// spacing accepts an integer, an array of 1, 2 or 4 integers, or a CSS-like
// string such as "1 2".
type spacing struct {
	layout.Spacing
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *spacing) UnmarshalTOML(data any) error {
	var err error
	switch v := data.(type) {
	case int64:
		s.Spacing, err = layout.SpacingFromInts([]int{int(v)})
	case string:
		s.Spacing, err = layout.ParseSpacing(v)
	case []any:
		values := make([]int, len(v))
		for i, item := range v {
			n, ok := item.(int64)
			if !ok {
				return fmt.Errorf("%w: element %d is %T", layout.ErrInvalidSpacing, i, item)
			}
			values[i] = int(n)
		}
		s.Spacing, err = layout.SpacingFromInts(values)
	default:
		return fmt.Errorf("%w: unsupported type %T", layout.ErrInvalidSpacing, data)
	}
	return err
}

// Load reads and builds the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse builds a scene from TOML text.
func Parse(data []byte) (*Scene, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if f.Root == nil {
		return nil, ErrNoRoot
	}

	root, err := build(f.Root, "root")
	if err != nil {
		return nil, err
	}
	return &Scene{
		Viewport: layout.NewSize(max(0, f.Viewport.Width), max(0, f.Viewport.Height)),
		Root:     root,
	}, nil
}

// build converts w and its descendants. path locates w in error messages.
func build(w *widget, path string) (*arrange.Node, error) {
	id := w.ID
	if id == "" {
		id = uuid.NewString()[:8]
	}

	style, err := w.style()
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", path, id, err)
	}
	n := arrange.NewNode(id, style)

	l, err := flow.Parse(w.Layout, w.Columns, w.Rows, w.Gutter)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", path, id, err)
	}
	n.SetFlowLayout(l)

	switch len(w.Content) {
	case 0:
	case 2:
		n.SetContent(w.Content[0], w.Content[1])
	default:
		return nil, fmt.Errorf("%s (%s): content wants [width, height], got %d values", path, id, len(w.Content))
	}

	for i := range w.Nodes {
		child, err := build(&w.Nodes[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.AddChild(child)
	}
	return n, nil
}

func (w *widget) style() (layout.Style, error) {
	s := layout.DefaultStyle()
	s.Layer = w.Layer
	s.Margin = w.Margin.Spacing
	s.Padding = w.Padding.Spacing

	var err error
	if s.Display, err = layout.ParseDisplay(w.Display); err != nil {
		return s, err
	}
	if s.Dock, err = layout.ParseEdge(w.Dock); err != nil {
		return s, err
	}
	if s.AlignHorizontal, s.AlignVertical, err = layout.ParseAlign(w.Align); err != nil {
		return s, err
	}
	s.Width = w.Width.Value
	s.Height = w.Height.Value
	s.MinWidth = w.MinW.Value
	s.MinHeight = w.MinH.Value
	s.MaxWidth = w.MaxW.Value
	s.MaxHeight = w.MaxH.Value
	return s, nil
}
