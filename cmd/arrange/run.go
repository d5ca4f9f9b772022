package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-arrange"
	"github.com/grindlemire/go-arrange/internal/scene"
)

// report is the arrangement of one scene file.
type report struct {
	Scene      string      `json:"scene"`
	Viewport   viewport    `json:"viewport"`
	Placements []placement `json:"placements"`
}

type viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type placement struct {
	ID     string `json:"id"`
	Depth  int    `json:"depth"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Order  int    `json:"order"`
	Fixed  bool   `json:"fixed"`

	// Visible is set when an ancestor clips the widget.
	Visible *visible `json:"visible,omitempty"`
}

type visible struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Hidden bool `json:"hidden,omitempty"`
}

// runArrange arranges every scene concurrently and prints the reports in
// argument order.
func (c *cli) runArrange(ctx context.Context, paths []string) error {
	logger := loggerFromContext(ctx)

	// Settings are read once here; the workers below must not touch viper.
	depth := c.v.GetInt("depth")
	format := c.v.GetString("format")
	override := arrange.NewSize(c.v.GetInt("width"), c.v.GetInt("height"))
	terminal := arrange.NewSize(c.terminalSize())

	reports := make([]report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()

			s, err := scene.Load(path)
			if err != nil {
				return err
			}
			size := pickViewport(override, s.Viewport, terminal)
			placed, err := arrange.ArrangeTree(s.Root, size, size, depth)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			reports[i] = newReport(path, size, placed)
			logger.Debug("arranged scene", "path", path, "viewport", size, "placements", len(placed),
				"elapsed", time.Since(start).Round(time.Microsecond))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if format == formatJSON {
		return writeJSON(c.out, reports)
	}
	return writeTables(c.out, reports)
}

// pickViewport chooses each dimension from the first positive source:
// flags, config and environment, then the scene, then the terminal.
func pickViewport(override, fromScene, terminal arrange.Size) arrange.Size {
	pick := func(values ...int) int {
		for _, v := range values {
			if v > 0 {
				return v
			}
		}
		return 0
	}
	return arrange.NewSize(
		pick(override.Width, fromScene.Width, terminal.Width),
		pick(override.Height, fromScene.Height, terminal.Height),
	)
}

func newReport(path string, size arrange.Size, placed []arrange.Placed) report {
	r := report{
		Scene:      path,
		Viewport:   viewport{Width: size.Width, Height: size.Height},
		Placements: make([]placement, len(placed)),
	}
	for i, p := range placed {
		r.Placements[i] = placement{
			ID:     widgetID(p.Widget),
			Depth:  p.Depth,
			X:      p.Screen.X,
			Y:      p.Screen.Y,
			Width:  p.Screen.Width,
			Height: p.Screen.Height,
			Order:  p.Order,
			Fixed:  p.Fixed,
		}
		if p.Visible != p.Screen {
			r.Placements[i].Visible = &visible{
				X:      p.Visible.X,
				Y:      p.Visible.Y,
				Width:  p.Visible.Width,
				Height: p.Visible.Height,
				Hidden: p.Visible.IsEmpty(),
			}
		}
	}
	return r
}

func widgetID(w arrange.Widget) string {
	if n, ok := w.(*arrange.Node); ok {
		return n.ID
	}
	return fmt.Sprint(w)
}
