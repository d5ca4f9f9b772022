package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-arrange"
)

const testScene = `
[viewport]
width = 40
height = 10

[root]
id = "screen"

[[root.children]]
id = "header"
dock = "top"
height = 2

[[root.children]]
id = "body"
layout = "horizontal"
padding = 1

[[root.children.children]]
id = "nav"
width = 10

[[root.children.children]]
id = "main"
width = "1fr"
`

func writeScene(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the command line args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := newCLI(&out, &errOut)
	c.terminalSize = func() (int, int) { return 100, 30 }
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestArrangeCommand_JSON(t *testing.T) {
	path := writeScene(t, "screen.toml", testScene)

	type tc struct {
		args     []string
		expected []placement
	}

	header := placement{ID: "header", Depth: 1, Width: 40, Height: 2, Order: arrange.TopOrder, Fixed: true}
	body := placement{ID: "body", Depth: 1, Y: 2, Width: 40, Height: 8}

	tests := map[string]tc{
		"default depth": {
			args:     []string{"--format", "json", path},
			expected: []placement{header, body},
		},
		"all depths": {
			args: []string{"-o", "json", "--depth", "0", path},
			expected: []placement{
				header,
				body,
				{ID: "nav", Depth: 2, X: 1, Y: 3, Width: 10, Height: 6},
				{ID: "main", Depth: 2, X: 11, Y: 3, Width: 28, Height: 6},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() unexpected error: %v", err)
			}

			var reports []report
			if err := json.Unmarshal([]byte(out), &reports); err != nil {
				t.Fatalf("decode output: %v\n%s", err, out)
			}
			if len(reports) != 1 {
				t.Fatalf("got %d reports, want 1", len(reports))
			}
			if reports[0].Viewport != (viewport{Width: 40, Height: 10}) {
				t.Errorf("viewport = %+v, want 40x10", reports[0].Viewport)
			}
			if diff := cmp.Diff(tt.expected, reports[0].Placements); diff != "" {
				t.Errorf("placements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrangeCommand_Table(t *testing.T) {
	path := writeScene(t, "screen.toml", testScene)

	out, err := execute(t, "--depth", "2", path)
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}

	for _, want := range []string{path, "40x10", "Widget", "header", "top", "nav", "28x6"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestArrangeCommand_MultipleScenesKeepOrder(t *testing.T) {
	first := writeScene(t, "first.toml", testScene)
	second := writeScene(t, "second.toml", "[root]\nid = \"solo\"\n[[root.children]]\nid = \"only\"\n")

	out, err := execute(t, "--format", "json", second, first)
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}

	var reports []report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(reports) != 2 || reports[0].Scene != second || reports[1].Scene != first {
		t.Fatalf("reports out of order: %+v", reports)
	}
	// The second scene has no viewport, so the terminal size applies.
	if reports[0].Viewport != (viewport{Width: 100, Height: 30}) {
		t.Errorf("viewport = %+v, want terminal 100x30", reports[0].Viewport)
	}
}

func TestArrangeCommand_Errors(t *testing.T) {
	good := writeScene(t, "good.toml", testScene)
	bad := writeScene(t, "bad.toml", "[root]\n[[root.children]]\ndock = \"sideways\"\n")

	type tc struct {
		args     []string
		contains string
	}

	tests := map[string]tc{
		"no files":       {args: nil, contains: "requires at least 1 arg"},
		"missing file":   {args: []string{filepath.Join(t.TempDir(), "nope.toml")}, contains: "nope.toml"},
		"invalid scene":  {args: []string{good, bad}, contains: "bad.toml"},
		"unknown format": {args: []string{"--format", "xml", good}, contains: "xml"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("execute() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, want it to contain %q", err, tt.contains)
			}
		})
	}
}

func TestArrangeCommand_Config(t *testing.T) {
	path := writeScene(t, "screen.toml", testScene)
	cfg := writeScene(t, "arrange.toml", "width = 60\nformat = \"json\"\n")

	out, err := execute(t, "--config", cfg, path)
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}

	var reports []report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if reports[0].Viewport != (viewport{Width: 60, Height: 10}) {
		t.Errorf("viewport = %+v, want 60x10", reports[0].Viewport)
	}
}

func TestPickViewport(t *testing.T) {
	terminal := arrange.NewSize(100, 30)

	type tc struct {
		override arrange.Size
		scene    arrange.Size
		expected arrange.Size
	}

	tests := map[string]tc{
		"scene viewport": {
			scene:    arrange.NewSize(40, 10),
			expected: arrange.NewSize(40, 10),
		},
		"terminal fallback": {
			expected: arrange.NewSize(100, 30),
		},
		"override beats scene": {
			override: arrange.NewSize(120, 0),
			scene:    arrange.NewSize(40, 10),
			expected: arrange.NewSize(120, 10),
		},
		"partial scene": {
			scene:    arrange.NewSize(0, 12),
			expected: arrange.NewSize(100, 12),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pickViewport(tt.override, tt.scene, terminal); got != tt.expected {
				t.Errorf("pickViewport() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestArrangeCommand_EnvViewportAcrossScenes(t *testing.T) {
	t.Setenv("ARRANGE_WIDTH", "120")
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = writeScene(t, fmt.Sprintf("scene%d.toml", i), testScene)
	}

	out, err := execute(t, append([]string{"--format", "json"}, paths...)...)
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}

	var reports []report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(reports) != len(paths) {
		t.Fatalf("got %d reports, want %d", len(reports), len(paths))
	}
	for i, r := range reports {
		if r.Scene != paths[i] || r.Viewport != (viewport{Width: 120, Height: 10}) {
			t.Errorf("report %d = %s %+v, want %s 120x10", i, r.Scene, r.Viewport, paths[i])
		}
	}
}

func TestArrangeCommand_ClippedChildren(t *testing.T) {
	path := writeScene(t, "clip.toml", `
[viewport]
width = 20
height = 5

[root]
layout = "horizontal"

[[root.children]]
id = "wide"
width = 30

[[root.children]]
id = "gone"
width = 4
`)

	out, err := execute(t, "--format", "json", path)
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}
	var reports []report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	expected := []placement{
		{ID: "wide", Depth: 1, Width: 30, Height: 5, Visible: &visible{Width: 20, Height: 5}},
		{ID: "gone", Depth: 1, X: 30, Width: 4, Height: 5, Visible: &visible{X: 20, Height: 5, Hidden: true}},
	}
	if diff := cmp.Diff(expected, reports[0].Placements); diff != "" {
		t.Errorf("placements mismatch (-want +got):\n%s", diff)
	}

	table, err := execute(t, path)
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}
	for _, want := range []string{"30x5 (20x5 shown)", "4x5 (hidden)"} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q:\n%s", want, table)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute() unexpected error: %v", err)
	}
	if out != "arrange version "+version+"\n" {
		t.Errorf("output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext should return the attached logger")
	}
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to the default logger")
	}
}

func TestOrderLabel(t *testing.T) {
	if got := orderLabel(arrange.TopOrder); got != "top" {
		t.Errorf("orderLabel(TopOrder) = %q, want top", got)
	}
	if got := orderLabel(3); got != "3" {
		t.Errorf("orderLabel(3) = %q, want 3", got)
	}
}
