package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/grindlemire/go-arrange"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleFixed  = styleCell.Foreground(colorCyan)
)

func writeJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeTables(w io.Writer, reports []report) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, renderTable(r)); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(r report) string {
	rows := make([][]string, len(r.Placements))
	for i, p := range r.Placements {
		rows[i] = []string{
			strings.Repeat("  ", p.Depth-1) + p.ID,
			fmt.Sprintf("%d,%d", p.X, p.Y),
			sizeLabel(p),
			orderLabel(p.Order),
			strconv.FormatBool(p.Fixed),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Widget", "Offset", "Size", "Order", "Fixed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row >= 0 && row < len(r.Placements) && r.Placements[row].Fixed {
				return styleFixed
			}
			return styleCell
		})

	title := styleTitle.Render(r.Scene) + " " +
		styleDim.Render(fmt.Sprintf("%dx%d", r.Viewport.Width, r.Viewport.Height))
	return title + "\n" + t.Render()
}

// sizeLabel reports the size, noting how much of a clipped widget shows.
func sizeLabel(p placement) string {
	size := fmt.Sprintf("%dx%d", p.Width, p.Height)
	switch {
	case p.Visible == nil:
		return size
	case p.Visible.Hidden:
		return size + " (hidden)"
	}
	return fmt.Sprintf("%s (%dx%d shown)", size, p.Visible.Width, p.Visible.Height)
}

func orderLabel(order int) string {
	if order == arrange.TopOrder {
		return "top"
	}
	return strconv.Itoa(order)
}
