package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell budget.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget that renders a fixed string.
type Text string

func (t Text) Render(width, height int) string {
	lines := strings.Split(string(t), "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = ansi.Truncate(lines[i], width, "")
	}
	return strings.Join(lines, "\n")
}

// HStack lays widgets out side by side. Ratios, when given one per widget,
// weight the column widths; otherwise columns share the width evenly.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	widths := splitWidths(max(1, width-h.Gap*(n-1)), n, h.Ratios)
	columns := make([][]string, n)
	rows := 0
	for i, w := range h.Widgets {
		columns[i] = strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rows = max(rows, len(columns[i]))
	}
	gap := strings.Repeat(" ", max(0, h.Gap))
	var b strings.Builder
	for row := range rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		for i, col := range columns {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if row < len(col) {
				cell = col[row]
			}
			b.WriteString(padRight(cell, widths[i]))
		}
	}
	return b.String()
}

// Grid wraps widgets into rows of at most Columns cells, dropping columns
// while a cell would be narrower than MinCellWidth. Each row is CellHeight
// lines tall.
type Grid struct {
	Widgets      []Widget
	Columns      int
	MinCellWidth int
	CellHeight   int
	Gap          int
}

// Cols is the number of columns the grid uses at width.
func (g Grid) Cols(width int) int {
	cols := max(1, g.Columns)
	for cols > 1 && g.MinCellWidth > 0 && (width-g.Gap*(cols-1))/cols < g.MinCellWidth {
		cols--
	}
	return cols
}

func (g Grid) Render(width, _ int) string {
	if len(g.Widgets) == 0 || width <= 0 {
		return ""
	}
	cols := g.Cols(width)
	rows := make([]string, 0, (len(g.Widgets)+cols-1)/cols)
	for start := 0; start < len(g.Widgets); start += cols {
		cells := make([]Widget, cols)
		for i := range cells {
			cells[i] = Text("")
			if start+i < len(g.Widgets) {
				cells[i] = g.Widgets[start+i]
			}
		}
		rows = append(rows, HStack{Widgets: cells, Gap: g.Gap}.Render(width, max(1, g.CellHeight)))
	}
	return strings.Join(rows, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = 1
		if len(ratios) == n && ratios[i] > 0 {
			weights[i] = ratios[i]
		}
		sum += weights[i]
	}
	out := make([]int, n)
	used := 0
	for i, w := range weights {
		out[i] = int(math.Floor(w * float64(total) / sum))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
