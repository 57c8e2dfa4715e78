package widgets

import (
	"strings"
	"testing"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || len(lines[0]) != 20 {
		t.Fatalf("expected a 20 column row, got %q", out)
	}
	if strings.Index(lines[0], "B") != 16 {
		t.Fatalf("B should start after the 15 column left cell and gap, got %q", lines[0])
	}
}

func TestGridWrapsIntoRows(t *testing.T) {
	g := Grid{Widgets: []Widget{fixedWidget{"a"}, fixedWidget{"b"}, fixedWidget{"c"}, fixedWidget{"d"}}, Columns: 3, CellHeight: 1, Gap: 1}
	lines := strings.Split(g.Render(20, 0), "\n")
	if len(lines) != 2 {
		t.Fatalf("rows = %d, want 2: %q", len(lines), lines)
	}
	if strings.Index(lines[1], "d") != 0 || len(lines[1]) != 20 {
		t.Fatalf("last row should keep the full grid width, got %q", lines[1])
	}
}

func TestGridDropsColumnsWhenNarrow(t *testing.T) {
	g := Grid{Columns: 3, MinCellWidth: 10, Gap: 1}
	for width, want := range map[int]int{40: 3, 25: 2, 12: 1} {
		if got := g.Cols(width); got != want {
			t.Fatalf("Cols(%d) = %d, want %d", width, got, want)
		}
	}
}

func TestSplitWidthsFillsTotal(t *testing.T) {
	for _, ratios := range [][]float64{nil, {1, 2, 3}, {0, 1, 1}} {
		n := 3
		got := splitWidths(17, n, ratios)
		sum := 0
		for _, w := range got {
			sum += w
		}
		if sum != 17 {
			t.Fatalf("splitWidths(17, %v) = %v, sum %d", ratios, got, sum)
		}
	}
}

func TestTextTruncates(t *testing.T) {
	out := Text("abcdef\nsecond\nthird").Render(3, 2)
	if out != "abc\nsec" {
		t.Fatalf("text = %q", out)
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}

func TestCardShowsTitleAndContent(t *testing.T) {
	out := Card{Title: "Steps", Content: "7,842"}.Render(20, 5)
	if !strings.Contains(out, "Steps") || !strings.Contains(out, "7,842") {
		t.Fatalf("card = %q", out)
	}
}

func TestBarChartEmpty(t *testing.T) {
	out := BarChart{Title: "Week"}.Render(20, 6)
	if !strings.Contains(out, "(no data)") {
		t.Fatalf("empty chart = %q", out)
	}
}

func TestBarChartHasTitle(t *testing.T) {
	out := BarChart{Title: "Week", Data: []ChartPoint{{"Mon", 3}, {"Tue", 5}}}.Render(30, 8)
	if !strings.HasPrefix(out, "Week\n") {
		t.Fatalf("chart should start with its title, got %q", out)
	}
}
