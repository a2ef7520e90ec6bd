package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected top-left dot 0x2801, got %#x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0] != 0x2801|0x80 {
		t.Errorf("expected combined dots, got %#x", c.Grid[0][0])
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	// None of these may panic or light a cell.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)

	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("out-of-bounds set lit a cell: %#x", r)
			}
		}
	}
}

func TestCanvasPlotWorld(t *testing.T) {
	c := NewCanvas(10, 10)

	c.PlotWorld(0, 0, 1.0)

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Fatalf("expected exactly one lit cell, got %d", lit)
	}
	// The origin lands mid-canvas.
	if c.Grid[5][5] == 0x2800 {
		t.Error("expected origin to map to the canvas center")
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.Set(1, 1)
	c.Clear()

	if strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("expected empty canvas after clear")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
	}
}
