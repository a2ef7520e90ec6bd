package export

import (
	"strings"
	"testing"
)

func TestTrajectoriesToSVG(t *testing.T) {
	// Two frames, two particles (5 columns each).
	frames := [][]float64{
		{-0.5, 0, 0, 0, 1.0, 0.5, 0, 0, 0, 1.0},
		{-0.4, 0.1, 0, 0, 1.0, 0.4, -0.1, 0, 0, 1.0},
	}

	svg := TrajectoriesToSVG(frames, 400, 400)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Error("not a complete SVG document")
	}
	if got := strings.Count(svg, "<polyline"); got != 2 {
		t.Errorf("expected 2 polylines, got %d", got)
	}
	// World origin-ish points must land inside the viewBox.
	if strings.Contains(svg, "-") && strings.Contains(svg, `points="-`) {
		t.Error("trajectory point outside the image")
	}
}

func TestTrajectoriesToSVGDegenerateInput(t *testing.T) {
	if svg := TrajectoriesToSVG(nil, 100, 100); svg != "" {
		t.Error("expected empty string for no frames")
	}
	if svg := TrajectoriesToSVG([][]float64{{0.1}}, 100, 100); svg != "" {
		t.Error("expected empty string for a single short frame")
	}
}
