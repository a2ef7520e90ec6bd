package export

import (
	"fmt"
	"strings"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/storage"
)

var strokePalette = []string{
	"#1a99ff", "#ffe633", "#ff6b6b", "#51cf66",
	"#cc5de8", "#ffa94d", "#63e6be", "#f06595",
}

// TrajectoriesToSVG renders one polyline per particle from recorded
// frame rows (storage.FrameColumns values per particle). The world
// frame [-1,1] maps to the full image, y up.
func TrajectoriesToSVG(frames [][]float64, width, height int) string {
	if len(frames) < 2 || len(frames[0]) < storage.FrameColumns {
		return ""
	}

	particles := len(frames[0]) / storage.FrameColumns

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0d0d1a"/>
`, width, height, width, height))

	for p := 0; p < particles; p++ {
		base := p * storage.FrameColumns

		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.2" points="`,
			strokePalette[p%len(strokePalette)]))

		for _, frame := range frames {
			if base+1 >= len(frame) {
				continue
			}
			x := (frame[base] + 1) / 2 * float64(width)
			y := (1 - (frame[base+1]+1)/2) * float64(height)
			sb.WriteString(fmt.Sprintf("%.1f,%.1f ", x, y))
		}

		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
