package render

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/config"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/physics"
)

const (
	windowWidth  = 800
	windowHeight = 600
	targetFPS    = 60
)

// 0.05, 0.05, 0.1 clear color from the sprite scene.
var colBackground = rl.NewColor(13, 13, 26, 255)

// Run opens the window and drives the frame loop: read the wall-clock
// frame delta, advance the physics step, then upload and draw. The
// physics step finishes before any particle state reaches the GPU
// buffer, so the renderer always sees a complete frame.
func Run(cfg *config.Config) error {
	ps, err := engine.Spawn(cfg.SpawnOptions())
	if err != nil {
		return err
	}
	params := cfg.PhysicsParams()

	rl.InitWindow(windowWidth, windowHeight, "Gravity + Collisions")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	pipeline, err := NewPointSpritePipeline(len(ps))
	if err != nil {
		fmt.Fprintf(os.Stderr, "point sprite pipeline unavailable (%v), using circle fallback\n", err)
	} else {
		defer pipeline.Close()
	}

	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyR) {
			if fresh, err := engine.Spawn(cfg.SpawnOptions()); err == nil {
				ps = fresh
			}
		}

		dt := float64(rl.GetFrameTime())
		if !paused {
			physics.Step(ps, dt, params)
		}

		rl.BeginDrawing()
		rl.ClearBackground(colBackground)

		if pipeline != nil {
			pipeline.Upload(PackVertices(ps))
			pipeline.Draw()
		} else {
			drawCircles(ps)
		}

		rl.EndDrawing()
	}

	return nil
}

// drawCircles is the fallback path when the GL pipeline cannot be
// created: same mass-driven size and color blend, rasterized by raylib.
func drawCircles(ps []engine.Particle) {
	for i := range ps {
		sx := float32((ps[i].Pos.X + 1) / 2 * windowWidth)
		sy := float32((1 - (ps[i].Pos.Y+1)/2) * windowHeight)
		// gl_PointSize = mass*10 px, so the circle radius is mass*5.
		r := float32(ps[i].Mass * 5)
		rl.DrawCircleV(rl.NewVector2(sx, sy), r, massColor(ps[i].Mass))
	}
}

// massColor blends the light-body blue toward the heavy-body yellow,
// mirroring the fragment shader.
func massColor(mass float64) rl.Color {
	t := math.Min(math.Max(mass/2, 0), 1)
	r := 0.1 + (1.0-0.1)*t
	g := 0.6 + (0.9-0.6)*t
	b := 1.0 + (0.2-1.0)*t
	return rl.NewColor(uint8(r*255), uint8(g*255), uint8(b*255), 255)
}
