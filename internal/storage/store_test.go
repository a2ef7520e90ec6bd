package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/Soni-Shivam/2dPhysicsEngine/internal/config"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/engine"
	"github.com/Soni-Shivam/2dPhysicsEngine/internal/sim"
)

func recordedRun(t *testing.T) (*config.Config, *sim.Result) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Seed = 42
	cfg.Duration = 0.05

	ps, err := engine.Spawn(cfg.SpawnOptions())
	if err != nil {
		t.Fatal(err)
	}

	s := sim.New(ps, cfg.PhysicsParams())
	result, err := s.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true})
	if err != nil {
		t.Fatal(err)
	}
	return cfg, result
}

func TestStoreRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, result := recordedRun(t)

	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Particles != cfg.Particles {
		t.Errorf("expected %d particles, got %d", cfg.Particles, meta.Particles)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}

	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(frames) != len(result.Frames) {
		t.Fatalf("expected %d frames, got %d", len(result.Frames), len(frames))
	}
	if len(times) != len(result.Times) {
		t.Fatalf("expected %d times, got %d", len(result.Times), len(times))
	}

	// Spot-check the first frame against the recorded particles.
	for i, p := range result.Frames[0] {
		base := i * FrameColumns
		if math.Abs(frames[0][base]-p.Pos.X) > 1e-6 {
			t.Errorf("particle %d x: expected %.6f, got %.6f", i, p.Pos.X, frames[0][base])
		}
		if math.Abs(frames[0][base+4]-p.Mass) > 1e-6 {
			t.Errorf("particle %d mass: expected %.6f, got %.6f", i, p.Mass, frames[0][base+4])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}

	cfg, result := recordedRun(t)
	if _, err := st.Save(cfg, result); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected empty list for missing dir, got error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	cfg, result := recordedRun(t)
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, frames, times); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.ID != runID {
		t.Errorf("expected run id %s, got %s", runID, data.ID)
	}
	if data.Steps != len(times) {
		t.Errorf("expected %d steps, got %d", len(times), data.Steps)
	}
}
