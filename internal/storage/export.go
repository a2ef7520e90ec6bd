package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the JSON export layout for a recorded run.
type ExportData struct {
	ID        string             `json:"id"`
	Particles int                `json:"particles"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Steps     int                `json:"steps"`
	Times     []float64          `json:"times"`
	Frames    [][]float64        `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, frames [][]float64, times []float64) error {
	data := ExportData{
		ID:        meta.ID,
		Particles: meta.Particles,
		Dt:        meta.Dt,
		Duration:  meta.Duration,
		Steps:     len(times),
		Times:     times,
		Frames:    frames,
		Metrics:   meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONFile(path string, meta *RunMetadata, frames [][]float64, times []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return ExportJSON(file, meta, frames, times)
}
