package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/horizon/internal/sim"
)

// RunMetadata is the metadata.json written next to paths.csv.
type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	G         float64            `json:"g"`
	M         float64            `json:"m"`
	C         float64            `json:"c"`
	Rs        float64            `json:"rs"`
	Dt        float64            `json:"dt"`
	Ticks     int                `json:"ticks"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// SaveRun writes a run directory under baseDir with metadata.json and
// paths.csv (one row per particle per step). These are one-shot output
// artifacts; nothing here is read back to resume a simulation.
func SaveRun(baseDir string, g, m, c, dt float64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		G:         g,
		M:         m,
		C:         c,
		Rs:        result.Final.Rs,
		Dt:        dt,
		Ticks:     result.Ticks,
		Particles: len(result.Final.Particles),
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "paths.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"particle", "step", "x", "y", "photon", "captured"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, p := range result.Final.Particles {
		for step, pt := range p.Path {
			row := []string{
				strconv.Itoa(i),
				strconv.Itoa(step),
				strconv.FormatFloat(pt.X(), 'f', 6, 64),
				strconv.FormatFloat(pt.Y(), 'f', 6, 64),
				strconv.FormatBool(p.Photon),
				strconv.FormatBool(p.Captured),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}
