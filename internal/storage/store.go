// Package storage persists Mach sweep results: one directory per sweep
// with a metadata JSON and the coefficient table as CSV.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SweepPoint is the drag breakdown at one Mach number.
type SweepPoint struct {
	Mach       float64
	FrictionCD float64
	PressureCD float64
	BaseCD     float64
	CD         float64
	Caxial     float64
}

type SweepMetadata struct {
	ID        string    `json:"id"`
	Rocket    string    `json:"rocket"`
	Timestamp time.Time `json:"timestamp"`
	AOADeg    float64   `json:"aoa_deg"`
	From      float64   `json:"from"`
	To        float64   `json:"to"`
	Points    int       `json:"points"`
}

// SaveSweep writes the sweep under a timestamped directory and returns the
// sweep ID.
func (s *Store) SaveSweep(rocketName string, aoaDeg float64, points []SweepPoint) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("empty sweep")
	}

	id := fmt.Sprintf("%s_%d", rocketName, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SweepMetadata{
		ID:        id,
		Rocket:    rocketName,
		Timestamp: time.Now(),
		AOADeg:    aoaDeg,
		From:      points[0].Mach,
		To:        points[len(points)-1].Mach,
		Points:    len(points),
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, "metadata.json"), metaData, 0644); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(dir, "sweep.csv"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"mach", "friction_cd", "pressure_cd", "base_cd", "cd", "caxial"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			fmtFloat(p.Mach),
			fmtFloat(p.FrictionCD),
			fmtFloat(p.PressureCD),
			fmtFloat(p.BaseCD),
			fmtFloat(p.CD),
			fmtFloat(p.Caxial),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return id, nil
}

// LoadMetadata reads the metadata of a saved sweep.
func (s *Store) LoadMetadata(id string) (*SweepMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	meta := &SweepMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// List returns the IDs of every saved sweep, newest last.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}
