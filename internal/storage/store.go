// Package storage persists completed runs under a data directory:
// one directory per run holding metadata.json and counts.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/qsim/internal/sim"
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

// RunMetadata captures everything needed to reproduce a run.
type RunMetadata struct {
	ID        string        `json:"id"`
	Demo      string        `json:"demo"`
	Timestamp time.Time     `json:"timestamp"`
	Shots     int           `json:"shots"`
	Seed      int64         `json:"seed"`
	Workers   int           `json:"workers"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Outcomes  int           `json:"outcomes"`
}

// Save writes a run directory and returns its ID.
func (s *Store) Save(meta RunMetadata, hist sim.Histogram) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Demo, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Outcomes = len(hist)

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

	csvFile, err := os.Create(filepath.Join(runDir, "counts.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"bitstring", "count", "frequency"}); err != nil {
		return "", err
	}
	for _, key := range hist.Keys() {
		row := []string{
			key,
			strconv.Itoa(hist[key]),
			strconv.FormatFloat(hist.Frequency(key), 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for all stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadMetadata reads one run's metadata.json.
func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadCounts reads one run's histogram back from counts.csv.
func (s *Store) LoadCounts(runID string) (sim.Histogram, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "counts.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	hist := sim.Histogram{}
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		count, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("storage: bad count in %s row %d: %w", runID, i, err)
		}
		hist[row[0]] = count
	}
	return hist, nil
}

// ExportJSON writes a run's histogram as a JSON object to path.
func (s *Store) ExportJSON(runID, path string) error {
	hist, err := s.LoadCounts(runID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
