package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/nvail/veclab/internal/workload"
)

// Store persists workload runs under a base directory, one directory per
// run holding metadata.json and trace.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Scenario  string    `json:"scenario"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Steps     int       `json:"steps"`
	Reallocs  int       `json:"reallocs"`
	Rejected  int       `json:"rejected"`
	FinalSize int       `json:"final_size"`
	FinalCap  int       `json:"final_cap"`
	Final     string    `json:"final"`
}

// Save writes one run and returns its id.
func (s *Store) Save(result *workload.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", result.Scenario, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  result.Scenario,
		Timestamp: time.Now(),
		Seed:      result.Seed,
		Steps:     result.Steps,
		Reallocs:  result.Reallocs,
		Rejected:  result.Rejected,
		FinalSize: result.FinalSize,
		FinalCap:  result.FinalCap,
		Final:     result.Final,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	encoder := json.NewEncoder(metaFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meta); err != nil {
		return "", err
	}

	if err := writeTrace(filepath.Join(runDir, "trace.csv"), result.Trace); err != nil {
		return "", err
	}

	return runID, nil
}

func writeTrace(path string, trace []workload.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"step", "op", "size", "cap"}); err != nil {
		return err
	}
	for _, p := range trace {
		row := []string{
			strconv.Itoa(p.Step),
			string(p.Op),
			strconv.Itoa(p.Size),
			strconv.Itoa(p.Cap),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for all saved runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMeta(e.Name())
		if err != nil {
			continue // skip damaged run dirs
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadMeta reads one run's metadata.
func (s *Store) LoadMeta(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, err
	}
	return meta, nil
}

// LoadTrace reads one run's recorded trace back.
func (s *Store) LoadTrace(runID string) ([]workload.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	trace := make([]workload.Point, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 4 {
			return nil, fmt.Errorf("store: malformed trace row %v", row)
		}
		step, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		size, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, err
		}
		capacity, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, err
		}
		trace = append(trace, workload.Point{
			Step: step,
			Op:   workload.OpKind(row[1]),
			Size: size,
			Cap:  capacity,
		})
	}
	return trace, nil
}
