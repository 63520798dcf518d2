package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/nvail/veclab/internal/workload"
)

// ExportData is the full-trace JSON export shape.
type ExportData struct {
	Scenario  string           `json:"scenario"`
	Seed      int64            `json:"seed"`
	Steps     int              `json:"steps"`
	Reallocs  int              `json:"reallocs"`
	Rejected  int              `json:"rejected"`
	FinalSize int              `json:"final_size"`
	FinalCap  int              `json:"final_cap"`
	Final     string           `json:"final"`
	Trace     []workload.Point `json:"trace"`
}

// ExportJSON writes the complete run, trace included, to w.
func ExportJSON(w io.Writer, result *workload.Result) error {
	data := ExportData{
		Scenario:  result.Scenario,
		Seed:      result.Seed,
		Steps:     result.Steps,
		Reallocs:  result.Reallocs,
		Rejected:  result.Rejected,
		FinalSize: result.FinalSize,
		FinalCap:  result.FinalCap,
		Final:     result.Final,
		Trace:     result.Trace,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSONFile writes the run to path.
func ExportJSONFile(path string, result *workload.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSON(file, result)
}
