package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report records one benchmark run for later comparison.
type Report struct {
	RunID      string        `json:"run_id"`
	Model      string        `json:"model"`
	Threshold  float32       `json:"threshold"`
	Samples    int           `json:"samples"`
	Correct    int           `json:"correct"`
	References int           `json:"references"`
	Predicted  int           `json:"predicted"`
	Ratio      float64       `json:"ratio"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewReport combines run metadata with an evaluation result.
func NewReport(model string, threshold float32, res Result) Report {
	return Report{
		RunID:      newRunID(),
		Model:      model,
		Threshold:  threshold,
		Samples:    res.Samples,
		Correct:    res.Correct,
		References: res.References,
		Predicted:  res.Predicted,
		Ratio:      res.Ratio,
		Elapsed:    res.Elapsed,
		CreatedAt:  time.Now().UTC(),
	}
}

// Save writes the report as indented JSON.
func (r Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// newRunID returns a sortable run identifier: a UTC timestamp plus a
// short random suffix to disambiguate runs within the same second.
func newRunID() string {
	return fmt.Sprintf("run_%s_%s", time.Now().UTC().Format("20060102_150405"), uuid.New().String()[:8])
}
