package bench

import (
	"context"
	"sort"

	aspect "github.com/aspectlab/go-aspect"
)

// SweepResult holds the evaluation outcome for one threshold value.
type SweepResult struct {
	Threshold float32
	Result    Result
}

// SweepThresholds generates threshold values from min to max with given step.
func SweepThresholds(min, max, step float32) []float32 {
	var thresholds []float32
	for t := min; t < max; t += step {
		thresholds = append(thresholds, t)
	}
	return thresholds
}

// Sweep evaluates the corpus at each threshold and returns results sorted
// by coverage ratio, best first. A poolSize of 0 keeps the default.
func Sweep(ctx context.Context, samples []aspect.Sample, modelPath string, thresholds []float32, poolSize int) ([]SweepResult, error) {
	var results []SweepResult

	for _, threshold := range thresholds {
		ex, err := aspect.New(modelPath,
			aspect.WithThreshold(threshold),
			aspect.WithPoolSize(poolSize),
		)
		if err != nil {
			return nil, err
		}

		res, err := Evaluate(ctx, ex, samples)
		_ = ex.Close()
		if err != nil {
			return nil, err
		}

		results = append(results, SweepResult{
			Threshold: threshold,
			Result:    res,
		})
	}

	// Sort by coverage ratio descending
	sort.Slice(results, func(i, j int) bool {
		return results[i].Result.Ratio > results[j].Result.Ratio
	})

	return results, nil
}
