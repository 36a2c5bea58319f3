package bench

import (
	"context"
	"fmt"
	"time"

	aspect "github.com/aspectlab/go-aspect"
	"github.com/aspectlab/go-aspect/eval"
	"github.com/aspectlab/go-aspect/span"
)

// Predictor produces spans for one sample.
type Predictor interface {
	Extract(ctx context.Context, s aspect.Sample) ([]span.Span, error)
}

// Result holds aggregate coverage over one corpus run.
type Result struct {
	Samples    int
	Correct    int
	References int
	Predicted  int
	Ratio      float64
	Elapsed    time.Duration
}

// Evaluate runs the predictor over every sample and accumulates exact-match
// coverage against the reference spans. The ratio is undefined when the
// corpus carries no reference spans; eval.ErrDivisionUndefined propagates.
func Evaluate(ctx context.Context, p Predictor, samples []aspect.Sample) (Result, error) {
	var cov eval.Coverage
	start := time.Now()

	for i, s := range samples {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		predicted, err := p.Extract(ctx, s)
		if err != nil {
			return Result{}, fmt.Errorf("sample %d (%q): %w", i, s.ID, err)
		}
		cov.Observe(predicted, s.Reference)
	}

	ratio, err := cov.Ratio()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Samples:    len(samples),
		Correct:    cov.Correct(),
		References: cov.References(),
		Predicted:  cov.Predicted(),
		Ratio:      ratio,
		Elapsed:    time.Since(start),
	}, nil
}
