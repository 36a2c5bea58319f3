// Package aggregate folds per-token embeddings into per-span embeddings.
//
// Given an [L x D] token embedding matrix and K spans, an Aggregator
// produces a [K x D'] matrix whose row j summarizes the token vectors
// covered by span j. Mean pools by arithmetic mean; Sequential folds each
// span through a caller-supplied recurrent step, for summarizers learned
// outside this module.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/aspectlab/go-aspect/span"
)

// ErrEmptySpan indicates a span whose token range falls outside the
// embedding matrix. Out-of-range spans are rejected, never clamped.
var ErrEmptySpan = errors.New("aggregate: span outside embedding bounds")

// Aggregator reduces the token vectors covered by each span to one vector
// per span.
type Aggregator interface {
	// Aggregate returns one row per span, row j summarizing embedding rows
	// spans[j].Start through spans[j].End inclusive.
	Aggregate(embeddings [][]float32, spans []span.Span) ([][]float32, error)
}

// Mean pools each span by per-dimension arithmetic mean.
type Mean struct{}

// Aggregate implements Aggregator.
func (Mean) Aggregate(embeddings [][]float32, spans []span.Span) ([][]float32, error) {
	out := make([][]float32, len(spans))
	for j, sp := range spans {
		if err := checkBounds(sp, len(embeddings)); err != nil {
			return nil, err
		}

		dim := len(embeddings[sp.Start])
		row := make([]float32, dim)
		for t := sp.Start; t <= sp.End; t++ {
			if len(embeddings[t]) != dim {
				return nil, fmt.Errorf("%w: embedding row %d has %d dimensions, row %d has %d",
					span.ErrInvalidInput, t, len(embeddings[t]), sp.Start, dim)
			}
			for k, v := range embeddings[t] {
				row[k] += v
			}
		}

		n := float32(sp.Len())
		for k := range row {
			row[k] /= n
		}
		out[j] = row
	}
	return out, nil
}

// StepFunc advances a recurrent summarizer by one token: it consumes the
// previous state and the token's embedding and returns the next state.
// Implementations come from the caller, typically closing over the weights
// of a trained cell.
type StepFunc func(state, input []float32) []float32

// Sequential folds each span's token vectors through Step in token order,
// starting from a zero state of StateSize dimensions. The final state is
// the span's row.
type Sequential struct {
	Step      StepFunc
	StateSize int
}

// Aggregate implements Aggregator.
func (s Sequential) Aggregate(embeddings [][]float32, spans []span.Span) ([][]float32, error) {
	if s.Step == nil {
		return nil, fmt.Errorf("%w: nil step function", span.ErrInvalidInput)
	}
	if s.StateSize < 1 {
		return nil, fmt.Errorf("%w: state size %d", span.ErrInvalidInput, s.StateSize)
	}

	out := make([][]float32, len(spans))
	for j, sp := range spans {
		if err := checkBounds(sp, len(embeddings)); err != nil {
			return nil, err
		}

		state := make([]float32, s.StateSize)
		for t := sp.Start; t <= sp.End; t++ {
			state = s.Step(state, embeddings[t])
		}
		out[j] = state
	}
	return out, nil
}

func checkBounds(sp span.Span, rows int) error {
	if sp.Start < 0 || sp.Start > sp.End || sp.End >= rows {
		return fmt.Errorf("%w: span %v over %d embedding rows", ErrEmptySpan, sp, rows)
	}
	return nil
}
