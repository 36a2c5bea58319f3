package bench

import (
	"context"
	"errors"
	"testing"

	aspect "github.com/aspectlab/go-aspect"
	"github.com/aspectlab/go-aspect/eval"
	"github.com/aspectlab/go-aspect/span"
)

// fakePredictor returns canned spans per sample ID.
type fakePredictor struct {
	spans map[string][]span.Span
	err   error
}

func (p *fakePredictor) Extract(_ context.Context, s aspect.Sample) ([]span.Span, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.spans[s.ID], nil
}

func TestEvaluate(t *testing.T) {
	samples := []aspect.Sample{
		{ID: "a", Reference: []span.Span{{Start: 0, End: 2}, {Start: 3, End: 4}}},
		{ID: "b", Reference: []span.Span{{Start: 0, End: 1}}},
	}
	p := &fakePredictor{spans: map[string][]span.Span{
		"a": {{Start: 0, End: 2}, {Start: 3, End: 4}},
		"b": {{Start: 0, End: 2}},
	}}

	res, err := Evaluate(context.Background(), p, samples)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	if res.Samples != 2 {
		t.Errorf("Samples = %d, want 2", res.Samples)
	}
	if res.Correct != 2 {
		t.Errorf("Correct = %d, want 2", res.Correct)
	}
	if res.References != 3 {
		t.Errorf("References = %d, want 3", res.References)
	}
	if res.Predicted != 3 {
		t.Errorf("Predicted = %d, want 3", res.Predicted)
	}

	want := 2.0 / 3.0
	if res.Ratio < want-1e-9 || res.Ratio > want+1e-9 {
		t.Errorf("Ratio = %v, want %v", res.Ratio, want)
	}
}

func TestEvaluate_NoReferences(t *testing.T) {
	samples := []aspect.Sample{{ID: "a"}}
	p := &fakePredictor{spans: map[string][]span.Span{
		"a": {{Start: 0, End: 1}},
	}}

	_, err := Evaluate(context.Background(), p, samples)
	if err == nil {
		t.Fatal("expected error for corpus without reference spans")
	}
	if !errors.Is(err, eval.ErrDivisionUndefined) {
		t.Errorf("expected eval.ErrDivisionUndefined, got: %v", err)
	}
}

func TestEvaluate_PredictorError(t *testing.T) {
	sentinel := errors.New("scorer exploded")
	samples := []aspect.Sample{{ID: "a", Reference: []span.Span{{Start: 0, End: 1}}}}
	p := &fakePredictor{err: sentinel}

	_, err := Evaluate(context.Background(), p, samples)
	if err == nil {
		t.Fatal("expected error from failing predictor")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped predictor error, got: %v", err)
	}
}

func TestEvaluate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	samples := []aspect.Sample{{ID: "a", Reference: []span.Span{{Start: 0, End: 1}}}}
	p := &fakePredictor{}

	_, err := Evaluate(ctx, p, samples)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestEvaluate_Empty(t *testing.T) {
	p := &fakePredictor{}

	_, err := Evaluate(context.Background(), p, nil)
	if !errors.Is(err, eval.ErrDivisionUndefined) {
		t.Errorf("expected eval.ErrDivisionUndefined for empty corpus, got: %v", err)
	}
}
