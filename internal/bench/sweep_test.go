package bench

import (
	"context"
	"errors"
	"testing"

	aspect "github.com/aspectlab/go-aspect"
)

func TestSweepThresholds(t *testing.T) {
	thresholds := SweepThresholds(0.3, 0.8, 0.1)

	want := []float32{0.3, 0.4, 0.5, 0.6, 0.7}
	if len(thresholds) != len(want) {
		t.Errorf("got %d thresholds, want %d", len(thresholds), len(want))
		t.Logf("got: %v", thresholds)
		return
	}

	for i := range want {
		diff := thresholds[i] - want[i]
		if diff < -0.001 || diff > 0.001 {
			t.Errorf("threshold[%d] = %v, want %v", i, thresholds[i], want[i])
		}
	}
}

func TestSweep_ModelNotFound(t *testing.T) {
	samples := []aspect.Sample{{ID: "a"}}

	_, err := Sweep(context.Background(), samples, "nonexistent/scorer.onnx", []float32{0.5}, 1)
	if err == nil {
		t.Fatal("expected error for nonexistent model")
	}
	if !errors.Is(err, aspect.ErrModelNotFound) {
		t.Errorf("expected aspect.ErrModelNotFound, got: %v", err)
	}
}
