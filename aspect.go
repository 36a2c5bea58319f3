package aspect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/aspectlab/go-aspect/inference"
	"github.com/aspectlab/go-aspect/span"
)

// Sample is one tokenized input, as prepared by the caller's tokenization
// pipeline.
type Sample struct {
	// ID identifies the sample in corpora and logs.
	ID string

	// Tokens and AttentionMask cover the full padded sequence fed to the
	// scorer.
	Tokens        []int64
	AttentionMask []int64

	// WordStarts is true at the first sub-token of every word. Its first
	// element must be true; splits may only occur at word starts.
	WordStarts []bool

	// Length is the encoded content length, special tokens included.
	// Positions from Length on are padding.
	Length int

	// Offset counts the leading reserved tokens before content starts.
	Offset int

	// Reference holds ground-truth spans for annotated corpora.
	// Extraction ignores it; evaluation consumes it.
	Reference []span.Span
}

// Extractor predicts aspect/opinion spans from per-token split scores
// produced by an ONNX scorer model. It is safe for concurrent use.
type Extractor struct {
	pool    *inference.Pool
	decoder *span.Decoder
	logger  *slog.Logger
}

// New creates an Extractor backed by the ONNX scorer at modelPath.
func New(modelPath string, opts ...Option) (*Extractor, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Check model file exists
	if _, err := os.Stat(modelPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, modelPath)
		}
		return nil, fmt.Errorf("checking model file: %w", err)
	}

	// Create session pool
	pool, err := inference.NewPool(modelPath, cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModel, err)
	}

	return &Extractor{
		pool:    pool,
		decoder: span.NewDecoder(span.DecoderConfig{Threshold: cfg.threshold}),
		logger:  cfg.logger,
	}, nil
}

// Threshold returns the split probability threshold in effect.
func (e *Extractor) Threshold() float32 {
	return e.decoder.Threshold()
}

// Extract predicts the spans of one sample.
func (e *Extractor) Extract(ctx context.Context, s Sample) ([]span.Span, error) {
	scores, err := e.score(ctx, s)
	if err != nil {
		return nil, err
	}

	spans, err := e.decoder.Decode(scores, s.WordStarts, s.Length, s.Offset)
	if err != nil {
		return nil, fmt.Errorf("decoding sample %q: %w", s.ID, err)
	}

	e.logger.Debug("extracted spans", "sample", s.ID, "count", len(spans))
	return spans, nil
}

// ExtractBatch predicts spans for every sample, fanning out across the
// session pool. Results align with samples by index. The first error
// cancels the remaining work.
func (e *Extractor) ExtractBatch(ctx context.Context, samples []Sample) ([][]span.Span, error) {
	if len(samples) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := e.pool.Size()
	if workers > len(samples) {
		workers = len(samples)
	}

	results := make([][]span.Span, len(samples))
	indexes := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				spans, err := e.Extract(ctx, samples[i])
				if err != nil {
					errOnce.Do(func() { firstErr = err })
					cancel()
					continue
				}
				results[i] = spans
			}
		}()
	}

feed:
	for i := range samples {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// The feed loop may have stopped on parent cancellation before any
	// worker saw an error.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.Debug("extracted batch", "samples", len(samples), "workers", workers)
	return results, nil
}

// score runs the scorer over the sample's full padded sequence and
// normalizes each logit pair with a two-class softmax. Exported models
// emit raw logits; the decode threshold expects probabilities.
func (e *Extractor) score(ctx context.Context, s Sample) ([][2]float32, error) {
	logits, err := e.pool.Scores(ctx, s.Tokens, s.AttentionMask)
	if err != nil {
		return nil, fmt.Errorf("scoring sample %q: %w", s.ID, err)
	}

	probs := make([][2]float32, len(logits))
	for i, pair := range logits {
		probs[i] = softmax2(pair)
	}
	return probs, nil
}

// Close releases the session pool.
func (e *Extractor) Close() error {
	if e.pool != nil {
		return e.pool.Close()
	}
	return nil
}

// softmax2 normalizes one (not-split, split) logit pair to probabilities.
func softmax2(pair [2]float32) [2]float32 {
	// Shift by the max to keep the exponentials bounded.
	m := pair[0]
	if pair[1] > m {
		m = pair[1]
	}
	e0 := math.Exp(float64(pair[0] - m))
	e1 := math.Exp(float64(pair[1] - m))
	sum := e0 + e1
	return [2]float32{float32(e0 / sum), float32(e1 / sum)}
}
