// Package bench provides corpus loading and evaluation utilities for
// benchmarking span extraction.
package bench

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	aspect "github.com/aspectlab/go-aspect"
	"github.com/aspectlab/go-aspect/span"
)

// spanRow is the serialized form of one reference span.
type spanRow struct {
	Start int `json:"start" parquet:"start"`
	End   int `json:"end" parquet:"end"`
}

// sampleRow is the serialized form of one annotated sample. The same
// layout serves both the JSONL and Parquet corpus formats.
type sampleRow struct {
	ID            string    `json:"id" parquet:"id"`
	Tokens        []int64   `json:"tokens" parquet:"tokens"`
	AttentionMask []int64   `json:"attention_mask" parquet:"attention_mask"`
	WordStarts    []bool    `json:"word_starts" parquet:"word_starts"`
	Length        int       `json:"length" parquet:"length"`
	Offset        int       `json:"offset" parquet:"offset"`
	Spans         []spanRow `json:"spans" parquet:"spans"`
}

// LoadCorpus loads annotated samples from a corpus file, dispatching on
// the file extension: .jsonl and .json are decoded as one JSON object
// per line, .parquet as a Parquet row group.
func LoadCorpus(path string) ([]aspect.Sample, error) {
	var (
		rows []sampleRow
		err  error
	)

	switch ext := filepath.Ext(path); ext {
	case ".jsonl", ".json":
		rows, err = loadJSONL(path)
	case ".parquet":
		rows, err = parquet.ReadFile[sampleRow](path)
	default:
		return nil, fmt.Errorf("unsupported corpus format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading corpus %s: %w", path, err)
	}

	samples := make([]aspect.Sample, 0, len(rows))
	for i, row := range rows {
		if err := validateRow(row); err != nil {
			return nil, fmt.Errorf("sample %d (%q): %w", i, row.ID, err)
		}
		samples = append(samples, toSample(row))
	}
	return samples, nil
}

func loadJSONL(path string) ([]sampleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var rows []sampleRow
	dec := json.NewDecoder(f)
	for {
		var row sampleRow
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding sample %d: %w", len(rows), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// validateRow checks the structural invariants extraction relies on.
func validateRow(row sampleRow) error {
	switch {
	case row.Length < 1:
		return fmt.Errorf("content length %d, need at least 1", row.Length)
	case len(row.Tokens) < row.Length:
		return fmt.Errorf("%d tokens for content length %d", len(row.Tokens), row.Length)
	case len(row.AttentionMask) != len(row.Tokens):
		return fmt.Errorf("attention mask length %d, tokens length %d", len(row.AttentionMask), len(row.Tokens))
	case len(row.WordStarts) != len(row.Tokens):
		return fmt.Errorf("word-start mask length %d, tokens length %d", len(row.WordStarts), len(row.Tokens))
	case !row.WordStarts[0]:
		return errors.New("word-start mask must open with true")
	case row.Offset < 0 || row.Offset >= row.Length:
		return fmt.Errorf("offset %d outside [0, %d)", row.Offset, row.Length)
	}

	for _, sp := range row.Spans {
		if sp.Start < 0 || sp.Start > sp.End || sp.End >= row.Length {
			return fmt.Errorf("reference span (%d, %d) outside content length %d", sp.Start, sp.End, row.Length)
		}
	}
	return nil
}

func toSample(row sampleRow) aspect.Sample {
	s := aspect.Sample{
		ID:            row.ID,
		Tokens:        row.Tokens,
		AttentionMask: row.AttentionMask,
		WordStarts:    row.WordStarts,
		Length:        row.Length,
		Offset:        row.Offset,
	}
	for _, sp := range row.Spans {
		s.Reference = append(s.Reference, span.Span{Start: sp.Start, End: sp.End})
	}
	return s
}
