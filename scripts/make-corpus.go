//go:build ignore

// Generate a synthetic annotated corpus for benchmarking span extraction.
// Reference spans are built with the same boundary rules the decoder uses,
// so a perfect scorer reaches full coverage.
// Usage: go run ./scripts/make-corpus.go
package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/aspectlab/go-aspect/span"
)

const (
	sampleCount = 200
	clsToken    = 101
	sepToken    = 102
	padToken    = 0
)

type spanRow struct {
	Start int `json:"start" parquet:"start"`
	End   int `json:"end" parquet:"end"`
}

type sampleRow struct {
	ID            string    `json:"id" parquet:"id"`
	Tokens        []int64   `json:"tokens" parquet:"tokens"`
	AttentionMask []int64   `json:"attention_mask" parquet:"attention_mask"`
	WordStarts    []bool    `json:"word_starts" parquet:"word_starts"`
	Length        int       `json:"length" parquet:"length"`
	Offset        int       `json:"offset" parquet:"offset"`
	Spans         []spanRow `json:"spans" parquet:"spans"`
}

func main() {
	outDir := "testdata"
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(42))

	fmt.Printf("Generating %d samples...\n", sampleCount)
	rows := make([]sampleRow, 0, sampleCount)
	for i := 0; i < sampleCount; i++ {
		rows = append(rows, makeSample(rng, fmt.Sprintf("synth-%04d", i)))
	}

	jsonlPath := filepath.Join(outDir, "corpus.jsonl")
	if err := writeJSONL(jsonlPath, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", jsonlPath, err)
		os.Exit(1)
	}
	fmt.Printf("  -> %s (%d samples)\n", jsonlPath, len(rows))

	parquetPath := filepath.Join(outDir, "corpus.parquet")
	if err := parquet.WriteFile(parquetPath, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", parquetPath, err)
		os.Exit(1)
	}
	fmt.Printf("  -> %s (%d samples)\n", parquetPath, len(rows))

	fmt.Println("\nDone! Corpus files created in testdata/")
}

// makeSample builds one padded sample: an optional leading reserved token,
// a handful of multi-token words, and a trailing separator.
func makeSample(rng *rand.Rand, id string) sampleRow {
	offset := rng.Intn(2) // 0 or 1 reserved lead tokens

	var (
		tokens []int64
		starts []bool
	)
	if offset == 1 {
		tokens = append(tokens, clsToken)
		starts = append(starts, true)
	}

	words := 1 + rng.Intn(8)
	wordStarts := make([]int, 0, words)
	for w := 0; w < words; w++ {
		wordStarts = append(wordStarts, len(tokens))
		pieces := 1 + rng.Intn(3)
		for p := 0; p < pieces; p++ {
			tokens = append(tokens, int64(1000+rng.Intn(29000)))
			starts = append(starts, p == 0)
		}
	}

	sepAt := len(tokens)
	tokens = append(tokens, sepToken)
	starts = append(starts, true)
	length := len(tokens)

	mask := make([]int64, length, length+4)
	for i := range mask {
		mask[i] = 1
	}
	for pad := rng.Intn(5); pad > 0; pad-- {
		tokens = append(tokens, padToken)
		starts = append(starts, false)
		mask = append(mask, 0)
	}

	// Boundary positions mirror the decode rules: left anchor at the
	// offset, one boundary per word start after it, right sentinel at
	// the content length.
	bounds := []int{offset}
	for _, p := range wordStarts {
		if p > offset {
			bounds = append(bounds, p)
		}
	}
	bounds = append(bounds, sepAt, length)

	var refs []spanRow
	for _, sp := range span.Build(bounds) {
		refs = append(refs, spanRow{Start: sp.Start, End: sp.End})
	}

	return sampleRow{
		ID:            id,
		Tokens:        tokens,
		AttentionMask: mask,
		WordStarts:    starts,
		Length:        length,
		Offset:        offset,
		Spans:         refs,
	}
}

func writeJSONL(path string, rows []sampleRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("encoding %s: %w", row.ID, err)
		}
	}
	return nil
}
