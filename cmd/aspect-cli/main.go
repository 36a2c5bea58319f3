package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	aspect "github.com/aspectlab/go-aspect"
	"github.com/aspectlab/go-aspect/internal/bench"
)

func main() {
	_ = godotenv.Load()

	var (
		modelPath = flag.String("model", os.Getenv("ASPECT_MODEL"), "Path to ONNX scorer model")
		inputPath = flag.String("input", "", "Path to tokenized samples (.jsonl or .parquet)")
		threshold = flag.Float64("threshold", 0.5, "Split probability threshold")
		poolSize  = flag.Int("pool", 0, "ONNX session pool size (0 = runtime.NumCPU())")
		verbose   = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *modelPath == "" || *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: aspect-cli -model MODEL -input SAMPLES [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	opts := []aspect.Option{
		aspect.WithThreshold(float32(*threshold)),
		aspect.WithPoolSize(*poolSize),
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, aspect.WithLogger(logger))
	}

	samples, err := bench.LoadCorpus(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading samples: %v\n", err)
		os.Exit(1)
	}
	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no samples in input")
		os.Exit(1)
	}

	ex, err := aspect.New(*modelPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating extractor: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = ex.Close() }() // Cleanup error ignored in CLI

	results, err := ex.ExtractBatch(context.Background(), samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, spans := range results {
		fmt.Printf("%s (%d spans):\n", samples[i].ID, len(spans))
		for j, sp := range spans {
			fmt.Printf("  %d: %v\n", j+1, sp)
		}
	}
}
