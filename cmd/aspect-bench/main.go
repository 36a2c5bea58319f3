package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	aspect "github.com/aspectlab/go-aspect"
	"github.com/aspectlab/go-aspect/internal/bench"
)

func main() {
	_ = godotenv.Load()

	var (
		modelPath  = flag.String("model", os.Getenv("ASPECT_MODEL"), "Path to ONNX scorer model (required)")
		corpusPath = flag.String("corpus", os.Getenv("ASPECT_CORPUS"), "Path to annotated corpus (.jsonl or .parquet)")
		threshold  = flag.Float64("threshold", 0.5, "Split probability threshold")
		poolSize   = flag.Int("pool", 0, "ONNX session pool size (0 = runtime.NumCPU())")
		sweep      = flag.Bool("sweep", false, "Run threshold sweep")
		sweepMin   = flag.Float64("sweep-min", 0.30, "Sweep minimum threshold")
		sweepMax   = flag.Float64("sweep-max", 0.80, "Sweep maximum threshold")
		sweepStep  = flag.Float64("sweep-step", 0.05, "Sweep step size")
		models     = flag.String("models", "", "Comma-separated model paths for comparison")
		out        = flag.String("out", "", "Write the run report to this JSON file")
	)
	flag.Parse()

	if *modelPath == "" && *models == "" {
		fmt.Fprintln(os.Stderr, "error: -model or -models required")
		flag.Usage()
		os.Exit(1)
	}
	if *corpusPath == "" {
		fmt.Fprintln(os.Stderr, "error: -corpus required")
		flag.Usage()
		os.Exit(1)
	}

	samples, err := bench.LoadCorpus(*corpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d samples from %s\n\n", len(samples), *corpusPath)

	ctx := context.Background()

	if *models != "" {
		runModelComparison(ctx, strings.Split(*models, ","), samples, *sweep,
			float32(*sweepMin), float32(*sweepMax), float32(*sweepStep), float32(*threshold), *poolSize)
	} else if *sweep {
		runSweep(ctx, *modelPath, samples,
			float32(*sweepMin), float32(*sweepMax), float32(*sweepStep), *poolSize, *out)
	} else {
		runSingle(ctx, *modelPath, samples, float32(*threshold), *poolSize, *out)
	}
}

func runSingle(ctx context.Context, modelPath string, samples []aspect.Sample, threshold float32, poolSize int, out string) {
	ex, err := aspect.New(modelPath,
		aspect.WithThreshold(threshold),
		aspect.WithPoolSize(poolSize),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating extractor: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = ex.Close() }()

	res, err := bench.Evaluate(ctx, ex, samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error evaluating corpus: %v\n", err)
		os.Exit(1)
	}

	printResult(res)
	saveReport(out, modelPath, threshold, res)
}

func runSweep(ctx context.Context, modelPath string, samples []aspect.Sample, min, max, step float32, poolSize int, out string) {
	thresholds := bench.SweepThresholds(min, max, step)

	fmt.Println("Threshold Sweep Results")
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-8s %-10s %-10s %-10s\n", "Thresh", "Coverage", "Correct", "Predicted")

	results, err := bench.Sweep(ctx, samples, modelPath, thresholds, poolSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error during sweep: %v\n", err)
		os.Exit(1)
	}

	// Print sorted by threshold for readability
	for _, t := range thresholds {
		for _, r := range results {
			if r.Threshold == t {
				fmt.Printf("%-8.2f %-10.4f %-10d %-10d\n",
					r.Threshold, r.Result.Ratio, r.Result.Correct, r.Result.Predicted)
				break
			}
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	if len(results) > 0 {
		best := results[0]
		fmt.Printf("Optimal: %.2f (Coverage: %.4f)\n", best.Threshold, best.Result.Ratio)
		saveReport(out, modelPath, best.Threshold, best.Result)
	}
}

func runModelComparison(ctx context.Context, modelPaths []string, samples []aspect.Sample, sweep bool, min, max, step, threshold float32, poolSize int) {
	fmt.Println("Model Comparison")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("%-30s %-8s %-10s\n", "Model", "Thresh", "Coverage")

	for _, modelPath := range modelPaths {
		modelPath = strings.TrimSpace(modelPath)
		var bestThreshold float32
		var best bench.Result

		if sweep {
			thresholds := bench.SweepThresholds(min, max, step)
			results, err := bench.Sweep(ctx, samples, modelPath, thresholds, poolSize)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error with %s: %v\n", modelPath, err)
				continue
			}
			if len(results) > 0 {
				bestThreshold = results[0].Threshold
				best = results[0].Result
			}
		} else {
			ex, err := aspect.New(modelPath,
				aspect.WithThreshold(threshold),
				aspect.WithPoolSize(poolSize),
			)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error with %s: %v\n", modelPath, err)
				continue
			}
			res, err := bench.Evaluate(ctx, ex, samples)
			_ = ex.Close()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error with %s: %v\n", modelPath, err)
				continue
			}
			bestThreshold = threshold
			best = res
		}

		fmt.Printf("%-30s %-8.2f %-10.4f\n", modelPath, bestThreshold, best.Ratio)
	}
}

func printResult(res bench.Result) {
	fmt.Printf("Coverage: %.4f (%d/%d correct, %d predicted)\n",
		res.Ratio, res.Correct, res.References, res.Predicted)
	fmt.Printf("Samples: %d  Elapsed: %v\n", res.Samples, res.Elapsed)
}

func saveReport(path, model string, threshold float32, res bench.Result) {
	if path == "" {
		return
	}
	report := bench.NewReport(model, threshold, res)
	if err := report.Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report %s written to %s\n", report.RunID, path)
}
