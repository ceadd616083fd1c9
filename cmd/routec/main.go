// Command routec compiles CSV and RW routes, prints their diagnostics and
// writes scene dumps plus a manifest.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"bve-compiler/internal/batch"
	"bve-compiler/internal/config"
	"bve-compiler/internal/log"
	"bve-compiler/internal/report"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	outputDir := flag.String("out", "", "Output directory for dumps and the manifest (default: out)")
	reportDB := flag.String("report", "", "SQLite file to record the run in")
	strict := flag.Bool("strict", false, "Exit non-zero when any diagnostic is raised")
	seed := flag.Int64("seed", 0, "Random seed for $Rnd and weighted includes (0: clock)")
	rw := flag.Bool("rw", false, "Compile every file as RW regardless of extension")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: routec [flags] route.csv|route.rw ...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{
		Workers:   *workers,
		OutputDir: *outputDir,
		Report:    *reportDB,
		Strict:    *strict,
		Seed:      *seed,
	})
	log.Init(cfg.Log)

	paths := flag.Args()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Routes: %d, Workers: %d\n", len(paths), cfg.Batch.Workers)
	fmt.Printf("Output: %s\n", cfg.Output.Dir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(ctx, batch.Config{
		Workers:          cfg.Batch.Workers,
		ProgressInterval: cfg.Batch.ProgressInterval,
		OutputDir:        cfg.Output.Dir,
		Compress:         cfg.Output.Compress,
		Seed:             cfg.Compiler.Seed,
		ForceRW:          *rw,
	}, batch.Jobs(batch.KindRoute, paths...))

	success, failed, diagnostics := 0, 0, 0
	for _, r := range results {
		if r.Diagnostics > 0 {
			fmt.Printf("%s: %d diagnostic(s)\n", r.Path, r.Diagnostics)
			r.Diags.Print(os.Stdout)
		}
		diagnostics += r.Diagnostics
		if r.Success {
			success++
		} else {
			failed++
		}
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())
	fmt.Printf("Compiled: %d/%d, diagnostics: %d\n", success, len(results), diagnostics)
	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		for _, r := range results {
			if !r.Success {
				fmt.Printf("  %s: %s\n", r.Path, r.Error)
			}
		}
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	manifestPath := filepath.Join(cfg.Output.Dir, cfg.Output.Manifest)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if cfg.Output.Report != "" {
		if err := record(ctx, cfg.Output.Report, start, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Printf("Report: %s\n", cfg.Output.Report)
		}
	}

	if failed > 0 || (cfg.Compiler.Strict && diagnostics > 0) {
		os.Exit(1)
	}
}

func record(ctx context.Context, path string, start time.Time, results []batch.Result) error {
	store, err := report.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(ctx, start, results)
	return err
}
