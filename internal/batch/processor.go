// Package batch compiles many independent route or object files on a pool
// of workers. Each compile owns all of its state.
package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/dump"
	"bve-compiler/internal/log"
	"bve-compiler/internal/object"
	"bve-compiler/internal/route"
	"bve-compiler/internal/route/scene"
)

// Kind is what a job compiles.
type Kind int

const (
	KindRoute Kind = iota
	KindObject
)

func (k Kind) String() string {
	if k == KindObject {
		return "object"
	}
	return "route"
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

type Job struct {
	Path string
	Kind Kind
}

// Jobs makes one job of kind per path.
func Jobs(kind Kind, paths ...string) []Job {
	jobs := make([]Job, len(paths))
	for i, p := range paths {
		jobs[i] = Job{Path: p, Kind: kind}
	}
	return jobs
}

// Config holds the shared settings of a batch run.
type Config struct {
	Workers          int
	ProgressInterval time.Duration
	// OutputDir receives one dump per successful compile; empty disables
	// dumps.
	OutputDir string
	Compress  bool
	Seed      int64
	// ForceRW compiles every route as RW instead of choosing by extension.
	ForceRW bool
}

// Result is the outcome of one job. Diags holds the diagnostics themselves;
// Diagnostics is their count.
type Result struct {
	Path        string          `json:"path"`
	Kind        Kind            `json:"kind"`
	Success     bool            `json:"success"`
	Error       string          `json:"error,omitempty"`
	Diagnostics int             `json:"diagnostics"`
	Objects     int             `json:"objects,omitempty"`
	Meshes      int             `json:"meshes,omitempty"`
	Duration    time.Duration   `json:"duration"`
	Dump        string          `json:"dump,omitempty"`
	Diags       diag.MultiError `json:"-"`
}

// Run processes all jobs using a worker pool. Results are in job order.
// Jobs not started before ctx is cancelled fail with the context error.
func Run(ctx context.Context, cfg Config, jobs []Job) []Result {
	lg := log.WithComponent("batch")
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64
	workers := max(cfg.Workers, 1)
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	start := time.Now()
	lg.Info("batch start", slog.Int("jobs", total), slog.Int("workers", workers))

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					lg.Info("progress", slog.Int64("done", p), slog.Int("total", total), slog.Float64("files_per_sec", rate))
				}
			}
		}
	}()

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				if err := ctx.Err(); err != nil {
					results[idx] = failed(jobs[idx], err.Error())
				} else {
					results[idx] = processJob(cfg, jobs[idx])
				}
				processed.Add(1)
			}
		}()
	}

send:
	for i := range jobs {
		select {
		case jobChan <- i:
		case <-ctx.Done():
			for j := i; j < total; j++ {
				results[j] = failed(jobs[j], ctx.Err().Error())
			}
			break send
		}
	}
	close(jobChan)

	wg.Wait()
	close(done)

	nFailed := 0
	for _, r := range results {
		if !r.Success {
			nFailed++
		}
	}
	lg.Info("batch done", slog.Int("jobs", total), slog.Int("failed", nFailed), slog.Duration("took", time.Since(start)))
	return results
}

func failed(job Job, msg string) Result {
	return Result{Path: job.Path, Kind: job.Kind, Error: msg}
}

func processJob(cfg Config, job Job) Result {
	start := time.Now()
	var (
		compiled any
		errs     diag.MultiError
		err      error
		res      = Result{Path: job.Path, Kind: job.Kind}
	)
	switch job.Kind {
	case KindObject:
		var obj *object.Object
		obj, errs, err = object.Compile(job.Path, object.FileTypeFor(job.Path), nil)
		if obj != nil {
			res.Meshes = len(obj.Meshes)
			compiled = obj
		}
	default:
		var r *scene.Route
		ft := route.FileTypeFor(job.Path)
		if cfg.ForceRW {
			ft = route.RW
		}
		r, errs, err = route.Compile(job.Path, route.Options{FileType: ft, Seed: cfg.Seed})
		if r != nil {
			res.Objects = len(r.Objects)
			compiled = r
		}
	}
	res.Diags = errs
	res.Diagnostics = errs.Len()
	if err != nil {
		res.Error = err.Error()
		res.Duration = time.Since(start)
		return res
	}

	if cfg.OutputDir != "" {
		res.Dump = filepath.Join(cfg.OutputDir, DumpName(job.Path, cfg.Compress))
		if err := dump.Write(res.Dump, compiled, cfg.Compress); err != nil {
			res.Error = err.Error()
			res.Dump = ""
			res.Duration = time.Since(start)
			return res
		}
	}
	res.Success = true
	res.Duration = time.Since(start)
	return res
}

// DumpName is the dump filename for a source file: its base name plus
// ".json", or ".json.zst" when compressed.
func DumpName(path string, compress bool) string {
	name := filepath.Base(path) + ".json"
	if compress {
		name += ".zst"
	}
	return name
}
