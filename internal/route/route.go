// Package route compiles a route file into a scene.Route by running the
// preprocessor and the three compiler passes in order.
package route

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/log"
	"bve-compiler/internal/preprocess"
	"bve-compiler/internal/route/exec"
	"bve-compiler/internal/route/generate"
	"bve-compiler/internal/route/geometry"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/source"
)

// FileType selects the route dialect.
type FileType = preprocess.FileType

const (
	CSV = preprocess.CSV
	RW  = preprocess.RW
)

// FileTypeFor picks the dialect from a file extension.
func FileTypeFor(path string) FileType {
	if strings.EqualFold(filepath.Ext(path), ".rw") {
		return RW
	}
	return CSV
}

// Options configures one compile. The zero value compiles CSV with the
// default resolver and a time-seeded random source.
type Options struct {
	FileType FileType
	Resolve  source.Resolver
	ReadFile func(path string) (string, error)
	// Seed drives $Rnd and weighted includes. Zero seeds from the clock.
	Seed int64
}

func (o Options) withDefaults() Options {
	if o.Resolve == nil {
		o.Resolve = source.DefaultResolver
	}
	if o.ReadFile == nil {
		o.ReadFile = source.ReadFile
	}
	return o
}

func (o Options) rng() *rand.Rand {
	seed := uint64(o.Seed)
	if o.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Instructions reads filename and returns its instruction list. With pass1
// set, positions are assigned and the list is sorted as the later passes
// expect it.
func Instructions(filename string, opts Options, pass1 bool) (*instr.List, diag.MultiError, error) {
	opts = opts.withDefaults()
	errs := diag.New()
	rng := opts.rng()
	lines, err := preprocess.ProcessIncludesWith(filename, rng, errs, opts.FileType, opts.Resolve, opts.ReadFile)
	if err != nil {
		return nil, errs, fmt.Errorf("route: compile %s: %w", filename, err)
	}
	lines = preprocess.Preprocess(lines, rng, errs, opts.FileType)
	list := generate.Generate(lines, errs, opts.FileType)
	if pass1 {
		generate.Pass1(list, errs)
	}
	return list, errs, nil
}

// Compile reads and compiles filename. User errors in the route are
// returned as diagnostics next to a best-effort scene; the error result is
// only set when the file itself cannot be read.
func Compile(filename string, opts Options) (*scene.Route, diag.MultiError, error) {
	lg := log.WithOperation(log.WithComponent("route"), "compile")
	start := time.Now()
	lg.Debug("compile start", slog.String("file", filename), slog.String("dialect", opts.FileType.String()))

	opts = opts.withDefaults()
	list, errs, err := Instructions(filename, opts, true)
	if err != nil {
		lg.Error("compile failed", slog.String("file", filename), slog.Any("err", err))
		return nil, errs, err
	}
	r := scene.New()
	geometry.Pass2(list, r)
	exec.Pass3(list, r, errs, exec.Options{Resolve: opts.Resolve, ReadFile: opts.ReadFile})

	lg.Info("compile done",
		slog.String("file", filename),
		slog.Int("instructions", len(list.Instructions)),
		slog.Int("objects", len(r.Objects)),
		slog.Int("stations", len(r.Stations)),
		slog.Int("diagnostics", errs.Len()),
		slog.Duration("took", time.Since(start)),
	)
	return r, errs, nil
}
