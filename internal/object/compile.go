package object

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/log"
	"bve-compiler/internal/source"
)

// Parse compiles object text held in memory. Texture names are left as
// written; diagnostics are filed under file.
func Parse(contents string, ft FileType, errs diag.MultiError, file string) *Object {
	errs.Touch(file)
	return Build(Lex(contents, ft), errs, file)
}

// Compile reads and compiles an object file. Texture references are
// resolved relative to the object with resolve (source.DefaultResolver when
// nil) and collected in Object.Textures.
func Compile(filename string, ft FileType, resolve source.Resolver) (*Object, diag.MultiError, error) {
	lg := log.WithOperation(log.WithComponent("object"), "compile")
	start := time.Now()
	errs := diag.New()
	text, err := source.ReadFile(filename)
	if err != nil {
		lg.Error("compile failed", slog.String("file", filename), slog.Any("err", err))
		return nil, errs, fmt.Errorf("object: compile %s: %w", filename, err)
	}
	if resolve == nil {
		resolve = source.DefaultResolver
	}
	obj := Parse(text, ft, errs, filename)
	obj.Textures = obj.Textures[:0]
	for i := range obj.Meshes {
		t := &obj.Meshes[i].Texture
		for _, name := range []*string{&t.File, &t.Nighttime} {
			if *name == "" {
				continue
			}
			*name = resolve(filename, *name)
			obj.Textures = append(obj.Textures, *name)
		}
	}
	slices.Sort(obj.Textures)
	obj.Textures = slices.Compact(obj.Textures)

	lg.Info("compile done",
		slog.String("file", filename),
		slog.String("dialect", ft.String()),
		slog.Int("meshes", len(obj.Meshes)),
		slog.Int("textures", len(obj.Textures)),
		slog.Int("diagnostics", errs.Len()),
		slog.Duration("took", time.Since(start)),
	)
	return obj, errs, nil
}
