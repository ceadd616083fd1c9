package texture

import (
	"errors"
	"io/fs"
	"os"

	"bve-compiler/internal/diag"
)

// Check loads every texture in paths and reports the ones that are missing
// or cannot be decoded against file. It returns the number of problems
// found.
func Check(paths []string, index *Index, errs diag.MultiError, file string) int {
	bad := 0
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) && index != nil {
			if found, ok := index.ResolvePath(p); ok {
				p = found
			}
		}
		if !Supported(p) {
			errs.Addf(file, 0, "Texture %s has an unsupported format", p)
			bad++
			continue
		}
		if _, err := Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				errs.Addf(file, 0, "Texture %s could not be found", p)
			} else {
				errs.Addf(file, 0, "Texture %s could not be loaded: %v", p, err)
			}
			bad++
		}
	}
	return bad
}
