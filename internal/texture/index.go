package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// extensions are the image formats Load understands.
var extensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".tga": true,
}

// Supported reports whether Load can decode files with path's extension.
func Supported(path string) bool {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Index maps lowercase base names (with extension) to paths. The first file
// found in lexical walk order wins.
type Index struct {
	entries map[string]string
}

// BuildIndex walks root and records every supported image file.
func BuildIndex(root string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !Supported(path) {
			return nil
		}
		key := strings.ToLower(d.Name())
		if _, ok := idx.entries[key]; !ok {
			idx.entries[key] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// ResolvePath returns the indexed path for a texture reference, which may
// carry a directory prefix with either separator.
func (idx *Index) ResolvePath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	path, ok := idx.entries[strings.ToLower(filepath.Base(name))]
	return path, ok
}

func (idx *Index) Len() int {
	return len(idx.entries)
}
