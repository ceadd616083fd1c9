// Package source reads route and object text files and resolves the files
// they reference.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode turns raw file bytes into text. A UTF-8 BOM is dropped, UTF-16 input
// with a BOM is transcoded, and CRLF line endings become LF.
func Decode(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
	if err != nil {
		return "", err
	}
	text := string(out)
	if strings.IndexByte(text, '\r') >= 0 {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return text, nil
}

// ReadFile loads path and decodes it with Decode.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("source: read %s: %w", path, err)
	}
	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("source: decode %s: %w", path, err)
	}
	return text, nil
}

// Resolver maps a filename referenced from issuer to the path to open.
type Resolver func(issuer, referenced string) string

// DefaultResolver resolves referenced relative to the directory of issuer.
// Backslashes are treated as separators, and when the exact path does not
// exist each component is matched case-insensitively against the directory
// listing. If nothing matches, the joined path is returned unchanged.
func DefaultResolver(issuer, referenced string) string {
	ref := strings.TrimSpace(strings.ReplaceAll(referenced, `\`, "/"))
	if ref == "" {
		return ""
	}
	var joined string
	if filepath.IsAbs(ref) {
		joined = filepath.Clean(ref)
	} else {
		joined = filepath.Join(filepath.Dir(issuer), filepath.FromSlash(ref))
	}
	if _, err := os.Stat(joined); err == nil {
		return joined
	}
	if found, ok := findFold(joined); ok {
		return found
	}
	return joined
}

// findFold walks path one component at a time, matching names without regard
// to case.
func findFold(path string) (string, bool) {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	cur := vol
	if strings.HasPrefix(rest, string(filepath.Separator)) {
		cur += string(filepath.Separator)
	} else {
		cur = "."
	}
	for _, part := range strings.Split(rest, string(filepath.Separator)) {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			cur = filepath.Join(cur, part)
			continue
		}
		next := filepath.Join(cur, part)
		if _, err := os.Stat(next); err == nil {
			cur = next
			continue
		}
		entries, err := os.ReadDir(cur)
		if err != nil {
			return "", false
		}
		matched := false
		for _, e := range entries {
			if strings.EqualFold(e.Name(), part) {
				cur = filepath.Join(cur, e.Name())
				matched = true
				break
			}
		}
		if !matched {
			return "", false
		}
	}
	return cur, true
}
