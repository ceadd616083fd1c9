package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one compiled file in the output manifest.
type ManifestEntry struct {
	Path        string `json:"path"`
	Kind        Kind   `json:"kind"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	Diagnostics int    `json:"diagnostics"`
	Objects     int    `json:"objects,omitempty"`
	Meshes      int    `json:"meshes,omitempty"`
	DurationMS  int64  `json:"duration_ms"`
	Dump        string `json:"dump,omitempty"`
}

// WriteManifest writes the results as indented JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Path:        r.Path,
			Kind:        r.Kind,
			Success:     r.Success,
			Error:       r.Error,
			Diagnostics: r.Diagnostics,
			Objects:     r.Objects,
			Meshes:      r.Meshes,
			DurationMS:  r.Duration.Milliseconds(),
			Dump:        r.Dump,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("batch: write manifest %s: %w", path, err)
	}
	return nil
}
