// Package dump writes compiled routes and objects to disk as JSON, optionally
// zstd-compressed, and reads them back.
//
// A dump is a header line followed by the body:
//
//	{"kind":"route","version":1}
//	{...compiled scene...}
package dump

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"bve-compiler/internal/log"
	"bve-compiler/internal/object"
	"bve-compiler/internal/route/scene"
)

const Version = 1

// Kinds of dumped values.
const (
	KindRoute  = "route"
	KindObject = "object"
)

type Header struct {
	Kind    string `json:"kind"`
	Version int    `json:"version"`
}

// Dump is a dump read back from disk. Body is the undecoded JSON payload.
type Dump struct {
	Header Header
	Body   json.RawMessage
}

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// KindOf names the dump kind of a compiled value.
func KindOf(v any) (string, error) {
	switch v.(type) {
	case *scene.Route:
		return KindRoute, nil
	case *object.Object:
		return KindObject, nil
	}
	return "", fmt.Errorf("dump: unsupported value %T", v)
}

// Write stores v at path. The file is zstd-compressed when compress is set
// or path ends in ".zst".
func Write(path string, v any, compress bool) (err error) {
	kind, err := KindOf(v)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dump: write %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dump: write %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dump: write %s: %w", path, cerr)
		}
	}()

	var w io.Writer = f
	var enc *zstd.Encoder
	if compress || strings.HasSuffix(path, ".zst") {
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("dump: write %s: %w", path, err)
		}
		w = enc
	}
	bw := bufio.NewWriterSize(w, 256*1024)

	hb, _ := json.Marshal(Header{Kind: kind, Version: Version})
	bw.Write(hb)
	bw.WriteByte('\n')
	if err := json.NewEncoder(bw).Encode(v); err != nil {
		return fmt.Errorf("dump: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dump: write %s: %w", path, err)
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			return fmt.Errorf("dump: write %s: %w", path, err)
		}
	}
	log.WithComponent("dump").Debug("dump written", slog.String("path", path), slog.String("kind", kind))
	return nil
}

// Read loads a dump written by Write. Compression is detected from the
// content.
func Read(path string) (*Dump, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dump: read %s: %w", path, err)
	}
	if bytes.HasPrefix(raw, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("dump: read %s: %w", path, err)
		}
		defer dec.Close()
		if raw, err = dec.DecodeAll(raw, nil); err != nil {
			return nil, fmt.Errorf("dump: decompress %s: %w", path, err)
		}
	}
	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("dump: read %s: %w", path, err)
	}
	return d, nil
}

// Parse splits uncompressed dump bytes into header and body.
func Parse(data []byte) (*Dump, error) {
	line, body, ok := bytes.Cut(data, []byte("\n"))
	if !ok {
		return nil, fmt.Errorf("missing header line")
	}
	var d Dump
	if err := json.Unmarshal(line, &d.Header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if d.Header.Version != Version {
		return nil, fmt.Errorf("unsupported dump version %d", d.Header.Version)
	}
	d.Body = json.RawMessage(bytes.TrimSpace(body))
	return &d, nil
}

// Route decodes the body of a route dump.
func (d *Dump) Route() (*scene.Route, error) {
	if d.Header.Kind != KindRoute {
		return nil, fmt.Errorf("dump: kind is %q, not %q", d.Header.Kind, KindRoute)
	}
	r := &scene.Route{}
	if err := json.Unmarshal(d.Body, r); err != nil {
		return nil, fmt.Errorf("dump: decode route: %w", err)
	}
	return r, nil
}

// Object decodes the body of an object dump.
func (d *Dump) Object() (*object.Object, error) {
	if d.Header.Kind != KindObject {
		return nil, fmt.Errorf("dump: kind is %q, not %q", d.Header.Kind, KindObject)
	}
	o := &object.Object{}
	if err := json.Unmarshal(d.Body, o); err != nil {
		return nil, fmt.Errorf("dump: decode object: %w", err)
	}
	return o, nil
}
