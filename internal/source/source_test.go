package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeStripsBOMAndCRLF(t *testing.T) {
	got, err := Decode([]byte("\xef\xbb\xbfTrack.Pitch 5\r\nTrack.Curve 100\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "Track.Pitch 5\nTrack.Curve 100\n" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	// BOM + "ab"
	got, err := Decode([]byte{0xff, 0xfe, 'a', 0, 'b', 0})
	if err != nil {
		t.Fatal(err)
	}
	if got != "ab" {
		t.Fatalf("Decode = %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultResolverCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Objects"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "Objects", "House.B3D")
	if err := os.WriteFile(want, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	issuer := filepath.Join(dir, "route.csv")

	if got := DefaultResolver(issuer, `objects\house.b3d`); got != want {
		t.Fatalf("resolved %q, want %q", got, want)
	}
	missing := DefaultResolver(issuer, "none/x.b3d")
	if missing != filepath.Join(dir, "none", "x.b3d") {
		t.Fatalf("unresolved path = %q", missing)
	}
	if DefaultResolver(issuer, "  ") != "" {
		t.Fatal("blank reference should resolve to empty string")
	}
}
