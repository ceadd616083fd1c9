package diag

import (
	"strings"
	"testing"
)

func TestAddAndOrder(t *testing.T) {
	m := New()
	m.Add("b.csv", 3, "third")
	m.Addf("a.csv", 1, "value %d", 7)
	m.Add("b.csv", 1, "first")

	if got := m.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	files := m.Files()
	if len(files) != 2 || files[0] != "a.csv" || files[1] != "b.csv" {
		t.Fatalf("Files = %v", files)
	}
	b := m.For("b.csv")
	if b[0].Message != "third" || b[1].Message != "first" {
		t.Fatalf("raise order not kept: %+v", b)
	}
	if m.For("a.csv")[0].Message != "value 7" {
		t.Fatalf("Addf message = %q", m.For("a.csv")[0].Message)
	}
}

func TestErrNilWhenEmpty(t *testing.T) {
	m := New()
	m.Touch("route.csv")
	if m.Err() != nil {
		t.Fatalf("expected nil error for empty collection")
	}
	if len(m.Files()) != 0 {
		t.Fatalf("touched file with no diagnostics should not be listed")
	}
	m.Add("route.csv", 4, "boom")
	err := m.Err()
	if err == nil || !strings.Contains(err.Error(), "route.csv:4: boom") {
		t.Fatalf("Err = %v", err)
	}
}

func TestMerge(t *testing.T) {
	a, b := New(), New()
	a.Add("x", 1, "one")
	b.Add("x", 2, "two")
	b.Add("y", 1, "three")
	a.Merge(b)
	if a.Len() != 3 || len(a.For("x")) != 2 {
		t.Fatalf("merge result %+v", a)
	}
}

func TestPrint(t *testing.T) {
	m := New()
	m.Add("b.csv", 2, "second")
	m.Add("a.csv", 7, "first")
	var sb strings.Builder
	m.Print(&sb)
	if got, want := sb.String(), "a.csv:7: first\nb.csv:2: second\n"; got != want {
		t.Errorf("Print = %q, want %q", got, want)
	}
}
