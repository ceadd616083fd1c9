package filenames

import (
	"encoding/json"
	"testing"
)

func TestInsertIsCaseInsensitive(t *testing.T) {
	var s Set
	a := s.Insert("Objects/House.B3D")
	b := s.Insert("objects/house.b3d")
	if a != b {
		t.Fatalf("handles differ: %d vs %d", a, b)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if got := s.Name(a); got != "objects/house.b3d" {
		t.Fatalf("Name = %q", got)
	}
}

func TestLookupAndNone(t *testing.T) {
	var s Set
	if _, ok := s.Lookup("x"); ok {
		t.Fatalf("lookup on empty set succeeded")
	}
	h := s.Insert("X")
	if got, ok := s.Lookup("x"); !ok || got != h {
		t.Fatalf("Lookup = %d,%v", got, ok)
	}
	if s.Name(None) != "" {
		t.Fatalf("None should have no name")
	}
}

func TestJSONRoundTripKeepsHandles(t *testing.T) {
	var s Set
	s.Insert("b")
	s.Insert("a")
	data, err := json.Marshal(&s)
	if err != nil {
		t.Fatal(err)
	}
	var back Set
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if h, _ := back.Lookup("a"); h != 1 {
		t.Fatalf("handle of a = %d, want 1", h)
	}
}
