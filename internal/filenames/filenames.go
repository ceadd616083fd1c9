// Package filenames interns file references so repeated placements of the
// same object, texture or sound share one stored string.
package filenames

import (
	"encoding/json"
	"strings"
)

// Handle identifies an interned name. The zero value is not a valid handle
// until returned by Insert; use None for "no file".
type Handle int

// None marks an absent reference.
const None Handle = -1

// Set is a case-insensitive, deduplicated set of filenames. Names are stored
// lower-cased; handles are stable for the lifetime of the set.
type Set struct {
	names []string
	index map[string]Handle
}

// Insert lower-cases name and returns its handle, adding it if needed.
func (s *Set) Insert(name string) Handle {
	key := strings.ToLower(name)
	if s.index == nil {
		s.index = make(map[string]Handle)
	}
	if h, ok := s.index[key]; ok {
		return h
	}
	h := Handle(len(s.names))
	s.names = append(s.names, key)
	s.index[key] = h
	return h
}

// Lookup finds name without inserting it.
func (s *Set) Lookup(name string) (Handle, bool) {
	h, ok := s.index[strings.ToLower(name)]
	return h, ok
}

// Name returns the stored (lower-case) name, or "" for None or unknown handles.
func (s *Set) Name(h Handle) string {
	if h < 0 || int(h) >= len(s.names) {
		return ""
	}
	return s.names[h]
}

func (s *Set) Len() int {
	return len(s.names)
}

// Names returns the stored names in handle order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Set) MarshalJSON() ([]byte, error) {
	if s.names == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.names)
}

func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*s = Set{}
	for _, n := range names {
		s.Insert(n)
	}
	return nil
}
