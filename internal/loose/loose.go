// Package loose parses the forgiving numeric, time and colour literals used by
// route and object files: embedded spaces are ignored and trailing garbage
// after a valid prefix is dropped.
package loose

import (
	"fmt"
	"strconv"
	"strings"
)

func stripSpaces(s string) string {
	if !strings.ContainsAny(s, " \t") {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

// floatPrefix returns the longest prefix of s that forms a decimal float.
func floatPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && s[k] >= '0' && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return s[:i]
}

func intPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

// Float parses text as a loose float.
func Float(text string) (float64, error) {
	p := floatPrefix(stripSpaces(text))
	if p == "" {
		return 0, fmt.Errorf("%q is not a valid float", text)
	}
	v, err := strconv.ParseFloat(p, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid float", text)
	}
	return v, nil
}

// FloatOr parses text, returning def when it is not a float.
func FloatOr(text string, def float64) float64 {
	v, err := Float(text)
	if err != nil {
		return def
	}
	return v
}

// Int parses text as a loose integer; a fractional part is ignored.
func Int(text string) (int64, error) {
	p := intPrefix(stripSpaces(text))
	if p == "" {
		return 0, fmt.Errorf("%q is not a valid integer", text)
	}
	v, err := strconv.ParseInt(p, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer", text)
	}
	return v, nil
}

// IntOr parses text, returning def when it is not an integer.
func IntOr(text string, def int64) int64 {
	v, err := Int(text)
	if err != nil {
		return def
	}
	return v
}

// IsInt reports whether text parses as a loose integer.
func IsInt(text string) bool {
	_, err := Int(text)
	return err == nil
}

// Time parses hh, hh.mm or hh.mmss (':' is accepted as the separator) into
// seconds since midnight.
func Time(text string) (int64, error) {
	s := stripSpaces(text)
	bad := fmt.Errorf("%q is not a valid time", text)

	sep := strings.IndexAny(s, ".:")
	hours, err := Int(s)
	if err != nil {
		return 0, bad
	}
	if sep < 0 || len(s)-sep-1 <= 0 {
		return hours * 3600, nil
	}
	rhs := s[sep+1:]
	switch {
	case len(rhs) <= 2:
		m, err := Int(rhs)
		if err != nil {
			return 0, bad
		}
		return hours*3600 + m*60, nil
	case len(rhs) <= 4:
		m, err := Int(rhs[:2])
		if err != nil {
			return 0, bad
		}
		sec, err := Int(rhs[2:])
		if err != nil {
			return 0, bad
		}
		return hours*3600 + m*60 + sec, nil
	}
	return 0, bad
}

// TimeOr parses text, returning def when it is not a time.
func TimeOr(text string, def int64) int64 {
	v, err := Time(text)
	if err != nil {
		return def
	}
	return v
}

// RGBA is an 8-bit colour.
type RGBA struct {
	R, G, B, A uint8
}

// Color parses "#RRGGBB" into an opaque colour.
func Color(text string) (RGBA, error) {
	s := stripSpaces(text)
	if len(s) != 7 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("%q is not a valid color", text)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%q is not a valid color", text)
	}
	return RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
}

// ColorOr parses text, returning def when it is not a colour.
func ColorOr(text string, def RGBA) RGBA {
	c, err := Color(text)
	if err != nil {
		return def
	}
	return c
}

// Split splits text on sep, keeping empty fields. An empty input gives no fields.
func Split(text string, sep byte) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, string(sep))
}
