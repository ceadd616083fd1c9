// Package instr defines the typed route instruction set. Every directive of
// the CSV and RW route dialects maps onto exactly one variant.
package instr

// Base is the metadata shared by all instructions. Position is -1 until
// Pass 1 has assigned the absolute track position.
type Base struct {
	FileIndex int     `json:"file"`
	Line      int     `json:"line"`
	Position  float64 `json:"position"`
}

// Common gives access to the shared metadata.
func (b *Base) Common() *Base { return b }

// Instruction is implemented by every variant. Variants are pointers to
// structs that embed Base; consumers dispatch with a type switch.
type Instruction interface {
	Common() *Base
}

// List is the generated instruction stream with the source files it came
// from, indexed by Base.FileIndex.
type List struct {
	Instructions []Instruction
	Filenames    []string
}

// Filename returns the source file of an instruction, or "" if unknown.
func (l *List) Filename(i Instruction) string {
	idx := i.Common().FileIndex
	if idx < 0 || idx >= len(l.Filenames) {
		return ""
	}
	return l.Filenames[idx]
}

// Placement is the offset and rotation shared by placed objects. Angles are
// in degrees.
type Placement struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

// None is a no-op, produced for ignored directives and failed constructions.
type None struct{ Base }

// Position is a position statement. The absolute position is the dot product
// of Distances with the active unit-of-length factors.
type Position struct {
	Base
	Distances []float64
}

// NewBase returns metadata with an unknown position.
func NewBase() Base {
	return Base{Position: -1}
}
