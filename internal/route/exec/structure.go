package exec

import (
	"fmt"
	"strings"

	"bve-compiler/internal/route/instr"
)

func (e *Executor) structure(v *instr.StructureCommand) {
	if v.Type < 0 || v.Type > instr.StructBeacon {
		return
	}
	h := e.route.ObjectFiles.Insert(v.Filename)
	m := e.bindings[v.Type]
	if old, ok := m[v.Index]; ok {
		e.errorf(v, "Structure.%s overwriting index #%d. Old Filename: \"%s\". Current Filename: \"%s\".",
			v.Type, v.Index, e.route.ObjectFiles.Name(old), e.route.ObjectFiles.Name(h))
	}
	m[v.Index] = h
}

func (e *Executor) structurePole(v *instr.StructurePole) {
	h := e.route.ObjectFiles.Insert(v.Filename)
	key := poleKey{v.AdditionalRails, v.Index}
	if old, ok := e.poles[key]; ok {
		e.errorf(v, "Structure.Pole overwriting pair (%d, %d). Old Pair: \"%s\". Current Filename: \"%s\".",
			v.AdditionalRails, v.Index, e.route.ObjectFiles.Name(old), e.route.ObjectFiles.Name(h))
	}
	e.poles[key] = h
}

func (e *Executor) cycle(i instr.Instruction, directive string, table map[int][]int, index int, inputs []int) {
	next := append([]int(nil), inputs...)
	if old, ok := table[index]; ok {
		e.errorf(i, "%s overwriting index #%d. Old Filename: \"%s\". Current Filename: \"%s\".",
			directive, index, describeCycle(old), describeCycle(next))
	}
	table[index] = next
}

func describeCycle(c []int) string {
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprintf("#%d", n)
	}
	return "Cycle of: (" + strings.Join(parts, ", ") + ")"
}

func (e *Executor) defineSignal(i instr.Instruction, index int, def signalDef) {
	if old, ok := e.signals[index]; ok {
		kind := "Traditional"
		if def.animated {
			kind = "Animated"
		}
		e.errorf(i, "Signal(%s) is overwriting signal at index (%d). Old Value: %s. New Value: %s.",
			kind, index, old, def)
	}
	e.signals[index] = def
}

func (d signalDef) String() string {
	if d.animated {
		return `"` + d.file + `"`
	}
	return fmt.Sprintf(`("%s.{x,csv,b3d}", "%s.{bmp,png,jpg}")`, d.file, d.glow)
}

// objectName is the object placed for a signal definition.
func (d signalDef) objectName() string {
	if d.animated {
		return d.file
	}
	return compatPrefix + "user_signal/" + d.file + "/" + d.glow
}
