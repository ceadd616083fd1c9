package exec

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
)

func (e *Executor) requireActive(i instr.Instruction, rail int) *railState {
	s := e.rail(rail)
	if !s.active {
		e.errorf(i, "Rail number %d isn't active. Use Track.RailStart to start the track.", rail)
	}
	return s
}

func (e *Executor) freeObj(v *instr.FreeObj) {
	e.requireActive(v, v.Rail)
	h, ok := e.bindings[instr.StructFreeObj][v.Index]
	if !ok {
		e.errorf(v, "FreeObj Structure #%d isn't mapped. Ignoring call. Use Structure.FreeObj to declare it.", v.Index)
		return
	}
	e.placeObject(h, e.relative(v.Rail, v.Position, v.X, v.Y), v.Placement)
}

// wall starts or changes the walls (or dikes) on the given sides of a rail.
// left is wallL or dikeL; the right side kind follows it.
func (e *Executor) wall(i instr.Instruction, rail int, side scene.Side, index int, left repeatKind) {
	s := e.requireActive(i, rail)
	pos := i.Common().Position
	for _, k := range []repeatKind{left, left + 1} {
		if k == left && side == scene.SideRight || k != left && side == scene.SideLeft {
			continue
		}
		e.fillRepeat(s, k, pos)
		name := repeatStructure[k].String()
		if _, ok := e.bindings[repeatStructure[k]][index]; !ok {
			e.errorf(i, "%s Structure #%d isn't mapped. Ignoring call. Use Structure.%s to declare it.", name, index, name)
			continue
		}
		s.repeats[k].index = index
		s.repeats[k].active = true
	}
}

// endRepeats stops the given categories without requiring an active rail,
// since routes commonly end the rail first.
func (e *Executor) endRepeats(rail int, pos float64, kinds ...repeatKind) {
	s := e.rail(rail)
	for _, k := range kinds {
		e.fillRepeat(s, k, pos)
		s.repeats[k].active = false
	}
}

func (e *Executor) pole(v *instr.Pole) {
	s := e.rail(v.Rail)
	e.fillPoles(s, v.Position)
	if !s.active {
		e.errorf(v, "Rail number %d isn't active. Use Track.RailStart to start the track.", v.Rail)
	}
	if _, ok := e.poles[poleKey{v.AdditionalRails, v.Index}]; !ok {
		e.errorf(v, "Pole Structure (%d, %d) isn't mapped. Ignoring call. Use Structure.Pole to declare it.", v.AdditionalRails, v.Index)
		return
	}
	p := &s.pole
	p.additionalRails = v.AdditionalRails
	p.location = v.Location
	p.interval = v.Interval
	p.index = v.Index
	p.active = true
}

func (e *Executor) poleEnd(v *instr.PoleEnd) {
	s := e.rail(v.Rail)
	e.fillPoles(s, v.Position)
	s.pole.active = false
}

func (e *Executor) ground(v *instr.Ground) {
	s := e.rail(0)
	e.fillGround(s, v.Position)
	_, bound := e.bindings[instr.StructGround][v.Index]
	_, cycled := e.groundCycle[v.Index]
	if !bound && !cycled {
		e.errorf(v, "Ground Structure #%d isn't mapped. Ignoring call. Use Structure.Ground to declare it.", v.Index)
		return
	}
	s.groundIndex = v.Index
}

// crack records a crack between two rails. The left or right crack object
// is chosen by which side the second rail lies on.
func (e *Executor) crack(v *instr.Crack) {
	a, b := e.rail(v.Rail1), e.rail(v.Rail2)
	if !a.active || !b.active {
		for _, n := range []int{v.Rail1, v.Rail2} {
			if !e.rail(n).active {
				e.errorf(v, "Rail number %d isn't active. Use Track.RailStart to start the track.", n)
			}
		}
		return
	}
	t := instr.StructCrackR
	if b.x < a.x {
		t = instr.StructCrackL
	}
	h, ok := e.bindings[t][v.Index]
	if !ok {
		e.errorf(v, "%s Structure #%d isn't mapped. Ignoring call. Use Structure.%s to declare it.", t, v.Index, t)
		return
	}
	e.route.Cracks = append(e.route.Cracks, scene.Crack{
		Position: v.Position,
		RailA:    v.Rail1,
		RailB:    v.Rail2,
		File:     h,
	})
}
