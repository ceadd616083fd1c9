package exec

import (
	"sort"

	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
)

// defaultSignalHeight replaces a negative height on signal objects.
const defaultSignalHeight = 4.8

func (e *Executor) compat(name string) string {
	return compatPrefix + name
}

func (e *Executor) limit(v *instr.Limit) {
	speed := v.Speed * e.unitOfSpeed
	e.route.Limits = append(e.route.Limits, scene.Limit{
		Position: v.Position,
		Speed:    speed,
		Post:     v.Post,
		Course:   v.Course,
	})
	if v.Post == scene.None {
		return
	}
	name := "limit/no_restriction"
	if speed != 0 {
		name = "limit/right-side/"
		if v.Post == scene.Left {
			name = "limit/left-side/"
		}
		switch v.Course {
		case scene.Left:
			name += "left_bound"
		case scene.Right:
			name += "right_bound"
		default:
			name += "no_bound"
		}
	}
	e.route.Objects = append(e.route.Objects, scene.Object{
		File:     e.route.ObjectFiles.Insert(e.compat(name)),
		Position: e.trackAt(v.Position).Position,
	})
}

// section appends a block section. In simplified mode the aspects are
// sorted and deduplicated.
func (e *Executor) section(v *instr.Section) {
	terms := append([]int(nil), v.ATerms...)
	if e.sections == instr.SectionSimplified {
		sort.Ints(terms)
		out := terms[:0]
		for i, t := range terms {
			if i == 0 || t != terms[i-1] {
				out = append(out, t)
			}
		}
		terms = out
	}
	e.route.Sections = append(e.route.Sections, scene.Section{Position: v.Position, ATerms: terms})
}

// signalHeight is y, or the default height when y is negative.
func signalHeight(y float64) float64 {
	if y < 0 {
		return defaultSignalHeight
	}
	return y
}

func (e *Executor) placeSignal(name string, pos float64, p instr.Placement) {
	e.placeObject(e.route.ObjectFiles.Insert(name), e.relative(0, pos, p.X, signalHeight(p.Y)), p)
}

func (e *Executor) sigF(v *instr.SigF) {
	var name string
	if def, ok := e.signals[v.Signal]; ok {
		name = def.objectName()
	} else {
		switch v.Signal {
		case 4:
			name = e.compat("signal/4a")
		case 5:
			name = e.compat("signal/5a")
		case 6:
			name = e.compat("signal/relay")
		default:
			name = e.compat("signal/3")
		}
	}
	e.placeSignal(name, v.Position, v.Placement)
}

// compatSignal lists the object and aspect list of each compatibility
// signal.
var compatSignal = map[instr.SignalAspect]struct {
	object  string
	aspects int
}{
	instr.AspectRY:        {"signal/2a", 2},
	instr.AspectRG:        {"signal/2b", 2},
	instr.AspectRYG:       {"signal/3", 3},
	instr.AspectRYYYG:     {"signal/4a", 4},
	instr.AspectRYYGG:     {"signal/4b", 4},
	instr.AspectRYYYYGG:   {"signal/5a", 5},
	instr.AspectRYYGGGG:   {"signal/5b", 5},
	instr.AspectRYYYYGGGG: {"signal/6", 6},
}

// trackSignal appends the section of a compatibility signal and, when it
// stands beside the track, its object.
func (e *Executor) trackSignal(v *instr.TrackSignal) {
	sig, ok := compatSignal[v.Aspect]
	if !ok {
		sig = compatSignal[instr.AspectRG]
	}
	terms := make([]int, sig.aspects)
	for i := range terms {
		terms[i] = i
	}
	e.route.Sections = append(e.route.Sections, scene.Section{Position: v.Position, ATerms: terms})
	if v.X == 0 {
		return
	}
	e.placeSignal(e.compat(sig.object), v.Position, v.Placement)
}

func (e *Executor) relay(v *instr.Relay) {
	if v.X == 0 {
		return
	}
	e.placeSignal(e.compat("signal/relay"), v.Position, v.Placement)
}

// beacon always records the beacon. Index -1 places no object.
func (e *Executor) beacon(v *instr.Beacon) {
	e.route.Beacons = append(e.route.Beacons, scene.Beacon{
		Position: v.Position,
		Type:     int64(v.Type),
		Data:     int64(v.Data),
		Section:  int64(v.Section),
	})
	if v.Index < 0 {
		return
	}
	h, ok := e.bindings[instr.StructBeacon][v.Index]
	if !ok {
		e.errorf(v, "Beacon Structure #%d isn't mapped. Use Structure.Beacon to declare it.", v.Index)
		return
	}
	e.placeObject(h, e.relative(0, v.Position, v.X, v.Y), v.Placement)
}

var transponderObjects = map[instr.TransponderType]string{
	instr.TransponderS:           "transponder/S",
	instr.TransponderSN:          "transponder/SN",
	instr.TransponderDeparture:   "transponder/AccidentalDep",
	instr.TransponderATSPRenewal: "transponder/ATSP-Pattern",
	instr.TransponderATSPStop:    "transponder/ATSP-Immediate",
}

// transponder records a beacon whose data is 0 for departure transponders
// and otherwise 0 or -1 depending on whether the safety system switches.
func (e *Executor) transponder(v *instr.Transponder) {
	data := int64(-1)
	if v.Type == instr.TransponderDeparture || v.SwitchSystem {
		data = 0
	}
	e.route.Beacons = append(e.route.Beacons, scene.Beacon{
		Position: v.Position,
		Type:     int64(v.Type),
		Data:     data,
		Section:  int64(v.Signal),
	})
	name, ok := transponderObjects[v.Type]
	if !ok {
		return
	}
	e.placeObject(e.route.ObjectFiles.Insert(e.compat(name)), e.relative(0, v.Position, v.X, v.Y), v.Placement)
}
