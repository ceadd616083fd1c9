package generate

import (
	"strings"

	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/route/split"
)

// timeSuffix parses the "x:hh.mm" form and reports whether it was present.
func timeSuffix(r *reader, s string) (int64, bool) {
	if len(s) < 3 || s[1] != ':' {
		return 0, false
	}
	v, err := loose.Time(s[2:])
	if err != nil {
		r.fail(err)
	}
	return v, true
}

func sta(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Sta"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Sta")
	s := &instr.Sta{
		Name:           r.str(0),
		ArrivalSound:   r.str(7),
		DepartureSound: r.str(10),
		TimetableIndex: r.uintOr(11, 0),
		StopDuration:   r.floatOr(8, 15),
		PassengerRatio: r.floatOr(9, 100),
		ArrivalTag:     scene.ArrivalAnyTime,
		DepartureTag:   scene.DepartureAnyTime,
		Doors:          scene.DoorsNone,
	}

	if r.has(1) && r.str(1) != "" {
		arr := r.str(1)
		switch arr[0] {
		case 'p', 'P', 'l', 'L':
			s.ArrivalTag = scene.ArrivalAllPass
		case 'b', 'B':
			s.ArrivalTag = scene.ArrivalPlayerPass
		case 's', 'S':
			s.ArrivalTag = scene.ArrivalPlayerStop
			if t, ok := timeSuffix(r, arr); ok {
				s.Arrival = t
			}
		default:
			s.ArrivalTag = scene.ArrivalTime
			s.Arrival = r.time(1)
		}
	}

	if r.has(2) && r.str(2) != "" {
		dep := r.str(2)
		switch dep[0] {
		case 't', 'T', '=':
			s.DepartureTag = scene.DepartureTerminal
			if t, ok := timeSuffix(r, dep); ok {
				s.Departure, s.DepartureTag = t, scene.DepartureTerminalTime
			}
		case 'c', 'C':
			s.DepartureTag = scene.DepartureChangeEnds
			if t, ok := timeSuffix(r, dep); ok {
				s.Departure, s.DepartureTag = t, scene.DepartureChangeEndsTime
			}
		default:
			s.DepartureTag = scene.DepartureTime
			s.Departure = r.time(2)
		}
	}

	s.PassAlarm = r.intOr(3, 0) == 1
	if r.has(4) {
		s.Doors = doors(r.str(4))
	}
	s.ForceRed = r.intOr(5, 0) == 1
	sys := r.lower(6)
	s.System = sys == "atc" || sys == "1"

	if r.err != nil {
		return nil, r.err
	}
	return s, nil
}

func doors(arg string) scene.Doors {
	if arg == "" {
		return scene.DoorsNone
	}
	switch arg[0] {
	case 'l', 'L':
		return scene.DoorsLeft
	case 'n', 'N':
		return scene.DoorsNone
	case 'r', 'R':
		return scene.DoorsRight
	case 'b', 'B':
		return scene.DoorsBoth
	}
	switch newReader(split.Info{Args: []string{arg}}, "").intOr(0, 0) {
	case -1:
		return scene.DoorsLeft
	case 1:
		return scene.DoorsRight
	}
	return scene.DoorsNone
}

// station rewrites the short Track.Station form into Track.Sta arguments.
func station(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Station"); err != nil {
		return nil, err
	}
	arg := func(i int, def string) string {
		if i < len(in.Args) {
			return in.Args[i]
		}
		return def
	}
	args := []string{
		arg(0, ""),  // name
		arg(1, ""),  // arrival
		arg(2, ""),  // departure
		"0",         // pass alarm
		"b",         // doors
		arg(3, "0"), // forced red signal
		arg(4, "0"), // system
		"",          // arrival sound
		"15",        // stop duration
		"100",       // passenger ratio
		arg(5, ""),  // departure sound
		"0",         // timetable index
	}
	return sta(split.Info{Name: in.Name, Args: args, Offset: in.Offset})
}

func stationXML(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Track.StationXML")
	if err != nil {
		return nil, err
	}
	return &instr.StationXML{Filename: s}, nil
}

func direction(v int) scene.Direction {
	switch v {
	case -1:
		return scene.Left
	case 1:
		return scene.Right
	}
	return scene.None
}

func stop(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Stop")
	return &instr.Stop{
		Post:     direction(r.intOr(0, 0)),
		Backward: r.floatOr(1, 5),
		Forward:  r.floatOr(2, 5),
		Cars:     r.uintOr(3, 0),
	}, nil
}

func form(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Track.Form"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Form")
	f := &instr.Form{
		Rail1:     r.uint(0),
		Roof:      r.uintOr(2, 0),
		Form:      r.uintOr(3, 0),
		Placement: scene.FormRail,
	}
	second := r.str(1)
	switch {
	case second == "":
	case strings.EqualFold(second[:1], "l"):
		f.Placement = scene.FormLeft
	case strings.EqualFold(second[:1], "r"):
		f.Placement = scene.FormRight
	default:
		f.Rail2 = r.uintOr(1, 0)
	}
	return f, r.err
}
