package exec

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/xmldoc"
)

func (e *Executor) sta(v *instr.Sta) {
	e.route.Stations = append(e.route.Stations, scene.Station{
		Name:           v.Name,
		ArrivalSound:   e.soundHandle(v.ArrivalSound),
		DepartureSound: e.soundHandle(v.DepartureSound),
		TimetableIndex: v.TimetableIndex,
		Arrival:        v.Arrival,
		Departure:      v.Departure,
		StopDuration:   v.StopDuration,
		PassengerRatio: v.PassengerRatio,
		PassAlarm:      v.PassAlarm,
		ForceRed:       v.ForceRed,
		System:         v.System,
		ArrivalTag:     v.ArrivalTag,
		DepartureTag:   v.DepartureTag,
		Doors:          v.Doors,
	})
}

// stationXML appends a station described by an XML document. A document
// that cannot be read still yields a default station so that following
// Track.Stop commands bind to it.
func (e *Executor) stationXML(v *instr.StationXML) {
	info := xmldoc.DefaultStation()
	if file, contents, ok := e.readXML(v, v.Filename); ok {
		parsed, err := xmldoc.ParseStation(file, contents, e.errs, e.opts.Resolve)
		if err != nil {
			e.errorf(v, "%v", err)
		} else {
			info = parsed
		}
	}
	st := scene.Station{
		Name:           info.Name,
		ArrivalSound:   e.soundHandle(info.ArrivalSound),
		DepartureSound: e.soundHandle(info.DepartureSound),
		TimetableIndex: info.TimetableIndex,
		Arrival:        info.Arrival,
		Departure:      info.Departure,
		StopDuration:   info.StopDuration,
		PassengerRatio: info.PassengerRatio,
		ForceRed:       info.ForceRed,
		ArrivalTag:     scene.ArrivalAnyTime,
		DepartureTag:   scene.DepartureAnyTime,
		Doors:          info.Doors,
		RequestStop:    info.RequestStop,
	}
	if info.UsingArrival {
		st.ArrivalTag = scene.ArrivalTime
	}
	if info.UsingDeparture {
		st.DepartureTag = scene.DepartureTime
	}
	e.route.Stations = append(e.route.Stations, st)
}

func (e *Executor) stop(v *instr.Stop) {
	if len(e.route.Stations) == 0 {
		e.errorf(v, "Track.Stop: no station to bind to. Ignoring.")
		return
	}
	st := &e.route.Stations[len(e.route.Stations)-1]
	st.StopPoints = append(st.StopPoints, scene.StopPoint{
		Position:          v.Position,
		Direction:         v.Post,
		BackwardTolerance: v.Backward,
		ForwardTolerance:  v.Forward,
		Cars:              v.Cars,
	})
}

// form validates a platform segment and records it. Which structures must
// be mapped depends on where the platform is built.
func (e *Executor) form(v *instr.Form) {
	var need []instr.StructureType
	switch v.Placement {
	case scene.FormLeft:
		need = []instr.StructureType{instr.StructFormL}
		if v.Roof > 0 {
			need = append(need, instr.StructRoofL)
		}
	case scene.FormRight:
		need = []instr.StructureType{instr.StructFormR}
		if v.Roof > 0 {
			need = append(need, instr.StructRoofR)
		}
	default:
		need = []instr.StructureType{instr.StructFormL, instr.StructFormCL, instr.StructFormR, instr.StructFormCR}
		if v.Roof > 0 {
			need = append(need, instr.StructRoofL, instr.StructRoofCL, instr.StructRoofR, instr.StructRoofCR)
		}
	}

	rails := []int{v.Rail1}
	if v.Placement == scene.FormRail {
		rails = append(rails, v.Rail2)
	}
	ok := true
	for _, n := range rails {
		if !e.rail(n).active {
			e.errorf(v, "Rail number %d isn't active. Use Track.RailStart to start the track.", n)
			ok = false
		}
	}
	for _, t := range need {
		index := v.Form
		if t >= instr.StructRoofL && t <= instr.StructRoofCR {
			index = v.Roof
		}
		if _, mapped := e.bindings[t][index]; !mapped {
			e.errorf(v, "%s Structure #%d isn't mapped. Ignoring call. Use Structure.%s to declare it.", t, index, t)
			ok = false
		}
	}
	if !ok {
		return
	}
	e.route.Forms = append(e.route.Forms, scene.Form{
		Position:  v.Position,
		RailA:     v.Rail1,
		RailB:     v.Rail2,
		Placement: v.Placement,
		Roof:      v.Roof,
		Form:      v.Form,
	})
}
