package xmldoc

import (
	"strings"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/source"
)

// DefaultStation is a station before any element of its document applies.
func DefaultStation() scene.StationInfo {
	return scene.StationInfo{
		Doors:          scene.DoorsNone,
		PassengerRatio: 100,
		StopDuration:   15,
	}
}

// ParseStation reads a <Station> document. Sound paths are resolved against
// filename; interning them is left to the caller.
func ParseStation(filename, contents string, errs diag.MultiError, resolve source.Resolver) (scene.StationInfo, error) {
	st := DefaultStation()
	root, err := parseTree(filename, contents)
	if err != nil {
		return st, err
	}
	doc := document(root)
	if len(doc) == 0 || doc[0].name != "station" {
		name := ""
		if len(doc) > 0 {
			name = doc[0].raw
		}
		errs.Addf(filename, 0, "XML node named: %s is not a valid XML station tag.", name)
		return st, nil
	}
	s := doc[0]

	if n := s.child("name"); n != nil {
		st.Name = n.value()
	}
	if n := s.child("arrivaltime"); n != nil {
		if t, err := loose.Time(n.value()); err != nil {
			errs.Add(filename, 0, err.Error())
		} else {
			st.Arrival, st.UsingArrival = t, true
		}
	}
	if n := s.child("departuretime"); n != nil {
		if t, err := loose.Time(n.value()); err != nil {
			errs.Add(filename, 0, err.Error())
		} else {
			st.Departure, st.UsingDeparture = t, true
		}
	}
	if n := s.child("doors"); n != nil {
		switch strings.ToLower(n.value()) {
		case "left", "l", "-1":
			st.Doors = scene.DoorsLeft
		case "right", "r", "1":
			st.Doors = scene.DoorsRight
		case "both", "b":
			st.Doors = scene.DoorsBoth
		case "none", "n", "0":
			st.Doors = scene.DoorsNone
		default:
			errs.Add(filename, 0, "Error: <Doors> given an invalid option")
		}
	}
	if n := s.child("forcedredsignal"); n != nil {
		st.ForceRed = strings.EqualFold(n.value(), "true")
	}
	if n := s.child("passengerratio"); n != nil {
		v, err := loose.Int(n.value())
		switch {
		case err != nil:
			errs.Add(filename, 0, err.Error())
			st.PassengerRatio = 0
		case v < 0 || v > 250:
			errs.Add(filename, 0, "Out of bounds Error: PassengerRatio has to be a integer between 0 and 250.")
			st.PassengerRatio = 0
		default:
			st.PassengerRatio = float64(v)
		}
	}
	if n := s.child("arrivalsound"); n != nil {
		st.ArrivalSound = resolve(filename, n.value())
	}
	if n := s.child("departuresound"); n != nil {
		st.DepartureSound = resolve(filename, n.value())
	}
	if n := s.child("stopduration"); n != nil {
		v, err := loose.Int(n.value())
		switch {
		case err != nil:
			errs.Add(filename, 0, err.Error())
		case v < 0:
			errs.Add(filename, 0, "<StopDuration> should have non negative values")
		default:
			st.StopDuration = float64(v)
		}
	}
	if n := s.child("timetableindex"); n != nil {
		v, err := loose.Int(n.value())
		switch {
		case err != nil:
			errs.Add(filename, 0, err.Error())
		case v < 0:
			errs.Add(filename, 0, "<TimeTableIndex> should have non negative values")
		default:
			st.TimetableIndex = int(v)
		}
	}
	if n := s.child("requeststop"); n != nil {
		st.RequestStop = parseRequestStop(filename, n, errs)
	}
	return st, nil
}

func parseRequestStop(filename string, n *node, errs diag.MultiError) scene.RequestStop {
	var rs scene.RequestStop
	if c := n.child("earlytime"); c != nil {
		if t, err := loose.Time(c.value()); err != nil {
			errs.Add(filename, 0, err.Error())
		} else {
			rs.EarlyTime, rs.UsingEarly = t, true
		}
	}
	if c := n.child("latetime"); c != nil {
		if t, err := loose.Time(c.value()); err != nil {
			errs.Add(filename, 0, err.Error())
		} else {
			rs.LateTime, rs.UsingLate = t, true
		}
	}
	if c := n.child("distance"); c != nil {
		if v, err := loose.Float(c.value()); err != nil {
			errs.Add(filename, 0, err.Error())
		} else {
			rs.Distance = v
		}
	}
	if c := n.child("stopmessage"); c != nil {
		rs.StopMessage = messages(c)
	}
	if c := n.child("passmessage"); c != nil {
		rs.PassMessage = messages(c)
	}
	if c := n.child("probability"); c != nil {
		rs.Probability = probabilities(filename, c, errs)
	}
	if c := n.child("maxcars"); c != nil {
		v, err := loose.Int(c.value())
		switch {
		case err != nil:
			errs.Add(filename, 0, err.Error())
		case v < 0:
			errs.Add(filename, 0, "Error: <MaxCars> should be a non negative integer")
		default:
			rs.MaxCars = int(v)
		}
	}
	if c := n.child("aibehaviour"); c != nil {
		switch strings.ToLower(c.value()) {
		case "fullspeed":
			rs.AIFullSpeed = true
		case "normalbrake":
		default:
			errs.Add(filename, 0, "Error: <AIBehaviour> given invalid behaviour")
		}
	}
	return rs
}

// messages reads <Early>, <OnTime> and <Late> children. Without children
// the element's own text applies to all three.
func messages(n *node) scene.Message {
	early, onTime, late := n.child("early"), n.child("ontime"), n.child("late")
	if early == nil && onTime == nil && late == nil {
		v := n.value()
		return scene.Message{Early: v, OnTime: v, Late: v}
	}
	var m scene.Message
	if early != nil {
		m.Early = early.value()
	}
	if onTime != nil {
		m.OnTime = onTime.value()
	}
	if late != nil {
		m.Late = late.value()
	}
	return m
}

func probabilities(filename string, n *node, errs diag.MultiError) scene.Odds {
	percent := func(c *node, tag string) uint8 {
		v, err := loose.Int(c.value())
		if err != nil {
			errs.Add(filename, 0, err.Error())
			return 0
		}
		if v < 0 || v > 100 {
			errs.Addf(filename, 0, "%s has to be between 0 and 100 but found %d", tag, v)
			return 0
		}
		return uint8(v)
	}
	early, onTime, late := n.child("early"), n.child("ontime"), n.child("late")
	if early == nil && onTime == nil && late == nil {
		p := percent(n, "<Probability>")
		return scene.Odds{Early: p, OnTime: p, Late: p}
	}
	var o scene.Odds
	if early != nil {
		o.Early = percent(early, "<Early>")
	}
	if onTime != nil {
		o.OnTime = percent(onTime, "<OnTime>")
	}
	if late != nil {
		o.Late = percent(late, "<Late>")
	}
	return o
}
