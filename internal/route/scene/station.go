package scene

import "bve-compiler/internal/filenames"

// ArrivalTag qualifies a station's arrival time.
type ArrivalTag int

const (
	ArrivalTime ArrivalTag = iota
	ArrivalAnyTime
	ArrivalAllPass
	ArrivalPlayerPass
	ArrivalPlayerStop
	ArrivalAllStop
)

func (a ArrivalTag) String() string {
	return [...]string{"time", "any", "all_pass", "player_pass", "player_stop", "all_stop"}[a]
}

// DepartureTag qualifies a station's departure time.
type DepartureTag int

const (
	DepartureTime DepartureTag = iota
	DepartureAnyTime
	DepartureTerminal
	DepartureTerminalTime
	DepartureChangeEnds
	DepartureChangeEndsTime
)

func (d DepartureTag) String() string {
	return [...]string{"time", "any", "terminal", "terminal_time", "change_ends", "change_ends_time"}[d]
}

// Doors says which side the doors open on.
type Doors int

const (
	DoorsLeft Doors = iota
	DoorsNone
	DoorsRight
	DoorsBoth
)

func (d Doors) String() string {
	return [...]string{"left", "none", "right", "both"}[d]
}

// StopPoint is a Track.Stop belonging to the preceding station.
type StopPoint struct {
	Position          float64   `json:"position"`
	Direction         Direction `json:"direction"`
	BackwardTolerance float64   `json:"backward_tolerance"`
	ForwardTolerance  float64   `json:"forward_tolerance"`
	Cars              int       `json:"cars"`
}

// Station is a stop along the route. Times are seconds after midnight.
type Station struct {
	Name           string           `json:"name"`
	ArrivalSound   filenames.Handle `json:"arrival_sound"`
	DepartureSound filenames.Handle `json:"departure_sound"`
	TimetableIndex int              `json:"timetable_index"`
	StopPoints     []StopPoint      `json:"stop_points"`
	Arrival        int64            `json:"arrival"`
	Departure      int64            `json:"departure"`
	StopDuration   float64          `json:"stop_duration"`
	PassengerRatio float64          `json:"passenger_ratio"`
	PassAlarm      bool             `json:"pass_alarm"`
	ForceRed       bool             `json:"force_red"`
	System         bool             `json:"system"`
	ArrivalTag     ArrivalTag       `json:"arrival_tag"`
	DepartureTag   DepartureTag     `json:"departure_tag"`
	Doors          Doors            `json:"doors"`
	RequestStop    RequestStop      `json:"request_stop"`
}
