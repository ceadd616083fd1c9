package instr

import "bve-compiler/internal/route/scene"

// Sta declares a station. Times are seconds after midnight.
type Sta struct {
	Base
	Name           string
	ArrivalSound   string
	DepartureSound string
	TimetableIndex int
	Arrival        int64
	Departure      int64
	StopDuration   float64
	PassengerRatio float64
	PassAlarm      bool
	ForceRed       bool
	System         bool
	ArrivalTag     scene.ArrivalTag
	DepartureTag   scene.DepartureTag
	Doors          scene.Doors
}

type StationXML struct {
	Base
	Filename string
}

type Stop struct {
	Base
	Post     scene.Direction
	Forward  float64
	Backward float64
	Cars     int
}

type Form struct {
	Base
	Rail1     int
	Rail2     int
	Roof      int
	Form      int
	Placement scene.FormPlacement
}
