package instr

import "bve-compiler/internal/route/scene"

type Limit struct {
	Base
	Speed  float64
	Post   scene.Direction
	Course scene.Direction
}

type Section struct {
	Base
	ATerms []int
}

// SigF places a signal object that follows a section.
type SigF struct {
	Base
	Placement
	Signal  int
	Section int
}

// SignalAspect lists the lamp sequence of a compatibility signal.
type SignalAspect int

const (
	AspectRY SignalAspect = iota
	AspectRG
	AspectRYG
	AspectRYYYG
	AspectRYYGG
	AspectRYYYYGG
	AspectRYYGGGG
	AspectRYYYYGGGG
)

var aspectNames = [...]string{"R_Y", "R_G", "R_Y_G", "R_YY_Y_G", "R_Y_YG_G", "R_YY_Y_YG_G", "R_Y_YG_G_GG", "R_YY_Y_YG_G_GG"}

func (a SignalAspect) String() string {
	if a < 0 || int(a) >= len(aspectNames) {
		return "R_G"
	}
	return aspectNames[a]
}

type TrackSignal struct {
	Base
	Placement
	Aspect SignalAspect
}

type Relay struct {
	Base
	Placement
}

// Beacon places a train protection beacon. Index -1 places no object.
type Beacon struct {
	Base
	Placement
	Type    int
	Index   int
	Section int
	Data    int
}

type TransponderType int

const (
	TransponderS TransponderType = iota
	TransponderSN
	TransponderDeparture
	TransponderATSPRenewal
	TransponderATSPStop
)

type Transponder struct {
	Base
	Placement
	Type         TransponderType
	Signal       int
	SwitchSystem bool
}

type Pattern struct {
	Base
	Permanent bool
	Speed     float64
}
