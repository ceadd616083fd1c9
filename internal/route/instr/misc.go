package instr

import "bve-compiler/internal/route/scene"

type Back struct {
	Base
	Index int
}

type Fog struct {
	Base
	Start float64
	End   float64
	Color scene.Color
}

type Brightness struct {
	Base
	Value uint8
}

type Marker struct {
	Base
	Filename string
	Distance float64
}

type MarkerXML struct {
	Base
	Filename string
}

type TextMarker struct {
	Base
	Text     string
	Distance float64
	Color    scene.TextColor
}

type PointOfInterest struct {
	Base
	Placement
	Rail int
	Text string
}

type PreTrain struct {
	Base
	Time int64
}

type Announce struct {
	Base
	Filename string
	Speed    float64
}

type Doppler struct {
	Base
	Filename string
	X        float64
	Y        float64
}

type Buffer struct{ Base }
