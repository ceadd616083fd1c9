package instr

type TrainFolder struct {
	Base
	Filename string
}

type TrainRail struct {
	Base
	RailType int
	RunSound int
}

type TrainFlange struct {
	Base
	RailType    int
	FlangeSound int
}

type TrainTimetable struct {
	Base
	Day      bool
	Index    int
	Filename string
}

type TrainVelocity struct {
	Base
	Speed float64
}
