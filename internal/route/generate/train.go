package generate

import (
	"strings"

	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

func trainFolder(in split.Info) (instr.Instruction, error) {
	s, err := singleString(in, "Train.Folder")
	if err != nil {
		return nil, err
	}
	return &instr.TrainFolder{Filename: s}, nil
}

func indexAndArg(in split.Info, name string) error {
	if err := indicesAtLeast(in, 1, name); err != nil {
		return err
	}
	return argsAtLeast(in, 1, name)
}

func trainRun(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Train.Run"); err != nil {
		return nil, err
	}
	r := newReader(in, "Train.Run")
	t := &instr.TrainRail{RailType: r.index(0), RunSound: r.uint(0)}
	return t, r.err
}

func trainFlange(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Train.Flange"); err != nil {
		return nil, err
	}
	r := newReader(in, "Train.Flange")
	t := &instr.TrainFlange{RailType: r.index(0), FlangeSound: r.uint(0)}
	return t, r.err
}

func trainTimetable(in split.Info) (instr.Instruction, error) {
	if err := indexAndArg(in, "Train.Timetable"); err != nil {
		return nil, err
	}
	r := newReader(in, "Train.Timetable")
	t := &instr.TrainTimetable{Index: r.index(0), Filename: r.str(0)}
	if r.err != nil {
		return nil, r.err
	}
	first, _, _ := strings.Cut(in.Suffix, ".")
	if first != "day" && first != "night" {
		return nil, &ParseError{Msg: "A suffix of .Day or .Night is required for Train.Timetable"}
	}
	t.Day = first == "day"
	return t, nil
}

func trainVelocity(in split.Info) (instr.Instruction, error) {
	return &instr.TrainVelocity{Speed: newReader(in, "").floatOr(0, 0)}, nil
}
