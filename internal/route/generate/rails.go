package generate

import (
	"bve-compiler/internal/loose"
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

// optFloat returns nil when argument i is missing or not a number.
func optFloat(in split.Info, i int) *float64 {
	if i >= len(in.Args) {
		return nil
	}
	v, err := loose.Float(in.Args[i])
	if err != nil {
		return nil
	}
	return &v
}

func optUint(in split.Info, i int) *int {
	if i >= len(in.Args) {
		return nil
	}
	v, err := loose.Int(in.Args[i])
	if err != nil || v < 0 {
		return nil
	}
	n := int(v)
	return &n
}

func railStart(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.RailStart"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.RailStart")
	rs := &instr.RailStart{Rail: r.uint(0), X: optFloat(in, 1), Y: optFloat(in, 2), RailType: optUint(in, 3)}
	return rs, r.err
}

func rail(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Rail"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Rail")
	rl := &instr.Rail{Rail: r.uint(0), X: optFloat(in, 1), Y: optFloat(in, 2), RailType: optUint(in, 3)}
	return rl, r.err
}

func railType(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.RailType")
	return &instr.RailType{Rail: r.uintOr(0, 0), Type: r.uintOr(1, 0)}, nil
}

func railEnd(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.RailEnd"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.RailEnd")
	re := &instr.RailEnd{Rail: r.uint(0), X: optFloat(in, 1), Y: optFloat(in, 2)}
	return re, r.err
}

func accuracy(split.Info) (instr.Instruction, error) {
	return &instr.None{}, nil
}

func strictFloat(in split.Info, name string) (float64, error) {
	if err := argsAtLeast(in, 1, name); err != nil {
		return 0, err
	}
	r := newReader(in, name)
	v := r.float(0)
	return v, r.err
}

func adhesion(in split.Info) (instr.Instruction, error) {
	v, err := strictFloat(in, "Track.Adhesion")
	if err != nil {
		return nil, err
	}
	return &instr.Adhesion{Value: v}, nil
}

func pitch(in split.Info) (instr.Instruction, error) {
	v, err := strictFloat(in, "Track.Pitch")
	if err != nil {
		return nil, err
	}
	return &instr.Pitch{Rate: v}, nil
}

func curve(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Curve")
	return &instr.Curve{Radius: r.floatOr(0, 0), Cant: r.floatOr(1, 0)}, nil
}

func turn(in split.Info) (instr.Instruction, error) {
	return &instr.Turn{Ratio: newReader(in, "").floatOr(0, 0)}, nil
}

func height(in split.Info) (instr.Instruction, error) {
	v, err := strictFloat(in, "Track.Height")
	if err != nil {
		return nil, err
	}
	return &instr.Height{Y: v}, nil
}
