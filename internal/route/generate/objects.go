package generate

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/scene"
	"bve-compiler/internal/route/split"
)

// freeObj keeps rail -1, which places the object relative to the ground
// below rail 0.
func freeObj(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.FreeObj")
	rail := r.intOr(0, 0)
	if rail < instr.GroundRail {
		rail = 0
	}
	return &instr.FreeObj{Rail: rail, Index: r.uintOr(1, 0), Placement: r.placement(2)}, nil
}

// side reads -1 / 1 as left / right. An empty argument means both sides.
func side(r *reader, i int) scene.Side {
	if r.str(i) == "" {
		return scene.SideBoth
	}
	switch r.integer(i) {
	case -1:
		return scene.SideLeft
	case 1:
		return scene.SideRight
	}
	return scene.SideBoth
}

func wall(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Track.Wall"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Wall")
	w := &instr.Wall{Rail: r.uintOr(0, 0), Direction: side(r, 1), Index: r.uintOr(2, 0)}
	return w, r.err
}

func dike(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Track.Dike"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Dike")
	d := &instr.Dike{Rail: r.uintOr(0, 0), Direction: side(r, 1), Index: r.uintOr(2, 0)}
	return d, r.err
}

func singleUint(in split.Info, name string) (int, error) {
	if err := argsAtLeast(in, 1, name); err != nil {
		return 0, err
	}
	r := newReader(in, name)
	v := r.uint(0)
	return v, r.err
}

func wallEnd(in split.Info) (instr.Instruction, error) {
	v, err := singleUint(in, "Track.WallEnd")
	if err != nil {
		return nil, err
	}
	return &instr.WallEnd{Rail: v}, nil
}

func dikeEnd(in split.Info) (instr.Instruction, error) {
	v, err := singleUint(in, "Track.DikeEnd")
	if err != nil {
		return nil, err
	}
	return &instr.DikeEnd{Rail: v}, nil
}

func pole(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Pole")
	return &instr.Pole{
		Rail:            r.uintOr(0, 0),
		AdditionalRails: r.uintOr(1, 0),
		Location:        r.intOr(2, 0),
		Interval:        r.intOr(3, 1),
		Index:           r.uintOr(4, 0),
	}, nil
}

func poleEnd(in split.Info) (instr.Instruction, error) {
	v, err := singleUint(in, "Track.PoleEnd")
	if err != nil {
		return nil, err
	}
	return &instr.PoleEnd{Rail: v}, nil
}

func crack(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Track.Crack"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Crack")
	c := &instr.Crack{Rail1: r.uint(0), Rail2: r.uint(1), Index: r.uintOr(2, 0)}
	return c, r.err
}

func ground(in split.Info) (instr.Instruction, error) {
	v, err := singleUint(in, "Track.Ground")
	if err != nil {
		return nil, err
	}
	return &instr.Ground{Index: v}, nil
}
