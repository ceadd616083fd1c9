package generate

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

func limit(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Limit")
	return &instr.Limit{
		Speed:  r.floatOr(0, 0),
		Post:   direction(r.intOr(1, 0)),
		Course: direction(r.intOr(2, 0)),
	}, nil
}

func section(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.Section"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Section")
	s := &instr.Section{ATerms: make([]int, 0, r.n())}
	for i := 0; i < r.n(); i++ {
		s.ATerms = append(s.ATerms, r.uintOr(i, 0))
	}
	return s, nil
}

func sigF(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Track.SigF"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.SigF")
	s := &instr.SigF{Signal: r.uint(0), Section: r.uint(1), Placement: r.placement(2)}
	return s, r.err
}

var aspectCodes = map[int]instr.SignalAspect{
	2:  instr.AspectRY,
	3:  instr.AspectRYG,
	4:  instr.AspectRYYYG,
	-4: instr.AspectRYYGG,
	5:  instr.AspectRYYYYGG,
	-5: instr.AspectRYYGGGG,
	6:  instr.AspectRYYYYGGGG,
}

func trackSignal(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Signal")
	s := &instr.TrackSignal{Aspect: instr.AspectRG, Placement: r.placement(2)}
	if r.n() > 0 {
		if a, ok := aspectCodes[r.integer(0)]; ok {
			s.Aspect = a
		}
	}
	return s, r.err
}

func relay(in split.Info) (instr.Instruction, error) {
	return &instr.Relay{Placement: newReader(in, "Track.Relay").placement(0)}, nil
}

func beacon(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 4, "Track.Beacon"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Beacon")
	b := &instr.Beacon{
		Type:      r.uint(0),
		Index:     r.integer(1),
		Section:   r.uint(2),
		Data:      r.uint(3),
		Placement: r.placement(4),
	}
	return b, r.err
}

func transponder(in split.Info) (instr.Instruction, error) {
	r := newReader(in, "Track.Transponder")
	t := &instr.Transponder{
		Type:         instr.TransponderS,
		Signal:       r.uintOr(1, 0),
		SwitchSystem: true,
		Placement:    r.placement(3),
	}
	if r.has(2) {
		t.SwitchSystem = r.intOr(2, 0) == 0
	}
	if v := r.intOr(0, 0); v >= 0 && v <= int(instr.TransponderATSPStop) {
		t.Type = instr.TransponderType(v)
	}
	return t, nil
}

func atsSn(split.Info) (instr.Instruction, error) {
	return &instr.Transponder{Type: instr.TransponderS, SwitchSystem: true}, nil
}

func atsP(split.Info) (instr.Instruction, error) {
	return &instr.Transponder{Type: instr.TransponderATSPRenewal, SwitchSystem: true}, nil
}

func pattern(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 2, "Track.Pattern"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.Pattern")
	p := &instr.Pattern{Permanent: r.integer(0) == 0, Speed: r.float(1)}
	return p, r.err
}

func pLimit(in split.Info) (instr.Instruction, error) {
	if err := argsAtLeast(in, 1, "Track.PLimit"); err != nil {
		return nil, err
	}
	r := newReader(in, "Track.PLimit")
	p := &instr.Pattern{Speed: r.float(0)}
	return p, r.err
}
