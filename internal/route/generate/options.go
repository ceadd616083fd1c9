package generate

import (
	"bve-compiler/internal/route/instr"
	"bve-compiler/internal/route/split"
)

func unitOfLength(in split.Info) (instr.Instruction, error) {
	if len(in.Args) == 0 {
		return &instr.UnitOfLength{Factors: []float64{1, 1}}, nil
	}
	r := newReader(in, "Options.UnitOfLength")
	factors := make([]float64, 0, len(in.Args)+1)
	factors = append(factors, 1, r.floatOr(0, 1))
	for i := 1; i < len(in.Args); i++ {
		factors = append(factors, r.floatOr(i, 0))
	}
	return &instr.UnitOfLength{Factors: factors}, nil
}

func unitOfSpeed(in split.Info) (instr.Instruction, error) {
	return &instr.UnitOfSpeed{Factor: newReader(in, "").floatOr(0, 1)}, nil
}

func blockLength(in split.Info) (instr.Instruction, error) {
	return &instr.BlockLength{Length: newReader(in, "").floatOr(0, 25)}, nil
}

// flag reads the first argument as an off (0) / on switch.
func flag(in split.Info) bool {
	return newReader(in, "").intOr(0, 0) != 0
}

func objectVisibility(in split.Info) (instr.Instruction, error) {
	mode := instr.VisibilityLegacy
	if flag(in) {
		mode = instr.VisibilityTrackBased
	}
	return &instr.ObjectVisibility{Mode: mode}, nil
}

func sectionBehavior(in split.Info) (instr.Instruction, error) {
	mode := instr.SectionNormal
	if flag(in) {
		mode = instr.SectionSimplified
	}
	return &instr.SectionBehavior{Mode: mode}, nil
}

func cantBehavior(in split.Info) (instr.Instruction, error) {
	mode := instr.CantUnsigned
	if flag(in) {
		mode = instr.CantSigned
	}
	return &instr.CantBehavior{Mode: mode}, nil
}

func fogBehavior(in split.Info) (instr.Instruction, error) {
	mode := instr.FogBlockBased
	if flag(in) {
		mode = instr.FogInterpolated
	}
	return &instr.FogBehavior{Mode: mode}, nil
}

func compatibleTransparencyMode(in split.Info) (instr.Instruction, error) {
	return &instr.CompatibleTransparencyMode{On: flag(in)}, nil
}

func enableBveTsHacks(in split.Info) (instr.Instruction, error) {
	return &instr.EnableBveTsHacks{On: flag(in)}, nil
}
