package instr

type ObjectVisibilityMode int

const (
	VisibilityLegacy ObjectVisibilityMode = iota
	VisibilityTrackBased
)

type SectionMode int

const (
	SectionNormal SectionMode = iota
	SectionSimplified
)

type CantMode int

const (
	CantUnsigned CantMode = iota
	CantSigned
)

type FogMode int

const (
	FogBlockBased FogMode = iota
	FogInterpolated
)

// UnitOfLength sets the factors applied to each component of a position
// statement. Factors[0] is always 1.
type UnitOfLength struct {
	Base
	Factors []float64
}

type UnitOfSpeed struct {
	Base
	Factor float64
}

type BlockLength struct {
	Base
	Length float64
}

type ObjectVisibility struct {
	Base
	Mode ObjectVisibilityMode
}

type SectionBehavior struct {
	Base
	Mode SectionMode
}

type CantBehavior struct {
	Base
	Mode CantMode
}

type FogBehavior struct {
	Base
	Mode FogMode
}

type CompatibleTransparencyMode struct {
	Base
	On bool
}

type EnableBveTsHacks struct {
	Base
	On bool
}
