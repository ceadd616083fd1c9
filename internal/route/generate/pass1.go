package generate

import (
	"sort"

	"bve-compiler/internal/diag"
	"bve-compiler/internal/route/instr"
)

// Pass1 gives every instruction the absolute position of the position
// statement before it, then stable-sorts the list by position. Position
// statements are the dot product of their distances with the current
// unit-of-length factors.
func Pass1(list *instr.List, errs diag.MultiError) {
	pos := -1.0
	factors := []float64{1, 1}
	for _, i := range list.Instructions {
		switch v := i.(type) {
		case *instr.Position:
			if len(v.Distances) > len(factors) {
				errs.Add(list.Filename(v), v.Line,
					"Position has more arguments than UnitOfLength, assuming 0 factors for missing Units.")
			}
			pos = 0
			for k := 0; k < len(v.Distances) && k < len(factors); k++ {
				pos += factors[k] * v.Distances[k]
			}
		case *instr.UnitOfLength:
			factors = v.Factors
		}
		i.Common().Position = pos
	}
	sort.SliceStable(list.Instructions, func(a, b int) bool {
		return list.Instructions[a].Common().Position < list.Instructions[b].Common().Position
	})
}
