package funclist

import (
	"fmt"

	"github.com/katalvlaran/optfun/core"
)

// AnaDeriv composes the analytic partial derivative of the selected
// components with respect to the float variable at registry position
// varIdx.
//
// The requested components (nil = all) are partitioned into per-function
// subsets by the ledger offsets and translated to each function's local
// component indices. A function whose subset is empty contributes
// nothing. A function whose float VarMap does not contain varIdx leaves
// its lanes at NaN — the explicit "no analytic derivative available"
// signal, distinct from a zero derivative. Otherwise varIdx is translated
// to its local rank within the function's map, the local variable vectors
// are sliced as in CalcIndividual, and the function's own AnaDeriv fills
// the lanes.
//
// The output has one entry per requested component (NComponents() when
// components is nil), ordered by function registration and, within one
// function, by the order of the request. An empty non-nil request yields
// an empty output; a varIdx no function depends on (including an
// out-of-range index) yields an all-NaN output — neither is an error.
//
// Errors: ErrListNotInitialized, ErrVarCount, core.ErrComponentCount, and
// any function error wrapped with both names.
func (l *FunctionList) AnaDeriv(varsInt []int, varsFloat []float64, varIdx int, components []int) ([]float64, error) {
	if !l.Initialized() {
		return nil, fmt.Errorf("funclist: list %q: %w", l.Name(), ErrListNotInitialized)
	}
	if err := l.checkIndividual(varsInt, varsFloat); err != nil {
		return nil, err
	}

	nSel := l.NComponents()
	if components != nil {
		nSel = len(components)
	}
	deriv := core.NaNVector(nSel)

	i0, c0 := 0, 0
	for fi, f := range l.funcs {
		i1 := i0 + l.sizes[fi]

		// the function's share of the request, in local component indices;
		// nil stands for "all of them" when no explicit request was made.
		var local []int
		nLoc := l.sizes[fi]
		if components != nil {
			for _, c := range components {
				if c >= i0 && c < i1 {
					local = append(local, c-i0)
				}
			}
			nLoc = len(local)
		}

		c1 := c0 + nLoc
		if c1 > c0 {
			if vi := l.mapsFloat[fi].rank(varIdx); vi >= 0 {
				out, err := f.AnaDeriv(l.mapsInt[fi].pickInt(varsInt), l.mapsFloat[fi].pickFloat(varsFloat), vi, local)
				if err != nil {
					return nil, fmt.Errorf("funclist: list %q: function %q: %w", l.Name(), f.Name(), err)
				}
				if len(out) != nLoc {
					return nil, fmt.Errorf("funclist: list %q: function %q returned %d of %d derivatives: %w",
						l.Name(), f.Name(), len(out), nLoc, core.ErrComponentCount)
				}
				copy(deriv[c0:c1], out)
			}
		}
		i0, c0 = i1, c1
	}

	return deriv, nil
}
