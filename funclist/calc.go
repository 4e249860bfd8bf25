package funclist

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optfun/core"
)

// SplitIndividual splits a flat component vector into one piece per
// function, in registration order. Pieces are subslice views into data
// at the ledger offsets, not copies; concatenating them in order
// reproduces data exactly.
//
// Errors: ErrListNotInitialized, ErrDataLength.
func (l *FunctionList) SplitIndividual(data []float64) ([][]float64, error) {
	if !l.Initialized() {
		return nil, fmt.Errorf("funclist: list %q: %w", l.Name(), ErrListNotInitialized)
	}
	if len(data) != l.NComponents() {
		return nil, fmt.Errorf("funclist: list %q: got length %d, want %d: %w",
			l.Name(), len(data), l.NComponents(), ErrDataLength)
	}

	out := make([][]float64, 0, len(l.funcs))
	i0 := 0
	for _, s := range l.sizes {
		out = append(out, data[i0:i0+s])
		i0 += s
	}

	return out, nil
}

// SplitPopulation splits population data of shape (n_pop, NComponents())
// along the component axis: one Dense column view per function, at the
// ledger offsets. A zero-component function gets a nil entry.
//
// Errors: ErrListNotInitialized, ErrDataShape.
func (l *FunctionList) SplitPopulation(data *mat.Dense) ([]*mat.Dense, error) {
	if !l.Initialized() {
		return nil, fmt.Errorf("funclist: list %q: %w", l.Name(), ErrListNotInitialized)
	}
	if data == nil {
		return nil, fmt.Errorf("funclist: list %q: nil data: %w", l.Name(), ErrDataShape)
	}
	r, c := data.Dims()
	if c != l.NComponents() {
		return nil, fmt.Errorf("funclist: list %q: got %d columns, want %d: %w",
			l.Name(), c, l.NComponents(), ErrDataShape)
	}

	out := make([]*mat.Dense, 0, len(l.funcs))
	i0 := 0
	for _, s := range l.sizes {
		if s == 0 {
			out = append(out, nil)
			continue
		}
		out = append(out, data.Slice(0, r, i0, i0+s).(*mat.Dense))
		i0 += s
	}

	return out, nil
}

// CalcIndividual evaluates the composite for one candidate: the
// registry-ordered variable vectors are sliced per function through the
// precomputed VarMaps, each function is invoked, and its output lands in
// its ledger offsets of a NaN-prefilled result of length NComponents().
// Every component is written exactly once.
//
// Errors: ErrListNotInitialized, ErrVarCount, core.ErrComponentCount, and
// any function error wrapped with both names.
func (l *FunctionList) CalcIndividual(varsInt []int, varsFloat []float64, results any) ([]float64, error) {
	return l.runIndividual(varsInt, varsFloat,
		func(f core.Function, vi []int, vf []float64) ([]float64, error) {
			return f.CalcIndividual(vi, vf, results)
		})
}

// CalcPopulation evaluates the composite for a batch. Variable data and
// results gain a leading individual axis: varsInt rows and varsFloat of
// shape (n_pop, len(VarNamesFloat())). VarMaps apply to the trailing
// axis — contiguous maps as Dense column views, list maps as gathered
// copies — and each function's (n_pop, size) output is copied into its
// column range of the NaN-prefilled (n_pop, NComponents()) result.
//
// Errors: ErrListNotInitialized, ErrVarCount, core.ErrEmptyPopulation,
// core.ErrNoComponents, core.ErrComponentCount.
func (l *FunctionList) CalcPopulation(varsInt [][]int, varsFloat *mat.Dense, results any) (*mat.Dense, error) {
	return l.runPopulation(varsInt, varsFloat,
		func(f core.Function, vi [][]int, vf *mat.Dense) (*mat.Dense, error) {
			return f.CalcPopulation(vi, vf, results)
		})
}

// FinalizeIndividual runs the terminal, diagnostics-capable pass over the
// winning candidate: same slicing and routing as CalcIndividual, but
// delegating to each function's FinalizeIndividual with verbosity.
func (l *FunctionList) FinalizeIndividual(varsInt []int, varsFloat []float64, results any, verbosity int) ([]float64, error) {
	return l.runIndividual(varsInt, varsFloat,
		func(f core.Function, vi []int, vf []float64) ([]float64, error) {
			return f.FinalizeIndividual(vi, vf, results, verbosity)
		})
}

// FinalizePopulation runs the terminal pass over the final population.
func (l *FunctionList) FinalizePopulation(varsInt [][]int, varsFloat *mat.Dense, results any, verbosity int) (*mat.Dense, error) {
	return l.runPopulation(varsInt, varsFloat,
		func(f core.Function, vi [][]int, vf *mat.Dense) (*mat.Dense, error) {
			return f.FinalizePopulation(vi, vf, results, verbosity)
		})
}

// runIndividual drives one pass over the functions in registration
// order, writing each output into strictly increasing, non-overlapping
// ledger offsets. The eval hook is the only difference between the calc
// and finalize passes.
func (l *FunctionList) runIndividual(varsInt []int, varsFloat []float64,
	eval func(f core.Function, vi []int, vf []float64) ([]float64, error)) ([]float64, error) {
	if !l.Initialized() {
		return nil, fmt.Errorf("funclist: list %q: %w", l.Name(), ErrListNotInitialized)
	}
	if err := l.checkIndividual(varsInt, varsFloat); err != nil {
		return nil, err
	}

	values := core.NaNVector(l.NComponents())
	i0 := 0
	for fi, f := range l.funcs {
		i1 := i0 + l.sizes[fi]
		if l.sizes[fi] > 0 {
			out, err := eval(f, l.mapsInt[fi].pickInt(varsInt), l.mapsFloat[fi].pickFloat(varsFloat))
			if err != nil {
				return nil, fmt.Errorf("funclist: list %q: function %q: %w", l.Name(), f.Name(), err)
			}
			if len(out) != l.sizes[fi] {
				return nil, fmt.Errorf("funclist: list %q: function %q returned %d of %d values: %w",
					l.Name(), f.Name(), len(out), l.sizes[fi], core.ErrComponentCount)
			}
			copy(values[i0:i1], out)
		}
		i0 = i1
	}

	return values, nil
}

// runPopulation is the batch twin of runIndividual.
func (l *FunctionList) runPopulation(varsInt [][]int, varsFloat *mat.Dense,
	eval func(f core.Function, vi [][]int, vf *mat.Dense) (*mat.Dense, error)) (*mat.Dense, error) {
	if !l.Initialized() {
		return nil, fmt.Errorf("funclist: list %q: %w", l.Name(), ErrListNotInitialized)
	}
	nPop, err := l.checkPopulation(varsInt, varsFloat)
	if err != nil {
		return nil, err
	}
	nc := l.NComponents()
	if nc == 0 {
		return nil, fmt.Errorf("funclist: list %q: %w", l.Name(), core.ErrNoComponents)
	}

	values := core.NaNDense(nPop, nc)
	i0 := 0
	for fi, f := range l.funcs {
		i1 := i0 + l.sizes[fi]
		if l.sizes[fi] > 0 {
			out, ferr := eval(f, l.mapsInt[fi].pickRows(varsInt), l.mapsFloat[fi].pickCols(varsFloat, nPop))
			if ferr != nil {
				return nil, fmt.Errorf("funclist: list %q: function %q: %w", l.Name(), f.Name(), ferr)
			}
			if out == nil {
				return nil, fmt.Errorf("funclist: list %q: function %q returned no values: %w",
					l.Name(), f.Name(), core.ErrComponentCount)
			}
			if r, c := out.Dims(); r != nPop || c != l.sizes[fi] {
				return nil, fmt.Errorf("funclist: list %q: function %q returned (%d,%d), want (%d,%d): %w",
					l.Name(), f.Name(), r, c, nPop, l.sizes[fi], core.ErrComponentCount)
			}
			values.Slice(0, nPop, i0, i1).(*mat.Dense).Copy(out)
		}
		i0 = i1
	}

	return values, nil
}

// checkIndividual verifies the caller's vectors cover the registries.
func (l *FunctionList) checkIndividual(varsInt []int, varsFloat []float64) error {
	if len(varsInt) != len(l.vnamesInt) {
		return fmt.Errorf("funclist: list %q: got %d int values, registry has %d: %w",
			l.Name(), len(varsInt), len(l.vnamesInt), ErrVarCount)
	}
	if len(varsFloat) != len(l.vnamesFloat) {
		return fmt.Errorf("funclist: list %q: got %d float values, registry has %d: %w",
			l.Name(), len(varsFloat), len(l.vnamesFloat), ErrVarCount)
	}

	return nil
}

// checkPopulation verifies batch shapes and returns the population size.
func (l *FunctionList) checkPopulation(varsInt [][]int, varsFloat *mat.Dense) (int, error) {
	nPop := len(varsInt)
	if varsFloat != nil {
		r, c := varsFloat.Dims()
		if c != len(l.vnamesFloat) {
			return 0, fmt.Errorf("funclist: list %q: got %d float columns, registry has %d: %w",
				l.Name(), c, len(l.vnamesFloat), ErrVarCount)
		}
		nPop = r
	} else if len(l.vnamesFloat) > 0 {
		return 0, fmt.Errorf("funclist: list %q: nil float values, registry has %d: %w",
			l.Name(), len(l.vnamesFloat), ErrVarCount)
	}
	if nPop == 0 {
		return 0, fmt.Errorf("funclist: list %q: %w", l.Name(), core.ErrEmptyPopulation)
	}
	if len(l.vnamesInt) > 0 {
		if len(varsInt) != nPop {
			return 0, fmt.Errorf("funclist: list %q: got %d int rows, want %d: %w",
				l.Name(), len(varsInt), nPop, ErrVarCount)
		}
		for _, row := range varsInt {
			if len(row) != len(l.vnamesInt) {
				return 0, fmt.Errorf("funclist: list %q: got %d int values in a row, registry has %d: %w",
					l.Name(), len(row), len(l.vnamesInt), ErrVarCount)
			}
		}
	}

	return nPop, nil
}
