package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// CalcFunc evaluates one individual from its local variable values and the
// opaque problem results. It returns one value per declared component.
type CalcFunc func(varsInt []int, varsFloat []float64, results any) ([]float64, error)

// DerivFunc computes the partial derivative of the selected components
// (nil = all) with respect to the local float variable at varIdx.
type DerivFunc func(varsInt []int, varsFloat []float64, varIdx int, components []int) ([]float64, error)

// SimpleFunc is a leaf Function backed by plain closures: one closure for
// the math, an optional one for the analytic derivative. The population
// path evaluates the calc closure row by row; finalization delegates to
// the same closure, ignoring verbosity.
//
// When the deriv closure is nil, AnaDeriv returns an all-NaN vector — the
// explicit "no analytic derivative available" signal.
type SimpleFunc struct {
	Base
	calc  CalcFunc
	deriv DerivFunc
}

// assert the full contract at compile time.
var _ Function = (*SimpleFunc)(nil)

// NewSimpleFunc wraps closures into a Function.
//
// Inputs:
//   - problem, name: as in NewBase.
//   - componentNames: ordered output component names (must be non-empty).
//   - varNamesInt / varNamesFloat: the variables the closures read, in the
//     order the closures expect them.
//   - calc: the evaluation closure (must be non-nil).
//   - deriv: the derivative closure, or nil when no analytic form exists.
//
// Errors: ErrNilProblem, ErrEmptyName, ErrNoComponents, ErrNilCalc.
func NewSimpleFunc(problem *Problem, name string, componentNames, varNamesInt, varNamesFloat []string, calc CalcFunc, deriv DerivFunc) (*SimpleFunc, error) {
	b, err := NewBase(problem, name, componentNames, varNamesInt, varNamesFloat)
	if err != nil {
		return nil, err
	}
	if len(componentNames) == 0 {
		return nil, fmt.Errorf("core: function %q: %w", name, ErrNoComponents)
	}
	if calc == nil {
		return nil, fmt.Errorf("core: function %q: %w", name, ErrNilCalc)
	}

	return &SimpleFunc{Base: b, calc: calc, deriv: deriv}, nil
}

// CalcIndividual evaluates one candidate via the calc closure and verifies
// the declared component count.
func (f *SimpleFunc) CalcIndividual(varsInt []int, varsFloat []float64, results any) ([]float64, error) {
	out, err := f.calc(varsInt, varsFloat, results)
	if err != nil {
		return nil, fmt.Errorf("core: function %q: %w", f.Name(), err)
	}
	if len(out) != f.NComponents() {
		return nil, fmt.Errorf("core: function %q: got %d values: %w", f.Name(), len(out), ErrComponentCount)
	}

	return out, nil
}

// CalcPopulation evaluates a batch by looping CalcIndividual over rows.
// The population size is taken from varsFloat when present, else from the
// integer rows.
func (f *SimpleFunc) CalcPopulation(varsInt [][]int, varsFloat *mat.Dense, results any) (*mat.Dense, error) {
	nPop := popSize(varsInt, varsFloat)
	if nPop == 0 {
		return nil, fmt.Errorf("core: function %q: %w", f.Name(), ErrEmptyPopulation)
	}

	out := mat.NewDense(nPop, f.NComponents(), nil)
	for i := 0; i < nPop; i++ {
		row, err := f.CalcIndividual(rowInt(varsInt, i), rowFloat(varsFloat, i), results)
		if err != nil {
			return nil, err
		}
		out.SetRow(i, row)
	}

	return out, nil
}

// FinalizeIndividual delegates to CalcIndividual; the closures carry no
// separate diagnostics pass.
func (f *SimpleFunc) FinalizeIndividual(varsInt []int, varsFloat []float64, results any, verbosity int) ([]float64, error) {
	_ = verbosity

	return f.CalcIndividual(varsInt, varsFloat, results)
}

// FinalizePopulation delegates to CalcPopulation.
func (f *SimpleFunc) FinalizePopulation(varsInt [][]int, varsFloat *mat.Dense, results any, verbosity int) (*mat.Dense, error) {
	_ = verbosity

	return f.CalcPopulation(varsInt, varsFloat, results)
}

// AnaDeriv delegates to the deriv closure when one exists; otherwise it
// returns the all-NaN "unavailable" vector sized to the request.
func (f *SimpleFunc) AnaDeriv(varsInt []int, varsFloat []float64, varIdx int, components []int) ([]float64, error) {
	n := f.NComponents()
	if components != nil {
		n = len(components)
	}
	if f.deriv == nil {
		return NaNVector(n), nil
	}

	out, err := f.deriv(varsInt, varsFloat, varIdx, components)
	if err != nil {
		return nil, fmt.Errorf("core: function %q: %w", f.Name(), err)
	}
	if len(out) != n {
		return nil, fmt.Errorf("core: function %q: got %d derivatives: %w", f.Name(), len(out), ErrComponentCount)
	}

	return out, nil
}

// NaNVector returns a length-n vector filled with the NaN sentinel.
func NaNVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}

	return v
}

// NaNDense returns an (r, c) matrix filled with the NaN sentinel.
func NaNDense(r, c int) *mat.Dense {
	return mat.NewDense(r, c, NaNVector(r*c))
}

// popSize derives the batch size from whichever variable block is present.
func popSize(varsInt [][]int, varsFloat *mat.Dense) int {
	if varsFloat != nil {
		r, _ := varsFloat.Dims()

		return r
	}

	return len(varsInt)
}

// rowInt selects one individual's integer values (nil when absent).
func rowInt(varsInt [][]int, i int) []int {
	if varsInt == nil {
		return nil
	}

	return varsInt[i]
}

// rowFloat selects one individual's float values (nil when absent).
func rowFloat(varsFloat *mat.Dense, i int) []float64 {
	if varsFloat == nil {
		return nil
	}

	return varsFloat.RawRowView(i)
}
