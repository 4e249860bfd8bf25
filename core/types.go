// Package core: the Problem identity and the Function capability set.
// This file defines ONLY types; lifecycle plumbing lives in base.go and
// the closure-backed leaf in simple.go.
package core

import "gonum.org/v1/gonum/mat"

// Problem is an opaque identity for the optimization problem that owns the
// full variable pool. Functions composed into one list must be bound to the
// same *Problem; the check is pointer identity, never name equality.
type Problem struct {
	name string
}

// NewProblem creates a problem identity with the given display name.
func NewProblem(name string) *Problem {
	return &Problem{name: name}
}

// Name returns the problem's display name (used in error messages only).
func (p *Problem) Name() string {
	if p == nil {
		return ""
	}

	return p.name
}

// Function is the capability set every optimization function exposes: a
// leaf function over a handful of variables, or a whole FunctionList —
// both satisfy the same contract, which is what makes composition nest.
//
// Variable conventions:
//   - varsInt / varsFloat hold the values of exactly the variables the
//     function declared via VarNamesInt / VarNamesFloat, in declared order.
//   - Population variants carry one row per individual: [][]int for
//     integer values, *mat.Dense (n_pop, n_vars) for float values. A nil
//     matrix / slice stands for "no variables of that kind".
//
// Result conventions:
//   - Individual results have length NComponents(); population results
//     have shape (n_pop, NComponents()).
//   - AnaDeriv returns one entry per requested component (all components
//     when components is nil); entries the function cannot determine
//     analytically are NaN, never zero.
type Function interface {
	// Name returns the function's name.
	Name() string
	// Problem returns the owning problem identity.
	Problem() *Problem
	// Initialized reports whether Initialize has completed.
	Initialized() bool
	// Initialize performs one-shot setup; verbosity 0 = silent.
	Initialize(verbosity int) error

	// ComponentNames returns the ordered output component names.
	ComponentNames() []string
	// NComponents returns the number of output components.
	NComponents() int
	// VarNamesInt returns the ordered integer variable names the function reads.
	VarNamesInt() []string
	// VarNamesFloat returns the ordered float variable names the function reads.
	VarNamesFloat() []string

	// CalcIndividual evaluates one candidate; results is the opaque outcome
	// of applying the candidate to the owning problem, passed through untouched.
	CalcIndividual(varsInt []int, varsFloat []float64, results any) ([]float64, error)
	// CalcPopulation evaluates a batch of candidates along the leading axis.
	CalcPopulation(varsInt [][]int, varsFloat *mat.Dense, results any) (*mat.Dense, error)

	// FinalizeIndividual is a terminal, diagnostics-capable evaluation of the
	// winning candidate; verbosity 0 = silent.
	FinalizeIndividual(varsInt []int, varsFloat []float64, results any, verbosity int) ([]float64, error)
	// FinalizePopulation is the batch form of FinalizeIndividual.
	FinalizePopulation(varsInt [][]int, varsFloat *mat.Dense, results any, verbosity int) (*mat.Dense, error)

	// AnaDeriv computes the partial derivative of the selected components
	// (nil = all) with respect to the float variable at local index varIdx.
	AnaDeriv(varsInt []int, varsFloat []float64, varIdx int, components []int) ([]float64, error)
}
