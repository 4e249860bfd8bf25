package funclist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optfun/core"
)

// simpleF builds a SimpleFunc for tests, failing the test on construction
// errors. calc receives the function's local float variables.
func simpleF(t *testing.T, p *core.Problem, name string, cnames, vnamesFloat []string,
	calc func(vf []float64) []float64, deriv core.DerivFunc) *core.SimpleFunc {
	t.Helper()

	f, err := core.NewSimpleFunc(p, name, cnames, nil, vnamesFloat,
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return calc(vf), nil
		}, deriv)
	require.NoError(t, err, "building function %s", name)

	return f
}

// mockFunc is a hand-rolled core.Function for tests that need to
// misbehave or record their inputs (core.SimpleFunc validates its own
// output sizes, so it cannot).
type mockFunc struct {
	core.Base

	out   []float64 // returned from every individual evaluation
	deriv []float64 // AnaDeriv values, trimmed to the request size

	lastVarsFloat  []float64
	lastVarIdx     int
	lastComponents []int
	derivCalls     int
}

var _ core.Function = (*mockFunc)(nil)

func newMock(t *testing.T, p *core.Problem, name string, cnames, vnamesFloat []string, out []float64) *mockFunc {
	t.Helper()

	b, err := core.NewBase(p, name, cnames, nil, vnamesFloat)
	require.NoError(t, err, "building mock %s", name)

	return &mockFunc{Base: b, out: out}
}

func (m *mockFunc) CalcIndividual(_ []int, vf []float64, _ any) ([]float64, error) {
	m.lastVarsFloat = vf

	return m.out, nil
}

func (m *mockFunc) CalcPopulation(varsInt [][]int, varsFloat *mat.Dense, _ any) (*mat.Dense, error) {
	nPop := len(varsInt)
	if varsFloat != nil {
		nPop, _ = varsFloat.Dims()
	}
	out := mat.NewDense(nPop, len(m.out), nil)
	for i := 0; i < nPop; i++ {
		out.SetRow(i, m.out)
	}

	return out, nil
}

func (m *mockFunc) FinalizeIndividual(varsInt []int, varsFloat []float64, results any, _ int) ([]float64, error) {
	return m.CalcIndividual(varsInt, varsFloat, results)
}

func (m *mockFunc) FinalizePopulation(varsInt [][]int, varsFloat *mat.Dense, results any, _ int) (*mat.Dense, error) {
	return m.CalcPopulation(varsInt, varsFloat, results)
}

func (m *mockFunc) AnaDeriv(_ []int, vf []float64, varIdx int, components []int) ([]float64, error) {
	m.lastVarsFloat = vf
	m.lastVarIdx = varIdx
	m.lastComponents = components
	m.derivCalls++

	n := m.NComponents()
	if components != nil {
		n = len(components)
	}
	if m.deriv == nil {
		return core.NaNVector(n), nil
	}

	return m.deriv[:n], nil
}
