package funclist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optfun/core"
	"github.com/katalvlaran/optfun/funclist"
)

// buildXYZ returns an initialized list whose float registry is [x, y, z]:
// F0 reads [x], F1 reads [y], F2 reads [x, z] (a non-consecutive pair).
func buildXYZ(t *testing.T) (*funclist.FunctionList, []*mockFunc) {
	t.Helper()
	p := core.NewProblem("p")

	l, err := funclist.New(p, "objectives")
	require.NoError(t, err)

	f0 := newMock(t, p, "F0", []string{"f0"}, []string{"x"}, []float64{0})
	f1 := newMock(t, p, "F1", []string{"f1"}, []string{"y"}, []float64{0})
	f2 := newMock(t, p, "F2", []string{"f2"}, []string{"x", "z"}, []float64{0})
	for _, f := range []*mockFunc{f0, f1, f2} {
		require.NoError(t, l.Append(f))
	}
	require.NoError(t, l.Initialize(0))
	require.Equal(t, []string{"x", "y", "z"}, l.VarNamesFloat(), "registry order")

	return l, []*mockFunc{f0, f1, f2}
}

// TestVarMap_RangeVsList verifies the tagged representation: consecutive
// increasing positions collapse to a range, scattered positions keep the
// explicit list, no declared variables give an empty map.
func TestVarMap_RangeVsList(t *testing.T) {
	l, _ := buildXYZ(t)

	m0 := l.VarMapFloat(0) // [x] → position 0
	assert.True(t, m0.IsRange(), "single position is a length-1 range")
	assert.Equal(t, 1, m0.Len())
	assert.Equal(t, []int{0}, m0.Positions())

	m1 := l.VarMapFloat(1) // [y] → position 1
	assert.True(t, m1.IsRange())
	assert.Equal(t, []int{1}, m1.Positions())

	m2 := l.VarMapFloat(2) // [x, z] → positions 0 and 2: not consecutive
	assert.False(t, m2.IsRange(), "scattered positions stay an explicit list")
	assert.Equal(t, 2, m2.Len())
	assert.Equal(t, []int{0, 2}, m2.Positions())

	mi := l.VarMapInt(0) // no integer variables anywhere
	assert.True(t, mi.IsEmpty(), "empty namespace gives an empty map")
	assert.Equal(t, 0, mi.Len())
	assert.Empty(t, mi.Positions())
}

// TestVarMap_ConsecutiveRun verifies a multi-variable consecutive run is
// collapsed to one contiguous range.
func TestVarMap_ConsecutiveRun(t *testing.T) {
	p := core.NewProblem("p")

	l, err := funclist.New(p, "objectives")
	require.NoError(t, err)

	fA := newMock(t, p, "A", []string{"a"}, []string{"u", "v", "w"}, []float64{0})
	fB := newMock(t, p, "B", []string{"b"}, []string{"v", "w"}, []float64{0})
	require.NoError(t, l.Append(fA))
	require.NoError(t, l.Append(fB))
	require.NoError(t, l.Initialize(0))

	mA := l.VarMapFloat(0)
	assert.True(t, mA.IsRange(), "positions 0..2 collapse to a range")
	assert.Equal(t, []int{0, 1, 2}, mA.Positions())

	mB := l.VarMapFloat(1)
	assert.True(t, mB.IsRange(), "positions 1..2 collapse to a range")
	assert.Equal(t, []int{1, 2}, mB.Positions())
}

// TestVarMap_ReversedOrderStaysList verifies that a function declaring
// variables against registry order keeps the explicit list, preserving
// its own local order.
func TestVarMap_ReversedOrderStaysList(t *testing.T) {
	p := core.NewProblem("p")

	l, err := funclist.New(p, "objectives")
	require.NoError(t, err)

	fA := newMock(t, p, "A", []string{"a"}, []string{"u", "v"}, []float64{0})
	fB := newMock(t, p, "B", []string{"b"}, []string{"v", "u"}, []float64{0}) // reversed
	require.NoError(t, l.Append(fA))
	require.NoError(t, l.Append(fB))
	require.NoError(t, l.Initialize(0))

	mB := l.VarMapFloat(1)
	assert.False(t, mB.IsRange(), "descending positions cannot be a range")
	assert.Equal(t, []int{1, 0}, mB.Positions(), "local declaration order preserved")
}

// TestVarMap_LocalSlices verifies the central mapping invariant:
// registry [x, y, z] with values [10, 20, 30] must hand
// F2 (reads [x, z]) the local vector [10, 30] and F1 (reads [y]) [20].
func TestVarMap_LocalSlices(t *testing.T) {
	l, fs := buildXYZ(t)

	_, err := l.CalcIndividual(nil, []float64{10, 20, 30}, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{10}, fs[0].lastVarsFloat, "F0 local slice")
	assert.Equal(t, []float64{20}, fs[1].lastVarsFloat, "F1 local slice")
	assert.Equal(t, []float64{10, 30}, fs[2].lastVarsFloat, "F2 local slice in its declared order")
}
