package funclist_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/optfun/core"
	"github.com/katalvlaran/optfun/funclist"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFunctionList_CalcIndividual
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two objectives over a shared pool of three float variables:
//	  area(x, z)    = x * z          (one component)
//	  spacing(y)    = y+1 and y-1    (two components)
//	The list builds the registry [x, z, y], slices each candidate's
//	values per function, and concatenates the outputs.
//
// Use case:
//
//	Feeding a multi-objective optimizer one composite callable.
func ExampleFunctionList_CalcIndividual() {
	p := core.NewProblem("layout")

	area, _ := core.NewSimpleFunc(p, "area", []string{"area"}, nil, []string{"x", "z"},
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return []float64{vf[0] * vf[1]}, nil
		}, nil)
	spacing, _ := core.NewSimpleFunc(p, "spacing", []string{"lo", "hi"}, nil, []string{"y"},
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return []float64{vf[0] - 1, vf[0] + 1}, nil
		}, nil)

	l, _ := funclist.New(p, "objectives")
	_ = l.Append(area)
	_ = l.Append(spacing)
	_ = l.Initialize(0)

	fmt.Println("registry:", l.VarNamesFloat())

	vals, _ := l.CalcIndividual(nil, []float64{10, 20, 5}, nil) // x=10, z=20, y=5
	fmt.Println("values:", vals)

	// Output:
	// registry: [x z y]
	// values: [200 4 6]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFunctionList_CalcPopulation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same composite evaluated for a batch of three candidates at
//	once: variable data has one row per individual, and so does the
//	result. Contiguous variable selections are matrix views — no copy.
func ExampleFunctionList_CalcPopulation() {
	p := core.NewProblem("layout")

	area, _ := core.NewSimpleFunc(p, "area", []string{"area"}, nil, []string{"x", "z"},
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return []float64{vf[0] * vf[1]}, nil
		}, nil)
	spacing, _ := core.NewSimpleFunc(p, "spacing", []string{"gap"}, nil, []string{"y"},
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return []float64{2 * vf[0]}, nil
		}, nil)

	l, _ := funclist.New(p, "objectives")
	_ = l.Append(area)
	_ = l.Append(spacing)
	_ = l.Initialize(0)

	pop := mat.NewDense(3, 3, []float64{ // columns: x, z, y
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	out, _ := l.CalcPopulation(nil, pop, nil)

	for i := 0; i < 3; i++ {
		fmt.Println(mat.Row(nil, i, out))
	}

	// Output:
	// [2 6]
	// [20 12]
	// [56 18]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleFunctionList_AnaDeriv
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Ask the composite for ∂/∂y. Only spacing depends on y and supplies an
//	analytic derivative; area's lane stays NaN — the explicit signal to
//	fall back to a numerical estimate for that component.
func ExampleFunctionList_AnaDeriv() {
	p := core.NewProblem("layout")

	area, _ := core.NewSimpleFunc(p, "area", []string{"area"}, nil, []string{"x", "z"},
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return []float64{vf[0] * vf[1]}, nil
		}, nil)
	spacing, _ := core.NewSimpleFunc(p, "spacing", []string{"gap"}, nil, []string{"y"},
		func(_ []int, vf []float64, _ any) ([]float64, error) {
			return []float64{2 * vf[0]}, nil
		},
		func(_ []int, _ []float64, _ int, _ []int) ([]float64, error) {
			return []float64{2}, nil // d(2y)/dy
		})

	l, _ := funclist.New(p, "objectives")
	_ = l.Append(area)
	_ = l.Append(spacing)
	_ = l.Initialize(0)

	// registry [x, z, y]: y sits at position 2
	d, _ := l.AnaDeriv(nil, []float64{10, 20, 5}, 2, nil)
	fmt.Println("deriv:", d)

	// Output:
	// deriv: [NaN 2]
}
