// Package optfun assembles optimization objectives and constraints out of
// small, independently defined functions over a shared pool of decision
// variables — and evaluates the composite for one candidate or a whole
// population in a single call.
//
// 🚀 What is optfun?
//
//	A pure-Go library for the bookkeeping half of numerical optimization:
//		• Variable registries: the de-duplicated, order-preserving union of
//		  every sub-function's integer and float variable names
//		• Index mappings: per-function translation from registry positions
//		  into the function's own local variable order, collapsed to a
//		  contiguous range whenever possible (views, not copies)
//		• Component ledgers: flat offsets that let per-function outputs be
//		  composed into — and split back out of — one result vector
//		• Analytic-derivative routing with an explicit NaN "unavailable"
//		  contract, so callers can fall back to numerical estimates
//
// ✨ Why choose optfun?
//
//   - Composable – a FunctionList satisfies the same Function contract as
//     a leaf, so lists nest into trees via ordinary interface dispatch
//   - Vectorized – population data rides on gonum's mat.Dense; contiguous
//     mappings slice it without copying
//   - Predictable – two-phase lifecycle: register, initialize once, then
//     every evaluation is a pure function of immutable state
//   - Honest errors – sentinel errors matched with errors.Is, never a
//     panic on user input
//
// Everything is organized under two subpackages:
//
//	core/     — the Function contract, Problem identity, the embeddable
//	            Base lifecycle, and the closure-backed SimpleFunc leaf
//	funclist/ — the FunctionList composer: registries, index mappings,
//	            ledgers, evaluation, finalization, derivative routing
//
// Quick sketch:
//
//	p := core.NewProblem("layout")
//	obj := funclist.New(p, "objectives")
//	_ = obj.Append(area)    // reads float vars [x, z]
//	_ = obj.Append(spacing) // reads float var [y]
//	_ = obj.Initialize(0)
//
//	vals, err := obj.CalcIndividual(nil, []float64{10, 20, 30}, nil)
//	// vals holds area's and spacing's components, concatenated
//
// See each subpackage's doc.go for contracts, invariants and complexity.
//
//	go get github.com/katalvlaran/optfun
package optfun
