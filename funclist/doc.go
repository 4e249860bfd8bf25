// Package funclist composes independently defined optimization functions
// into one — the FunctionList: a Function made of Functions.
//
// 🚀 What is funclist?
//
//	The bookkeeping engine behind composite objectives and constraints:
//	  • Registry — the ordered, de-duplicated union of the integer and
//	    float variable names referenced by every appended function
//	  • VarMap — per function and namespace, the translation from registry
//	    positions into the function's own variable order: a contiguous
//	    range when positions are consecutive (applied as a view), an
//	    explicit index list otherwise (applied as a gather copy)
//	  • Ledger — each function's component count; cumulative sums define
//	    the disjoint offsets every function's output occupies in the flat
//	    composite result
//	  • Evaluation — CalcIndividual/CalcPopulation slice the caller's
//	    registry-ordered variable arrays per function, delegate, and write
//	    each output into its ledger offsets of a NaN-prefilled buffer
//	  • Derivatives — AnaDeriv routes a ∂/∂var request to exactly the
//	    functions that depend on var; lanes nobody owns stay NaN, the
//	    explicit "fall back to numerical estimation" signal
//
// Lifecycle (two-phase, strictly ordered):
//
//	l, _ := funclist.New(problem, "objectives")
//	_ = l.Append(fA) // before Initialize only
//	_ = l.Append(fB)
//	_ = l.Initialize(0) // builds registry, maps, ledger — once
//	vals, _ := l.CalcIndividual(varsInt, varsFloat, results)
//
// Appending after Initialize fails with ErrListInitialized; evaluating
// before Initialize fails with ErrListNotInitialized. After Initialize
// every derived structure is immutable.
//
// Invariants (enforced, covered by tests):
//
//   - sum(Sizes()) == NComponents()
//   - Concatenating SplitIndividual(d) reproduces d; same for
//     SplitPopulation along the component axis
//   - Applying VarMapFloat(i) to the float registry values yields exactly
//     function i's local float vector, in its declared order
//   - Within one call, functions run in registration order and write to
//     strictly increasing, non-overlapping offsets
//
// A FunctionList satisfies core.Function, so lists nest into trees.
//
// Concurrency: no locks, no goroutines. Post-Initialize state is
// read-only and every call allocates fresh buffers, so distinct calls on
// one initialized list are safe from multiple goroutines.
//
// Complexity: Initialize is O(F·V) over functions and their variable
// names; every evaluation is O(total variables picked + total components)
// plus the delegated work.
package funclist
