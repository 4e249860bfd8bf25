// Package core defines the contract shared by every optimization function
// in optfun: the Function interface, the Problem identity each function is
// bound to, the embeddable Base lifecycle, and SimpleFunc — a ready-made
// leaf implementation backed by plain closures.
//
// 🚀 What is core?
//
//	The boundary layer of the library:
//	  • Problem   — an opaque identity for the owning optimization problem;
//	    functions composed together must share the same *Problem
//	  • Function  — the full capability set: metadata accessors, the
//	    initialization lifecycle, individual/population evaluation,
//	    finalization, and analytic derivatives
//	  • Base      — implements the metadata half of Function so concrete
//	    functions only write the math
//	  • SimpleFunc — wraps closures into a Function; its population path
//	    loops the individual closure over rows, and a missing derivative
//	    closure yields the NaN "unavailable" signal
//
// Conventions:
//
//   - Integer variable values travel as []int (individual) or [][]int
//     (population, row = individual); float values travel as []float64 or
//     gonum's *mat.Dense with shape (n_pop, n_vars).
//   - A nil components slice passed to AnaDeriv means "all components".
//   - A NaN derivative entry means "not determinable analytically", never
//     a zero — callers detect it and fall back to numerical estimates.
//   - Initialize is one-shot: a second call returns ErrAlreadyInitialized.
//
// Concurrency: functions are immutable after Initialize; evaluation
// methods allocate fresh buffers and keep no state between calls, so
// independent instances may be used from independent goroutines.
package core
