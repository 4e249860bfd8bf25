package funclist

import (
	"fmt"

	"github.com/katalvlaran/optfun/core"
)

// FunctionList composes appended functions into one core.Function.
//
// Two-phase lifecycle: Append collects functions and their component
// names; Initialize builds the variable registries, the per-function
// VarMaps and the component ledger, then seals the list. Everything
// derived is immutable afterwards.
type FunctionList struct {
	core.Base

	funcs  []core.Function
	cnames []string

	// built once by Initialize, read-only afterwards
	vnamesInt   []string
	vnamesFloat []string
	sizes       []int
	mapsInt     []VarMap
	mapsFloat   []VarMap
}

// a FunctionList is itself a Function, so lists nest.
var _ core.Function = (*FunctionList)(nil)

// New creates an empty FunctionList bound to the given problem.
//
// Errors: core.ErrNilProblem, core.ErrEmptyName.
func New(problem *core.Problem, name string) (*FunctionList, error) {
	b, err := core.NewBase(problem, name, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	return &FunctionList{Base: b}, nil
}

// Append adds a function to the list and extends the list's component
// names by the function's. Functions can only be appended before
// Initialize, and must be bound to the same *Problem as the list.
//
// No partial mutation occurs on failure: all checks run before either
// the function slice or the component names are touched.
//
// Errors: ErrNilFunction, ErrListInitialized, ErrProblemMismatch.
func (l *FunctionList) Append(f core.Function) error {
	if f == nil {
		return fmt.Errorf("funclist: list %q: %w", l.Name(), ErrNilFunction)
	}
	if l.Initialized() {
		return fmt.Errorf("funclist: list %q: attempt to add function %q after initialization: %w",
			l.Name(), f.Name(), ErrListInitialized)
	}
	if f.Problem() != l.Problem() {
		return fmt.Errorf("funclist: list %q: cannot add function %q, expected problem %q, found %q: %w",
			l.Name(), f.Name(), l.Problem().Name(), f.Problem().Name(), ErrProblemMismatch)
	}

	l.funcs = append(l.funcs, f)
	l.cnames = append(l.cnames, f.ComponentNames()...)

	return nil
}

// Functions returns a copy of the list of appended functions, in
// registration order.
func (l *FunctionList) Functions() []core.Function {
	return append([]core.Function(nil), l.funcs...)
}

// NFunctions returns the number of appended functions.
func (l *FunctionList) NFunctions() int { return len(l.funcs) }

// Initialize builds the list's derived state in one ordered pass:
//
//  1. initialize every not-yet-initialized function, propagating verbosity;
//  2. build the integer and float registries: each function's variable
//     names concatenated in registration order, de-duplicated keeping the
//     first occurrence;
//  3. record the component ledger from each function's NComponents;
//  4. build each function's VarMaps against the registries;
//  5. seal the list via the base lifecycle.
//
// Errors: core.ErrAlreadyInitialized on a repeated call; any error from a
// function's own Initialize, wrapped with both names.
func (l *FunctionList) Initialize(verbosity int) error {
	if l.Initialized() {
		return fmt.Errorf("funclist: list %q: %w", l.Name(), core.ErrAlreadyInitialized)
	}

	seenInt := make(map[string]struct{})
	seenFloat := make(map[string]struct{})
	l.sizes = make([]int, 0, len(l.funcs))
	for _, f := range l.funcs {
		if !f.Initialized() {
			if err := f.Initialize(verbosity); err != nil {
				return fmt.Errorf("funclist: list %q: function %q: %w", l.Name(), f.Name(), err)
			}
		}
		l.vnamesInt = appendUnique(l.vnamesInt, seenInt, f.VarNamesInt())
		l.vnamesFloat = appendUnique(l.vnamesFloat, seenFloat, f.VarNamesFloat())
		l.sizes = append(l.sizes, f.NComponents())
	}

	l.mapsInt = make([]VarMap, len(l.funcs))
	l.mapsFloat = make([]VarMap, len(l.funcs))
	for fi, f := range l.funcs {
		l.mapsInt[fi] = newVarMap(l.vnamesInt, f.VarNamesInt())
		l.mapsFloat[fi] = newVarMap(l.vnamesFloat, f.VarNamesFloat())
	}

	return l.Base.Initialize(verbosity)
}

// ComponentNames returns the component names of all appended functions,
// concatenated in registration order.
func (l *FunctionList) ComponentNames() []string {
	return append([]string(nil), l.cnames...)
}

// NComponents returns the total component count: the ledger sum once the
// list is initialized, the collected component names before that.
func (l *FunctionList) NComponents() int {
	if !l.Initialized() {
		return len(l.cnames)
	}

	n := 0
	for _, s := range l.sizes {
		n += s
	}

	return n
}

// VarNamesInt returns the integer variable registry (empty before
// Initialize): the ordered, de-duplicated union over all functions.
func (l *FunctionList) VarNamesInt() []string {
	return append([]string(nil), l.vnamesInt...)
}

// VarNamesFloat returns the float variable registry (empty before
// Initialize).
func (l *FunctionList) VarNamesFloat() []string {
	return append([]string(nil), l.vnamesFloat...)
}

// Sizes returns the component ledger: one count per appended function,
// in registration order.
func (l *FunctionList) Sizes() []int {
	return append([]int(nil), l.sizes...)
}

// VarMapInt returns function i's map into the integer registry.
func (l *FunctionList) VarMapInt(i int) VarMap { return l.mapsInt[i] }

// VarMapFloat returns function i's map into the float registry.
func (l *FunctionList) VarMapFloat(i int) VarMap { return l.mapsFloat[i] }

// appendUnique appends the names not yet in seen, preserving first-seen
// order across calls.
func appendUnique(dst []string, seen map[string]struct{}, names []string) []string {
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		dst = append(dst, n)
	}

	return dst
}
