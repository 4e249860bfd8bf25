package core

import "fmt"

// Base implements the metadata and lifecycle half of Function. Concrete
// functions embed it (by value) and add the evaluation methods; the
// FunctionList composer embeds it too, shadowing the accessors it derives
// from its children.
//
// Base is write-once: every field is fixed at construction except the
// initialized flag, which Initialize flips exactly once.
type Base struct {
	name        string
	problem     *Problem
	cnames      []string
	vnamesInt   []string
	vnamesFloat []string
	initialized bool
}

// NewBase builds the shared function state.
//
// Inputs:
//   - problem: the owning problem identity (must be non-nil).
//   - name: the function name (must be non-empty; appears in errors).
//   - componentNames: ordered output component names; may be empty for
//     composers that collect components later.
//   - varNamesInt / varNamesFloat: ordered variable names the function
//     reads, in the function's own local order.
//
// All slices are copied; the caller keeps ownership of its arguments.
//
// Errors: ErrNilProblem, ErrEmptyName.
func NewBase(problem *Problem, name string, componentNames, varNamesInt, varNamesFloat []string) (Base, error) {
	if problem == nil {
		return Base{}, fmt.Errorf("core: function %q: %w", name, ErrNilProblem)
	}
	if name == "" {
		return Base{}, ErrEmptyName
	}

	return Base{
		name:        name,
		problem:     problem,
		cnames:      append([]string(nil), componentNames...),
		vnamesInt:   append([]string(nil), varNamesInt...),
		vnamesFloat: append([]string(nil), varNamesFloat...),
	}, nil
}

// Name returns the function's name.
func (b *Base) Name() string { return b.name }

// Problem returns the owning problem identity.
func (b *Base) Problem() *Problem { return b.problem }

// Initialized reports whether Initialize has completed.
func (b *Base) Initialized() bool { return b.initialized }

// Initialize marks the function initialized. One-shot: a second call
// returns ErrAlreadyInitialized wrapped with the function name.
// The verbosity parameter exists for implementations that print
// diagnostics during setup; Base itself is silent.
func (b *Base) Initialize(verbosity int) error {
	_ = verbosity
	if b.initialized {
		return fmt.Errorf("core: function %q: %w", b.name, ErrAlreadyInitialized)
	}
	b.initialized = true

	return nil
}

// ComponentNames returns a copy of the ordered output component names.
func (b *Base) ComponentNames() []string {
	return append([]string(nil), b.cnames...)
}

// NComponents returns the number of output components.
func (b *Base) NComponents() int { return len(b.cnames) }

// VarNamesInt returns a copy of the ordered integer variable names.
func (b *Base) VarNamesInt() []string {
	return append([]string(nil), b.vnamesInt...)
}

// VarNamesFloat returns a copy of the ordered float variable names.
func (b *Base) VarNamesFloat() []string {
	return append([]string(nil), b.vnamesFloat...)
}
