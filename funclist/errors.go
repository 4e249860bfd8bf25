package funclist

import "errors"

// Sentinel errors for the funclist package. Call sites wrap these with the
// list and function names via fmt.Errorf("...: %w", ErrX); tests and
// callers match with errors.Is. Contract-level sentinels shared with leaf
// functions (core.ErrComponentCount, core.ErrAlreadyInitialized,
// core.ErrEmptyPopulation, core.ErrNoComponents) live in package core.
var (
	// ErrNilFunction indicates Append was called with a nil function.
	ErrNilFunction = errors.New("funclist: function must not be nil")
	// ErrListInitialized indicates an append attempt after Initialize.
	ErrListInitialized = errors.New("funclist: cannot append after initialization")
	// ErrListNotInitialized indicates an evaluation or split before Initialize.
	ErrListNotInitialized = errors.New("funclist: list not initialized")
	// ErrProblemMismatch indicates an appended function is bound to a
	// different problem than the list.
	ErrProblemMismatch = errors.New("funclist: problems do not match")
	// ErrVarCount indicates a variable array does not match the registry size.
	ErrVarCount = errors.New("funclist: variable values do not match registry")
	// ErrDataLength indicates split data length differs from NComponents.
	ErrDataLength = errors.New("funclist: data length does not match component count")
	// ErrDataShape indicates split data has the wrong column count, or is nil.
	ErrDataShape = errors.New("funclist: data shape does not match component count")
)
