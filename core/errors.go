package core

import "errors"

// Sentinel errors for the core contract. Wrap with fmt.Errorf("...: %w", ErrX)
// when the function or problem name is essential; callers match with errors.Is.
var (
	// ErrNilProblem indicates a function was constructed without an owning problem.
	ErrNilProblem = errors.New("core: problem must not be nil")
	// ErrEmptyName indicates a function was constructed with an empty name.
	ErrEmptyName = errors.New("core: function name must not be empty")
	// ErrNoComponents indicates a function declares zero output components.
	ErrNoComponents = errors.New("core: function must declare at least one component")
	// ErrNilCalc indicates a SimpleFunc was constructed without a calc closure.
	ErrNilCalc = errors.New("core: calc closure must not be nil")
	// ErrAlreadyInitialized indicates Initialize was called twice.
	ErrAlreadyInitialized = errors.New("core: function already initialized")
	// ErrComponentCount indicates an evaluation returned a result whose size
	// differs from the function's declared component count.
	ErrComponentCount = errors.New("core: result size does not match declared component count")
	// ErrEmptyPopulation indicates a population call carried zero individuals.
	ErrEmptyPopulation = errors.New("core: population must contain at least one individual")
)
