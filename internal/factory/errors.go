package factory

import "fmt"

// Sentinel errors for Factory.Normalizer's ingest validation.
var (
	// ErrMissingTarget indicates the input document has no target item.
	ErrMissingTarget = fmt.Errorf("factory: target item missing")

	// ErrUnknownMachine indicates a recipe references a machine type
	// absent from the machines map.
	ErrUnknownMachine = fmt.Errorf("factory: recipe references unknown machine")

	// ErrNegativeQuantity indicates a negative input/output quantity,
	// rate, cap, or max_machines value.
	ErrNegativeQuantity = fmt.Errorf("factory: negative quantity")

	// ErrNonPositiveTime indicates a recipe's time is not > 0.
	ErrNonPositiveTime = fmt.Errorf("factory: recipe time must be positive")

	// ErrNonPositiveBaseSpeed indicates a machine's base_speed is not > 0.
	ErrNonPositiveBaseSpeed = fmt.Errorf("factory: machine base_speed must be positive")
)

// RecipeError decorates a validation failure with the offending recipe
// name.
type RecipeError struct {
	Recipe string
	Err    error
}

func (e *RecipeError) Error() string {
	return fmt.Sprintf("factory: recipe %q: %v", e.Recipe, e.Err)
}

func (e *RecipeError) Unwrap() error { return e.Err }
