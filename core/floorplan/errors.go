package floorplan

import "errors"

var (
	// ErrInvalidConfiguration is returned when the chair-type or wall-separator set is empty
	// or holds an entry that is not a single character.
	ErrInvalidConfiguration = errors.New("invalid floor plan configuration")
	// ErrNotFound is returned when the plan source does not exist.
	ErrNotFound = errors.New("floor plan not found")
	// ErrLoad wraps any other failure while reading a plan.
	ErrLoad = errors.New("failed to load floor plan")
	// ErrEmptyPlan is returned when a loaded plan has no rows.
	ErrEmptyPlan = errors.New("floor plan is empty")
)
