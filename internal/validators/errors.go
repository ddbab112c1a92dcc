package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrNameTooLong         = errors.New("name is too long")
	ErrInvalidAge          = errors.New("age is out of range")
	ErrInvalidGender       = errors.New("unknown gender option")
	ErrInvalidHeight       = errors.New("height is out of range")
	ErrInvalidWeight       = errors.New("weight is out of range")
	ErrInvalidTargetWeight = errors.New("target weight is out of range")
	ErrInvalidDate         = errors.New("invalid date")
	ErrEmptyExercise       = errors.New("exercise name is required")
	ErrInvalidSets         = errors.New("sets must be at least 1")
	ErrInvalidReps         = errors.New("reps must be at least 1")
	ErrNegativeWeight      = errors.New("weight cannot be negative")
	ErrEmptyPatch          = errors.New("patch has no fields")
	ErrInvalidPlanKind     = errors.New("invalid plan kind")
	ErrEmptyPlanContent    = errors.New("plan content is required")
)
