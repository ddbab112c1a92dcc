package validators

import (
	"context"

	"github.com/MKhiriev/levelup-fitness/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of any fitness record.
	FieldUserID = "user_id"

	// FieldName targets the display name of a profile.
	FieldName = "name"

	// FieldAge targets the age field of a profile.
	FieldAge = "age"

	// FieldGender targets the gender option of a profile.
	FieldGender = "gender"

	// FieldHeight targets the height field of a profile, in centimeters.
	FieldHeight = "height_cm"

	// FieldWeight targets a body or working weight field, in kilograms.
	FieldWeight = "weight_kg"

	// FieldTargetWeight targets the goal weight of a profile.
	FieldTargetWeight = "target_weight_kg"

	// FieldLogDate targets the calendar day of a log or weight entry.
	FieldLogDate = "log_date"

	// FieldExercise targets the exercise name of a workout-log entry.
	FieldExercise = "exercise"

	// FieldSets targets the planned set count of a workout-log entry.
	FieldSets = "sets"

	// FieldReps targets the planned repetitions of a workout-log entry.
	FieldReps = "reps"

	// FieldPlanKind targets the workout/meal discriminator of a plan.
	FieldPlanKind = "kind"

	// FieldPlanContent targets the generated markdown body of a plan.
	FieldPlanContent = "content"
)

// maxNameLength mirrors the profiles.name column width.
const maxNameLength = 255

// isValidGender reports whether g is one of the options offered by the
// profile form.
func isValidGender(g string) bool {
	for _, option := range models.Genders {
		if g == option {
			return true
		}
	}
	return false
}

// FitnessValidator implements the Validator interface for the fitness
// domain models: Profile, WorkoutLogEntry, WeightEntry, and Plan.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type FitnessValidator struct {
}

// NewFitnessValidator constructs a new FitnessValidator
// and returns it as the Validator interface.
func NewFitnessValidator() Validator {
	return &FitnessValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Profile / *models.Profile
//   - models.WorkoutLogEntry / *models.WorkoutLogEntry
//   - models.WorkoutLogPatch / *models.WorkoutLogPatch
//   - models.WeightEntry / *models.WeightEntry
//   - models.Plan / *models.Plan
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated. A WorkoutLogPatch ignores
// the field arguments: its non-nil fields already define the validated set.
func (v *FitnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		return v.validateProfile(ctx, *value, fields...)

	case models.WorkoutLogEntry:
		return v.validateWorkoutLogEntry(ctx, value, fields...)
	case *models.WorkoutLogEntry:
		return v.validateWorkoutLogEntry(ctx, *value, fields...)

	case models.WorkoutLogPatch:
		return v.validateWorkoutLogPatch(ctx, value)
	case *models.WorkoutLogPatch:
		return v.validateWorkoutLogPatch(ctx, *value)

	case models.WeightEntry:
		return v.validateWeightEntry(ctx, value, fields...)
	case *models.WeightEntry:
		return v.validateWeightEntry(ctx, *value, fields...)

	case models.Plan:
		return v.validatePlan(ctx, value, fields...)
	case *models.Plan:
		return v.validatePlan(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateProfile validates a Profile against the form bounds: age within
// [ProfileAgeMin, ProfileAgeMax], height within [ProfileHeightMinCm,
// ProfileHeightMaxCm], current and target weight within
// [ProfileWeightMinKg, ProfileWeightMaxKg], gender one of the Genders
// options.
//
// Default validated fields (when none specified):
// UserID, Name, Age, Gender, Height, Weight, TargetWeight.
//
// Returns the first encountered validation error or nil.
func (v *FitnessValidator) validateProfile(ctx context.Context, profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldAge, FieldGender, FieldHeight, FieldWeight, FieldTargetWeight}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if profile.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if len(profile.Name) > maxNameLength {
				return ErrNameTooLong
			}
		case FieldAge:
			if profile.Age < models.ProfileAgeMin || profile.Age > models.ProfileAgeMax {
				return ErrInvalidAge
			}
		case FieldGender:
			if !isValidGender(profile.Gender) {
				return ErrInvalidGender
			}
		case FieldHeight:
			if profile.HeightCm < models.ProfileHeightMinCm || profile.HeightCm > models.ProfileHeightMaxCm {
				return ErrInvalidHeight
			}
		case FieldWeight:
			if profile.WeightKg < models.ProfileWeightMinKg || profile.WeightKg > models.ProfileWeightMaxKg {
				return ErrInvalidWeight
			}
		case FieldTargetWeight:
			if profile.TargetWeightKg < models.ProfileWeightMinKg || profile.TargetWeightKg > models.ProfileWeightMaxKg {
				return ErrInvalidTargetWeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateWorkoutLogEntry validates a single checklist entry: a named
// exercise, at least one set and one rep, a non-negative working weight,
// and a well-formed log date. Zero weight is allowed for bodyweight
// movements.
//
// Default validated fields: UserID, LogDate, Exercise, Sets, Reps, Weight.
func (v *FitnessValidator) validateWorkoutLogEntry(ctx context.Context, entry models.WorkoutLogEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldLogDate, FieldExercise, FieldSets, FieldReps, FieldWeight}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if entry.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldLogDate:
			if !models.ValidDate(entry.LogDate) {
				return ErrInvalidDate
			}
		case FieldExercise:
			if entry.Exercise == "" {
				return ErrEmptyExercise
			}
		case FieldSets:
			if entry.Sets < 1 {
				return ErrInvalidSets
			}
		case FieldReps:
			if entry.Reps < 1 {
				return ErrInvalidReps
			}
		case FieldWeight:
			if entry.WeightKg < 0 {
				return ErrNegativeWeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateWorkoutLogPatch validates a partial update of a checklist entry.
// Whichever fields the patch carries must satisfy the same bounds as a full
// entry; a patch carrying nothing at all is rejected with ErrEmptyPatch.
func (v *FitnessValidator) validateWorkoutLogPatch(ctx context.Context, patch models.WorkoutLogPatch) error {
	if patch.Empty() {
		return ErrEmptyPatch
	}

	if patch.Exercise != nil && *patch.Exercise == "" {
		return ErrEmptyExercise
	}
	if patch.Sets != nil && *patch.Sets < 1 {
		return ErrInvalidSets
	}
	if patch.Reps != nil && *patch.Reps < 1 {
		return ErrInvalidReps
	}
	if patch.WeightKg != nil && *patch.WeightKg < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// validateWeightEntry validates a body-weight measurement. The weight must
// sit inside the profile bounds: recording an entry also updates
// Profile.WeightKg, so an out-of-range measurement would push the profile
// outside its own validated range.
//
// Default validated fields: UserID, LogDate, Weight.
func (v *FitnessValidator) validateWeightEntry(ctx context.Context, entry models.WeightEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldLogDate, FieldWeight}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if entry.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldLogDate:
			if !models.ValidDate(entry.LogDate) {
				return ErrInvalidDate
			}
		case FieldWeight:
			if entry.WeightKg < models.ProfileWeightMinKg || entry.WeightKg > models.ProfileWeightMaxKg {
				return ErrInvalidWeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePlan validates a saved generation: a known kind and a non-empty
// markdown body.
//
// Default validated fields: UserID, PlanKind, PlanContent.
func (v *FitnessValidator) validatePlan(ctx context.Context, plan models.Plan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPlanKind, FieldPlanContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if plan.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPlanKind:
			if !plan.Kind.Valid() {
				return ErrInvalidPlanKind
			}
		case FieldPlanContent:
			if plan.Content == "" {
				return ErrEmptyPlanContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
