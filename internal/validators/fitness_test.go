// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validProfile() models.Profile {
	return models.Profile{
		UserID:         1,
		Name:           "Sam",
		Age:            16,
		Gender:         "Prefer not to say",
		HeightCm:       170,
		WeightKg:       60.0,
		TargetWeightKg: 55.0,
	}
}

func validLogEntry() models.WorkoutLogEntry {
	return models.WorkoutLogEntry{
		UserID:   1,
		LogDate:  "2026-03-14",
		Exercise: "Push-ups",
		Sets:     3,
		Reps:     10,
		WeightKg: 0,
	}
}

func validWeightEntry() models.WeightEntry {
	return models.WeightEntry{
		UserID:   1,
		LogDate:  "2026-03-14",
		WeightKg: 61.5,
	}
}

func validPlan() models.Plan {
	return models.Plan{
		UserID:  1,
		Kind:    models.PlanWorkout,
		Content: "## Day 1\n- Push-ups: 3x10",
	}
}

// ---------------------------------------------------------------------------
// TestNewFitnessValidator
// ---------------------------------------------------------------------------

func TestNewFitnessValidator(t *testing.T) {
	v := NewFitnessValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Profile value", func(t *testing.T) {
		p := validProfile()
		err := v.Validate(ctx, p)
		require.NoError(t, err)
	})

	t.Run("Profile pointer", func(t *testing.T) {
		p := validProfile()
		err := v.Validate(ctx, &p)
		require.NoError(t, err)
	})

	t.Run("WorkoutLogEntry value", func(t *testing.T) {
		e := validLogEntry()
		err := v.Validate(ctx, e)
		require.NoError(t, err)
	})

	t.Run("WorkoutLogEntry pointer", func(t *testing.T) {
		e := validLogEntry()
		err := v.Validate(ctx, &e)
		require.NoError(t, err)
	})

	t.Run("WorkoutLogPatch value", func(t *testing.T) {
		done := true
		err := v.Validate(ctx, models.WorkoutLogPatch{Done: &done})
		require.NoError(t, err)
	})

	t.Run("WorkoutLogPatch pointer", func(t *testing.T) {
		done := true
		err := v.Validate(ctx, &models.WorkoutLogPatch{Done: &done})
		require.NoError(t, err)
	})

	t.Run("WeightEntry value", func(t *testing.T) {
		e := validWeightEntry()
		err := v.Validate(ctx, e)
		require.NoError(t, err)
	})

	t.Run("WeightEntry pointer", func(t *testing.T) {
		e := validWeightEntry()
		err := v.Validate(ctx, &e)
		require.NoError(t, err)
	})

	t.Run("Plan value", func(t *testing.T) {
		p := validPlan()
		err := v.Validate(ctx, p)
		require.NoError(t, err)
	})

	t.Run("Plan pointer", func(t *testing.T) {
		p := validPlan()
		err := v.Validate(ctx, &p)
		require.NoError(t, err)
	})
}

// ---------------------------------------------------------------------------
// TestValidateProfile
// ---------------------------------------------------------------------------

func TestValidateProfile(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		p := validProfile()
		require.NoError(t, v.Validate(ctx, p))
	})

	t.Run("default profile passes", func(t *testing.T) {
		p := models.DefaultProfile(7)
		require.NoError(t, v.Validate(ctx, p))
	})

	t.Run("zero user_id", func(t *testing.T) {
		p := validProfile()
		p.UserID = 0
		require.ErrorIs(t, v.Validate(ctx, p, FieldUserID), ErrInvalidUserID)
	})

	t.Run("negative user_id", func(t *testing.T) {
		p := validProfile()
		p.UserID = -1
		require.ErrorIs(t, v.Validate(ctx, p, FieldUserID), ErrInvalidUserID)
	})

	t.Run("empty name is allowed", func(t *testing.T) {
		p := validProfile()
		p.Name = ""
		require.NoError(t, v.Validate(ctx, p, FieldName))
	})

	t.Run("overlong name", func(t *testing.T) {
		p := validProfile()
		p.Name = strings.Repeat("a", maxNameLength+1)
		require.ErrorIs(t, v.Validate(ctx, p, FieldName), ErrNameTooLong)
	})

	t.Run("age below minimum", func(t *testing.T) {
		p := validProfile()
		p.Age = models.ProfileAgeMin - 1
		require.ErrorIs(t, v.Validate(ctx, p, FieldAge), ErrInvalidAge)
	})

	t.Run("age above maximum", func(t *testing.T) {
		p := validProfile()
		p.Age = models.ProfileAgeMax + 1
		require.ErrorIs(t, v.Validate(ctx, p, FieldAge), ErrInvalidAge)
	})

	t.Run("age boundaries are valid", func(t *testing.T) {
		p := validProfile()
		p.Age = models.ProfileAgeMin
		require.NoError(t, v.Validate(ctx, p, FieldAge))
		p.Age = models.ProfileAgeMax
		require.NoError(t, v.Validate(ctx, p, FieldAge))
	})

	t.Run("unknown gender", func(t *testing.T) {
		p := validProfile()
		p.Gender = "attack helicopter"
		require.ErrorIs(t, v.Validate(ctx, p, FieldGender), ErrInvalidGender)
	})

	t.Run("empty gender", func(t *testing.T) {
		p := validProfile()
		p.Gender = ""
		require.ErrorIs(t, v.Validate(ctx, p, FieldGender), ErrInvalidGender)
	})

	t.Run("height below minimum", func(t *testing.T) {
		p := validProfile()
		p.HeightCm = models.ProfileHeightMinCm - 1
		require.ErrorIs(t, v.Validate(ctx, p, FieldHeight), ErrInvalidHeight)
	})

	t.Run("height above maximum", func(t *testing.T) {
		p := validProfile()
		p.HeightCm = models.ProfileHeightMaxCm + 1
		require.ErrorIs(t, v.Validate(ctx, p, FieldHeight), ErrInvalidHeight)
	})

	t.Run("weight below minimum", func(t *testing.T) {
		p := validProfile()
		p.WeightKg = models.ProfileWeightMinKg - 0.1
		require.ErrorIs(t, v.Validate(ctx, p, FieldWeight), ErrInvalidWeight)
	})

	t.Run("weight above maximum", func(t *testing.T) {
		p := validProfile()
		p.WeightKg = models.ProfileWeightMaxKg + 0.1
		require.ErrorIs(t, v.Validate(ctx, p, FieldWeight), ErrInvalidWeight)
	})

	t.Run("target weight out of range", func(t *testing.T) {
		p := validProfile()
		p.TargetWeightKg = models.ProfileWeightMaxKg + 0.1
		require.ErrorIs(t, v.Validate(ctx, p, FieldTargetWeight), ErrInvalidTargetWeight)
	})

	t.Run("weight boundaries are valid", func(t *testing.T) {
		p := validProfile()
		p.WeightKg = models.ProfileWeightMinKg
		p.TargetWeightKg = models.ProfileWeightMaxKg
		require.NoError(t, v.Validate(ctx, p, FieldWeight, FieldTargetWeight))
	})

	t.Run("unknown field", func(t *testing.T) {
		p := validProfile()
		require.ErrorIs(t, v.Validate(ctx, p, "nonexistent"), ErrUnknownField)
	})

	t.Run("all gender options accepted", func(t *testing.T) {
		for _, g := range models.Genders {
			p := validProfile()
			p.Gender = g
			require.NoError(t, v.Validate(ctx, p, FieldGender), "gender %q should be valid", g)
		}
	})
}

// ---------------------------------------------------------------------------
// TestValidateWorkoutLogEntry
// ---------------------------------------------------------------------------

func TestValidateWorkoutLogEntry(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		e := validLogEntry()
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("zero user_id", func(t *testing.T) {
		e := validLogEntry()
		e.UserID = 0
		require.ErrorIs(t, v.Validate(ctx, e, FieldUserID), ErrInvalidUserID)
	})

	t.Run("empty date", func(t *testing.T) {
		e := validLogEntry()
		e.LogDate = ""
		require.ErrorIs(t, v.Validate(ctx, e, FieldLogDate), ErrInvalidDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		e := validLogEntry()
		e.LogDate = "14/03/2026"
		require.ErrorIs(t, v.Validate(ctx, e, FieldLogDate), ErrInvalidDate)
	})

	t.Run("empty exercise", func(t *testing.T) {
		e := validLogEntry()
		e.Exercise = ""
		require.ErrorIs(t, v.Validate(ctx, e, FieldExercise), ErrEmptyExercise)
	})

	t.Run("zero sets", func(t *testing.T) {
		e := validLogEntry()
		e.Sets = 0
		require.ErrorIs(t, v.Validate(ctx, e, FieldSets), ErrInvalidSets)
	})

	t.Run("zero reps", func(t *testing.T) {
		e := validLogEntry()
		e.Reps = 0
		require.ErrorIs(t, v.Validate(ctx, e, FieldReps), ErrInvalidReps)
	})

	t.Run("negative working weight", func(t *testing.T) {
		e := validLogEntry()
		e.WeightKg = -1
		require.ErrorIs(t, v.Validate(ctx, e, FieldWeight), ErrNegativeWeight)
	})

	t.Run("zero weight is valid for bodyweight movements", func(t *testing.T) {
		e := validLogEntry()
		e.WeightKg = 0
		require.NoError(t, v.Validate(ctx, e, FieldWeight))
	})

	t.Run("unknown field", func(t *testing.T) {
		e := validLogEntry()
		require.ErrorIs(t, v.Validate(ctx, e, "bad_field"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateWorkoutLogPatch
// ---------------------------------------------------------------------------

func TestValidateWorkoutLogPatch(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("empty patch rejected", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.WorkoutLogPatch{}), ErrEmptyPatch)
	})

	t.Run("full patch valid", func(t *testing.T) {
		done := false
		patch := models.WorkoutLogPatch{
			Exercise: strPtr("Squats"),
			Sets:     intPtr(3),
			Reps:     intPtr(10),
			WeightKg: floatPtr(40.0),
			Notes:    strPtr("slow tempo"),
			Done:     &done,
		}
		require.NoError(t, v.Validate(ctx, patch))
	})

	t.Run("empty exercise", func(t *testing.T) {
		patch := models.WorkoutLogPatch{Exercise: strPtr("")}
		require.ErrorIs(t, v.Validate(ctx, patch), ErrEmptyExercise)
	})

	t.Run("zero sets", func(t *testing.T) {
		patch := models.WorkoutLogPatch{Sets: intPtr(0)}
		require.ErrorIs(t, v.Validate(ctx, patch), ErrInvalidSets)
	})

	t.Run("zero reps", func(t *testing.T) {
		patch := models.WorkoutLogPatch{Reps: intPtr(0)}
		require.ErrorIs(t, v.Validate(ctx, patch), ErrInvalidReps)
	})

	t.Run("negative weight", func(t *testing.T) {
		patch := models.WorkoutLogPatch{WeightKg: floatPtr(-0.5)}
		require.ErrorIs(t, v.Validate(ctx, patch), ErrNegativeWeight)
	})

	t.Run("zero weight is valid for bodyweight movements", func(t *testing.T) {
		patch := models.WorkoutLogPatch{WeightKg: floatPtr(0)}
		require.NoError(t, v.Validate(ctx, patch))
	})

	t.Run("clearing notes is valid", func(t *testing.T) {
		patch := models.WorkoutLogPatch{Notes: strPtr("")}
		require.NoError(t, v.Validate(ctx, patch))
	})

	t.Run("absent fields are not checked", func(t *testing.T) {
		// Only done travels; the zero values the other fields would fail
		// with never come into play.
		done := true
		require.NoError(t, v.Validate(ctx, models.WorkoutLogPatch{Done: &done}))
	})
}

// ---------------------------------------------------------------------------
// TestValidateWeightEntry
// ---------------------------------------------------------------------------

func TestValidateWeightEntry(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		e := validWeightEntry()
		require.NoError(t, v.Validate(ctx, e))
	})

	t.Run("zero user_id", func(t *testing.T) {
		e := validWeightEntry()
		e.UserID = 0
		require.ErrorIs(t, v.Validate(ctx, e, FieldUserID), ErrInvalidUserID)
	})

	t.Run("malformed date", func(t *testing.T) {
		e := validWeightEntry()
		e.LogDate = "March 14"
		require.ErrorIs(t, v.Validate(ctx, e, FieldLogDate), ErrInvalidDate)
	})

	t.Run("weight below profile minimum", func(t *testing.T) {
		e := validWeightEntry()
		e.WeightKg = models.ProfileWeightMinKg - 0.1
		require.ErrorIs(t, v.Validate(ctx, e, FieldWeight), ErrInvalidWeight)
	})

	t.Run("weight above profile maximum", func(t *testing.T) {
		e := validWeightEntry()
		e.WeightKg = models.ProfileWeightMaxKg + 0.1
		require.ErrorIs(t, v.Validate(ctx, e, FieldWeight), ErrInvalidWeight)
	})

	t.Run("weight boundaries are valid", func(t *testing.T) {
		e := validWeightEntry()
		e.WeightKg = models.ProfileWeightMinKg
		require.NoError(t, v.Validate(ctx, e, FieldWeight))
		e.WeightKg = models.ProfileWeightMaxKg
		require.NoError(t, v.Validate(ctx, e, FieldWeight))
	})

	t.Run("unknown field", func(t *testing.T) {
		e := validWeightEntry()
		require.ErrorIs(t, v.Validate(ctx, e, "bad_field"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePlan
// ---------------------------------------------------------------------------

func TestValidatePlan(t *testing.T) {
	v := NewFitnessValidator()
	ctx := context.Background()

	t.Run("valid with defaults", func(t *testing.T) {
		p := validPlan()
		require.NoError(t, v.Validate(ctx, p))
	})

	t.Run("meal kind is valid", func(t *testing.T) {
		p := validPlan()
		p.Kind = models.PlanMeal
		require.NoError(t, v.Validate(ctx, p))
	})

	t.Run("zero user_id", func(t *testing.T) {
		p := validPlan()
		p.UserID = 0
		require.ErrorIs(t, v.Validate(ctx, p, FieldUserID), ErrInvalidUserID)
	})

	t.Run("empty kind", func(t *testing.T) {
		p := validPlan()
		p.Kind = ""
		require.ErrorIs(t, v.Validate(ctx, p, FieldPlanKind), ErrInvalidPlanKind)
	})

	t.Run("unknown kind", func(t *testing.T) {
		p := validPlan()
		p.Kind = models.PlanKind("stretching")
		require.ErrorIs(t, v.Validate(ctx, p, FieldPlanKind), ErrInvalidPlanKind)
	})

	t.Run("empty content", func(t *testing.T) {
		p := validPlan()
		p.Content = ""
		require.ErrorIs(t, v.Validate(ctx, p, FieldPlanContent), ErrEmptyPlanContent)
	})

	t.Run("unknown field", func(t *testing.T) {
		p := validPlan()
		require.ErrorIs(t, v.Validate(ctx, p, "bad_field"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestIsValidGender
// ---------------------------------------------------------------------------

func TestIsValidGender(t *testing.T) {
	for _, g := range models.Genders {
		assert.True(t, isValidGender(g), "expected %q to be valid", g)
	}
	assert.False(t, isValidGender(""))
	assert.False(t, isValidGender("unknown"))
	assert.False(t, isValidGender("male")) // options are case-sensitive
}
