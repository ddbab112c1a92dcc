package models

import "time"

// WorkoutLogEntry is one row of the daily workout checklist. Entries are
// created either by hand on the workout-log page or by accepting a
// scanned line from the latest AI plan.
type WorkoutLogEntry struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id"`

	// UserID is the owner of the entry.
	UserID int64 `json:"user_id"`

	// LogDate is the calendar day the entry belongs to, in DateLayout form.
	LogDate string `json:"log_date"`

	// Exercise is the display name of the movement. Required, at most
	// 30 characters when produced by the plan scanner.
	Exercise string `json:"exercise"`

	// Sets is the planned number of sets, at least 1.
	Sets int `json:"sets"`

	// Reps is the planned repetitions per set, at least 1.
	Reps int `json:"reps"`

	// WeightKg is the working weight, zero for bodyweight movements.
	WeightKg float64 `json:"weight_kg"`

	// Notes is optional free text attached to the entry.
	Notes string `json:"notes,omitempty"`

	// Done is the checklist state toggled from the UI.
	Done bool `json:"done"`

	// CreatedAt is the insertion timestamp. Listings come back newest
	// first by this column.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the WorkoutLogEntry model.
func (w WorkoutLogEntry) TableName() string {
	return "workout_logs"
}

// WorkoutLogPatch is the body of PATCH /api/logs/{id}: a partial update of
// one checklist entry. Only non-nil fields are applied, so toggling the
// done flag and editing the whole row travel through the same shape.
// ID, UserID, LogDate and CreatedAt are immutable and deliberately absent.
type WorkoutLogPatch struct {
	// Exercise replaces the display name of the movement.
	Exercise *string `json:"exercise,omitempty"`

	// Sets replaces the planned number of sets.
	Sets *int `json:"sets,omitempty"`

	// Reps replaces the planned repetitions per set.
	Reps *int `json:"reps,omitempty"`

	// WeightKg replaces the working weight.
	WeightKg *float64 `json:"weight_kg,omitempty"`

	// Notes replaces the free-text note. A pointer to "" clears it.
	Notes *string `json:"notes,omitempty"`

	// Done replaces the checklist state.
	Done *bool `json:"done,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p WorkoutLogPatch) Empty() bool {
	return p.Exercise == nil && p.Sets == nil && p.Reps == nil &&
		p.WeightKg == nil && p.Notes == nil && p.Done == nil
}

// DailyCompletion is one bar of the consistency chart: how many checklist
// entries were marked done on the given day.
type DailyCompletion struct {
	// Date is the day in DateLayout form.
	Date string `json:"date"`

	// Completed is the number of entries with done = true on that day.
	Completed int `json:"completed"`
}
