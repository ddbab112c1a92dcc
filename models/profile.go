package models

import "time"

// Gender options offered by the profile form. The first entry is the
// default for new profiles.
var Genders = []string{"Prefer not to say", "Male", "Female", "Other"}

// Profile bounds enforced by validation. Values outside these ranges are
// rejected before any SQL is executed.
const (
	ProfileAgeMin = 10
	ProfileAgeMax = 120

	ProfileHeightMinCm = 100
	ProfileHeightMaxCm = 250

	ProfileWeightMinKg = 20.0
	ProfileWeightMaxKg = 300.0
)

// Profile holds the per-user fitness profile that feeds the AI prompt
// builders and the progress page. Exactly one row exists per user; saves
// are upserts keyed by UserID.
type Profile struct {
	// UserID is the owner of the profile. Primary key.
	UserID int64 `json:"user_id"`

	// Name is the display name used in greetings and prompts. May be empty.
	Name string `json:"name"`

	// Age in whole years, within [ProfileAgeMin, ProfileAgeMax].
	Age int `json:"age"`

	// Gender is one of the Genders options.
	Gender string `json:"gender"`

	// HeightCm is body height in centimeters.
	HeightCm int `json:"height_cm"`

	// WeightKg is the current body weight. Updated automatically when a
	// weight-log entry is recorded.
	WeightKg float64 `json:"weight_kg"`

	// TargetWeightKg is the goal weight shown as a reference line on the
	// progress chart.
	TargetWeightKg float64 `json:"target_weight_kg"`

	// UpdatedAt is the timestamp of the last save.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}

// DefaultProfile returns the profile presented to a user who has not
// saved one yet: empty name, age 16, no stated gender, 170 cm, 60 kg,
// target equal to current weight.
func DefaultProfile(userID int64) Profile {
	return Profile{
		UserID:         userID,
		Name:           "",
		Age:            16,
		Gender:         Genders[0],
		HeightCm:       170,
		WeightKg:       60.0,
		TargetWeightKg: 60.0,
	}
}
