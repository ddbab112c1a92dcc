package models

import "time"

// WeightEntry is one point of the body-weight history. Recording an
// entry also moves Profile.WeightKg to the same value; both writes
// happen inside a single database transaction.
type WeightEntry struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id"`

	// UserID is the owner of the entry.
	UserID int64 `json:"user_id"`

	// LogDate is the measurement day in DateLayout form.
	LogDate string `json:"log_date"`

	// WeightKg is the measured body weight.
	WeightKg float64 `json:"weight_kg"`

	// CreatedAt is the insertion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the WeightEntry model.
func (w WeightEntry) TableName() string {
	return "weight_log"
}
