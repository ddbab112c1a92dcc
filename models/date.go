package models

import "time"

// DateLayout is the wire and storage form of every calendar date in the
// app: workout-log days, weight measurements, summary buckets.
const DateLayout = "2006-01-02"

// ValidDate reports whether s is a well-formed DateLayout date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the current local day in DateLayout form.
func Today() string {
	return time.Now().Format(DateLayout)
}
