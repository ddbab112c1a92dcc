// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PlanKind discriminates the two kinds of AI-generated plans the app
// stores. The value is persisted as-is in the plans.kind column and
// travels as a query parameter on the plans routes.
type PlanKind string

const (
	// PlanWorkout marks a generated workout program.
	PlanWorkout PlanKind = "workout"

	// PlanMeal marks a generated meal plan.
	PlanMeal PlanKind = "meal"
)

// Valid reports whether the kind is one of the known plan kinds.
func (k PlanKind) Valid() bool {
	return k == PlanWorkout || k == PlanMeal
}

// Plan is one saved AI generation. Plans are append-only: a new
// generation never overwrites an old one, history is pruned only through
// the explicit clear operations.
type Plan struct {
	// ID is the unique identifier of the record in the database.
	ID int64 `json:"id"`

	// UserID is the owner of the plan.
	UserID int64 `json:"user_id"`

	// Kind is the plan discriminator, workout or meal.
	Kind PlanKind `json:"kind"`

	// Content is the full generated markdown text.
	Content string `json:"content"`

	// CreatedAt is the timestamp of the generation.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Plan model.
func (p Plan) TableName() string {
	return "plans"
}

// Preview returns the first n characters of the plan content with
// newlines collapsed, for list rows and the settings history preview.
func (p Plan) Preview(n int) string {
	s := p.Content
	out := make([]rune, 0, n)
	for _, r := range s {
		if len(out) >= n {
			break
		}
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}
