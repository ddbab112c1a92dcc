package models

// AppendPlanRequest is the body of POST /api/plans. Hash is a keyed
// HMAC-SHA256 digest of Content and is verified by the integrity
// middleware before the handler runs, so a truncated upload of a large
// generation cannot be stored silently. When no hash key is configured
// the field stays empty and the check is skipped.
type AppendPlanRequest struct {
	// Kind is the plan discriminator, workout or meal.
	Kind PlanKind `json:"kind"`

	// Content is the full generated markdown text.
	Content string `json:"content"`

	// Hash is the hex HMAC-SHA256 digest of Content.
	Hash string `json:"hash,omitempty"`
}

// ClearPlansResponse is the body of a successful DELETE /api/plans: the
// number of plan rows removed.
type ClearPlansResponse struct {
	Deleted int64 `json:"deleted"`
}
