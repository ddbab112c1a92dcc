package tui

import (
	"github.com/MKhiriev/levelup-fitness/internal/planscan"
	"github.com/MKhiriev/levelup-fitness/models"
)

// navigateTo switches the router to another page. Pages emit it instead of
// touching each other directly.
type navigateTo struct {
	page string
}

// statusMsg shows a one-line notice on the active page.
type statusMsg struct {
	text string
}

// failable is implemented by every async result message so the router can
// screen results for a rejected token without knowing each concrete type.
type failable interface {
	failure() error
}

type authDoneMsg struct {
	session  models.Session
	greeting string
	err      error
}

func (m authDoneMsg) failure() error { return m.err }

type logoutDoneMsg struct {
	err error
}

func (m logoutDoneMsg) failure() error { return m.err }

type passwordChangedMsg struct {
	err error
}

func (m passwordChangedMsg) failure() error { return m.err }

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

func (m profileLoadedMsg) failure() error { return m.err }

type profileSavedMsg struct {
	profile models.Profile
	err     error
}

func (m profileSavedMsg) failure() error { return m.err }

type logsLoadedMsg struct {
	date    string
	entries []models.WorkoutLogEntry
	err     error
}

func (m logsLoadedMsg) failure() error { return m.err }

type logAddedMsg struct {
	entry models.WorkoutLogEntry
	err   error
}

func (m logAddedMsg) failure() error { return m.err }

type logUpdatedMsg struct {
	entry models.WorkoutLogEntry
	err   error
}

func (m logUpdatedMsg) failure() error { return m.err }

type logToggledMsg struct {
	entryID int64
	done    bool
	err     error
}

func (m logToggledMsg) failure() error { return m.err }

type logDeletedMsg struct {
	entryID int64
	err     error
}

func (m logDeletedMsg) failure() error { return m.err }

type logsClearedMsg struct {
	err error
}

func (m logsClearedMsg) failure() error { return m.err }

type scanPreparedMsg struct {
	candidates []planscan.Candidate
	err        error
}

func (m scanPreparedMsg) failure() error { return m.err }

type summaryLoadedMsg struct {
	days []models.DailyCompletion
	err  error
}

func (m summaryLoadedMsg) failure() error { return m.err }

type planLoadedMsg struct {
	kind models.PlanKind
	plan models.Plan
	err  error
}

func (m planLoadedMsg) failure() error { return m.err }

type planGeneratedMsg struct {
	kind models.PlanKind
	text string
	err  error
}

func (m planGeneratedMsg) failure() error { return m.err }

type plansClearedMsg struct {
	kind    models.PlanKind
	deleted int64
	err     error
}

func (m plansClearedMsg) failure() error { return m.err }

type recentPlansMsg struct {
	kind  models.PlanKind
	plans []models.Plan
	err   error
}

func (m recentPlansMsg) failure() error { return m.err }

type planCopiedMsg struct {
	err error
}

func (m planCopiedMsg) failure() error { return m.err }

type planExportedMsg struct {
	path string
	err  error
}

func (m planExportedMsg) failure() error { return m.err }

// modelLoadedMsg carries the persisted completion-model choice. Reading a
// preference cannot fail from the caller's point of view, so there is no
// error field.
type modelLoadedMsg struct {
	model string
}

type weightsLoadedMsg struct {
	entries []models.WeightEntry
	err     error
}

func (m weightsLoadedMsg) failure() error { return m.err }

type weightAddedMsg struct {
	entry models.WeightEntry
	err   error
}

func (m weightAddedMsg) failure() error { return m.err }

type serverVersionMsg struct {
	version string
	err     error
}

func (m serverVersionMsg) failure() error { return m.err }
