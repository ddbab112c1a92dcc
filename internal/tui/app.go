package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names double as the persisted "last page" values, so renaming one
// invalidates previously saved navigation state.
const (
	pageLogin      = "login"
	pageSignup     = "signup"
	pageProfile    = "profile"
	pageWorkoutLog = "workout_log"
	pageAIWorkout  = "ai_workout"
	pageAIMeal     = "ai_meal"
	pageProgress   = "progress"
	pageSettings   = "settings"
)

// navOrder is the authenticated navigation bar: number keys 1-6 jump
// straight to a page, tab and shift+tab cycle through them in this order.
var navOrder = []string{pageProfile, pageWorkoutLog, pageAIWorkout, pageAIMeal, pageProgress, pageSettings}

var navTitles = map[string]string{
	pageProfile:    "Profile",
	pageWorkoutLog: "Workout log",
	pageAIWorkout:  "AI workout",
	pageAIMeal:     "AI meal",
	pageProgress:   "Progress",
	pageSettings:   "Settings",
}

// uiSession is the state shared by the router and every page: who is
// signed in, their cached profile for the header and the prompt builders,
// and the current terminal size.
type uiSession struct {
	authenticated bool
	user          models.Session
	profile       models.Profile
	profileLoaded bool
	width         int
	height        int
}

// inputCapturer is implemented by pages that sometimes own the whole
// keyboard, e.g. while a text field is focused or a confirm prompt is
// open. While capturing, the router keeps its page-switching keys to
// itself.
type inputCapturer interface {
	capturingInput() bool
}

// rootModel is the TUI router:
// 1) keeps the active page and the shared session state
// 2) handles global ctrl+c quit and the navigation keys
// 3) gates protected pages behind authentication
// 4) starts and stops the session-refresh job on login and logout
// 5) delegates all other messages to the active page
type rootModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *uiSession

	pages   map[string]tea.Model
	current string

	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo
	quitByUser      bool
}

// newRootModel registers all pages and opens startPage. Unauthenticated
// sessions always start on the login page no matter what was requested.
func newRootModel(ctx context.Context, services *service.ClientServices, session *uiSession, buildInfo models.AppBuildInfo, refreshInterval time.Duration, startPage string) rootModel {
	r := rootModel{
		ctx:             ctx,
		services:        services,
		session:         session,
		buildInfo:       buildInfo,
		refreshInterval: refreshInterval,
		current:         startPage,
	}
	r.pages = buildPages(ctx, services, session, buildInfo)
	if !session.authenticated {
		r.current = pageLogin
	}
	return r
}

func buildPages(ctx context.Context, services *service.ClientServices, session *uiSession, buildInfo models.AppBuildInfo) map[string]tea.Model {
	return map[string]tea.Model{
		pageLogin:      newLoginPage(ctx, services),
		pageSignup:     newSignupPage(ctx, services),
		pageProfile:    newProfilePage(ctx, services, session),
		pageWorkoutLog: newWorkoutLogPage(ctx, services, session),
		pageAIWorkout:  newAIWorkoutPage(ctx, services, session),
		pageAIMeal:     newAIMealPage(ctx, services, session),
		pageProgress:   newProgressPage(ctx, services, session),
		pageSettings:   newSettingsPage(ctx, services, session, buildInfo),
	}
}

func (r rootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.pages[r.current].Init()}
	if r.session.authenticated && r.current != pageProfile {
		// warm the profile cache for the header and the prompt builders
		cmds = append(cmds, r.cmdLoadProfile())
	}
	return tea.Batch(cmds...)
}

func (r rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		r.session.width = m.Width
		r.session.height = m.Height
		return r.delegate(msg)

	case tea.KeyMsg:
		if key.Matches(m, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.session.authenticated && !r.pageCapturing() {
			if target, ok := r.navTarget(m); ok {
				return r.navigate(target)
			}
		}
		return r.delegate(msg)

	case navigateTo:
		return r.navigate(m.page)

	case authDoneMsg:
		if m.err != nil {
			return r.delegate(msg)
		}
		return r.finishLogin(m)

	case logoutDoneMsg:
		return r.signOut("You are signed out.", nil)
	}

	if f, ok := msg.(failable); ok && errors.Is(f.failure(), service.ErrTokenIsExpiredOrInvalid) {
		return r.signOut("Your session has expired. Please sign in again.", r.cmdDropSession())
	}

	r.rememberProfile(msg)
	return r.delegate(msg)
}

func (r rootModel) View() string {
	current := r.current
	if !r.session.authenticated && !isAuthPage(current) {
		// never render a protected page for a signed-out session
		current = pageLogin
	}

	view := r.pages[current].View()
	if r.session.authenticated && isNavPage(current) {
		view = r.header(current) + "\n\n" + view
	}
	return appStyle.Render(view)
}

func (r rootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := r.pages[r.current].Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

// navigate switches pages, re-running the target's Init so its data is
// fresh on every entry. Protected pages fall back to login when signed
// out, and the landing page is persisted for the next app start.
func (r rootModel) navigate(page string) (tea.Model, tea.Cmd) {
	if _, ok := r.pages[page]; !ok {
		return r, nil
	}
	if !r.session.authenticated && !isAuthPage(page) {
		page = pageLogin
	}

	r.current = page
	cmds := []tea.Cmd{r.pages[page].Init()}
	if r.session.authenticated && isNavPage(page) {
		cmds = append(cmds, r.cmdSaveLastPage(page))
	}
	return r, tea.Batch(cmds...)
}

// finishLogin records the authenticated session, restarts the token
// refresher and lands on the profile page with a greeting.
func (r rootModel) finishLogin(msg authDoneMsg) (tea.Model, tea.Cmd) {
	r.session.authenticated = true
	r.session.user = msg.session
	r.session.profileLoaded = false
	setSessionUserID(msg.session.UserID)
	r.services.SessionJob.Start(r.ctx, r.refreshInterval)

	model, cmd := r.navigate(pageProfile)
	root := model.(rootModel)
	greeting := msg.greeting
	return root, tea.Batch(cmd, func() tea.Msg { return statusMsg{text: greeting} })
}

// signOut drops every trace of the session: the refresh job, the shared
// state and all page models, which resets any transient page state. The
// extra command, if any, runs alongside the login page init.
func (r rootModel) signOut(status string, extra tea.Cmd) (tea.Model, tea.Cmd) {
	r.services.SessionJob.Stop()
	clearSessionUserID()
	*r.session = uiSession{width: r.session.width, height: r.session.height}
	r.pages = buildPages(r.ctx, r.services, r.session, r.buildInfo)
	r.current = pageLogin

	cmds := []tea.Cmd{
		r.pages[pageLogin].Init(),
		func() tea.Msg { return statusMsg{text: status} },
	}
	if extra != nil {
		cmds = append(cmds, extra)
	}
	return r, tea.Batch(cmds...)
}

// rememberProfile keeps the shared profile cache in sync with whatever
// the pages load or save, so the header and the prompt builders stay
// current without re-fetching.
func (r rootModel) rememberProfile(msg tea.Msg) {
	switch m := msg.(type) {
	case profileLoadedMsg:
		if m.err == nil {
			r.session.profile = m.profile
			r.session.profileLoaded = true
		}
	case profileSavedMsg:
		if m.err == nil {
			r.session.profile = m.profile
			r.session.profileLoaded = true
		}
	case weightAddedMsg:
		if m.err == nil {
			r.session.profile.WeightKg = m.entry.WeightKg
		}
	}
}

func (r rootModel) pageCapturing() bool {
	page, ok := r.pages[r.current].(inputCapturer)
	return ok && page.capturingInput()
}

// navTarget resolves a navigation keypress: tab and shift+tab cycle the
// nav bar, a digit jumps to that slot.
func (r rootModel) navTarget(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, keys.tab):
		return r.neighborPage(+1), true
	case key.Matches(msg, keys.backtab):
		return r.neighborPage(-1), true
	}
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(navOrder) {
		return navOrder[n-1], true
	}
	return "", false
}

// neighborPage cycles through navOrder relative to the current page.
func (r rootModel) neighborPage(step int) string {
	idx := 0
	for i, page := range navOrder {
		if page == r.current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(navOrder)) % len(navOrder)
	return navOrder[idx]
}

// header renders the navigation bar with the active page highlighted and
// a one-line profile summary underneath.
func (r rootModel) header(current string) string {
	var b strings.Builder
	for i, page := range navOrder {
		if i > 0 {
			b.WriteString("  ")
		}
		label := strconv.Itoa(i+1) + " " + navTitles[page]
		if page == current {
			b.WriteString(navActiveStyle.Render(label))
		} else {
			b.WriteString(navInactiveStyle.Render(label))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(r.profileSummary()))
	return b.String()
}

func (r rootModel) profileSummary() string {
	if !r.session.profileLoaded {
		return r.session.user.Login
	}

	p := r.session.profile
	name := p.Name
	if name == "" {
		name = r.session.user.Login
	}
	return fmt.Sprintf("%s · %d y.o. · %d cm · %.1f kg → %.1f kg", name, p.Age, p.HeightCm, p.WeightKg, p.TargetWeightKg)
}

func (r rootModel) cmdLoadProfile() tea.Cmd {
	ctx := r.ctx
	profiles := r.services.ProfileService

	return func() tea.Msg {
		profile, err := profiles.GetProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (r rootModel) cmdSaveLastPage(page string) tea.Cmd {
	ctx := r.ctx
	auth := r.services.AuthService

	return func() tea.Msg {
		// a failed write only loses the start-page convenience
		_ = auth.SaveLastPage(ctx, page)
		return nil
	}
}

// cmdDropSession clears the persisted token after the server rejected it,
// so the next app start does not retry a dead session.
func (r rootModel) cmdDropSession() tea.Cmd {
	ctx := r.ctx
	auth := r.services.AuthService

	return func() tea.Msg {
		_ = auth.Logout(ctx)
		return nil
	}
}

func isNavPage(page string) bool {
	for _, p := range navOrder {
		if p == page {
			return true
		}
	}
	return false
}

func isAuthPage(page string) bool {
	return page == pageLogin || page == pageSignup
}
