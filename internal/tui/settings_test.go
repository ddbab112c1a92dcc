package tui

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/mock"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSettingsPage(t *testing.T, ctrl *gomock.Controller) (*settingsPage, *mock.MockClientAuthService, *mock.MockClientPlanService) {
	t.Helper()

	mockAuth := mock.NewMockClientAuthService(ctrl)
	mockPlans := mock.NewMockClientPlanService(ctrl)
	services := &service.ClientServices{
		AuthService: mockAuth,
		PlanService: mockPlans,
	}
	session := &uiSession{
		authenticated: true,
		user:          models.Session{UserID: 7, Login: "sam"},
	}

	info := models.NewAppBuildInfo("1.4.0", "2026-08-25", "abc1234")
	return newSettingsPage(context.Background(), services, session, info), mockAuth, mockPlans
}

func pressDown(page *settingsPage, times int) {
	for i := 0; i < times; i++ {
		_, _ = page.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
}

// ── password change ──────────────────────────────────────────

func TestSettingsPage_PasswordForm_LocalChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _, _ := newTestSettingsPage(t, ctrl)

	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, settingsPassword, page.mode)
	assert.True(t, page.capturingInput())

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "All three fields are required", page.errMsg)

	page.passInputs[0].SetValue("old-pass")
	page.passInputs[1].SetValue("new-pass")
	page.passInputs[2].SetValue("other-pass")

	_, cmd = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "New passwords do not match", page.errMsg)
}

func TestSettingsPage_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, mockAuth, _ := newTestSettingsPage(t, ctrl)

	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page.passInputs[0].SetValue("old-pass")
	page.passInputs[1].SetValue("new-pass")
	page.passInputs[2].SetValue("new-pass")

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, page.changing)

	mockAuth.EXPECT().
		ChangePassword(gomock.Any(), models.ChangePasswordRequest{
			CurrentPassword: "old-pass",
			NewPassword:     "new-pass",
			ConfirmPassword: "new-pass",
		}).
		Return(nil)

	_, _ = page.Update(cmd())
	assert.Equal(t, settingsBrowse, page.mode)
	assert.Equal(t, "Password changed", page.status)
}

func TestSettingsPage_ChangePassword_WrongCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _, _ := newTestSettingsPage(t, ctrl)
	page.mode = settingsPassword
	page.changing = true

	_, _ = page.Update(passwordChangedMsg{err: service.ErrWrongCurrentPassword})

	assert.False(t, page.changing)
	assert.Equal(t, settingsPassword, page.mode, "the form stays open for another try")
	assert.Equal(t, "Current password is incorrect", page.errMsg)
}

// ── clearing plan history ────────────────────────────────────

func TestSettingsPage_ClearMealPlans_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _, mockPlans := newTestSettingsPage(t, ctrl)

	pressDown(page, settingsRowClearMeal)
	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, settingsConfirm, page.mode)
	assert.Contains(t, page.View(), "Delete all saved meal plans?")

	_, cmd := page.Update(keyRunes("y"))
	require.NotNil(t, cmd)

	mockPlans.EXPECT().ClearPlans(gomock.Any(), models.PlanMeal, true).Return(int64(4), nil)

	_, reload := page.Update(cmd())
	assert.Equal(t, "Deleted 4 meal plan(s)", page.status)
	assert.NotNil(t, reload, "the preview refreshes after the purge")
}

func TestSettingsPage_ConfirmDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _, _ := newTestSettingsPage(t, ctrl)

	pressDown(page, settingsRowClearWorkout)
	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, settingsConfirm, page.mode)

	_, cmd := page.Update(keyRunes("n"))
	assert.Nil(t, cmd, "declining calls nothing")
	assert.Equal(t, settingsBrowse, page.mode)
}

// ── logout ───────────────────────────────────────────────────

func TestSettingsPage_Logout_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, mockAuth, _ := newTestSettingsPage(t, ctrl)

	pressDown(page, settingsRowLogout)
	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, settingsConfirm, page.mode)
	assert.Contains(t, page.View(), "Sign out of sam?")

	_, cmd := page.Update(keyRunes("y"))
	require.NotNil(t, cmd)

	mockAuth.EXPECT().Logout(gomock.Any()).Return(nil)

	done, ok := cmd().(logoutDoneMsg)
	require.True(t, ok, "the router finishes the sign-out")
	assert.NoError(t, done.err)
}

// ── about block ──────────────────────────────────────────────

func TestSettingsPage_ViewShowsVersionsAndRecentPlans(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _, _ := newTestSettingsPage(t, ctrl)

	_, _ = page.Update(serverVersionMsg{version: "1.2.0"})
	_, _ = page.Update(recentPlansMsg{kind: models.PlanWorkout, plans: []models.Plan{
		{Kind: models.PlanWorkout, Content: "## Monday\nPush-ups 3x10", CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
	}})

	view := page.View()
	assert.Contains(t, view, "1.4.0", "client version from the build info")
	assert.Contains(t, view, "1.2.0", "version reported by the server")
	assert.Contains(t, view, "2026-08-20")
	assert.Contains(t, view, "Monday")
}

func TestSettingsPage_ServerVersionErrorFallsBackToNA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _, _ := newTestSettingsPage(t, ctrl)

	_, _ = page.Update(serverVersionMsg{err: assert.AnError})

	assert.Contains(t, page.View(), "N/A")
}
