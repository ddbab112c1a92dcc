package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/mock"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfilePage(t *testing.T, ctrl *gomock.Controller) (*profilePage, *mock.MockClientProfileService) {
	t.Helper()

	mockProfiles := mock.NewMockClientProfileService(ctrl)
	services := &service.ClientServices{ProfileService: mockProfiles}
	session := &uiSession{
		authenticated: true,
		user:          models.Session{UserID: 7, Login: "sam"},
	}

	return newProfilePage(context.Background(), services, session), mockProfiles
}

func storedProfile() models.Profile {
	return models.Profile{
		UserID:         7,
		Name:           "Sam",
		Age:            16,
		Gender:         models.Genders[1],
		HeightCm:       170,
		WeightKg:       63.5,
		TargetWeightKg: 60,
	}
}

func TestProfilePage_Init_LoadsProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, mockProfiles := newTestProfilePage(t, ctrl)

	cmd := page.Init()
	require.NotNil(t, cmd)
	assert.True(t, page.loading)

	mockProfiles.EXPECT().GetProfile(gomock.Any()).Return(storedProfile(), nil)

	_, _ = page.Update(cmd())
	assert.False(t, page.loading)
	assert.Equal(t, "Sam", page.form.Name)
	assert.Equal(t, models.Genders[1], page.gender.value(), "the picker lands on the stored gender")
}

func TestProfilePage_EditAge_BoundsChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := newTestProfilePage(t, ctrl)
	page.form = storedProfile()
	page.cursor = profileRowAge

	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, page.editing)
	assert.Equal(t, "16", page.input.Value(), "the editor opens preloaded")

	page.input.SetValue("9")
	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, page.editing, "a rejected value keeps the editor open")
	assert.Equal(t, "Age must be a whole number between 10 and 120", page.errMsg)

	page.input.SetValue("15")
	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, page.editing)
	assert.Equal(t, 15, page.form.Age)
}

func TestProfilePage_EscCancelsEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := newTestProfilePage(t, ctrl)
	page.form = storedProfile()
	page.cursor = profileRowWeight

	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEnter})
	page.input.SetValue("80")
	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, page.editing)
	assert.InDelta(t, 63.5, page.form.WeightKg, 1e-9, "the abandoned value never lands")
}

func TestProfilePage_GenderCycledInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := newTestProfilePage(t, ctrl)
	page.form = storedProfile()
	page.gender = newPicker(models.Genders, page.form.Gender)
	page.cursor = profileRowGender

	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.Genders[2], page.form.Gender)

	_, _ = page.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.Genders[1], page.form.Gender)
}

func TestProfilePage_Save_SendsFullForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, mockProfiles := newTestProfilePage(t, ctrl)
	page.form = storedProfile()
	page.gender = newPicker(models.Genders, page.form.Gender)

	_, cmd := page.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, page.saving)

	mockProfiles.EXPECT().SaveProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, profile models.Profile) (models.Profile, error) {
			assert.Equal(t, "Sam", profile.Name)
			assert.Equal(t, models.Genders[1], profile.Gender)
			assert.Equal(t, 170, profile.HeightCm)
			return profile, nil
		})

	_, _ = page.Update(cmd())
	assert.False(t, page.saving)
	assert.Equal(t, "Profile saved", page.status)
}

func TestProfilePage_SaveRejection_ShownInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page, _ := newTestProfilePage(t, ctrl)
	page.saving = true

	_, _ = page.Update(profileSavedMsg{err: service.ErrInvalidDataProvided})

	assert.False(t, page.saving)
	assert.Equal(t, "Invalid data provided", page.errMsg)
}
