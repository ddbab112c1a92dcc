package tui

import (
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/service"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresServicesAndConfig(t *testing.T) {
	_, err := New(nil, &config.ClientConfig{}, models.AppBuildInfo{}, nil)
	require.Error(t, err)

	_, err = New(&service.ClientServices{}, nil, models.AppBuildInfo{}, nil)
	require.Error(t, err)

	tui, err := New(&service.ClientServices{}, &config.ClientConfig{}, models.AppBuildInfo{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, tui.logger, "a missing logger falls back to a no-op one")
}

func TestRestoredStartPage(t *testing.T) {
	assert.Equal(t, pageProgress, restoredStartPage(pageProgress))
	assert.Equal(t, pageWorkoutLog, restoredStartPage(pageWorkoutLog))

	// unknown or auth-only values land on the profile
	assert.Equal(t, pageProfile, restoredStartPage(""))
	assert.Equal(t, pageProfile, restoredStartPage("dashboard"))
	assert.Equal(t, pageProfile, restoredStartPage(pageLogin))
}
