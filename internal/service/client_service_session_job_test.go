// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyAuthService считает вызовы RefreshToken и позволяет задать ошибку.
type spyAuthService struct {
	calls atomic.Int64
	err   error
}

func (s *spyAuthService) RefreshToken(_ context.Context) (string, error) {
	s.calls.Add(1)
	return "refreshed-token", s.err
}

func (s *spyAuthService) Register(_ context.Context, _ models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}

func (s *spyAuthService) Login(_ context.Context, _ models.Credentials) (models.Session, error) {
	return models.Session{}, nil
}

func (s *spyAuthService) RestoreSession(_ context.Context) (models.Session, error) {
	return models.Session{}, nil
}

func (s *spyAuthService) ChangePassword(_ context.Context, _ models.ChangePasswordRequest) error {
	return nil
}

func (s *spyAuthService) Logout(_ context.Context) error { return nil }

// ── NewClientSessionJob ──────────────────────────────────────────────────────

func TestNewClientSessionJob_ReturnsInterface(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	require.NotNil(t, job)

	// проверяем что возвращённый объект реализует ClientSessionJob
	var _ ClientSessionJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSessionJob_Start_RefreshesToken(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	ctx := context.Background()

	// Интервал 10ms — за 55ms должно быть ~5 тиков
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "RefreshToken должен быть вызван несколько раз, вызвано: %d", got)
}

func TestClientSessionJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "после Stop новых вызовов быть не должно")
}

func TestClientSessionJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSessionJob_DoubleStop_NoPanic(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	job.Stop()

	// Повторный Stop не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSessionJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy).(*clientSessionJob)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 → дефолт 5 минут, за 20ms вызовов быть не должно
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load(), "при дефолтном интервале 5min за 20ms вызовов нет")
}

func TestClientSessionJob_Start_NegativeInterval(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	// Отрицательный интервал → дефолт 5 минут
	job.Start(ctx, -1*time.Second)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientSessionJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	ctx := context.Background()

	// Первый запуск
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// Start повторно на том же job — внутри вызовет Stop()
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	// Оба раунда должны были сгенерировать вызовы
	totalCalls := spy.calls.Load()
	assert.Greater(t, totalCalls, callsBefore, "второй Start должен продолжить генерировать вызовы")
}

func TestClientSessionJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyAuthService{}
	job := NewClientSessionJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel() // отменяем родительский контекст

	// Stop должен вернуться без зависания
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
		// ok
	case <-time.After(1 * time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestClientSessionJob_RefreshError_DoesNotStopJob(t *testing.T) {
	spy := &spyAuthService{err: assert.AnError}
	job := NewClientSessionJob(spy)
	ctx := context.Background()

	// RefreshToken возвращает ошибку, но джоб продолжает работать
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "несмотря на ошибки, RefreshToken продолжает вызываться: %d", got)
}
