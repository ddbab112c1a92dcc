// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MKhiriev/levelup-fitness/internal/logger"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
	"github.com/MKhiriev/levelup-fitness/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func newIntegrityHandler(hashKey string) *Handler {
	return &Handler{hashKey: hashKey, logger: logger.Nop()}
}

func makePlanBody(t *testing.T, content, hash string) []byte {
	t.Helper()
	body, err := json.Marshal(models.AppendPlanRequest{
		Kind:    models.PlanWorkout,
		Content: content,
		Hash:    hash,
	})
	require.NoError(t, err)
	return body
}

func computeContentHash(t *testing.T, content string) string {
	t.Helper()
	return hex.EncodeToString(utils.Hash([]byte(content)))
}

const samplePlanText = "# Day 1\n\n- Squats 3x10\n- Push-ups 3x12\n"

// --- planIntegrity tests ---

func TestPlanIntegrity_TableTest(t *testing.T) {
	utils.InitHasherPool("test-secret-key")

	validHash := computeContentHash(t, samplePlanText)
	emptyContentHash := computeContentHash(t, "")

	tests := []struct {
		name           string
		body           []byte
		expectedStatus int
	}{
		{
			name:           "valid hash with content",
			body:           makePlanBody(t, samplePlanText, validHash),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid hash with empty content",
			body:           makePlanBody(t, "", emptyContentHash),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid hash - wrong value",
			body:           makePlanBody(t, samplePlanText, "0000000000000000000000000000000000000000000000000000000000000000"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid hash - empty string",
			body:           makePlanBody(t, samplePlanText, ""),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON body",
			body:           []byte(`not-json`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "hash mismatch - tampered content",
			body:           makePlanBody(t, samplePlanText+"tampered", validHash),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			middleware := newIntegrityHandler("test-secret-key").planIntegrity(next)
			req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, nextCalled, "next handler should be called")
			} else {
				assert.False(t, nextCalled, "next handler should NOT be called")
			}
		})
	}
}

func TestPlanIntegrity_DisabledWithoutKey(t *testing.T) {
	utils.InitHasherPool("test-secret-key")

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	// Empty hash key disables the check — even a bogus hash must pass.
	middleware := newIntegrityHandler("").planIntegrity(next)
	body := makePlanBody(t, samplePlanText, "bogus-hash")
	req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, nextCalled, "next handler should be called when the check is disabled")
}

func TestPlanIntegrity_MultipleSequentialRequests(t *testing.T) {
	utils.InitHasherPool("test-secret-key")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := newIntegrityHandler("test-secret-key").planIntegrity(next)

	for i := 0; i < 5; i++ {
		content := fmt.Sprintf("%s\nSession %d", samplePlanText, i)
		body := makePlanBody(t, content, computeContentHash(t, content))

		req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d failed", i)
	}
}

func TestPlanIntegrity_ConcurrentRequests(t *testing.T) {
	utils.InitHasherPool("test-secret-key")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := newIntegrityHandler("test-secret-key").planIntegrity(next)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			content := fmt.Sprintf("%s\nSession %d", samplePlanText, i)
			body := makePlanBody(t, content, computeContentHash(t, content))

			req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, "goroutine %d failed", i)
		}(i)
	}

	wg.Wait()
}

func TestPlanIntegrity_BodyRestoredForNextHandler(t *testing.T) {
	utils.InitHasherPool("test-secret-key")

	originalBody := makePlanBody(t, samplePlanText, computeContentHash(t, samplePlanText))

	var bodyReadByNext []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Middleware must restore the body; read it twice.
		b1, err := io.ReadAll(r.Body)
		require.NoError(t, err, "first read failed")

		// Second read should be empty (NopCloser does not rewind).
		b2, err := io.ReadAll(r.Body)
		require.NoError(t, err, "second read failed")
		assert.Empty(t, b2, "second read should be empty")

		bodyReadByNext = b1
		w.WriteHeader(http.StatusOK)
	})

	middleware := newIntegrityHandler("test-secret-key").planIntegrity(next)
	req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(originalBody))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalBody, bodyReadByNext, "next handler should receive full original body")
}
