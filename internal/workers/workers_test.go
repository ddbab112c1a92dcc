// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/levelup-fitness/internal/config"
	"github.com/MKhiriev/levelup-fitness/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run(context.Background())

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestWorkers_Run_CalledOnce(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run(context.Background())

	if w.runCount != 1 {
		t.Errorf("expected Run to be called exactly once, got %d", w.runCount)
	}
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}

	ws.Run(context.Background())
	ws.Run(context.Background())
	ws.Run(context.Background())

	if w.runCount != 3 {
		t.Errorf("expected runCount=3 after 3 calls, got %d", w.runCount)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(_ context.Context) {
	*o.order = append(*o.order, o.id)
}

// fakeSessionJob records the arguments the session refresher hands to Start.
type fakeSessionJob struct {
	startCount int
	gotCtx     context.Context
	interval   time.Duration
}

func (f *fakeSessionJob) Start(ctx context.Context, interval time.Duration) {
	f.startCount++
	f.gotCtx = ctx
	f.interval = interval
}

func (f *fakeSessionJob) Stop() {}

func TestNewWorkers_WiresSessionRefresher(t *testing.T) {
	job := &fakeSessionJob{}
	services := &service.ClientServices{SessionJob: job}
	cfg := config.ClientWorkers{TokenRefreshInterval: 90 * time.Second}

	ws := NewWorkers(services, cfg)

	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}

	ws.Run(context.Background())

	if job.startCount != 1 {
		t.Fatalf("expected session job Start to be called once, got %d", job.startCount)
	}
	if job.interval != 90*time.Second {
		t.Errorf("expected configured interval to reach the job, got %v", job.interval)
	}
}

func TestSessionRefresher_Run_PassesContext(t *testing.T) {
	job := &fakeSessionJob{}
	w := newSessionRefresher(job, time.Minute)

	type ctxKey string
	ctx := context.WithValue(context.Background(), ctxKey("marker"), "value")
	w.Run(ctx)

	if job.gotCtx == nil {
		t.Fatal("expected the job to receive a context")
	}
	if got := job.gotCtx.Value(ctxKey("marker")); got != "value" {
		t.Errorf("expected the caller's context to be passed through, got %v", got)
	}
}
