// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyDashboardService counts Load calls.
type spyDashboardService struct {
	calls atomic.Int64
}

func (s *spyDashboardService) Load(_ context.Context) models.DashboardData {
	n := s.calls.Add(1)
	return models.DashboardData{User: &models.User{ID: n}}
}

// ── NewClientRefreshJob ──────────────────────────────────────────────────────

func TestNewClientRefreshJob_ReturnsInterface(t *testing.T) {
	job := NewClientRefreshJob(&spyDashboardService{})
	require.NotNil(t, job)

	var _ ClientRefreshJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientRefreshJob_Start_CallsLoad(t *testing.T) {
	spy := &spyDashboardService{}
	job := NewClientRefreshJob(spy)

	var delivered atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func(data models.DashboardData) {
		delivered.Add(1)
	})
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Load should be called several times, called: %d", got)
	assert.Equal(t, got, delivered.Load(), "every load is delivered")
}

func TestClientRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyDashboardService{}
	job := NewClientRefreshJob(spy)

	job.Start(context.Background(), 10*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no loads after Stop")
}

func TestClientRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spyDashboardService{})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spyDashboardService{})

	job.Start(context.Background(), 10*time.Millisecond, nil)
	job.Stop()

	// a second Stop must not panic
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyDashboardService{}
	job := NewClientRefreshJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to DefaultRefreshInterval
	job.Start(ctx, 0, nil)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientRefreshJob(&spyDashboardService{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond, nil)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestClientRefreshJob_Restart_ReplacesCallback(t *testing.T) {
	spy := &spyDashboardService{}
	job := NewClientRefreshJob(spy)

	var first, second atomic.Int64
	job.Start(context.Background(), 10*time.Millisecond, func(models.DashboardData) { first.Add(1) })
	time.Sleep(30 * time.Millisecond)

	// starting the same job again stops the previous run first
	job.Start(context.Background(), 10*time.Millisecond, func(models.DashboardData) { second.Add(1) })
	firstAfterRestart := first.Load()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, firstAfterRestart, int64(0))
	assert.Equal(t, firstAfterRestart, first.Load(), "old callback is not called after restart")
	assert.Greater(t, second.Load(), int64(0))
}
