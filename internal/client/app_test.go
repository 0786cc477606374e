package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/salestrak-pa/internal/config"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	service.ClientAuthService
	user *models.User
	err  error
}

func (s stubAuth) RestoreSession(context.Context) (*models.User, error) {
	return s.user, s.err
}

type stubJob struct {
	interval time.Duration
	onLoad   func(models.DashboardData)
	started  bool
}

func (j *stubJob) Start(_ context.Context, interval time.Duration, onLoad func(models.DashboardData)) {
	j.started = true
	j.interval = interval
	j.onLoad = onLoad
}

func (j *stubJob) Stop() {}

type stubUI struct {
	user      *models.User
	ran       bool
	err       error
	refreshed []models.DashboardData
}

func (u *stubUI) Run(_ context.Context, user *models.User) error {
	u.ran = true
	u.user = user
	return u.err
}

func (u *stubUI) NotifyDashboard(data models.DashboardData) {
	u.refreshed = append(u.refreshed, data)
}

func newTestApp(t *testing.T, auth stubAuth, job *stubJob, ui *stubUI, interval time.Duration) *App {
	t.Helper()
	services := &service.ClientServices{AuthService: auth, RefreshJob: job}
	app, err := NewApp(services, ui, config.ClientWorkers{RefreshInterval: interval}, logger.Nop())
	require.NoError(t, err)
	return app
}

func TestApp_RunWithRestoredSession(t *testing.T) {
	user := &models.User{Email: "rep@example.com"}
	job := &stubJob{}
	ui := &stubUI{}
	app := newTestApp(t, stubAuth{user: user}, job, ui, time.Minute)

	require.NoError(t, app.Run())

	assert.True(t, ui.ran)
	assert.Equal(t, user, ui.user)
	require.True(t, job.started)
	assert.Equal(t, time.Minute, job.interval)

	job.onLoad(models.DashboardData{User: user})
	require.Len(t, ui.refreshed, 1)
}

func TestApp_RunWithoutSessionStartsAtMenu(t *testing.T) {
	for name, err := range map[string]error{
		"nothing stored": service.ErrNoStoredSession,
		"backend down":   errors.New("network failure"),
	} {
		t.Run(name, func(t *testing.T) {
			ui := &stubUI{}
			app := newTestApp(t, stubAuth{err: err}, &stubJob{}, ui, 0)

			require.NoError(t, app.Run())
			assert.True(t, ui.ran)
			assert.Nil(t, ui.user)
		})
	}
}

func TestApp_RefreshDisabled(t *testing.T) {
	job := &stubJob{}
	app := newTestApp(t, stubAuth{err: service.ErrNoStoredSession}, job, &stubUI{}, 0)

	require.NoError(t, app.Run())
	assert.False(t, job.started)
}

func TestApp_UIErrorIsReturned(t *testing.T) {
	app := newTestApp(t, stubAuth{err: service.ErrNoStoredSession}, &stubJob{}, &stubUI{err: errors.New("no tty")}, 0)

	err := app.Run()
	assert.ErrorContains(t, err, "no tty")
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}
