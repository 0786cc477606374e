package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/service"
	"github.com/MKhiriev/salestrak-pa/internal/state"
	"github.com/MKhiriev/salestrak-pa/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the screens.
type Options struct {
	// DownloadDir is where downloaded documents are written.
	DownloadDir string
	// LinkBase prefixes the item links copied to the clipboard.
	LinkBase string
}

type TUI struct {
	services *service.ClientServices
	appInfo  service.AppInfoService
	opts     Options
	logger   *logger.Logger

	mu      sync.Mutex
	program *tea.Program
}

func New(services *service.ClientServices, appInfo service.AppInfoService, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, appInfo: appInfo, opts: opts, logger: logger}, nil
}

// Run shows the UI until the user quits. A restored user opens the
// dashboard directly; otherwise the menu is shown.
func (t *TUI) Run(ctx context.Context, user *models.User) error {
	s := t.services
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewAuthModel(ctx, s.AuthService, state.AuthLogin),
		pageRegister:  NewAuthModel(ctx, s.AuthService, state.AuthRegister),
		pageReset:     NewAuthModel(ctx, s.AuthService, state.AuthReset),
		pageDashboard: NewDashboardModel(ctx, s.DashboardService, s.SearchService, s.AuthService),
		pageItem: NewItemModel(ctx, ItemServices{
			Items:     s.ItemService,
			Reminders: s.ReminderService,
			Documents: s.DocumentService,
		}, t.opts.DownloadDir, t.opts.LinkBase),
	}

	startPage := pageMenu
	if user != nil {
		startPage = pageDashboard
	}

	var (
		version   string
		buildInfo models.AppBuildInfo
	)
	if t.appInfo != nil {
		version = t.appInfo.GetAppVersion(ctx)
		buildInfo = t.appInfo.GetBuildInfo(ctx)
	}

	root := NewRootModel(pages, startPage, version, buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()
	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	t.logger.Info().Str("func", "TUI.Run").Str("page", startPage).Msg("starting ui")
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// NotifyDashboard hands a background dashboard load to the running UI. It
// is a no-op while no UI is running.
func (t *TUI) NotifyDashboard(data models.DashboardData) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(DashboardRefreshed{Data: data})
	}
}
