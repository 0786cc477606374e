package service

import (
	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/store"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
)

type ClientServices struct {
	AuthService      ClientAuthService
	DashboardService ClientDashboardService
	ItemService      ClientItemService
	ReminderService  ClientReminderService
	DocumentService  ClientDocumentService
	SearchService    ClientSearchService
	RefreshJob       ClientRefreshJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewFormValidator()
	dashboardSvc := NewClientDashboardService(serverAdapter, logger)

	return &ClientServices{
		AuthService:      NewClientAuthService(localStore.SessionRepository, serverAdapter, validator, logger),
		DashboardService: dashboardSvc,
		ItemService:      NewClientItemService(serverAdapter, validator, logger),
		ReminderService:  NewClientReminderService(serverAdapter, validator, logger),
		DocumentService:  NewClientDocumentService(serverAdapter, validator, logger),
		SearchService:    NewClientSearchService(serverAdapter),
		RefreshJob:       NewClientRefreshJob(dashboardSvc),
	}
}
