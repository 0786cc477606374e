// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/models"
)

type clientDashboardService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{adapter: serverAdapter, logger: logger}
}

// Load implements ClientDashboardService. The goroutines never return an
// error to the group, so one failing fetch cannot cancel the others.
func (s *clientDashboardService) Load(ctx context.Context) models.DashboardData {
	var (
		data models.DashboardData
		mu   sync.Mutex
	)

	fail := func(resource string, err error) {
		s.logger.Err(err).Str("func", "clientDashboardService.Load").Str("resource", resource).Msg("dashboard fetch failed")
		mu.Lock()
		defer mu.Unlock()
		if data.Errs == nil {
			data.Errs = make(map[string]error)
		}
		data.Errs[resource] = mapAdapterError(err)
	}

	var g errgroup.Group

	g.Go(func() error {
		user, err := s.adapter.Me(ctx)
		if err != nil {
			fail(models.ResourceUser, err)
			return nil
		}
		data.User = user
		return nil
	})

	g.Go(func() error {
		groups, err := s.adapter.GetAllItems(ctx)
		if err != nil {
			fail(models.ResourceItems, err)
			return nil
		}
		data.Groups = groups
		return nil
	})

	g.Go(func() error {
		reminders, err := s.adapter.GetAllReminders(ctx)
		if err != nil {
			fail(models.ResourceReminders, err)
			return nil
		}
		data.Reminders = reminders
		return nil
	})

	g.Go(func() error {
		documents, err := s.adapter.GetAllDocuments(ctx)
		if err != nil {
			fail(models.ResourceDocuments, err)
			return nil
		}
		data.Documents = documents
		return nil
	})

	_ = g.Wait()
	return data
}
