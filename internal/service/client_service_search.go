package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/models"
)

type clientSearchService struct {
	adapter adapter.ServerAdapter
}

func NewClientSearchService(serverAdapter adapter.ServerAdapter) ClientSearchService {
	return &clientSearchService{adapter: serverAdapter}
}

// SearchItems returns no options and sends nothing for a blank term.
func (s *clientSearchService) SearchItems(ctx context.Context, term string) ([]models.SearchOption, error) {
	if strings.TrimSpace(term) == "" {
		return nil, nil
	}
	opts, err := s.adapter.SearchItems(ctx, term)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return opts, nil
}

func (s *clientSearchService) SearchDocuments(ctx context.Context, term string) ([]models.SearchOption, error) {
	if strings.TrimSpace(term) == "" {
		return nil, nil
	}
	opts, err := s.adapter.SearchDocuments(ctx, term)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return opts, nil
}
