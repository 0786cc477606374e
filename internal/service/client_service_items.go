package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
)

type clientItemService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientItemService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientItemService {
	return &clientItemService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (s *clientItemService) Headers(ctx context.Context) ([]models.Header, error) {
	headers, err := s.adapter.GetHeaders(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return headers, nil
}

func (s *clientItemService) AddHeader(ctx context.Context, name string) (models.Header, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Header{}, nil
	}

	header, err := s.adapter.AddHeader(ctx, name)
	if err != nil {
		return models.Header{}, mapAdapterError(err)
	}
	if header.HeaderName == "" {
		header.HeaderName = name
	}
	return header, nil
}

func (s *clientItemService) Get(ctx context.Context, encodedHeaderID, encodedItemID string) (models.ItemDetails, error) {
	headerID, err := utils.DecodeID(encodedHeaderID)
	if err != nil {
		return models.ItemDetails{}, fmt.Errorf("%w: header: %w", ErrInvalidItemLink, err)
	}
	itemID, err := utils.DecodeID(encodedItemID)
	if err != nil {
		return models.ItemDetails{}, fmt.Errorf("%w: item: %w", ErrInvalidItemLink, err)
	}

	details, err := s.adapter.GetItem(ctx, headerID, itemID)
	if err != nil {
		return models.ItemDetails{}, mapAdapterError(err)
	}
	return details, nil
}

func (s *clientItemService) Save(ctx context.Context, form models.ItemForm) (models.ItemSaved, string, error) {
	if err := s.validator.Validate(ctx, form); err != nil {
		return models.ItemSaved{}, "", err
	}

	req := models.ItemUpsertRequest{
		HeaderID:   form.HeaderID,
		HeaderName: form.HeaderName,
		Title:      form.Title,
		ShortDesc:  form.ShortDesc,
		DetDesc:    form.DetDesc,
		Highlights: form.Highlights,
	}
	if !form.IsNew() {
		headerID, itemID := form.HeaderID, form.ItemID
		req.UpdatedHeaderID = &headerID
		req.UpdatedItemID = &itemID
	}

	saved, err := s.adapter.UpsertItem(ctx, req)
	if err != nil {
		return models.ItemSaved{}, "", mapAdapterError(err)
	}

	if !form.IsNew() {
		// an update may answer without ids
		if saved.ItemID == 0 {
			saved.ItemID = form.ItemID
		}
		if saved.HeaderID == 0 {
			saved.HeaderID = form.HeaderID
		}
		return saved, "", nil
	}

	if saved.ItemID == 0 || saved.HeaderID == 0 {
		s.logger.Warn().Str("func", "clientItemService.Save").Msg("backend answered without item ids")
		return saved, "", nil
	}
	return saved, utils.ItemPath(saved.HeaderID, saved.ItemID), nil
}

func (s *clientItemService) Delete(ctx context.Context, itemID int64) error {
	if err := s.adapter.DeleteItem(ctx, itemID); err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientItemService) LeadTimes(ctx context.Context) ([]models.LeadTime, error) {
	leadTimes, err := s.adapter.GetLeadTimes(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return leadTimes, nil
}

// IsInvalidItemLink reports whether err came from a malformed item link.
func IsInvalidItemLink(err error) bool {
	return errors.Is(err, ErrInvalidItemLink) || errors.Is(err, utils.ErrInvalidEncodedID)
}
