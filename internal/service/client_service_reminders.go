package service

import (
	"context"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
)

type clientReminderService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientReminderService(serverAdapter adapter.ServerAdapter, validator validators.Validator, logger *logger.Logger) ClientReminderService {
	return &clientReminderService{adapter: serverAdapter, validator: validator, logger: logger}
}

func (s *clientReminderService) Add(ctx context.Context, headerID, itemID int64, form models.ReminderForm) error {
	if err := s.validator.Validate(ctx, form); err != nil {
		return err
	}

	err := s.adapter.AddReminder(ctx, models.ReminderRequest{
		HeaderID: headerID,
		ItemID:   itemID,
		Name:     form.Name,
		Date:     form.Date,
		Before:   form.Before,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientReminderService.Add").Int64("item_id", itemID).Msg("failed to add reminder")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientReminderService) Edit(ctx context.Context, id int64) (models.Reminder, error) {
	reminder, err := s.adapter.EditReminder(ctx, id)
	if err != nil {
		return models.Reminder{}, mapAdapterError(err)
	}
	return reminder, nil
}

func (s *clientReminderService) Update(ctx context.Context, form models.ReminderForm) error {
	if err := s.validator.Validate(ctx, form); err != nil {
		return err
	}

	err := s.adapter.UpdateReminder(ctx, form.EditingID, models.ReminderUpdateRequest{
		Name:   form.Name,
		Date:   form.Date,
		Before: form.Before,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientReminderService.Update").Int64("reminder_id", form.EditingID).Msg("failed to update reminder")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientReminderService) Delete(ctx context.Context, id int64) error {
	if err := s.adapter.DeleteReminder(ctx, id); err != nil {
		return mapAdapterError(err)
	}
	return nil
}
