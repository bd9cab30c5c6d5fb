package schedule

import (
	"context"

	"clubbook/models"
)

func (s *DefaultScheduleService) ListBlackouts(ctx context.Context, resourceID string) ([]models.BlackoutDate, error) {
	return s.Blackouts.List(ctx, resourceID)
}

// AddBlackout vetoes every slot of resourceID on date. Adding the same date
// twice keeps a single blackout.
func (s *DefaultScheduleService) AddBlackout(ctx context.Context, resourceID, date, reason string) (*models.BlackoutDate, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	blackout := models.BlackoutDate{
		ResourceID: resourceID,
		Date:       models.FormatDate(day),
		Reason:     reason,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Blackouts.Add(ctx, blackout); err != nil {
		return nil, err
	}
	return &blackout, nil
}

func (s *DefaultScheduleService) RemoveBlackout(ctx context.Context, resourceID, date string) error {
	day, err := models.ParseDate(date)
	if err != nil {
		return err
	}
	return s.Blackouts.Remove(ctx, resourceID, models.FormatDate(day))
}

func (s *DefaultScheduleService) ListServices(ctx context.Context, resourceID string) ([]models.Service, error) {
	return s.Services.List(ctx, resourceID)
}

// UpsertService creates or replaces the service with svc.Name.
func (s *DefaultScheduleService) UpsertService(ctx context.Context, resourceID string, svc models.Service) (*models.Service, error) {
	svc.ResourceID = resourceID
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	if err := s.Services.Upsert(ctx, svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// DeleteService removes a service from the catalogue. Slots still listing it
// stop producing windows for it; existing bookings are kept.
func (s *DefaultScheduleService) DeleteService(ctx context.Context, resourceID, name string) error {
	return s.Services.Delete(ctx, resourceID, name)
}
