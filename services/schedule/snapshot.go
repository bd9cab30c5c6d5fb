package schedule

import (
	"context"
	"fmt"

	"clubbook/models"
	"clubbook/services/availability"

	"go.uber.org/zap"
)

// loadSlots reads and validates a resource's declared slots. Legacy records are
// migrated on the way in and the migration is written back. Records that fail
// validation are logged and skipped so one bad row cannot hide a whole calendar.
func (s *DefaultScheduleService) loadSlots(ctx context.Context, resourceID string) ([]models.DeclaredSlot, error) {
	records, err := s.Slots.ListByResource(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots for %s: %w", resourceID, err)
	}

	slots := make([]models.DeclaredSlot, 0, len(records))
	var migrated []string
	for _, rec := range records {
		slot, wasLegacy, err := models.SlotFromRecord(rec)
		if err != nil {
			s.logger().Warn("Skipping malformed declared slot",
				zap.String("resourceID", resourceID), zap.String("slotID", rec.ID), zap.Error(err))
			continue
		}
		if wasLegacy {
			migrated = append(migrated, slot.ID)
		}
		slots = append(slots, slot)
	}

	if len(migrated) > 0 {
		if err := s.Slots.MarkRecurring(ctx, resourceID, migrated); err != nil {
			s.logger().Error("Failed to persist legacy slot migration",
				zap.String("resourceID", resourceID), zap.Strings("slotIDs", migrated), zap.Error(err))
		} else {
			s.logger().Info("Migrated legacy slots to recurring",
				zap.String("resourceID", resourceID), zap.Strings("slotIDs", migrated))
		}
	}
	return slots, nil
}

func (s *DefaultScheduleService) blackoutDates(ctx context.Context, resourceID string) ([]string, error) {
	blackouts, err := s.Blackouts.List(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blackouts for %s: %w", resourceID, err)
	}
	dates := make([]string, 0, len(blackouts))
	for _, b := range blackouts {
		dates = append(dates, b.Date)
	}
	return dates, nil
}

// Snapshot gathers everything the availability pipeline needs for resourceID,
// with bookings limited to [fromDate, toDate].
func (s *DefaultScheduleService) Snapshot(ctx context.Context, resourceID, fromDate, toDate string) (availability.Snapshot, error) {
	slots, err := s.loadSlots(ctx, resourceID)
	if err != nil {
		return availability.Snapshot{}, err
	}
	blackouts, err := s.blackoutDates(ctx, resourceID)
	if err != nil {
		return availability.Snapshot{}, err
	}
	services, err := s.Services.List(ctx, resourceID)
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("failed to list services for %s: %w", resourceID, err)
	}
	bookings, err := s.Bookings.ListByResourceAndRange(ctx, resourceID, fromDate, toDate)
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("failed to list bookings for %s: %w", resourceID, err)
	}
	return availability.Snapshot{
		ResourceID: resourceID,
		Slots:      slots,
		Blackouts:  blackouts,
		Bookings:   bookings,
		Services:   services,
	}, nil
}
