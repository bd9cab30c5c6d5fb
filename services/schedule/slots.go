package schedule

import (
	"context"
	"fmt"

	"clubbook/models"
	"clubbook/services/availability"
	"clubbook/services/planner"

	"go.uber.org/zap"
)

// ListSlots returns the resource's declared slots with their next applicable dates.
func (s *DefaultScheduleService) ListSlots(ctx context.Context, resourceID string) ([]models.SlotView, error) {
	slots, err := s.loadSlots(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	blackouts, err := s.blackoutDates(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	views := make([]models.SlotView, 0, len(slots))
	for _, slot := range slots {
		upcoming, err := availability.UpcomingDates(slot, today, s.PreviewCount, blackouts)
		if err != nil {
			s.logger().Warn("Failed to expand slot occurrences",
				zap.String("slotID", slot.ID), zap.Error(err))
		}
		views = append(views, models.SlotView{SlotRecord: models.RecordFromSlot(slot), UpcomingDates: upcoming})
	}
	return views, nil
}

// ApplyCommand plans cmd against the current slots and issues the resulting writes.
// Bookings are never touched.
func (s *DefaultScheduleService) ApplyCommand(ctx context.Context, resourceID string, cmd planner.Command) (planner.Plan, error) {
	current, err := s.loadSlots(ctx, resourceID)
	if err != nil {
		return planner.Plan{}, err
	}

	newPlanner := s.NewPlanner
	if newPlanner == nil {
		newPlanner = planner.New
	}
	plan, err := newPlanner(resourceID).Plan(current, cmd)
	if err != nil {
		return planner.Plan{}, err
	}

	for _, effect := range plan.Effects {
		switch effect.Kind {
		case planner.EffectWrite:
			if err := s.Slots.Upsert(ctx, models.RecordFromSlot(*effect.Slot)); err != nil {
				return planner.Plan{}, fmt.Errorf("failed to write slot %s: %w", effect.SlotID, err)
			}
		case planner.EffectDelete:
			if err := s.Slots.Delete(ctx, resourceID, effect.SlotID); err != nil {
				return planner.Plan{}, fmt.Errorf("failed to delete slot %s: %w", effect.SlotID, err)
			}
		}
	}

	for _, w := range plan.Warnings {
		s.logger().Info("Slot command warning", zap.String("resourceID", resourceID), zap.String("warning", w))
	}
	return plan, nil
}

// MigrateLegacy stamps isRecurring on every legacy slot in the store and
// returns how many were migrated.
func (s *DefaultScheduleService) MigrateLegacy(ctx context.Context) (int, error) {
	legacy, err := s.Slots.ListLegacy(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list legacy slots: %w", err)
	}

	byResource := make(map[string][]string)
	for _, rec := range legacy {
		if _, _, err := models.SlotFromRecord(rec); err != nil {
			s.logger().Warn("Legacy slot is malformed, leaving untouched",
				zap.String("slotID", rec.ID), zap.Error(err))
			continue
		}
		byResource[rec.ResourceID] = append(byResource[rec.ResourceID], rec.ID)
	}

	migrated := 0
	for resourceID, ids := range byResource {
		if err := s.Slots.MarkRecurring(ctx, resourceID, ids); err != nil {
			return migrated, fmt.Errorf("failed to migrate slots of %s: %w", resourceID, err)
		}
		migrated += len(ids)
	}
	return migrated, nil
}
