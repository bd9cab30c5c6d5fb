package availability

import (
	"time"

	"clubbook/models"
)

func tod(h, m int) models.TimeOfDay { return models.NewTimeOfDay(h, m) }

func recurringSlot(id string, wd time.Weekday, start, end string) models.DeclaredSlot {
	return models.DeclaredSlot{
		ID:         id,
		ResourceID: "coach-1",
		Window: models.TimeWindowSpec{
			Start:    tod(9, 0),
			End:      tod(17, 0),
			Services: []string{"A"},
		},
		Rule: models.RecurringRule{DayOfWeek: wd, StartDate: start, EndDate: end},
	}
}

func datedSlot(id, date string, start, end models.TimeOfDay, services ...string) models.DeclaredSlot {
	return models.DeclaredSlot{
		ID:         id,
		ResourceID: "coach-1",
		Window:     models.TimeWindowSpec{Start: start, End: end, Services: services},
		Rule:       models.DatedRule{Date: date},
	}
}

func ids(slots []models.DeclaredSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.ID)
	}
	return out
}
