package schedule

import (
	"context"

	"clubbook/models"
	"clubbook/services/availability"

	"go.uber.org/zap"
)

// WindowsForDate returns the annotated windows of resourceID on date.
func (s *DefaultScheduleService) WindowsForDate(ctx context.Context, resourceID, date string) (availability.Result, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return availability.Result{}, err
	}
	date = models.FormatDate(day)

	snap, err := s.Snapshot(ctx, resourceID, date, date)
	if err != nil {
		return availability.Result{}, err
	}
	return s.windows(snap, date)
}

// WindowsForRange runs WindowsForDate for every date in [fromDate, toDate]
// against a single snapshot.
func (s *DefaultScheduleService) WindowsForRange(ctx context.Context, resourceID, fromDate, toDate string) ([]availability.Result, error) {
	from, err := models.ParseDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := models.ParseDate(toDate)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, models.InvalidDate("range end %s is before start %s", toDate, fromDate)
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if s.MaxRangeDays > 0 && days > s.MaxRangeDays {
		return nil, models.InvalidDate("range of %d days exceeds the maximum of %d", days, s.MaxRangeDays)
	}

	snap, err := s.Snapshot(ctx, resourceID, models.FormatDate(from), models.FormatDate(to))
	if err != nil {
		return nil, err
	}

	results := make([]availability.Result, 0, days)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		res, err := s.windows(snap, models.FormatDate(d))
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *DefaultScheduleService) windows(snap availability.Snapshot, date string) (availability.Result, error) {
	res, err := availability.WindowsForDate(snap, date)
	if err != nil {
		return availability.Result{}, err
	}
	for _, w := range res.Warnings {
		s.logger().Warn("Availability warning",
			zap.String("resourceID", snap.ResourceID), zap.String("date", date), zap.String("warning", w))
	}
	if s.HidePast {
		res.Windows = availability.DropStarted(res.Windows, s.now())
	}
	return res, nil
}
