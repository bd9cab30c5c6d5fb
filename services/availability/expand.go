package availability

import (
	"time"

	"github.com/teambition/rrule-go"

	"clubbook/models"
)

// maxPreviewSpan caps how far ahead open-ended rules are expanded.
const maxPreviewSpan = 366 * 24 * time.Hour

var rruleWeekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// RRuleWeekday maps a time.Weekday onto its rrule counterpart.
func RRuleWeekday(wd time.Weekday) rrule.Weekday {
	return rruleWeekdays[wd]
}

// RecurrenceOption describes r as a weekly RRULE. Dtstart is left zero.
func RecurrenceOption(r models.RecurringRule) rrule.ROption {
	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{RRuleWeekday(r.DayOfWeek)},
	}
	if r.EndDate != "" {
		if end, err := models.ParseDate(r.EndDate); err == nil {
			opt.Until = end
		}
	}
	return opt
}

// OccurrenceDates lists the dates in [from, to] on which slot applies, minus blackouts.
func OccurrenceDates(slot models.DeclaredSlot, from, to time.Time, blackouts []string) ([]string, error) {
	from = truncateDay(from)
	to = truncateDay(to)
	if to.Before(from) {
		return nil, nil
	}

	var dates []time.Time
	switch r := slot.Rule.(type) {
	case models.DatedRule:
		d, err := models.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		if !d.Before(from) && !d.After(to) {
			dates = append(dates, d)
		}
	case models.RecurringRule:
		opt := RecurrenceOption(r)
		opt.Dtstart = from
		if r.StartDate != "" {
			start, err := models.ParseDate(r.StartDate)
			if err != nil {
				return nil, err
			}
			if start.After(from) {
				opt.Dtstart = start
			}
		}
		rule, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, err
		}
		dates = rule.Between(from, to, true)
	}

	skip := make(map[string]struct{}, len(blackouts))
	for _, b := range blackouts {
		skip[b] = struct{}{}
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		ds := models.FormatDate(d)
		if _, blacked := skip[ds]; blacked {
			continue
		}
		out = append(out, ds)
	}
	return out, nil
}

// UpcomingDates returns at most n dates on or after from on which slot applies.
func UpcomingDates(slot models.DeclaredSlot, from time.Time, n int, blackouts []string) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	dates, err := OccurrenceDates(slot, from, from.Add(maxPreviewSpan), blackouts)
	if err != nil {
		return nil, err
	}
	if len(dates) > n {
		dates = dates[:n]
	}
	return dates, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
