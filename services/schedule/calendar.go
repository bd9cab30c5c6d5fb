package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubbook/models"
	"clubbook/services/availability"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

const icsUTCLayout = "20060102T150405Z"

// CalendarICS exports the declared slots of resourceID as an iCalendar feed.
// Recurring slots become one RRULE event with blackout EXDATEs, dated slots a
// single event. Recurring slots that never occur are left out.
func (s *DefaultScheduleService) CalendarICS(ctx context.Context, resourceID string) (string, error) {
	slots, err := s.loadSlots(ctx, resourceID)
	if err != nil {
		return "", err
	}
	blackouts, err := s.blackoutDates(ctx, resourceID)
	if err != nil {
		return "", err
	}

	loc := s.location()
	now := s.now()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//clubbook//availability//EN")
	cal.SetXWRCalName(fmt.Sprintf("Availability %s", resourceID))

	for _, slot := range slots {
		first, ok, err := firstOccurrence(slot, now)
		if err != nil {
			return "", err
		}
		if !ok {
			continue
		}

		start := slot.Window.Start.On(first, loc)
		event := cal.AddEvent(slot.ID + "@clubbook")
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(slot.Window.End.On(first, loc))
		event.SetSummary("Available: " + strings.Join(slot.Window.Services, ", "))

		rule, recurring := slot.Rule.(models.RecurringRule)
		if !recurring {
			continue
		}
		opt := availability.RecurrenceOption(rule)
		// DTSTART is written in UTC, so BYDAY must name the UTC weekday
		opt.Byweekday = []rrule.Weekday{availability.RRuleWeekday(start.UTC().Weekday())}
		if rule.EndDate != "" {
			end, err := models.ParseDate(rule.EndDate)
			if err != nil {
				return "", err
			}
			opt.Until = slot.Window.End.On(end, loc).UTC()
		}
		event.AddProperty(ics.ComponentPropertyRrule, opt.RRuleString())

		for _, b := range blackouts {
			day, err := models.ParseDate(b)
			if err != nil || day.Before(first) || !rule.AppliesOn(b, day.Weekday()) {
				continue
			}
			event.AddProperty(ics.ComponentPropertyExdate, slot.Window.Start.On(day, loc).UTC().Format(icsUTCLayout))
		}
	}

	return cal.Serialize(), nil
}

// firstOccurrence picks the date an exported event starts on: the single date
// of a dated slot, or the first applicable date of a recurring one, counted
// from its start date or from today when the rule is open.
func firstOccurrence(slot models.DeclaredSlot, now time.Time) (time.Time, bool, error) {
	switch r := slot.Rule.(type) {
	case models.DatedRule:
		d, err := models.ParseDate(r.Date)
		return d, err == nil, err
	case models.RecurringRule:
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if r.StartDate != "" {
			start, err := models.ParseDate(r.StartDate)
			if err != nil {
				return time.Time{}, false, err
			}
			from = start
		}
		dates, err := availability.UpcomingDates(slot, from, 1, nil)
		if err != nil || len(dates) == 0 {
			return time.Time{}, false, err
		}
		d, err := models.ParseDate(dates[0])
		return d, err == nil, err
	}
	return time.Time{}, false, nil
}
