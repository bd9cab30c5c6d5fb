package models

import (
	"time"
)

// TimeWindowSpec is the part of a declared slot shared by both rule variants.
type TimeWindowSpec struct {
	Start        TimeOfDay `json:"startTime"`
	End          TimeOfDay `json:"endTime"`
	Services     []string  `json:"services"`
	BufferBefore int       `json:"bufferBefore"` // minutes
	BufferAfter  int       `json:"bufferAfter"`  // minutes
}

// Offers reports whether the window lists the named service.
func (w TimeWindowSpec) Offers(service string) bool {
	for _, s := range w.Services {
		if s == service {
			return true
		}
	}
	return false
}

func (w TimeWindowSpec) validate() error {
	if !w.Start.Valid() || !w.End.Valid() {
		return InvalidSlotShape("times must lie between 00:00 and 24:00")
	}
	if w.Start >= w.End {
		return InvalidSlotShape("start %s must be before end %s", w.Start, w.End)
	}
	if w.BufferBefore < 0 || w.BufferAfter < 0 {
		return InvalidSlotShape("buffers must not be negative")
	}
	if len(w.Services) == 0 {
		return InvalidSlotShape("slot must offer at least one service")
	}
	return nil
}

// Rule decides on which calendar dates a declared slot applies.
// The only implementations are RecurringRule and DatedRule.
type Rule interface {
	// AppliesOn reports whether the rule covers the canonical date, whose weekday is wd.
	AppliesOn(date string, wd time.Weekday) bool
	isRule()
}

// RecurringRule repeats weekly on DayOfWeek, optionally bounded by inclusive dates.
// Empty bounds are open.
type RecurringRule struct {
	DayOfWeek time.Weekday
	StartDate string
	EndDate   string
}

func (r RecurringRule) AppliesOn(date string, wd time.Weekday) bool {
	if wd != r.DayOfWeek {
		return false
	}
	// canonical dates compare lexically
	if r.StartDate != "" && date < r.StartDate {
		return false
	}
	if r.EndDate != "" && date > r.EndDate {
		return false
	}
	return true
}

func (RecurringRule) isRule() {}

// DatedRule applies on exactly one calendar date.
type DatedRule struct {
	Date string
}

func (r DatedRule) AppliesOn(date string, _ time.Weekday) bool {
	return r.Date == date
}

func (DatedRule) isRule() {}

// DeclaredSlot is a coach-authored availability rule.
type DeclaredSlot struct {
	ID         string
	ResourceID string
	Window     TimeWindowSpec
	Rule       Rule
}

// IsRecurring reports whether the slot carries a RecurringRule.
func (s DeclaredSlot) IsRecurring() bool {
	_, ok := s.Rule.(RecurringRule)
	return ok
}

// SlotRecord is the flat shape declared slots travel in over HTTP and live in storage.
type SlotRecord struct {
	ID                 string    `bson:"id" json:"id"`
	ResourceID         string    `bson:"resourceId" json:"resourceId"`
	DayOfWeek          *int      `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`
	StartTime          TimeOfDay `bson:"startTime" json:"startTime"`
	EndTime            TimeOfDay `bson:"endTime" json:"endTime"`
	Services           []string  `bson:"services" json:"services"`
	BufferBefore       int       `bson:"bufferBefore" json:"bufferBefore"`
	BufferAfter        int       `bson:"bufferAfter" json:"bufferAfter"`
	IsRecurring        bool      `bson:"isRecurring" json:"isRecurring"`
	RecurringStartDate string    `bson:"recurringStartDate,omitempty" json:"recurringStartDate,omitempty"`
	RecurringEndDate   string    `bson:"recurringEndDate,omitempty" json:"recurringEndDate,omitempty"`
	SpecificDate       string    `bson:"specificDate,omitempty" json:"specificDate,omitempty"`
}

// IsLegacy reports a record written before slots carried isRecurring/specificDate.
func (r SlotRecord) IsLegacy() bool {
	return !r.IsRecurring && r.SpecificDate == "" && r.DayOfWeek != nil
}

// SlotFromRecord validates a stored record and converts it to a DeclaredSlot.
// Legacy records are migrated to an unbounded recurring rule; migrated reports that case.
func SlotFromRecord(r SlotRecord) (slot DeclaredSlot, migrated bool, err error) {
	if r.ID == "" {
		return DeclaredSlot{}, false, InvalidSlotShape("slot id is required")
	}
	window := TimeWindowSpec{
		Start:        r.StartTime,
		End:          r.EndTime,
		Services:     append([]string(nil), r.Services...),
		BufferBefore: r.BufferBefore,
		BufferAfter:  r.BufferAfter,
	}
	if err := window.validate(); err != nil {
		return DeclaredSlot{}, false, err
	}

	var rule Rule
	switch {
	case r.IsLegacy():
		r.IsRecurring = true
		migrated = true
		fallthrough
	case r.IsRecurring:
		if r.SpecificDate != "" {
			return DeclaredSlot{}, false, InvalidSlotShape("slot %s is both recurring and dated", r.ID)
		}
		rr, err := recurringRule(r.DayOfWeek, r.RecurringStartDate, r.RecurringEndDate)
		if err != nil {
			return DeclaredSlot{}, false, err
		}
		rule = rr
	default:
		if r.SpecificDate == "" {
			return DeclaredSlot{}, false, InvalidSlotShape("non-recurring slot %s has no specific date", r.ID)
		}
		d, err := ParseDate(r.SpecificDate)
		if err != nil {
			return DeclaredSlot{}, false, InvalidSlotShape("slot %s: %v", r.ID, err)
		}
		rule = DatedRule{Date: FormatDate(d)}
	}

	return DeclaredSlot{ID: r.ID, ResourceID: r.ResourceID, Window: window, Rule: rule}, migrated, nil
}

func recurringRule(dayOfWeek *int, start, end string) (RecurringRule, error) {
	if dayOfWeek == nil || *dayOfWeek < 0 || *dayOfWeek > 6 {
		return RecurringRule{}, InvalidSlotShape("recurring slot needs a day of week between 0 and 6")
	}
	rr := RecurringRule{DayOfWeek: time.Weekday(*dayOfWeek)}
	if start != "" {
		d, err := ParseDate(start)
		if err != nil {
			return RecurringRule{}, InvalidSlotShape("recurring start date: %v", err)
		}
		rr.StartDate = FormatDate(d)
	}
	if end != "" {
		d, err := ParseDate(end)
		if err != nil {
			return RecurringRule{}, InvalidSlotShape("recurring end date: %v", err)
		}
		rr.EndDate = FormatDate(d)
	}
	if rr.StartDate != "" && rr.EndDate != "" && rr.StartDate > rr.EndDate {
		return RecurringRule{}, InvalidSlotShape("recurring start %s is after end %s", rr.StartDate, rr.EndDate)
	}
	return rr, nil
}

// RecordFromSlot flattens a DeclaredSlot for storage or transport.
func RecordFromSlot(s DeclaredSlot) SlotRecord {
	rec := SlotRecord{
		ID:           s.ID,
		ResourceID:   s.ResourceID,
		StartTime:    s.Window.Start,
		EndTime:      s.Window.End,
		Services:     append([]string(nil), s.Window.Services...),
		BufferBefore: s.Window.BufferBefore,
		BufferAfter:  s.Window.BufferAfter,
	}
	switch r := s.Rule.(type) {
	case RecurringRule:
		dow := int(r.DayOfWeek)
		rec.DayOfWeek = &dow
		rec.IsRecurring = true
		rec.RecurringStartDate = r.StartDate
		rec.RecurringEndDate = r.EndDate
	case DatedRule:
		rec.SpecificDate = r.Date
	}
	return rec
}

// SlotView is a SlotRecord enriched with the next dates it applies on.
type SlotView struct {
	SlotRecord
	UpcomingDates []string `json:"upcomingDates,omitempty"`
}
