package planner

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"clubbook/models"
)

func testPlanner() *Planner {
	n := 0
	return &Planner{
		ResourceID: "coach-1",
		NewID: func() string {
			n++
			return fmt.Sprintf("slot-%d", n)
		},
	}
}

func intPtr(i int) *int { return &i }

func mondayDraft() models.SlotRecord {
	return models.SlotRecord{
		DayOfWeek:          intPtr(int(time.Monday)),
		StartTime:          models.NewTimeOfDay(9, 0),
		EndTime:            models.NewTimeOfDay(17, 0),
		Services:           []string{"A", "B"},
		BufferBefore:       10,
		BufferAfter:        5,
		IsRecurring:        true,
		RecurringStartDate: "2025-03-01",
		RecurringEndDate:   "2025-06-30",
	}
}

func mustPlan(t *testing.T, p *Planner, current []models.DeclaredSlot, cmd Command) Plan {
	t.Helper()
	plan, err := p.Plan(current, cmd)
	if err != nil {
		t.Fatalf("plan %T: %v", cmd, err)
	}
	return plan
}

func TestAddNonRecurringPinsClickedDate(t *testing.T) {
	p := testPlanner()
	draft := mondayDraft()
	draft.IsRecurring = false

	plan := mustPlan(t, p, nil, AddSlot{Draft: draft, ClickedDate: "2025-03-12"})
	if len(plan.Effects) != 1 || plan.Effects[0].Kind != EffectWrite {
		t.Fatalf("unexpected plan %+v", plan)
	}
	slot := plan.Effects[0].Slot
	if slot.Rule != (models.DatedRule{Date: "2025-03-12"}) {
		t.Fatalf("rule = %#v", slot.Rule)
	}
	rec := models.RecordFromSlot(*slot)
	if rec.DayOfWeek != nil || rec.RecurringStartDate != "" || rec.RecurringEndDate != "" || rec.IsRecurring {
		t.Fatalf("recurring-only fields survived: %+v", rec)
	}
	if slot.ResourceID != "coach-1" || slot.ID != "slot-1" {
		t.Fatalf("identity not assigned: %+v", slot)
	}
}

func TestAddRejectsInvalidShapes(t *testing.T) {
	noDate := mondayDraft()
	noDate.IsRecurring = false

	noDay := mondayDraft()
	noDay.DayOfWeek = nil

	empty := mondayDraft()
	empty.Services = nil

	both := mondayDraft()
	both.SpecificDate = "2025-03-12"

	for name, cmd := range map[string]Command{
		"dated without date":     AddSlot{Draft: noDate},
		"recurring without day":  AddSlot{Draft: noDay},
		"no services":            AddSlot{Draft: empty},
		"recurring and dated":    AddSlot{Draft: both, ClickedDate: "2025-03-12"},
		"edit recurring + dated": EditSlot{ID: "x", Draft: both},
		"bad clicked date":       AddSlot{Draft: noDate, ClickedDate: "tomorrow"},
		"edit with invalid date": EditSlot{ID: "x", Draft: noDate},
	} {
		t.Run(name, func(t *testing.T) {
			current := []models.DeclaredSlot{{ID: "x", Rule: models.DatedRule{Date: "2025-03-10"}}}
			if _, err := testPlanner().Plan(current, cmd); !errors.Is(err, models.ErrInvalidSlotShape) {
				t.Fatalf("err = %v, want invalidSlotShape", err)
			}
		})
	}
}

func TestAddThenEditSamePayloadIsStable(t *testing.T) {
	p := testPlanner()
	draft := mondayDraft()

	added := Apply(nil, mustPlan(t, p, nil, AddSlot{Draft: draft}))
	if len(added) != 1 {
		t.Fatalf("add produced %d slots", len(added))
	}
	edited := Apply(added, mustPlan(t, p, added, EditSlot{ID: added[0].ID, Draft: draft}))
	if !reflect.DeepEqual(added, edited) {
		t.Fatalf("edit with same payload changed the collection:\n%+v\n%+v", added, edited)
	}
}

func TestEditUnknownSlot(t *testing.T) {
	if _, err := testPlanner().Plan(nil, EditSlot{ID: "missing", Draft: mondayDraft()}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteOccurrence(t *testing.T) {
	p := testPlanner()
	current := Apply(nil, mustPlan(t, p, nil, AddSlot{Draft: mondayDraft()}))
	dated := mondayDraft()
	dated.IsRecurring = false
	current = Apply(current, mustPlan(t, p, current, AddSlot{Draft: dated, ClickedDate: "2025-03-12"}))

	plan := mustPlan(t, p, current, DeleteOccurrence{ID: "slot-2", Date: "2025-03-12"})
	if len(plan.Warnings) != 0 {
		t.Errorf("dated delete warned: %v", plan.Warnings)
	}
	if left := Apply(current, plan); len(left) != 1 || left[0].ID != "slot-1" {
		t.Fatalf("left = %+v", left)
	}

	plan = mustPlan(t, p, current, DeleteOccurrence{ID: "slot-1", Date: "2025-03-10"})
	if len(plan.Warnings) != 1 {
		t.Errorf("recurring delete should warn, got %v", plan.Warnings)
	}
	if left := Apply(current, plan); len(left) != 1 || left[0].ID != "slot-2" {
		t.Fatalf("left = %+v", left)
	}

	if _, err := p.Plan(current, DeleteOccurrence{ID: "slot-1", Date: "03/10/2025"}); !errors.Is(err, models.ErrInvalidDate) {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteSeries(t *testing.T) {
	p := testPlanner()
	current := Apply(nil, mustPlan(t, p, nil, AddSlot{Draft: mondayDraft()}))
	if left := Apply(current, mustPlan(t, p, current, DeleteSeries{ID: "slot-1"})); len(left) != 0 {
		t.Fatalf("left = %+v", left)
	}
	if _, err := p.Plan(current, DeleteSeries{ID: "nope"}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestCopyRecurringOntoWednesday(t *testing.T) {
	p := testPlanner()
	current := Apply(nil, mustPlan(t, p, nil, AddSlot{Draft: mondayDraft()}))
	source := current[0]

	plan := mustPlan(t, p, current, CopySlot{SourceID: source.ID, TargetDate: "2025-03-12"})
	after := Apply(current, plan)
	if len(after) != 2 {
		t.Fatalf("copy produced %d slots", len(after))
	}
	if !reflect.DeepEqual(after[0], source) {
		t.Fatalf("source mutated: %+v", after[0])
	}

	copied := after[1]
	if copied.ID == source.ID || copied.IsRecurring() {
		t.Fatalf("copy must be a new dated slot: %+v", copied)
	}
	if copied.Rule != (models.DatedRule{Date: "2025-03-12"}) {
		t.Fatalf("rule = %#v", copied.Rule)
	}
	if !reflect.DeepEqual(copied.Window, source.Window) {
		t.Fatalf("window not copied: %+v vs %+v", copied.Window, source.Window)
	}

	copied.Window.Services[0] = "changed"
	if source.Window.Services[0] != "A" {
		t.Fatal("copy shares the services slice with its source")
	}
}

func TestCopyValidation(t *testing.T) {
	p := testPlanner()
	current := Apply(nil, mustPlan(t, p, nil, AddSlot{Draft: mondayDraft()}))
	if _, err := p.Plan(current, CopySlot{SourceID: "slot-1", TargetDate: "2025-02-30"}); !errors.Is(err, models.ErrInvalidDate) {
		t.Fatalf("err = %v", err)
	}
	if _, err := p.Plan(current, CopySlot{SourceID: "ghost", TargetDate: "2025-03-12"}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}
