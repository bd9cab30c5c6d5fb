package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"clubbook/models"
)

func TestMaterializeBufferBeforeScenario(t *testing.T) {
	slot := recurringSlot("mon", time.Monday, "", "")
	slot.Window.BufferBefore = 10

	got, err := Materialize("2025-03-10", slot, models.Service{Name: "A", Duration: 60})
	if err != nil {
		t.Fatal(err)
	}

	wantStarts := []models.TimeOfDay{tod(9, 10), tod(10, 20), tod(11, 30), tod(12, 40), tod(13, 50), tod(15, 0)}
	if len(got) != len(wantStarts) {
		t.Fatalf("got %d windows, want %d: %+v", len(got), len(wantStarts), got)
	}
	for i, w := range got {
		if w.StartTime != wantStarts[i] || w.EndTime != wantStarts[i].Add(60) {
			t.Errorf("window %d = %s-%s, want start %s", i, w.StartTime, w.EndTime, wantStarts[i])
		}
		if w.SourceSlotID != "mon" || w.Service != "A" || w.Date != "2025-03-10" {
			t.Errorf("window %d has wrong provenance: %+v", i, w)
		}
	}
	if last := got[len(got)-1]; last.EndTime != tod(16, 0) || last.EndTime > tod(17, 0) {
		t.Errorf("last window ends %s", last.EndTime)
	}
}

func TestMaterializeSingleDateScenario(t *testing.T) {
	slot := datedSlot("s", "2025-03-10", tod(9, 0), tod(10, 0), "A")
	got, err := Materialize("2025-03-10", slot, models.Service{Name: "A", Duration: 30})
	if err != nil {
		t.Fatal(err)
	}
	want := []models.BookableWindow{
		{Date: "2025-03-10", StartTime: tod(9, 0), EndTime: tod(9, 30), Service: "A", SourceSlotID: "s"},
		{Date: "2025-03-10", StartTime: tod(9, 30), EndTime: tod(10, 0), Service: "A", SourceSlotID: "s"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v\nwant %+v", got, want)
	}
}

func TestMaterializeDurationsAndGaps(t *testing.T) {
	cases := []struct {
		duration, before, after int
	}{
		{30, 0, 0}, {45, 5, 10}, {60, 0, 15}, {25, 7, 3}, {90, 30, 30},
	}
	for _, c := range cases {
		slot := datedSlot("s", "2025-03-10", tod(8, 0), tod(20, 0), "A")
		slot.Window.BufferBefore = c.before
		slot.Window.BufferAfter = c.after
		got, err := Materialize("2025-03-10", slot, models.Service{Name: "A", Duration: c.duration})
		if err != nil {
			t.Fatal(err)
		}
		for i, w := range got {
			if int(w.EndTime-w.StartTime) != c.duration {
				t.Errorf("%+v: window %d has length %d", c, i, w.EndTime-w.StartTime)
			}
			if w.StartTime < slot.Window.Start.Add(c.before) || w.EndTime.Add(c.after) > slot.Window.End {
				t.Errorf("%+v: window %d breaks slot bounds", c, i)
			}
			if i > 0 && int(w.StartTime-got[i-1].EndTime) < c.before+c.after {
				t.Errorf("%+v: gap before window %d is %d", c, i, w.StartTime-got[i-1].EndTime)
			}
		}
	}
}

func TestMaterializeIsDeterministic(t *testing.T) {
	slot := recurringSlot("mon", time.Monday, "", "")
	slot.Window.BufferAfter = 5
	svc := models.Service{Name: "A", Duration: 40}
	first, _ := Materialize("2025-03-10", slot, svc)
	second, _ := Materialize("2025-03-10", slot, svc)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("materialization is not deterministic")
	}
}

func TestMaterializeTooLongYieldsNothing(t *testing.T) {
	slot := datedSlot("s", "2025-03-10", tod(9, 0), tod(10, 0), "A")
	slot.Window.BufferBefore = 10
	slot.Window.BufferAfter = 10
	svc := models.Service{Name: "A", Duration: 45}
	got, err := Materialize("2025-03-10", slot, svc)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 || Fits(slot, svc) {
		t.Fatalf("expected no windows, got %+v", got)
	}
}

func TestMaterializeRejectsBadService(t *testing.T) {
	slot := datedSlot("s", "2025-03-10", tod(9, 0), tod(10, 0), "A")
	for _, d := range []int{0, -30} {
		if _, err := Materialize("2025-03-10", slot, models.Service{Name: "A", Duration: d}); !errors.Is(err, models.ErrInvalidService) {
			t.Errorf("duration %d: err = %v, want invalidService", d, err)
		}
	}
}
