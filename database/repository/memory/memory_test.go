package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clubbook/models"
)

func TestBookingRepoRejectsSecondActiveBooking(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepo()
	b := models.Booking{
		ID: "b1", ResourceID: "coach-1", Date: "2025-03-10",
		StartTime: models.NewTimeOfDay(9, 0), ServiceName: "A", Status: models.BookingStatusConfirmed,
	}
	if err := repo.Insert(ctx, b); err != nil {
		t.Fatal(err)
	}
	dup := b
	dup.ID = "b2"
	if err := repo.Insert(ctx, dup); !errors.Is(err, models.ErrSlotAlreadyBooked) {
		t.Fatalf("err = %v", err)
	}

	if err := repo.Cancel(ctx, "b1", time.Now()); err != nil {
		t.Fatal(err)
	}
	if err := repo.Insert(ctx, dup); err != nil {
		t.Fatalf("cancelled booking still blocks: %v", err)
	}
	if err := repo.Cancel(ctx, "b1", time.Now()); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("double cancel err = %v", err)
	}
}

func TestBookingRepoConcurrentInsert(t *testing.T) {
	repo := NewBookingRepo()
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Insert(context.Background(), models.Booking{
				ID: string(rune('a' + i)), ResourceID: "coach-1", Date: "2025-03-10",
				StartTime: models.NewTimeOfDay(9, 0), ServiceName: "A", Status: models.BookingStatusConfirmed,
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case !errors.Is(err, models.ErrSlotAlreadyBooked):
			t.Fatalf("unexpected error %v", err)
		}
	}
	if ok != 1 {
		t.Fatalf("%d inserts succeeded, want 1", ok)
	}
}

func TestSlotRepoScopesByResource(t *testing.T) {
	ctx := context.Background()
	dow := 1
	repo := NewSlotRepo(
		models.SlotRecord{ID: "s1", ResourceID: "coach-1", DayOfWeek: &dow},
		models.SlotRecord{ID: "s2", ResourceID: "coach-2", SpecificDate: "2025-03-10"},
	)
	if _, err := repo.GetByID(ctx, "coach-2", "s1"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if err := repo.Delete(ctx, "coach-2", "s1"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if err := repo.Upsert(ctx, models.SlotRecord{ID: "s1", ResourceID: "coach-2", SpecificDate: "2025-03-11"}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("cross-resource upsert err = %v", err)
	}
	if s, _ := repo.GetByID(ctx, "coach-1", "s1"); s == nil || s.DayOfWeek == nil {
		t.Fatalf("coach-1 slot overwritten: %+v", s)
	}
	legacy, _ := repo.ListLegacy(ctx)
	if len(legacy) != 1 || legacy[0].ID != "s1" {
		t.Fatalf("legacy = %+v", legacy)
	}
	if err := repo.MarkRecurring(ctx, "coach-1", []string{"s1"}); err != nil {
		t.Fatal(err)
	}
	if legacy, _ = repo.ListLegacy(ctx); len(legacy) != 0 {
		t.Fatalf("still legacy: %+v", legacy)
	}
}
