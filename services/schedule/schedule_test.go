package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"clubbook/database/repository/memory"
	"clubbook/models"
	"clubbook/services/planner"
)

// 2025-03-10 is a Monday.
const monday = "2025-03-10"

type testEnv struct {
	svc       *DefaultScheduleService
	slots     *memory.SlotRepo
	blackouts *memory.BlackoutRepo
	bookings  *memory.BookingRepo
}

func intPtr(i int) *int { return &i }

func tod(h, m int) models.TimeOfDay { return models.NewTimeOfDay(h, m) }

func mondayRecord(id string) models.SlotRecord {
	return models.SlotRecord{
		ID:           id,
		ResourceID:   "coach-1",
		DayOfWeek:    intPtr(int(time.Monday)),
		StartTime:    tod(9, 0),
		EndTime:      tod(17, 0),
		Services:     []string{"A"},
		BufferBefore: 10,
		IsRecurring:  true,
	}
}

func newEnv(now time.Time, records ...models.SlotRecord) *testEnv {
	env := &testEnv{
		slots:     memory.NewSlotRepo(records...),
		blackouts: memory.NewBlackoutRepo(),
		bookings:  memory.NewBookingRepo(),
	}
	n := 0
	env.svc = &DefaultScheduleService{
		Slots:        env.slots,
		Blackouts:    env.blackouts,
		Services:     memory.NewServiceRepo(models.Service{ResourceID: "coach-1", Name: "A", Duration: 60}),
		Bookings:     env.bookings,
		Location:     time.UTC,
		HidePast:     true,
		MaxRangeDays: 31,
		PreviewCount: 3,
		Now:          func() time.Time { return now },
		NewPlanner: func(resourceID string) *planner.Planner {
			return &planner.Planner{ResourceID: resourceID, NewID: func() string {
				n++
				return fmt.Sprintf("new-%d", n)
			}}
		},
	}
	return env
}

func starts(windows []models.BookableWindow) []string {
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.StartTime.String())
	}
	return out
}

var earlyMarch = time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

func TestWindowsForDateAnnotatesBookings(t *testing.T) {
	ctx := context.Background()
	env := newEnv(earlyMarch, mondayRecord("mon"))
	for _, b := range []models.Booking{
		{ID: "b1", ResourceID: "coach-1", Date: monday, StartTime: tod(10, 20), ServiceName: "A", Status: models.BookingStatusConfirmed},
		{ID: "b2", ResourceID: "coach-1", Date: monday, StartTime: tod(11, 30), ServiceName: "A", Status: models.BookingStatusConfirmed},
	} {
		if err := env.bookings.Insert(ctx, b); err != nil {
			t.Fatal(err)
		}
	}
	if err := env.bookings.Cancel(ctx, "b2", earlyMarch); err != nil {
		t.Fatal(err)
	}

	res, err := env.svc.WindowsForDate(ctx, "coach-1", monday)
	if err != nil {
		t.Fatal(err)
	}
	want := "09:10 10:20 11:30 12:40 13:50 15:00"
	if got := strings.Join(starts(res.Windows), " "); got != want {
		t.Fatalf("starts = %s, want %s", got, want)
	}
	for _, w := range res.Windows {
		if w.IsBooked != (w.StartTime == tod(10, 20)) {
			t.Errorf("window %s booked = %v", w.StartTime, w.IsBooked)
		}
	}
}

func TestWindowsForDateMigratesLegacySlot(t *testing.T) {
	ctx := context.Background()
	legacy := mondayRecord("old")
	legacy.IsRecurring = false
	env := newEnv(earlyMarch, legacy)

	res, err := env.svc.WindowsForDate(ctx, "coach-1", "2031-06-02") // a Monday far in the future
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Windows) != 6 {
		t.Fatalf("legacy slot produced %d windows", len(res.Windows))
	}
	rec, err := env.slots.GetByID(ctx, "coach-1", "old")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.IsRecurring {
		t.Fatal("legacy slot was not stamped recurring")
	}
}

func TestWindowsForDateSkipsMalformedSlot(t *testing.T) {
	bad := mondayRecord("bad")
	bad.StartTime, bad.EndTime = tod(12, 0), tod(11, 0)
	env := newEnv(earlyMarch, bad, mondayRecord("mon"))

	res, err := env.svc.WindowsForDate(context.Background(), "coach-1", monday)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range res.Windows {
		if w.SourceSlotID != "mon" {
			t.Fatalf("window from malformed slot: %+v", w)
		}
	}
	if len(res.Windows) != 6 {
		t.Fatalf("got %d windows", len(res.Windows))
	}
}

func TestWindowsForDateHidesStartedWindowsToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)
	env := newEnv(now, mondayRecord("mon"))

	res, err := env.svc.WindowsForDate(context.Background(), "coach-1", monday)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(starts(res.Windows), " "); got != "11:30 12:40 13:50 15:00" {
		t.Fatalf("starts = %s", got)
	}

	res, err = env.svc.WindowsForDate(context.Background(), "coach-1", "2025-03-03")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Windows) != 0 {
		t.Fatalf("past monday offered %d windows", len(res.Windows))
	}

	env.svc.HidePast = false
	res, err = env.svc.WindowsForDate(context.Background(), "coach-1", monday)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Windows) != 6 {
		t.Fatalf("got %d windows with hiding off", len(res.Windows))
	}
}

func TestWindowsForDateInvalidDate(t *testing.T) {
	env := newEnv(earlyMarch, mondayRecord("mon"))
	if _, err := env.svc.WindowsForDate(context.Background(), "coach-1", "10/03/2025"); !errors.Is(err, models.ErrInvalidDate) {
		t.Fatalf("err = %v", err)
	}
}

func TestWindowsForRange(t *testing.T) {
	ctx := context.Background()
	env := newEnv(earlyMarch, mondayRecord("mon"))
	if _, err := env.svc.AddBlackout(ctx, "coach-1", "2025-03-17", "tournament"); err != nil {
		t.Fatal(err)
	}

	results, err := env.svc.WindowsForRange(ctx, "coach-1", monday, "2025-03-23")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 14 {
		t.Fatalf("got %d days", len(results))
	}
	for i, res := range results {
		want := 0
		if i == 0 {
			want = 6
		}
		if len(res.Windows) != want {
			t.Errorf("%s: %d windows, want %d", res.Date, len(res.Windows), want)
		}
	}

	bad := []struct{ from, to string }{
		{"2025-03-23", monday},
		{"2025-03-01", "2025-04-15"},
		{"2025-3-1", "2025-03-02"},
	}
	for _, b := range bad {
		if _, err := env.svc.WindowsForRange(ctx, "coach-1", b.from, b.to); !errors.Is(err, models.ErrInvalidDate) {
			t.Errorf("range %s..%s err = %v", b.from, b.to, err)
		}
	}
}

func TestApplyCommandAddThenCopy(t *testing.T) {
	ctx := context.Background()
	env := newEnv(earlyMarch, mondayRecord("mon"))

	draft := models.SlotRecord{StartTime: tod(18, 0), EndTime: tod(19, 0), Services: []string{"A"}}
	plan, err := env.svc.ApplyCommand(ctx, "coach-1", planner.AddSlot{Draft: draft, ClickedDate: "2025-03-12"})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Effects) != 1 || plan.Effects[0].SlotID != "new-1" {
		t.Fatalf("plan = %+v", plan)
	}
	rec, err := env.slots.GetByID(ctx, "coach-1", "new-1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.IsRecurring || rec.SpecificDate != "2025-03-12" {
		t.Fatalf("stored %+v", rec)
	}

	if _, err := env.svc.ApplyCommand(ctx, "coach-1", planner.CopySlot{SourceID: "mon", TargetDate: "2025-03-13"}); err != nil {
		t.Fatal(err)
	}
	cp, err := env.slots.GetByID(ctx, "coach-1", "new-2")
	if err != nil {
		t.Fatal(err)
	}
	if cp.IsRecurring || cp.SpecificDate != "2025-03-13" || cp.StartTime != tod(9, 0) {
		t.Fatalf("copy = %+v", cp)
	}
}

func TestApplyCommandDeleteKeepsBookings(t *testing.T) {
	ctx := context.Background()
	env := newEnv(earlyMarch, mondayRecord("mon"))
	booking := models.Booking{ID: "b1", ResourceID: "coach-1", Date: monday, StartTime: tod(9, 10), ServiceName: "A", Status: models.BookingStatusConfirmed}
	if err := env.bookings.Insert(ctx, booking); err != nil {
		t.Fatal(err)
	}

	plan, err := env.svc.ApplyCommand(ctx, "coach-1", planner.DeleteOccurrence{ID: "mon", Date: monday})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Warnings) == 0 {
		t.Fatal("deleting one occurrence of a recurring slot should warn")
	}
	if _, err := env.slots.GetByID(ctx, "coach-1", "mon"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("slot still present: %v", err)
	}
	if got, err := env.bookings.GetByID(ctx, "b1"); err != nil || !got.Active() {
		t.Fatalf("booking touched: %+v %v", got, err)
	}

	if _, err := env.svc.ApplyCommand(ctx, "coach-1", planner.DeleteSeries{ID: "mon"}); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestListSlotsUpcomingDates(t *testing.T) {
	ctx := context.Background()
	env := newEnv(earlyMarch, mondayRecord("mon"))
	if _, err := env.svc.AddBlackout(ctx, "coach-1", "2025-03-17", ""); err != nil {
		t.Fatal(err)
	}

	views, err := env.svc.ListSlots(ctx, "coach-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d slots", len(views))
	}
	if got := strings.Join(views[0].UpcomingDates, ","); got != "2025-03-10,2025-03-24,2025-03-31" {
		t.Fatalf("upcoming = %s", got)
	}
}

func TestBlackoutAndServiceValidation(t *testing.T) {
	ctx := context.Background()
	env := newEnv(earlyMarch)

	if _, err := env.svc.AddBlackout(ctx, "coach-1", "2025-3-1", ""); !errors.Is(err, models.ErrInvalidDate) {
		t.Fatalf("blackout err = %v", err)
	}
	if err := env.svc.RemoveBlackout(ctx, "coach-1", "2025-03-01"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("remove err = %v", err)
	}
	if _, err := env.svc.UpsertService(ctx, "coach-1", models.Service{Name: "B", Duration: 0}); !errors.Is(err, models.ErrInvalidService) {
		t.Fatalf("service err = %v", err)
	}

	svc, err := env.svc.UpsertService(ctx, "coach-1", models.Service{ResourceID: "someone-else", Name: "B", Duration: 45})
	if err != nil {
		t.Fatal(err)
	}
	if svc.ResourceID != "coach-1" {
		t.Fatalf("service stored under %s", svc.ResourceID)
	}
	list, err := env.svc.ListServices(ctx, "coach-1")
	if err != nil || len(list) != 2 {
		t.Fatalf("services = %+v, %v", list, err)
	}
}

func TestMigrateLegacy(t *testing.T) {
	ctx := context.Background()
	a, b, broken := mondayRecord("a"), mondayRecord("b"), mondayRecord("broken")
	a.IsRecurring, b.IsRecurring, broken.IsRecurring = false, false, false
	b.ResourceID = "coach-2"
	broken.Services = nil
	env := newEnv(earlyMarch, a, b, broken, mondayRecord("current"))

	n, err := env.svc.MigrateLegacy(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("migrated %d", n)
	}
	left, err := env.slots.ListLegacy(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 1 || left[0].ID != "broken" {
		t.Fatalf("left = %+v", left)
	}
}

func TestCalendarICS(t *testing.T) {
	ctx := context.Background()
	mon := mondayRecord("mon")
	mon.RecurringEndDate = "2025-03-31"
	dated := models.SlotRecord{
		ID: "wed", ResourceID: "coach-1", StartTime: tod(9, 0), EndTime: tod(10, 0),
		Services: []string{"A"}, SpecificDate: "2025-03-12",
	}
	env := newEnv(earlyMarch, mon, dated)
	if _, err := env.svc.AddBlackout(ctx, "coach-1", "2025-03-17", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := env.svc.AddBlackout(ctx, "coach-1", "2025-03-18", ""); err != nil {
		t.Fatal(err)
	}

	out, err := env.svc.CalendarICS(ctx, "coach-1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:mon@clubbook",
		"UID:wed@clubbook",
		"DTSTART:20250310T090000Z",
		"DTSTART:20250312T090000Z",
		"FREQ=WEEKLY",
		"BYDAY=MO",
		"UNTIL=20250331T170000Z",
		"EXDATE:20250317T090000Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "EXDATE:20250318") {
		t.Error("blackout on a Tuesday excluded from a Monday series")
	}
	if strings.Count(out, "RRULE:") != 1 {
		t.Errorf("want exactly one recurring event:\n%s", out)
	}
}
