package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"clubbook/models"
)

// Snapshot is the state of one resource the pipeline runs against.
type Snapshot struct {
	ResourceID string
	Slots      []models.DeclaredSlot
	Blackouts  []string
	Bookings   []models.Booking
	Services   []models.Service
}

// Result holds the offerable windows of one date plus non-fatal findings.
type Result struct {
	Date     string
	Windows  []models.BookableWindow
	Warnings []string
}

// WindowsForDate resolves, materializes and annotates the windows of date.
// Only a malformed date is an error; catalogue problems become warnings.
func WindowsForDate(snap Snapshot, date string) (Result, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return Result{}, err
	}
	date = models.FormatDate(day)
	res := Result{Date: date}

	applicable, err := ApplicableSlots(date, snap.Slots, snap.Blackouts)
	if err != nil {
		return Result{}, err
	}

	services := make(map[string]models.Service, len(snap.Services))
	for _, s := range snap.Services {
		services[s.Name] = s
	}

	var windows []models.BookableWindow
	for _, slot := range applicable {
		for _, name := range slot.Window.Services {
			svc, ok := services[name]
			if !ok {
				res.Warnings = append(res.Warnings, fmt.Sprintf("slot %s offers unknown service %q", slot.ID, name))
				continue
			}
			ws, err := Materialize(date, slot, svc)
			if errors.Is(err, models.ErrInvalidService) {
				res.Warnings = append(res.Warnings, err.Error())
				continue
			}
			if err != nil {
				return Result{}, err
			}
			if len(ws) == 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"service %q (%d min) with buffers %d/%d does not fit slot %s %s-%s",
					svc.Name, svc.Duration, slot.Window.BufferBefore, slot.Window.BufferAfter,
					slot.ID, slot.Window.Start, slot.Window.End))
				continue
			}
			windows = append(windows, ws...)
		}
	}

	sort.SliceStable(windows, func(i, j int) bool {
		a, b := windows[i], windows[j]
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		if a.Service != b.Service {
			return a.Service < b.Service
		}
		return a.SourceSlotID < b.SourceSlotID
	})

	res.Windows = Annotate(windows, snap.Bookings, date, snap.ResourceID)
	return res, nil
}

// Offers reports whether window is among the windows currently offered on its date,
// regardless of booking state.
func Offers(snap Snapshot, window models.BookableWindow) (models.BookableWindow, bool, error) {
	res, err := WindowsForDate(Snapshot{
		ResourceID: snap.ResourceID,
		Slots:      snap.Slots,
		Blackouts:  snap.Blackouts,
		Services:   snap.Services,
	}, window.Date)
	if err != nil {
		return models.BookableWindow{}, false, err
	}
	for _, w := range res.Windows {
		if w.StartTime == window.StartTime && w.Service == window.Service {
			return w, true, nil
		}
	}
	return models.BookableWindow{}, false, nil
}

// Started reports whether w can no longer be taken at now: its date is in the
// past, or it is today and its start time has passed. now must already be in
// the club's timezone.
func Started(w models.BookableWindow, now time.Time) bool {
	today := models.FormatDate(now)
	if w.Date != today {
		return w.Date < today
	}
	return w.StartTime < models.NewTimeOfDay(now.Hour(), now.Minute())
}

// DropStarted filters out the windows Started reports at now.
func DropStarted(windows []models.BookableWindow, now time.Time) []models.BookableWindow {
	kept := windows[:0]
	for _, w := range windows {
		if !Started(w, now) {
			kept = append(kept, w)
		}
	}
	return kept
}
