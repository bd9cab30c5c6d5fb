package availability

import (
	"clubbook/models"
)

// Materialize subdivides slot's time range into windows of svc.Duration on date.
//
// Packing is greedy from the left: the first window starts after BufferBefore and
// each following one starts BufferAfter+BufferBefore after the previous end. A
// window is emitted only if its trailing buffer still fits before the slot end.
// The same inputs always yield the same windows.
func Materialize(date string, slot models.DeclaredSlot, svc models.Service) ([]models.BookableWindow, error) {
	if err := svc.Validate(); err != nil {
		return nil, err
	}

	w := slot.Window
	step := svc.Duration + w.BufferBefore + w.BufferAfter

	var out []models.BookableWindow
	for cursor := w.Start.Add(w.BufferBefore); cursor.Add(svc.Duration+w.BufferAfter) <= w.End; cursor = cursor.Add(step) {
		out = append(out, models.BookableWindow{
			Date:         date,
			StartTime:    cursor,
			EndTime:      cursor.Add(svc.Duration),
			Service:      svc.Name,
			SourceSlotID: slot.ID,
		})
	}
	return out, nil
}

// Fits reports whether at least one window of svc fits into slot.
func Fits(slot models.DeclaredSlot, svc models.Service) bool {
	w := slot.Window
	return int(w.End-w.Start) >= svc.Duration+w.BufferBefore+w.BufferAfter
}
