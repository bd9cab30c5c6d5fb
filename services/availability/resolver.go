package availability

import (
	"clubbook/models"
)

// ApplicableSlots returns the declared slots that apply on date, in input order.
// A blackout on date vetoes every rule. Legacy slots are expected to have been
// converted to unbounded recurring rules by models.SlotFromRecord.
func ApplicableSlots(date string, slots []models.DeclaredSlot, blackouts []string) ([]models.DeclaredSlot, error) {
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, err
	}
	date = models.FormatDate(day)

	for _, b := range blackouts {
		if b == date {
			return nil, nil
		}
	}

	wd := day.Weekday()
	var out []models.DeclaredSlot
	for _, s := range slots {
		if s.Rule == nil {
			continue
		}
		if s.Rule.AppliesOn(date, wd) {
			out = append(out, s)
		}
	}
	return out, nil
}
