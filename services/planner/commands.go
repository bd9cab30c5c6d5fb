package planner

import "clubbook/models"

// Command is a user edit of a resource's declared slots.
// Implementations: AddSlot, EditSlot, DeleteOccurrence, DeleteSeries, CopySlot.
type Command interface {
	isCommand()
}

// AddSlot inserts a new slot. For a non-recurring draft the slot is pinned to
// ClickedDate, falling back to the draft's own specificDate.
type AddSlot struct {
	Draft       models.SlotRecord
	ClickedDate string
}

// EditSlot replaces the slot with ID in place, normalized like AddSlot.
type EditSlot struct {
	ID          string
	Draft       models.SlotRecord
	ClickedDate string
}

// DeleteOccurrence removes the slot as seen on Date.
type DeleteOccurrence struct {
	ID   string
	Date string
}

// DeleteSeries removes the slot with all its occurrences.
type DeleteSeries struct {
	ID string
}

// CopySlot drops a dated copy of the source slot onto TargetDate.
type CopySlot struct {
	SourceID   string
	TargetDate string
}

func (AddSlot) isCommand()          {}
func (EditSlot) isCommand()         {}
func (DeleteOccurrence) isCommand() {}
func (DeleteSeries) isCommand()     {}
func (CopySlot) isCommand()         {}
