package planner

import (
	"fmt"

	"github.com/google/uuid"

	"clubbook/models"
)

type EffectKind string

const (
	EffectWrite  EffectKind = "write"
	EffectDelete EffectKind = "delete"
)

// Effect is one declared-slot write the caller must issue against the store.
type Effect struct {
	Kind   EffectKind          `json:"kind"`
	SlotID string              `json:"slotId"`
	Slot   *models.DeclaredSlot `json:"-"`
}

// Plan is the resolved outcome of a command.
type Plan struct {
	Effects  []Effect `json:"effects"`
	Warnings []string `json:"warnings,omitempty"`
}

// Planner turns commands into plans over a snapshot of one resource's slots.
// It never touches bookings.
type Planner struct {
	ResourceID string
	NewID      func() string
}

// New returns a Planner for resourceID that assigns UUIDs to new slots.
func New(resourceID string) *Planner {
	return &Planner{
		ResourceID: resourceID,
		NewID:      func() string { return uuid.New().String() },
	}
}

// Plan resolves cmd against the current slots.
func (p *Planner) Plan(current []models.DeclaredSlot, cmd Command) (Plan, error) {
	switch c := cmd.(type) {
	case AddSlot:
		slot, err := p.normalize(p.NewID(), c.Draft, c.ClickedDate)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Effects: []Effect{write(slot)}}, nil

	case EditSlot:
		if _, ok := find(current, c.ID); !ok {
			return Plan{}, models.NotFound("slot %s does not exist", c.ID)
		}
		slot, err := p.normalize(c.ID, c.Draft, c.ClickedDate)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Effects: []Effect{write(slot)}}, nil

	case DeleteOccurrence:
		if _, err := models.ParseDate(c.Date); err != nil {
			return Plan{}, err
		}
		src, ok := find(current, c.ID)
		if !ok {
			return Plan{}, models.NotFound("slot %s does not exist", c.ID)
		}
		plan := Plan{Effects: []Effect{{Kind: EffectDelete, SlotID: src.ID}}}
		if src.IsRecurring() {
			// No per-occurrence exception list exists, so the whole rule goes.
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"slot %s is recurring; deleting the occurrence on %s removed every occurrence", src.ID, c.Date))
		}
		return plan, nil

	case DeleteSeries:
		if _, ok := find(current, c.ID); !ok {
			return Plan{}, models.NotFound("slot %s does not exist", c.ID)
		}
		return Plan{Effects: []Effect{{Kind: EffectDelete, SlotID: c.ID}}}, nil

	case CopySlot:
		day, err := models.ParseDate(c.TargetDate)
		if err != nil {
			return Plan{}, err
		}
		src, ok := find(current, c.SourceID)
		if !ok {
			return Plan{}, models.NotFound("slot %s does not exist", c.SourceID)
		}
		window := src.Window
		window.Services = append([]string(nil), src.Window.Services...)
		copied := models.DeclaredSlot{
			ID:         p.NewID(),
			ResourceID: p.ResourceID,
			Window:     window,
			Rule:       models.DatedRule{Date: models.FormatDate(day)},
		}
		return Plan{Effects: []Effect{write(copied)}}, nil
	}
	return Plan{}, fmt.Errorf("planner: unsupported command %T", cmd)
}

// normalize applies the add/edit shape rules to a draft and validates it.
func (p *Planner) normalize(id string, draft models.SlotRecord, clickedDate string) (models.DeclaredSlot, error) {
	draft.ID = id
	draft.ResourceID = p.ResourceID
	// a recurring draft keeps its specificDate so SlotFromRecord rejects it
	if !draft.IsRecurring {
		if clickedDate != "" {
			draft.SpecificDate = clickedDate
		}
		draft.DayOfWeek = nil
		draft.RecurringStartDate = ""
		draft.RecurringEndDate = ""
	}
	slot, _, err := models.SlotFromRecord(draft)
	if err != nil {
		return models.DeclaredSlot{}, err
	}
	return slot, nil
}

// Apply returns current with plan's effects applied. Writes replace same-id slots.
func Apply(current []models.DeclaredSlot, plan Plan) []models.DeclaredSlot {
	out := append([]models.DeclaredSlot(nil), current...)
	for _, e := range plan.Effects {
		idx := -1
		for i, s := range out {
			if s.ID == e.SlotID {
				idx = i
				break
			}
		}
		switch e.Kind {
		case EffectWrite:
			if idx >= 0 {
				out[idx] = *e.Slot
			} else {
				out = append(out, *e.Slot)
			}
		case EffectDelete:
			if idx >= 0 {
				out = append(out[:idx], out[idx+1:]...)
			}
		}
	}
	return out
}

func write(slot models.DeclaredSlot) Effect {
	return Effect{Kind: EffectWrite, SlotID: slot.ID, Slot: &slot}
}

func find(slots []models.DeclaredSlot, id string) (models.DeclaredSlot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return models.DeclaredSlot{}, false
}
