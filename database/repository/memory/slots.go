// Package memory holds in-process implementations of the repositories, used by
// tests and by STORE_BACKEND=memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"clubbook/models"
)

type SlotRepo struct {
	mu    sync.RWMutex
	slots map[string]models.SlotRecord // by slot id
}

func NewSlotRepo(seed ...models.SlotRecord) *SlotRepo {
	r := &SlotRepo{slots: make(map[string]models.SlotRecord)}
	for _, s := range seed {
		r.slots[s.ID] = s
	}
	return r
}

func (r *SlotRepo) ListByResource(_ context.Context, resourceID string) ([]models.SlotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.SlotRecord
	for _, s := range r.slots {
		if s.ResourceID == resourceID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SlotRepo) GetByID(_ context.Context, resourceID, slotID string) (*models.SlotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.slots[slotID]
	if !ok || s.ResourceID != resourceID {
		return nil, models.NotFound("slot %s not found", slotID)
	}
	return &s, nil
}

func (r *SlotRepo) Upsert(_ context.Context, slot models.SlotRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[slot.ID]; ok && s.ResourceID != slot.ResourceID {
		// ids are unique across resources, like the unique_id index
		return models.NotFound("slot %s not found", slot.ID)
	}
	r.slots[slot.ID] = slot
	return nil
}

func (r *SlotRepo) Delete(_ context.Context, resourceID, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slots[slotID]
	if !ok || s.ResourceID != resourceID {
		return models.NotFound("slot %s not found", slotID)
	}
	delete(r.slots, slotID)
	return nil
}

func (r *SlotRepo) MarkRecurring(_ context.Context, resourceID string, slotIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range slotIDs {
		if s, ok := r.slots[id]; ok && s.ResourceID == resourceID {
			s.IsRecurring = true
			r.slots[id] = s
		}
	}
	return nil
}

func (r *SlotRepo) ListLegacy(_ context.Context) ([]models.SlotRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.SlotRecord
	for _, s := range r.slots {
		if s.IsLegacy() {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SlotRepo) EnsureIndexes(context.Context) error { return nil }
