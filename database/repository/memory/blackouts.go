package memory

import (
	"context"
	"sort"
	"sync"

	"clubbook/models"
)

type BlackoutRepo struct {
	mu   sync.RWMutex
	byID map[string]map[string]models.BlackoutDate // resource -> date -> blackout
}

func NewBlackoutRepo() *BlackoutRepo {
	return &BlackoutRepo{byID: make(map[string]map[string]models.BlackoutDate)}
}

func (r *BlackoutRepo) List(_ context.Context, resourceID string) ([]models.BlackoutDate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.BlackoutDate
	for _, b := range r.byID[resourceID] {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *BlackoutRepo) Add(_ context.Context, blackout models.BlackoutDate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	dates, ok := r.byID[blackout.ResourceID]
	if !ok {
		dates = make(map[string]models.BlackoutDate)
		r.byID[blackout.ResourceID] = dates
	}
	if existing, ok := dates[blackout.Date]; ok {
		blackout.CreatedAt = existing.CreatedAt
	}
	dates[blackout.Date] = blackout
	return nil
}

func (r *BlackoutRepo) Remove(_ context.Context, resourceID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[resourceID][date]; !ok {
		return models.NotFound("no blackout on %s", date)
	}
	delete(r.byID[resourceID], date)
	return nil
}

func (r *BlackoutRepo) EnsureIndexes(context.Context) error { return nil }
