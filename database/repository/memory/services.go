package memory

import (
	"context"
	"sort"
	"sync"

	"clubbook/models"
)

type ServiceRepo struct {
	mu       sync.RWMutex
	services map[string]map[string]models.Service // resource -> name -> service
}

func NewServiceRepo(seed ...models.Service) *ServiceRepo {
	r := &ServiceRepo{services: make(map[string]map[string]models.Service)}
	for _, s := range seed {
		_ = r.Upsert(context.Background(), s)
	}
	return r
}

func (r *ServiceRepo) List(_ context.Context, resourceID string) ([]models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Service
	for _, s := range r.services[resourceID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ServiceRepo) Upsert(_ context.Context, svc models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byName, ok := r.services[svc.ResourceID]
	if !ok {
		byName = make(map[string]models.Service)
		r.services[svc.ResourceID] = byName
	}
	byName[svc.Name] = svc
	return nil
}

func (r *ServiceRepo) Delete(_ context.Context, resourceID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.services[resourceID][name]; !ok {
		return models.NotFound("service %q not found", name)
	}
	delete(r.services[resourceID], name)
	return nil
}

func (r *ServiceRepo) EnsureIndexes(context.Context) error { return nil }
