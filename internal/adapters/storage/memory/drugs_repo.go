package memory

import (
	"context"
	"sync"

	"infusion-rate-calculator/internal/domain/drugs"
)

// DrugsRepo sirve un snapshot inmutable del catálogo. Replace cambia el snapshot
// completo (recarga del formulario); nunca se modifica una droga en el lugar.
type DrugsRepo struct {
	mu      sync.RWMutex
	catalog *drugs.Catalog
}

func NewDrugsRepo(c *drugs.Catalog) *DrugsRepo {
	if c == nil {
		c = drugs.Builtin()
	}
	return &DrugsRepo{catalog: c}
}

func (r *DrugsRepo) Replace(c *drugs.Catalog) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = c
}

func (r *DrugsRepo) snapshot() *drugs.Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalog
}

func (r *DrugsRepo) List(ctx context.Context) ([]drugs.Drug, error) {
	return r.snapshot().All(), nil
}

func (r *DrugsRepo) GetByKey(ctx context.Context, key string) (drugs.Drug, error) {
	d, ok := r.snapshot().Lookup(key)
	if !ok {
		return drugs.Drug{}, drugs.ErrDrugNotFound
	}
	return d, nil
}
