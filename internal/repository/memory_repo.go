package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/Werneck0live/empresas-api/internal/models"
)

// MemoryRepository guarda empresas em memória. Usado em testes e com STORE_DRIVER=memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int64]models.Empresa
	lastID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]models.Empresa)}
}

func (r *MemoryRepository) Create(_ context.Context, e *models.Empresa) (*models.Empresa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	e.ID = r.lastID
	r.items[e.ID] = *e
	return e, nil
}

func (r *MemoryRepository) FindAll(_ context.Context) ([]models.Empresa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]models.Empresa, 0, len(r.items))
	for _, e := range r.items {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *MemoryRepository) Find(_ context.Context, id int64) (*models.Empresa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *MemoryRepository) Update(_ context.Context, e *models.Empresa) (*models.Empresa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.ID] = *e
	if e.ID > r.lastID {
		r.lastID = e.ID
	}
	return e, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
