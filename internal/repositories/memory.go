package repositories

import (
	"context"
	"sort"
	"sync"

	apperrors "asset-system/pkg/errors"
)

type Entity interface {
	GetID() uint64
}

// MemoryRepository - хранилище тестового сервера: map + счётчик id под мьютексом.
// Списки всегда отдаются по возрастанию id.
type MemoryRepository[T Entity] struct {
	mu    sync.RWMutex
	items map[uint64]T
	seq   uint64
	setID func(item *T, id uint64)
}

func NewMemoryRepository[T Entity](setID func(item *T, id uint64)) *MemoryRepository[T] {
	return &MemoryRepository[T]{
		items: make(map[uint64]T),
		setID: setID,
	}
}

func (r *MemoryRepository[T]) List(ctx context.Context) []T {
	return r.Where(ctx, nil)
}

// Where - отфильтрованный список; match == nil означает "всё".
func (r *MemoryRepository[T]) Where(ctx context.Context, match func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for _, item := range r.items {
		if match == nil || match(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GetID() < out[j].GetID() })
	return out
}

func (r *MemoryRepository[T]) FindByID(ctx context.Context, id uint64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, apperrors.ErrNotFound
	}
	return item, nil
}

// FindOne - первый по id элемент, удовлетворяющий условию.
func (r *MemoryRepository[T]) FindOne(ctx context.Context, match func(T) bool) (T, error) {
	items := r.Where(ctx, match)
	if len(items) == 0 {
		var zero T
		return zero, apperrors.ErrNotFound
	}
	return items[0], nil
}

// Create присваивает новый id, если у элемента его нет.
// Явный id, который уже занят, - ErrConflict.
func (r *MemoryRepository[T]) Create(ctx context.Context, item T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := item.GetID()
	if id == 0 {
		r.seq++
		id = r.seq
		r.setID(&item, id)
	} else {
		if _, exists := r.items[id]; exists {
			var zero T
			return zero, apperrors.ErrConflict
		}
		if id > r.seq {
			r.seq = id
		}
	}
	r.items[id] = item
	return item, nil
}

// Update применяет mutate к копии и сохраняет её, если mutate не вернул ошибку.
func (r *MemoryRepository[T]) Update(ctx context.Context, id uint64, mutate func(item *T) error) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	item, ok := r.items[id]
	if !ok {
		return zero, apperrors.ErrNotFound
	}
	if err := mutate(&item); err != nil {
		return zero, err
	}
	r.setID(&item, id)
	r.items[id] = item
	return item, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MemoryRepository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
