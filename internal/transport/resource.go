package transport

import (
	"context"
	"fmt"
	"net/url"

	"asset-system/internal/dto"
	"asset-system/internal/entities"
	"asset-system/internal/store"
)

// ResourceAPI - store.Gateway поверх REST-ресурса с базовым путём вида "/assets".
type ResourceAPI[T store.Identifiable] struct {
	client   *Client
	basePath string
}

var _ store.Gateway[entities.Asset] = (*ResourceAPI[entities.Asset])(nil)

func NewResourceAPI[T store.Identifiable](client *Client, basePath string) *ResourceAPI[T] {
	return &ResourceAPI[T]{client: client, basePath: basePath}
}

func (r *ResourceAPI[T]) BasePath() string { return r.basePath }

func (r *ResourceAPI[T]) itemPath(id uint64) string {
	return fmt.Sprintf("%s/%d", r.basePath, id)
}

func (r *ResourceAPI[T]) FetchAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.Get(ctx, r.basePath, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchWhere - отфильтрованные варианты: /{resource}/by-status/{status} и т.п.
func (r *ResourceAPI[T]) FetchWhere(ctx context.Context, filter, value string) ([]T, error) {
	var items []T
	path := fmt.Sprintf("%s/%s/%s", r.basePath, filter, url.PathEscape(value))
	if err := r.client.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ResourceAPI[T]) FetchByID(ctx context.Context, id uint64) (*T, error) {
	var item *T
	if err := r.client.Get(ctx, r.itemPath(id), &item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ResourceAPI[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item *T
	if err := r.client.Post(ctx, r.basePath, payload, &item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ResourceAPI[T]) Update(ctx context.Context, id uint64, patch any) (*T, error) {
	var item *T
	if err := r.client.Put(ctx, r.itemPath(id), patch, &item); err != nil {
		return nil, err
	}
	return item, nil
}

// PatchAction - PATCH /{resource}/{id}/{action}, например approve.
func (r *ResourceAPI[T]) PatchAction(ctx context.Context, id uint64, action string, body any) (*T, error) {
	var item *T
	if err := r.client.Patch(ctx, r.itemPath(id)+"/"+action, body, &item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete пересылает причину как есть. Отсутствие success в ответе - это не успех.
func (r *ResourceAPI[T]) Delete(ctx context.Context, id uint64, reason string) (store.DeleteResult, error) {
	var body any
	if reason != "" {
		body = dto.DeleteDTO{Reason: reason}
	}
	res, err := r.client.Delete(ctx, r.itemPath(id), body, nil)
	if err != nil {
		return store.DeleteResult{}, err
	}
	return store.DeleteResult{
		Success: res.Success != nil && *res.Success,
		Message: res.Message,
	}, nil
}
