package resources

import (
	"context"

	"asset-system/internal/entities"
	"asset-system/internal/store"
	"asset-system/internal/transport"
)

// OpApprove - операция согласования заявки на обслуживание.
const OpApprove store.Operation = "approve"

// Gateway - шлюз ресурса с отфильтрованными выборками и действиями над элементом.
// *transport.ResourceAPI реализует его целиком.
type Gateway[T store.Identifiable] interface {
	store.Gateway[T]
	FetchWhere(ctx context.Context, filter, value string) ([]T, error)
	PatchAction(ctx context.Context, id uint64, action string, body any) (*T, error)
}

var _ Gateway[entities.MaintenanceRecord] = (*transport.ResourceAPI[entities.MaintenanceRecord])(nil)
