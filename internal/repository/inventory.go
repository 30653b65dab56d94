package repository

import (
	"context"

	"foodloop/internal/domain"
)

// InventoryRepository defines persistence operations for FoodItem entities.
type InventoryRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, item *domain.FoodItem) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.FoodItem, error)
	// List returns every item ordered ascending by expiration date.
	List(ctx context.Context) ([]domain.FoodItem, error)
	Search(ctx context.Context, field domain.SearchField, value string) ([]domain.FoodItem, error)
	// DecrementQuantity subtracts by from the item's quantity only while at
	// least by units remain. Reports whether a row was updated.
	DecrementQuantity(ctx context.Context, id int64, by int) (bool, error)
	// DeleteIfQuantity removes the item only while its quantity still equals
	// quantity. Reports whether a row was deleted.
	DeleteIfQuantity(ctx context.Context, id int64, quantity int) (bool, error)
	// TotalsByArea sums quantities grouped by area. Areas without items are
	// absent from the result.
	TotalsByArea(ctx context.Context) (map[string]int, error)
}
