package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"foodloop/internal/domain"
	"foodloop/internal/repository"
	"foodloop/internal/validate"
)

var (
	// ErrInvalidDate indicates an expiration date that is not a real
	// calendar date in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("date must be a valid YYYY-MM-DD date")
	// ErrInvalidQuantity indicates a quantity that is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrOverPickup indicates a pickup request exceeding the available quantity.
	ErrOverPickup = errors.New("cannot pick up more than available")
)

// InventoryService coordinates the donated food inventory. It re-validates
// its own preconditions so it is safe to call without the menu layer's
// re-prompt loops in front of it.
type InventoryService interface {
	Add(ctx context.Context, name, area, expiration, quantity, owner string) (*domain.FoodItem, error)
	Get(ctx context.Context, id int64) (*domain.FoodItem, error)
	List(ctx context.Context) ([]domain.FoodItem, error)
	Search(ctx context.Context, field domain.SearchField, value string) ([]domain.FoodItem, error)
	ExpiringSoon(ctx context.Context, reference time.Time, windowDays int) ([]domain.FoodItem, error)
	Pickup(ctx context.Context, id int64, quantity string) (remaining int, err error)
}

type inventoryService struct {
	items repository.InventoryRepository
}

func NewInventoryService(items repository.InventoryRepository) InventoryService {
	return &inventoryService{items: items}
}

func (s *inventoryService) Add(ctx context.Context, name, area, expiration, quantity, owner string) (*domain.FoodItem, error) {
	if !validate.IsValidDate(expiration) {
		return nil, ErrInvalidDate
	}
	if !validate.IsValidQuantity(quantity) {
		return nil, ErrInvalidQuantity
	}
	qty, err := strconv.Atoi(quantity)
	if err != nil {
		return nil, ErrInvalidQuantity
	}

	item := &domain.FoodItem{
		Name:       name,
		Area:       area,
		Expiration: expiration,
		Quantity:   qty,
		Owner:      owner,
	}
	if _, err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Get(ctx context.Context, id int64) (*domain.FoodItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *inventoryService) List(ctx context.Context) ([]domain.FoodItem, error) {
	return s.items.List(ctx)
}

func (s *inventoryService) Search(ctx context.Context, field domain.SearchField, value string) ([]domain.FoodItem, error) {
	if field == domain.SearchByExpiration && !validate.IsValidDate(value) {
		return nil, ErrInvalidDate
	}
	return s.items.Search(ctx, field, value)
}

// ExpiringSoon returns items expiring within windowDays of the reference
// date, both ends inclusive. Comparison is on parsed dates since the window
// crosses month and year boundaries.
func (s *inventoryService) ExpiringSoon(ctx context.Context, reference time.Time, windowDays int) ([]domain.FoodItem, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, windowDays)

	var soon []domain.FoodItem
	for _, item := range items {
		d, err := time.Parse(validate.DateLayout, item.Expiration)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			soon = append(soon, item)
		}
	}
	return soon, nil
}

// Pickup consumes quantity units of the item. Taking the full quantity
// removes the record; no record ever remains at zero. The conditional
// repository writes guard the decrement against a concurrent pickup.
func (s *inventoryService) Pickup(ctx context.Context, id int64, quantity string) (int, error) {
	if !validate.IsValidQuantity(quantity) {
		return 0, ErrInvalidQuantity
	}
	qty, err := strconv.Atoi(quantity)
	if err != nil {
		return 0, ErrInvalidQuantity
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if qty > item.Quantity {
		return 0, ErrOverPickup
	}

	if qty == item.Quantity {
		ok, err := s.items.DeleteIfQuantity(ctx, id, qty)
		if err != nil {
			return 0, err
		}
		if !ok {
			// quantity moved underneath us
			return 0, ErrOverPickup
		}
		return 0, nil
	}

	ok, err := s.items.DecrementQuantity(ctx, id, qty)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrOverPickup
	}
	return item.Quantity - qty, nil
}
