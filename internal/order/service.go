package order

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"kissthecheff/internal/menu"
)

var ErrUnknownItem = errors.New("unknown menu item")

// Service guards basket mutations with catalog lookups. Adding an
// unknown id is an error (it would create a dangling entry);
// decrements and removals of unknown ids are idempotent no-ops,
// since they converge to the same basket state either way.
type Service struct {
	basket  *Basket
	catalog *menu.Service
}

func NewService(basket *Basket, catalog *menu.Service) *Service {
	return &Service{basket: basket, catalog: catalog}
}

// --------------------------------------------------
// Add one of an item to the order
// --------------------------------------------------
func (s *Service) AddItem(ctx context.Context, id string) error {
	item, err := s.catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrUnknownItem
	}

	s.basket.AddOne(id)
	return nil
}

// --------------------------------------------------
// Decrement / remove / clear
// --------------------------------------------------
func (s *Service) DecrementItem(id string) {
	s.basket.RemoveOne(id)
}

func (s *Service) RemoveItem(id string) {
	s.basket.RemoveAll(id)
}

func (s *Service) ClearBasket() {
	s.basket.Clear()
}

// --------------------------------------------------
// Derived order view
// --------------------------------------------------
func (s *Service) Lines(ctx context.Context) ([]Line, decimal.Decimal, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := s.basket.ResolvedLines(items)

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return lines, total, nil
}

func (s *Service) TotalQuantity() int {
	return s.basket.TotalQuantity()
}
