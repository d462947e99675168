package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("validation failed")

// Service owns the menu catalog
type Service struct {
	repo        Repository
	deleteHooks []func(id string)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// OnItemDeleted registers a hook that runs whenever an item is
// removed from the catalog. The order basket uses this to drop
// entries for items that no longer exist. Hooks must be registered
// before the service starts handling requests.
func (s *Service) OnItemDeleted(hook func(id string)) {
	s.deleteHooks = append(s.deleteHooks, hook)
}

// --------------------------------------------------
// Add item
// --------------------------------------------------
func (s *Service) Add(ctx context.Context, draft ItemDraft) (*MenuItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	item := MenuItem{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Course:      draft.Course,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	return &item, nil
}

// --------------------------------------------------
// Update item (id preserved, all other fields replaced)
// --------------------------------------------------

// Update returns (nil, nil) when no item matches the id; an update
// against a deleted item leaves the catalog unchanged.
func (s *Service) Update(ctx context.Context, id string, draft ItemDraft) (*MenuItem, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	item := MenuItem{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Course:      draft.Course,
	}

	replaced, err := s.repo.Replace(ctx, item)
	if err != nil {
		return nil, err
	}
	if !replaced {
		return nil, nil
	}

	return &item, nil
}

// --------------------------------------------------
// Delete item (idempotent, cascades to the basket)
// --------------------------------------------------
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	for _, hook := range s.deleteHooks {
		hook(id)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*MenuItem, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]MenuItem, error) {
	return s.repo.List(ctx)
}

// --------------------------------------------------
// Draft validation (runs before any mutation)
// --------------------------------------------------
func validateDraft(draft ItemDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(draft.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if !draft.Price.IsPositive() {
		return fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}
	return nil
}
