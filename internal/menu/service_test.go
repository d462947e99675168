package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func draft(name string, price string) ItemDraft {
	return ItemDraft{
		Name:        name,
		Description: "a description",
		Price:       decimal.RequireFromString(price),
		Course:      CourseMain,
	}
}

func TestAdd_AssignsUniqueIDs(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		item, err := service.Add(ctx, draft("Dish", "10.00"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == "" {
			t.Fatal("expected id to be set")
		}
		if seen[item.ID] {
			t.Fatalf("duplicate id generated: %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestAdd_Validation(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	cases := []struct {
		name  string
		draft ItemDraft
	}{
		{"blank name", ItemDraft{Name: "   ", Description: "d", Price: decimal.RequireFromString("5.00"), Course: CourseMain}},
		{"blank description", ItemDraft{Name: "n", Description: "", Price: decimal.RequireFromString("5.00"), Course: CourseMain}},
		{"zero price", ItemDraft{Name: "n", Description: "d", Price: decimal.Zero, Course: CourseMain}},
		{"negative price", ItemDraft{Name: "n", Description: "d", Price: decimal.RequireFromString("-3.00"), Course: CourseMain}},
	}

	for _, tc := range cases {
		_, err := service.Add(ctx, tc.draft)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	items, _ := service.List(ctx)
	if len(items) != 0 {
		t.Fatalf("catalog mutated by rejected drafts: %d items", len(items))
	}
}

func TestUpdate_ReplacesFieldsAndPreservesID(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	created, err := service.Add(ctx, draft("Old Name", "10.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := service.Update(ctx, created.ID, ItemDraft{
		Name:        "New Name",
		Description: "new description",
		Price:       decimal.RequireFromString("12.50"),
		Course:      CourseDessert,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed on update: %s -> %s", created.ID, updated.ID)
	}
	if updated.Name != "New Name" || updated.Course != CourseDessert {
		t.Errorf("fields not replaced: %+v", updated)
	}
}

func TestUpdate_MissingIDIsNoOp(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	service.Add(ctx, draft("Dish", "10.00"))
	before, _ := service.List(ctx)

	item, err := service.Update(ctx, "no-such-id", draft("Other", "20.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Fatalf("expected nil item for missing id, got %+v", item)
	}

	after, _ := service.List(ctx)
	if len(after) != len(before) || after[0].Name != "Dish" {
		t.Fatal("catalog changed by update on missing id")
	}
}

func TestDelete_ThenUpdateIsNoOp(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	created, _ := service.Add(ctx, draft("Dish", "10.00"))

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item, err := service.Update(ctx, created.ID, draft("Ghost", "99.00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item != nil {
		t.Fatal("update on deleted id should be a no-op")
	}

	items, _ := service.List(ctx)
	if len(items) != 0 {
		t.Fatalf("expected empty catalog, got %d items", len(items))
	}
}

func TestDelete_IsIdempotent(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	if err := service.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("delete on missing id should succeed, got %v", err)
	}
}

func TestDelete_FiresHooks(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	var deleted []string
	service.OnItemDeleted(func(id string) {
		deleted = append(deleted, id)
	})

	created, _ := service.Add(ctx, draft("Dish", "10.00"))
	service.Delete(ctx, created.ID)

	if len(deleted) != 1 || deleted[0] != created.ID {
		t.Fatalf("expected hook with id %s, got %v", created.ID, deleted)
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		service.Add(ctx, draft(name, "10.00"))
	}

	items, err := service.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, name := range names {
		if items[i].Name != name {
			t.Fatalf("expected %s at position %d, got %s", name, i, items[i].Name)
		}
	}
}
