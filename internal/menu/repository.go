package menu

import "context"

// Repository defines all catalog storage operations
type Repository interface {

	// Append a new item to the catalog
	Insert(ctx context.Context, item MenuItem) error

	// Replace all fields of the item with the same id.
	// Returns false when no item matches.
	Replace(ctx context.Context, item MenuItem) (bool, error)

	// Remove the item; absent ids are a no-op
	Remove(ctx context.Context, id string) error

	// Get returns nil when no item matches
	Get(ctx context.Context, id string) (*MenuItem, error)

	// List returns items in insertion order
	List(ctx context.Context) ([]MenuItem, error)
}
