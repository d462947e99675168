package order

import "kissthecheff/internal/menu"

// Line is one row of the order review: a resolved menu item and how
// many of it are in the basket. Lines are derived, never stored.
type Line struct {
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
}
