package menu

import "github.com/shopspring/decimal"

// Known course values. Course is an open string; items with any other
// value are excluded from the grouped course views.
const (
	CourseAppetizer = "appetizer"
	CourseMain      = "main"
	CourseDessert   = "dessert"
)

// MenuItem is a dish on the menu
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Course      string          `json:"course"`
}

// ItemDraft carries the editable fields of a menu item.
// The catalog assigns the id.
type ItemDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Course      string          `json:"course"`
}
