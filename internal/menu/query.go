package menu

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CourseGroups buckets items by the three known courses. Items with
// any other course value appear in none of the buckets.
type CourseGroups struct {
	Appetizers []MenuItem `json:"appetizers"`
	Mains      []MenuItem `json:"mains"`
	Desserts   []MenuItem `json:"desserts"`
}

// Search filters items by a case-insensitive substring match against
// name, description or course. A blank query returns every item in
// its original order.
func Search(items []MenuItem, query string) []MenuItem {
	if strings.TrimSpace(query) == "" {
		return items
	}

	q := strings.ToLower(query)

	var matched []MenuItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Description), q) ||
			strings.Contains(strings.ToLower(item.Course), q) {
			matched = append(matched, item)
		}
	}
	return matched
}

// GroupByCourse preserves relative order within each bucket
func GroupByCourse(items []MenuItem) CourseGroups {
	var groups CourseGroups
	for _, item := range items {
		switch item.Course {
		case CourseAppetizer:
			groups.Appetizers = append(groups.Appetizers, item)
		case CourseMain:
			groups.Mains = append(groups.Mains, item)
		case CourseDessert:
			groups.Desserts = append(groups.Desserts, item)
		}
	}
	return groups
}

// TotalValue sums item prices. This is the catalog value, not an
// order total; no quantities are involved.
func TotalValue(items []MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}
	return total
}
