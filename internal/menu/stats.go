package menu

import "github.com/shopspring/decimal"

// CourseCount is one row of the per-course breakdown. The course
// string is the raw stored value, not restricted to the known three.
type CourseCount struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// Statistics summarizes the full catalog
type Statistics struct {
	ItemCount      int             `json:"item_count"`
	TotalValue     decimal.Decimal `json:"total_value"`
	AveragePrice   decimal.Decimal `json:"average_price"`
	CountsByCourse []CourseCount   `json:"counts_by_course"`
	HighestPriced  *MenuItem       `json:"highest_priced,omitempty"`
	LowestPriced   *MenuItem       `json:"lowest_priced,omitempty"`
}

// ComputeStatistics derives catalog-wide statistics. On an empty
// catalog the average is zero and no highest/lowest item is set.
// Price ties keep the first item scanned.
func ComputeStatistics(items []MenuItem) Statistics {
	stats := Statistics{
		ItemCount:      len(items),
		TotalValue:     TotalValue(items),
		AveragePrice:   decimal.Zero,
		CountsByCourse: []CourseCount{},
	}

	if len(items) == 0 {
		return stats
	}

	stats.AveragePrice = stats.TotalValue.Div(decimal.NewFromInt(int64(len(items))))

	// course breakdown, first-occurrence order
	seen := make(map[string]int)
	for _, item := range items {
		if i, ok := seen[item.Course]; ok {
			stats.CountsByCourse[i].Count++
			continue
		}
		seen[item.Course] = len(stats.CountsByCourse)
		stats.CountsByCourse = append(stats.CountsByCourse, CourseCount{
			Course: item.Course,
			Count:  1,
		})
	}

	// strict comparisons so the first extremum wins on ties
	hi, lo := 0, 0
	for i, item := range items {
		if item.Price.GreaterThan(items[hi].Price) {
			hi = i
		}
		if item.Price.LessThan(items[lo].Price) {
			lo = i
		}
	}
	highest, lowest := items[hi], items[lo]
	stats.HighestPriced = &highest
	stats.LowestPriced = &lowest

	return stats
}
