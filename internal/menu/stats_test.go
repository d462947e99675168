package menu

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeStatistics_EmptyCatalog(t *testing.T) {
	stats := ComputeStatistics(nil)

	if stats.ItemCount != 0 {
		t.Errorf("expected count 0, got %d", stats.ItemCount)
	}
	if !stats.AveragePrice.Equal(decimal.Zero) {
		t.Errorf("expected average 0 on empty catalog, got %s", stats.AveragePrice)
	}
	if stats.HighestPriced != nil || stats.LowestPriced != nil {
		t.Error("expected no highest/lowest item on empty catalog")
	}
}

func TestComputeStatistics_SeedCatalog(t *testing.T) {
	stats := ComputeStatistics(SeedItems())

	if stats.ItemCount != 6 {
		t.Errorf("expected 6 items, got %d", stats.ItemCount)
	}
	if !stats.TotalValue.Equal(decimal.RequireFromString("173.00")) {
		t.Errorf("expected total 173.00, got %s", stats.TotalValue)
	}

	// 173 / 6
	wantAvg := decimal.RequireFromString("173.00").Div(decimal.NewFromInt(6))
	if !stats.AveragePrice.Equal(wantAvg) {
		t.Errorf("expected average %s, got %s", wantAvg, stats.AveragePrice)
	}

	if stats.HighestPriced == nil || stats.HighestPriced.Name != "Wagyu Beef Tenderloin" {
		t.Errorf("wrong highest priced item: %+v", stats.HighestPriced)
	}
	if stats.LowestPriced == nil || stats.LowestPriced.Name != "Lemon Lavender Tart" {
		t.Errorf("wrong lowest priced item: %+v", stats.LowestPriced)
	}
}

func TestComputeStatistics_TieKeepsFirstItem(t *testing.T) {
	items := []MenuItem{
		{ID: "a", Name: "First", Price: decimal.RequireFromString("10.00"), Course: CourseMain},
		{ID: "b", Name: "Second", Price: decimal.RequireFromString("10.00"), Course: CourseMain},
	}

	stats := ComputeStatistics(items)

	if stats.HighestPriced.ID != "a" {
		t.Errorf("highest tie should keep first item, got %s", stats.HighestPriced.ID)
	}
	if stats.LowestPriced.ID != "a" {
		t.Errorf("lowest tie should keep first item, got %s", stats.LowestPriced.ID)
	}
}

func TestComputeStatistics_CourseCountsFirstOccurrenceOrder(t *testing.T) {
	items := []MenuItem{
		{ID: "1", Course: "dessert", Price: decimal.RequireFromString("5.00")},
		{ID: "2", Course: "brunch", Price: decimal.RequireFromString("5.00")},
		{ID: "3", Course: "dessert", Price: decimal.RequireFromString("5.00")},
		{ID: "4", Course: "main", Price: decimal.RequireFromString("5.00")},
	}

	stats := ComputeStatistics(items)

	want := []CourseCount{
		{Course: "dessert", Count: 2},
		{Course: "brunch", Count: 1},
		{Course: "main", Count: 1},
	}

	if len(stats.CountsByCourse) != len(want) {
		t.Fatalf("expected %d course rows, got %d", len(want), len(stats.CountsByCourse))
	}
	for i := range want {
		if stats.CountsByCourse[i] != want[i] {
			t.Errorf("row %d: expected %+v, got %+v", i, want[i], stats.CountsByCourse[i])
		}
	}
}
