package menu

import (
	"context"

	"github.com/shopspring/decimal"
)

// SeedItems returns the six example dishes the app ships with
func SeedItems() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Pan-Seared Scallops",
			Description: "Fresh Atlantic scallops with cauliflower purée and crispy pancetta",
			Price:       decimal.RequireFromString("28.00"),
			Course:      CourseAppetizer,
		},
		{
			ID:          "2",
			Name:        "Wagyu Beef Tenderloin",
			Description: "Grilled to perfection with roasted vegetables and red wine reduction",
			Price:       decimal.RequireFromString("65.00"),
			Course:      CourseMain,
		},
		{
			ID:          "3",
			Name:        "Dark Chocolate Soufflé",
			Description: "Warm chocolate soufflé with vanilla bean ice cream",
			Price:       decimal.RequireFromString("18.00"),
			Course:      CourseDessert,
		},
		{
			ID:          "4",
			Name:        "Truffle Mushroom Risotto",
			Description: "Creamy arborio rice with wild mushrooms and shaved truffle",
			Price:       decimal.RequireFromString("32.00"),
			Course:      CourseMain,
		},
		{
			ID:          "5",
			Name:        "Heirloom Tomato Salad",
			Description: "Heritage tomatoes with burrata, basil oil, and balsamic pearls",
			Price:       decimal.RequireFromString("16.00"),
			Course:      CourseAppetizer,
		},
		{
			ID:          "6",
			Name:        "Lemon Lavender Tart",
			Description: "Zesty lemon curd with lavender meringue and candied peel",
			Price:       decimal.RequireFromString("14.00"),
			Course:      CourseDessert,
		},
	}
}

// Seed loads the fixture into an empty catalog. A catalog that
// already has items is left alone, so a persistent repository is
// never re-seeded.
func Seed(ctx context.Context, repo Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, item := range SeedItems() {
		if err := repo.Insert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
