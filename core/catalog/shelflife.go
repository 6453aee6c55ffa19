package catalog

import "time"

// shelfLifeDays is the default keep window per category.
var shelfLifeDays = map[string]int{
	CategoryMeat:       7,
	CategorySeafood:    3,
	CategoryVegetables: 10,
	CategoryFruit:      7,
	CategoryDairy:      14,
	CategoryCheese:     30,
	CategoryEggs:       21,
	CategoryGrains:     7,
	CategoryPantry:     90,
	CategoryProcessed:  14,
	CategoryOthers:     5,
}

// ShelfLifeDays returns the default shelf life for a category.
func ShelfLifeDays(category string) int {
	if days, ok := shelfLifeDays[category]; ok {
		return days
	}
	return shelfLifeDays[CategoryOthers]
}

// ExpiryFor estimates when an item observed at the given time should be
// used by.
func ExpiryFor(category string, observed time.Time) time.Time {
	return observed.AddDate(0, 0, ShelfLifeDays(category))
}
