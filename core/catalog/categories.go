package catalog

import "strings"

// Storage categories. Every item lands in exactly one.
const (
	CategoryMeat       = "Meat"
	CategorySeafood    = "Seafood"
	CategoryVegetables = "Vegetables"
	CategoryFruit      = "Fruit"
	CategoryDairy      = "Dairy"
	CategoryCheese     = "Cheese"
	CategoryEggs       = "Eggs"
	CategoryGrains     = "Grains"
	CategoryPantry     = "Pantry"
	CategoryProcessed  = "Processed"
	CategoryOthers     = "Others"
)

// categoryByLabel assigns the detector's label vocabulary to categories.
// Keys are normalized labels.
var categoryByLabel = map[string]string{
	"fish": CategorySeafood, "seafood": CategorySeafood, "seaweed": CategorySeafood,

	"beef": CategoryMeat, "chicken": CategoryMeat, "pork": CategoryMeat, "meat": CategoryMeat,

	"processed meat": CategoryProcessed, "hot dog": CategoryProcessed, "processed food": CategoryProcessed,
	"kimchi": CategoryProcessed, "pickle": CategoryProcessed, "tofu": CategoryProcessed,
	"sandwich": CategoryProcessed, "pizza": CategoryProcessed, "cake": CategoryProcessed,

	"dairy": CategoryDairy, "butter": CategoryDairy,

	"bread": CategoryGrains, "noodles": CategoryGrains, "pasta": CategoryGrains,
	"wheat": CategoryGrains, "cereal": CategoryGrains,

	"honey": CategoryPantry, "oil": CategoryPantry, "olive": CategoryPantry, "sauce": CategoryPantry,
	"seasoning": CategoryPantry, "spice": CategoryPantry, "nuts": CategoryPantry, "chocolate": CategoryPantry,
	"coffee": CategoryPantry, "juice": CategoryPantry, "garlic": CategoryPantry, "ginger": CategoryPantry,

	"broccoli": CategoryVegetables, "carrot": CategoryVegetables, "onion": CategoryVegetables,
	"tomato": CategoryVegetables, "spinach": CategoryVegetables, "taro": CategoryVegetables,
	"turnip": CategoryVegetables, "zucchini": CategoryVegetables, "potato": CategoryVegetables,

	"apple": CategoryFruit, "banana": CategoryFruit, "citrus": CategoryFruit, "strawberry": CategoryFruit,
	"watermelon": CategoryFruit, "mango": CategoryFruit, "kiwi": CategoryFruit, "grape": CategoryFruit,

	"cheese": CategoryCheese,
	"egg":    CategoryEggs,
}

// CategoryForLabel returns the category for a normalized label, falling back
// to Others for anything outside the known vocabulary.
func CategoryForLabel(label string) string {
	if category, ok := categoryByLabel[label]; ok {
		return category
	}
	return CategoryOthers
}

// classifyRules maps Open Food Facts taxonomy keywords onto local
// categories. Order matters: cheese must win over the broader dairy match.
var classifyRules = []struct {
	keyword  string
	category string
}{
	{"cheese", CategoryCheese},
	{"egg", CategoryEggs},
	{"milk", CategoryDairy},
	{"yogurt", CategoryDairy},
	{"dairies", CategoryDairy},
	{"dairy", CategoryDairy},
	{"poultry", CategoryMeat},
	{"meat", CategoryMeat},
	{"fish", CategorySeafood},
	{"seafood", CategorySeafood},
	{"vegetable", CategoryVegetables},
	{"fruit", CategoryFruit},
	{"bread", CategoryGrains},
	{"cereal", CategoryGrains},
	{"pasta", CategoryGrains},
	{"breakfast", CategoryGrains},
	{"snack", CategoryProcessed},
	{"frozen", CategoryProcessed},
	{"spread", CategoryPantry},
	{"sauce", CategoryPantry},
	{"beverage", CategoryPantry},
}

// Classify maps a free form Open Food Facts category list onto the local
// category set.
func Classify(categories string) string {
	lowered := strings.ToLower(categories)
	for _, rule := range classifyRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.category
		}
	}
	return CategoryOthers
}
