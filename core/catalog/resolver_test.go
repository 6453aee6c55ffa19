package catalog_test

import (
	"testing"
	"time"

	"fridge-manager/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_ResolveLabel_SeededVocabulary(t *testing.T) {
	r := catalog.NewResolver()

	binding, ok := r.ResolveLabel("  Apple ")
	require.True(t, ok)
	assert.Equal(t, "apple", binding.Identity)
	assert.Equal(t, catalog.CategoryFruit, binding.Category)

	binding, ok = r.ResolveLabel("HOT  DOG")
	require.True(t, ok)
	assert.Equal(t, "hot-dog", binding.Identity)
	assert.Equal(t, catalog.CategoryProcessed, binding.Category)

	_, ok = r.ResolveLabel("dragonfruit")
	assert.False(t, ok)
}

func TestResolver_BindLabel_Defaults(t *testing.T) {
	r := catalog.NewResolver()

	binding := r.BindLabel("Dragon Fruit", "", "")
	assert.Equal(t, "dragon-fruit", binding.Identity)
	assert.Equal(t, "dragon fruit", binding.Name)
	assert.Equal(t, catalog.CategoryOthers, binding.Category)

	resolved, ok := r.ResolveLabel("dragon fruit")
	require.True(t, ok)
	assert.Equal(t, binding, resolved)
}

func TestResolver_BindLabel_ExplicitValuesWin(t *testing.T) {
	r := catalog.NewResolver()

	binding := r.BindLabel("soy milk", "soy-milk", catalog.CategoryDairy)
	assert.Equal(t, "soy-milk", binding.Identity)
	assert.Equal(t, catalog.CategoryDairy, binding.Category)
}

func TestResolver_BindCode(t *testing.T) {
	r := catalog.NewResolver()

	_, ok := r.ResolveCode("5901234123457")
	require.False(t, ok)

	binding := r.BindCode("5901234123457", "", "Nutella", "")
	assert.Equal(t, "nutella", binding.Identity)
	assert.Equal(t, "Nutella", binding.Name)
	assert.Equal(t, catalog.CategoryOthers, binding.Category)

	resolved, ok := r.ResolveCode("5901234123457")
	require.True(t, ok)
	assert.Equal(t, binding, resolved)
}

func TestResolver_BindCode_FallsBackToCode(t *testing.T) {
	r := catalog.NewResolver()

	binding := r.BindCode("4006381333931", "", "", "")
	assert.Equal(t, "4006381333931", binding.Name)
	assert.Equal(t, "4006381333931", binding.Identity)
}

func TestCategoryForLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"apple", catalog.CategoryFruit},
		{"cheese", catalog.CategoryCheese},
		{"egg", catalog.CategoryEggs},
		{"broccoli", catalog.CategoryVegetables},
		{"unknown thing", catalog.CategoryOthers},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.CategoryForLabel(tt.label))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		categories string
		want       string
	}{
		{"Cheese", "Dairies, Fermented foods, Cheeses", catalog.CategoryCheese},
		{"Dairy", "Dairies, Milks", catalog.CategoryDairy},
		{"Fruit", "Plant-based foods, Fruits", catalog.CategoryFruit},
		{"Spread", "Spreads, Sweet spreads, Hazelnut spreads", catalog.CategoryPantry},
		{"Unknown", "Mystery items", catalog.CategoryOthers},
		{"Empty", "", catalog.CategoryOthers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Classify(tt.categories))
		})
	}
}

func TestShelfLife(t *testing.T) {
	assert.Equal(t, 3, catalog.ShelfLifeDays(catalog.CategorySeafood))
	assert.Equal(t, 90, catalog.ShelfLifeDays(catalog.CategoryPantry))
	assert.Equal(t, 5, catalog.ShelfLifeDays("not a category"))

	observed := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, observed.AddDate(0, 0, 7), catalog.ExpiryFor(catalog.CategoryFruit, observed))
}
