package planner

import (
	"errors"
	"testing"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

func TestAggregateIngredientsMergesCaseInsensitively(t *testing.T) {
	items := AggregateIngredients([]models.Ingredient{
		{Name: "Pollo", Quantity: 200, Unit: "g"},
		{Name: "pollo", Quantity: 150, Unit: "g"},
		{Name: "POLLO", Quantity: 50, Unit: "g"},
	})

	if len(items) != 1 {
		t.Fatalf("expected one merged item, got %d", len(items))
	}
	if items[0].Ingredient != "Pollo" {
		t.Fatalf("expected first-seen spelling Pollo, got %q", items[0].Ingredient)
	}
	if items[0].Quantity != 400 {
		t.Fatalf("expected summed quantity 400, got %v", items[0].Quantity)
	}
	if items[0].Category != models.CategoryMeat {
		t.Fatalf("expected pollo in meat, got %q", items[0].Category)
	}
}

func TestAggregateIngredientsGroupsByCategoryPrecedence(t *testing.T) {
	items := AggregateIngredients([]models.Ingredient{
		{Name: "Proteína en polvo", Quantity: 1, Unit: "bote"},
		{Name: "Arroz", Quantity: 100, Unit: "g"},
		{Name: "Leche", Quantity: 1, Unit: "l"},
		{Name: "Pollo", Quantity: 200, Unit: "g"},
		{Name: "Tomate", Quantity: 150, Unit: "g"},
	})

	want := []models.ShoppingCategory{
		models.CategoryProduce,
		models.CategoryMeat,
		models.CategoryDairy,
		models.CategoryGrains,
		models.CategoryOther,
	}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, item := range items {
		if item.Category != want[i] {
			t.Fatalf("position %d: expected category %q, got %q (%s)", i, want[i], item.Category, item.Ingredient)
		}
	}
}

func TestAggregateRecipes(t *testing.T) {
	items := AggregateRecipes([]models.Recipe{
		{Name: "Pollo con arroz", Ingredients: []models.Ingredient{
			{Name: "Pollo", Quantity: 200, Unit: "g"},
			{Name: "Arroz", Quantity: 100, Unit: "g"},
		}},
		{Name: "Ensalada de pollo", Ingredients: []models.Ingredient{
			{Name: "pollo", Quantity: 150, Unit: "g"},
			{Name: "Lechuga", Quantity: 80, Unit: "g"},
		}},
	})

	if len(items) != 3 {
		t.Fatalf("expected 3 consolidated items, got %d", len(items))
	}
	for _, item := range items {
		if item.Ingredient == "Pollo" && item.Quantity != 350 {
			t.Fatalf("expected 350 g of pollo, got %v", item.Quantity)
		}
	}
}

func TestToggleShoppingItem(t *testing.T) {
	list := []models.ShoppingListItem{
		{Ingredient: "Pollo", Quantity: 200, Unit: "g", Category: models.CategoryMeat},
	}

	if err := ToggleShoppingItem(list, 0); err != nil {
		t.Fatalf("ToggleShoppingItem: %v", err)
	}
	if !list[0].Checked {
		t.Fatal("expected item to be checked")
	}
	if err := ToggleShoppingItem(list, 0); err != nil {
		t.Fatalf("ToggleShoppingItem: %v", err)
	}
	if list[0].Checked {
		t.Fatal("expected item to be unchecked again")
	}

	for _, index := range []int{-1, 1, 99} {
		if err := ToggleShoppingItem(list, index); !errors.Is(err, ErrInvalidItemIndex) {
			t.Fatalf("index %d: expected ErrInvalidItemIndex, got %v", index, err)
		}
	}
}
