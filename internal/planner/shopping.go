package planner

import (
	"errors"
	"strings"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

var ErrInvalidItemIndex = errors.New("planner: shopping item index out of range")

// ToggleShoppingItem flips one item's checked flag in place.
func ToggleShoppingItem(list []models.ShoppingListItem, index int) error {
	if index < 0 || index >= len(list) {
		return ErrInvalidItemIndex
	}

	list[index].Checked = !list[index].Checked
	return nil
}

// categoryKeywords drives ingredient categorization when a category is
// not supplied (recipe aggregation, model output with a bad value).
// First category whose keyword list matches wins; no match means
// "other".
var categoryKeywords = map[models.ShoppingCategory][]string{
	models.CategoryProduce: {
		"manzana", "apple", "plátano", "platano", "banana", "fresa", "berry",
		"naranja", "orange", "limón", "limon", "lemon", "aguacate", "avocado",
		"tomate", "tomato", "lechuga", "lettuce", "espinaca", "spinach",
		"cebolla", "onion", "zanahoria", "carrot", "brócoli", "brocoli", "broccoli",
		"calabacín", "calabacin", "zucchini", "pimiento", "pepper", "patata",
		"potato", "batata", "fruta", "verdura",
	},
	models.CategoryMeat: {
		"pollo", "chicken", "ternera", "beef", "carne", "pavo", "turkey",
		"cerdo", "pork", "salmón", "salmon", "atún", "atun", "tuna",
		"pescado", "fish", "merluza", "gamba", "shrimp",
	},
	models.CategoryDairy: {
		"leche", "milk", "queso", "cheese", "yogur", "yogurt", "huevo", "egg",
		"mantequilla", "butter", "nata", "cream",
	},
	models.CategoryGrains: {
		"arroz", "rice", "pasta", "pan", "bread", "avena", "oat", "quinoa",
		"cereal", "tortilla", "harina", "flour", "cuscús", "couscous",
	},
}

// categoryOrder is the fixed precedence the aggregated list is grouped
// by.
var categoryOrder = []models.ShoppingCategory{
	models.CategoryProduce,
	models.CategoryMeat,
	models.CategoryDairy,
	models.CategoryGrains,
	models.CategoryOther,
}

// CategorizeIngredient assigns a category by keyword lookup against
// the lowercased ingredient name.
func CategorizeIngredient(name string) models.ShoppingCategory {
	lowered := strings.ToLower(name)
	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lowered, keyword) {
				return category
			}
		}
	}
	return models.CategoryOther
}

// AggregateRecipes merges the ingredients of several recipes into one
// consolidated shopping list.
func AggregateRecipes(recipes []models.Recipe) []models.ShoppingListItem {
	var ingredients []models.Ingredient
	for _, recipe := range recipes {
		ingredients = append(ingredients, recipe.Ingredients...)
	}
	return AggregateIngredients(ingredients)
}

// AggregateIngredients sums quantities for ingredients whose names
// match case-insensitively (first-seen spelling and unit are kept),
// categorizes each entry by keyword, and orders the result by the
// fixed category precedence; within a category, first appearance wins.
func AggregateIngredients(ingredients []models.Ingredient) []models.ShoppingListItem {
	merged := make(map[string]*models.ShoppingListItem)
	var order []string

	for _, ingredient := range ingredients {
		key := strings.ToLower(strings.TrimSpace(ingredient.Name))
		if key == "" {
			continue
		}

		if item, ok := merged[key]; ok {
			item.Quantity += ingredient.Quantity
			continue
		}

		merged[key] = &models.ShoppingListItem{
			Ingredient: strings.TrimSpace(ingredient.Name),
			Quantity:   ingredient.Quantity,
			Unit:       ingredient.Unit,
			Category:   CategorizeIngredient(ingredient.Name),
		}
		order = append(order, key)
	}

	result := make([]models.ShoppingListItem, 0, len(merged))
	for _, category := range categoryOrder {
		for _, key := range order {
			if merged[key].Category == category {
				result = append(result, *merged[key])
			}
		}
	}
	return result
}
