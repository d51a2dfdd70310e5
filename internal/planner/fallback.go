package planner

import (
	"math"
	"strings"
	"time"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

// The fallback generator produces deterministic, fully-populated plan
// data with no network call. It runs when no LLM credential is
// configured, when the LLM call fails, or when it exceeds the
// generation timeout. Its output is always render-safe: 7 days, macros
// present, recommendations non-empty.

const (
	bmrWeightFactor = 10.0
	bmrHeightFactor = 6.25
	bmrAgeFactor    = 5.0
	// Onboarding never collects sex, so a single neutral offset is
	// used instead of the male/female Mifflin-St Jeor constants.
	bmrNeutralOffset = 36.5

	loseWeightAdjustment = -500
	gainMuscleAdjustment = 300

	proteinCalorieShare = 0.30
	carbCalorieShare    = 0.40
	fatCalorieShare     = 0.30

	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// MifflinStJeorBMR estimates basal metabolic rate from weight (kg),
// height (cm) and age.
func MifflinStJeorBMR(weightKG, heightCM float64, age int) float64 {
	return bmrWeightFactor*weightKG + bmrHeightFactor*heightCM - bmrAgeFactor*float64(age) + bmrNeutralOffset
}

// DailyCalorieTarget computes the daily target from the user's goals:
// BMR scaled by the activity multiplier, then adjusted by objective.
// An explicit target set by the user wins over the formula.
func DailyCalorieTarget(goals models.UserGoals) int {
	if goals.DailyCalorieTarget != nil && *goals.DailyCalorieTarget > 0 {
		return *goals.DailyCalorieTarget
	}

	multiplier, ok := activityMultipliers[goals.ActivityLevel]
	if !ok {
		multiplier = activityMultipliers[models.ActivitySedentary]
	}

	target := int(math.Round(MifflinStJeorBMR(goals.CurrentWeightKG, goals.HeightCM, goals.Age) * multiplier))

	switch goals.Objective {
	case models.ObjectiveLoseWeight:
		target += loseWeightAdjustment
	case models.ObjectiveGainMuscle:
		target += gainMuscleAdjustment
	}
	return target
}

func macrosForCalories(calories int) models.Macros {
	return models.Macros{
		ProteinG: int(math.Round(float64(calories) * proteinCalorieShare / caloriesPerGramProtein)),
		CarbsG:   int(math.Round(float64(calories) * carbCalorieShare / caloriesPerGramCarbs)),
		FatG:     int(math.Round(float64(calories) * fatCalorieShare / caloriesPerGramFat)),
	}
}

var classTrainingTypes = map[string]bool{
	"crossfit": true,
	"hyrox":    true,
	"hybrid":   true,
}

func isClassTraining(trainingTypes []string) bool {
	for _, t := range trainingTypes {
		if classTrainingTypes[strings.ToLower(strings.TrimSpace(t))] {
			return true
		}
	}
	return false
}

// FallbackPlan builds the complete deterministic plan.
func FallbackPlan(input GenerationInput, now time.Time) *models.GeneratedPlan {
	var workoutPlan models.WorkoutPlan
	if isClassTraining(input.TrainingTypes) {
		workoutPlan = fallbackCrossfitWeek()
	} else {
		workoutPlan = fallbackGymWeek()
	}

	dietPlan := fallbackDietWeek(input)

	plan := &models.GeneratedPlan{
		WorkoutPlan:     workoutPlan,
		DietPlan:        dietPlan,
		Recommendations: fallbackRecommendations(input.Goals.Objective),
		GeneratedAt:     now.UTC(),
	}
	plan.ShoppingList = FallbackShoppingList(dietPlan)
	return plan
}

func fallbackGymWeek() models.WorkoutPlan {
	days := []models.DayWorkout{
		restDay(0),
		trainingDay(1, models.WorkoutStrength, "Empuje: pecho y hombro", 60, []models.PlannedExercise{
			{Name: "Press banca", Sets: 4, Reps: "8-10", RestSeconds: 90, Alternatives: []string{"Press con mancuernas"}},
			{Name: "Press militar", Sets: 3, Reps: "8-10", RestSeconds: 90},
			{Name: "Fondos en paralelas", Sets: 3, Reps: "10-12", RestSeconds: 60},
			{Name: "Elevaciones laterales", Sets: 3, Reps: "12-15", RestSeconds: 45},
		}),
		trainingDay(2, models.WorkoutStrength, "Tirón: espalda y bíceps", 60, []models.PlannedExercise{
			{Name: "Dominadas", Sets: 4, Reps: "6-10", RestSeconds: 90, Alternatives: []string{"Jalón al pecho"}},
			{Name: "Remo con barra", Sets: 4, Reps: "8-10", RestSeconds: 90},
			{Name: "Curl con barra", Sets: 3, Reps: "10-12", RestSeconds: 60},
			{Name: "Face pull", Sets: 3, Reps: "12-15", RestSeconds: 45},
		}),
		trainingDay(3, models.WorkoutStrength, "Pierna completa", 70, []models.PlannedExercise{
			{Name: "Sentadilla trasera", Sets: 4, Reps: "6-8", RestSeconds: 120},
			{Name: "Peso muerto rumano", Sets: 3, Reps: "8-10", RestSeconds: 90},
			{Name: "Zancadas", Sets: 3, Reps: "10-12", RestSeconds: 60},
			{Name: "Elevación de gemelos", Sets: 4, Reps: "12-15", RestSeconds: 45},
		}),
		restDay(4),
		trainingDay(5, models.WorkoutStrength, "Full body y core", 60, []models.PlannedExercise{
			{Name: "Peso muerto", Sets: 3, Reps: "5-6", RestSeconds: 120},
			{Name: "Press inclinado", Sets: 3, Reps: "8-10", RestSeconds: 90},
			{Name: "Remo en polea", Sets: 3, Reps: "10-12", RestSeconds: 60},
			{Name: "Plancha", Sets: 3, Reps: "45-60 s", RestSeconds: 45},
		}),
		trainingDay(6, models.WorkoutCardio, "Cardio suave", 40, []models.PlannedExercise{
			{Name: "Carrera continua o bici", Sets: 1, Reps: "40 min", RestSeconds: 0,
				Notes: "Ritmo conversacional, zona 2"},
		}),
	}

	return models.WorkoutPlan{
		Name:                 "Rutina de gimnasio semanal",
		Description:          "Rutina empuje/tirón/pierna con un día de cardio suave.",
		Days:                 days,
		RestDays:             restDayIndices(days),
		WeeklyCaloriesBurned: 2000,
	}
}

func fallbackCrossfitWeek() models.WorkoutPlan {
	days := []models.DayWorkout{
		restDay(0),
		trainingDay(1, models.WorkoutCrossfit, "Fuerza + metcon corto", 60, []models.PlannedExercise{
			{Name: "Back squat", Sets: 5, Reps: "5", RestSeconds: 120},
			{Name: "AMRAP 10 min: 10 wall balls, 10 box jumps, 10 burpees", Sets: 1, Reps: "AMRAP", RestSeconds: 0},
		}),
		trainingDay(2, models.WorkoutCrossfit, "Gimnásticos y cardio", 60, []models.PlannedExercise{
			{Name: "Pull-ups estrictas", Sets: 4, Reps: "6-8", RestSeconds: 90, Alternatives: []string{"Ring rows"}},
			{Name: "EMOM 12 min: 15 cal remo / 12 toes-to-bar", Sets: 1, Reps: "EMOM", RestSeconds: 0},
		}),
		trainingDay(3, models.WorkoutCrossfit, "Halterofilia", 60, []models.PlannedExercise{
			{Name: "Power clean", Sets: 5, Reps: "3", RestSeconds: 120},
			{Name: "Push jerk", Sets: 4, Reps: "3", RestSeconds: 120},
			{Name: "For time: 21-15-9 thrusters y pull-ups", Sets: 1, Reps: "For time", RestSeconds: 0},
		}),
		restDay(4),
		trainingDay(5, models.WorkoutCrossfit, "WOD largo", 60, []models.PlannedExercise{
			{Name: "Chipper: 50 dobles, 40 sit-ups, 30 KB swings, 20 burpees, 10 muscle-ups", Sets: 1,
				Reps: "For time", RestSeconds: 0, Notes: "Escalar muscle-ups a pull-ups si hace falta"},
		}),
		trainingDay(6, models.WorkoutMobility, "Movilidad y técnica", 45, []models.PlannedExercise{
			{Name: "Movilidad de cadera y hombro", Sets: 1, Reps: "30 min", RestSeconds: 0},
			{Name: "Técnica de snatch con barra vacía", Sets: 4, Reps: "5", RestSeconds: 60},
		}),
	}

	return models.WorkoutPlan{
		Name:                 "Semana de box",
		Description:          "Semana tipo de CrossFit: fuerza, gimnásticos, halterofilia y un WOD largo.",
		Days:                 days,
		RestDays:             restDayIndices(days),
		WeeklyCaloriesBurned: 2500,
	}
}

func trainingDay(day int, workoutType models.WorkoutType, title string, minutes int, exercises []models.PlannedExercise) models.DayWorkout {
	return models.DayWorkout{
		Day:             day,
		DayName:         models.DayName(day),
		WorkoutType:     workoutType,
		Title:           title,
		DurationMinutes: minutes,
		Exercises:       exercises,
	}
}

func restDay(day int) models.DayWorkout {
	return models.DayWorkout{
		Day:         day,
		DayName:     models.DayName(day),
		WorkoutType: models.WorkoutRest,
		Title:       "Descanso",
		IsRestDay:   true,
		Exercises:   []models.PlannedExercise{},
	}
}

type mealTemplate struct {
	name        string
	ingredients []models.Ingredient
}

var breakfastPool = []mealTemplate{
	{"Avena con plátano y nueces", []models.Ingredient{
		{Name: "Avena", Quantity: 80, Unit: "g"},
		{Name: "Plátano", Quantity: 1, Unit: "ud"},
		{Name: "Leche", Quantity: 250, Unit: "ml"},
		{Name: "Nueces", Quantity: 20, Unit: "g"},
	}},
	{"Tostadas con huevo y aguacate", []models.Ingredient{
		{Name: "Pan integral", Quantity: 2, Unit: "rebanadas"},
		{Name: "Huevo", Quantity: 2, Unit: "ud"},
		{Name: "Aguacate", Quantity: 0.5, Unit: "ud"},
	}},
	{"Yogur con fruta y avena", []models.Ingredient{
		{Name: "Yogur natural", Quantity: 250, Unit: "g"},
		{Name: "Fresas", Quantity: 100, Unit: "g"},
		{Name: "Avena", Quantity: 40, Unit: "g"},
	}},
}

var lunchPool = []mealTemplate{
	{"Pollo a la plancha con arroz y brócoli", []models.Ingredient{
		{Name: "Pollo", Quantity: 200, Unit: "g"},
		{Name: "Arroz", Quantity: 100, Unit: "g"},
		{Name: "Brócoli", Quantity: 150, Unit: "g"},
	}},
	{"Salmón al horno con patata", []models.Ingredient{
		{Name: "Salmón", Quantity: 180, Unit: "g"},
		{Name: "Patata", Quantity: 250, Unit: "g"},
		{Name: "Espinacas", Quantity: 100, Unit: "g"},
	}},
	{"Pasta integral con ternera", []models.Ingredient{
		{Name: "Pasta integral", Quantity: 100, Unit: "g"},
		{Name: "Ternera", Quantity: 150, Unit: "g"},
		{Name: "Tomate", Quantity: 150, Unit: "g"},
	}},
}

var dinnerPool = []mealTemplate{
	{"Tortilla de huevo con ensalada", []models.Ingredient{
		{Name: "Huevo", Quantity: 3, Unit: "ud"},
		{Name: "Lechuga", Quantity: 80, Unit: "g"},
		{Name: "Tomate", Quantity: 100, Unit: "g"},
	}},
	{"Atún con quinoa y verduras", []models.Ingredient{
		{Name: "Atún", Quantity: 150, Unit: "g"},
		{Name: "Quinoa", Quantity: 80, Unit: "g"},
		{Name: "Calabacín", Quantity: 150, Unit: "g"},
	}},
	{"Pollo con batata asada", []models.Ingredient{
		{Name: "Pollo", Quantity: 180, Unit: "g"},
		{Name: "Batata", Quantity: 200, Unit: "g"},
		{Name: "Cebolla", Quantity: 50, Unit: "g"},
	}},
}

var snackTemplate = mealTemplate{"Yogur con fruta", []models.Ingredient{
	{Name: "Yogur natural", Quantity: 125, Unit: "g"},
	{Name: "Manzana", Quantity: 1, Unit: "ud"},
}}

func fallbackDietWeek(input GenerationInput) models.DietPlan {
	dailyCalories := DailyCalorieTarget(input.Goals)

	mealsPerDay := input.Profile.MealsPerDay
	if mealsPerDay < 3 {
		mealsPerDay = 3
	}
	if mealsPerDay > 5 {
		mealsPerDay = 5
	}

	days := make([]models.DayMeals, 7)
	for day := 0; day < 7; day++ {
		days[day] = models.DayMeals{
			Day:     day,
			DayName: models.DayName(day),
			Meals:   fallbackDayMeals(day, dailyCalories, mealsPerDay),
		}
	}

	return models.DietPlan{
		Name:          "Plan de comidas semanal",
		Description:   "Menú equilibrado ajustado a tu gasto calórico diario.",
		DailyCalories: dailyCalories,
		Macros:        macrosForCalories(dailyCalories),
		Days:          days,
	}
}

func fallbackDayMeals(day, dailyCalories, mealsPerDay int) []models.Meal {
	mainShare := [3]float64{0.30, 0.40, 0.30}
	snackCount := mealsPerDay - 3
	snackShare := 0.0
	if snackCount > 0 {
		// Snacks take 10% each off the main meals, proportionally.
		snackShare = 0.10
	}
	scale := 1.0 - snackShare*float64(snackCount)

	templates := []mealTemplate{
		breakfastPool[day%len(breakfastPool)],
		lunchPool[day%len(lunchPool)],
		dinnerPool[day%len(dinnerPool)],
	}
	names := [3]string{"Desayuno", "Comida", "Cena"}

	meals := make([]models.Meal, 0, mealsPerDay)
	for i, tpl := range templates {
		meals = append(meals, models.Meal{
			Name:        names[i] + ": " + tpl.name,
			Calories:    int(math.Round(float64(dailyCalories) * mainShare[i] * scale)),
			Ingredients: tpl.ingredients,
		})
	}
	for i := 0; i < snackCount; i++ {
		meals = append(meals, models.Meal{
			Name:        "Snack: " + snackTemplate.name,
			Calories:    int(math.Round(float64(dailyCalories) * snackShare)),
			Ingredients: snackTemplate.ingredients,
		})
	}
	return meals
}

func fallbackRecommendations(objective models.Objective) []string {
	recommendations := []string{
		"Bebe al menos 2 litros de agua al día.",
		"Duerme entre 7 y 9 horas para recuperarte bien.",
		"Aumenta el peso o las repeticiones de forma progresiva semana a semana.",
	}

	switch objective {
	case models.ObjectiveLoseWeight:
		recommendations = append(recommendations, "Prioriza la proteína en cada comida para mantener la masa muscular en déficit.")
	case models.ObjectiveGainMuscle:
		recommendations = append(recommendations, "Come algo de proteína y carbohidrato en las 2 horas después de entrenar.")
	case models.ObjectiveImproveEndurance:
		recommendations = append(recommendations, "Añade una sesión semanal de series a ritmo alto para mejorar tu umbral.")
	default:
		recommendations = append(recommendations, "La constancia importa más que cualquier sesión aislada: no rompas la racha.")
	}
	return recommendations
}

// FallbackRecommendation suggests today's workout without the LLM.
func FallbackRecommendation(input GenerationInput) models.WorkoutRecommendation {
	if isClassTraining(input.TrainingTypes) {
		return models.WorkoutRecommendation{
			Title:           "WOD del día: motor y piernas",
			WorkoutType:     models.WorkoutCrossfit,
			DurationMinutes: 45,
			Exercises: []models.PlannedExercise{
				{Name: "AMRAP 20 min: 400 m carrera, 15 KB swings, 10 burpees", Sets: 1, Reps: "AMRAP", RestSeconds: 0},
			},
			Reason: "Sesión de capacidad aeróbica con cargas ligeras, apta para cualquier nivel.",
		}
	}

	return models.WorkoutRecommendation{
		Title:           "Empuje: pecho y hombro",
		WorkoutType:     models.WorkoutStrength,
		DurationMinutes: 60,
		Exercises: []models.PlannedExercise{
			{Name: "Press banca", Sets: 4, Reps: "8-10", RestSeconds: 90},
			{Name: "Press militar", Sets: 3, Reps: "8-10", RestSeconds: 90},
			{Name: "Elevaciones laterales", Sets: 3, Reps: "12-15", RestSeconds: 45},
		},
		Reason: "Día de empuje clásico para mantener la frecuencia de entrenamiento.",
	}
}

// FallbackRecipe produces a canned recipe for a meal name.
func FallbackRecipe(input GenerationInput, mealName string) models.Recipe {
	calories := DailyCalorieTarget(input.Goals) * 35 / 100

	return models.Recipe{
		Name:        "Pollo a la plancha con arroz y verduras",
		Description: "Receta sencilla y alta en proteína para " + strings.ToLower(strings.TrimSpace(mealName)) + ".",
		Ingredients: []models.Ingredient{
			{Name: "Pollo", Quantity: 200, Unit: "g"},
			{Name: "Arroz", Quantity: 100, Unit: "g"},
			{Name: "Brócoli", Quantity: 150, Unit: "g"},
			{Name: "Aceite de oliva", Quantity: 10, Unit: "ml"},
		},
		Instructions: []string{
			"Cuece el arroz según las instrucciones del paquete.",
			"Saltea el brócoli con un poco de aceite de oliva.",
			"Haz el pollo a la plancha, salpimentado, 4-5 minutos por cara.",
			"Sirve todo junto con un chorrito de aceite en crudo.",
		},
		PrepMinutes: 25,
		Calories:    calories,
		Macros:      macrosForCalories(calories),
	}
}

// FallbackShoppingList aggregates the diet plan's own ingredients.
func FallbackShoppingList(dietPlan models.DietPlan) []models.ShoppingListItem {
	var ingredients []models.Ingredient
	for _, day := range dietPlan.Days {
		for _, meal := range day.Meals {
			ingredients = append(ingredients, meal.Ingredients...)
		}
	}
	return AggregateIngredients(ingredients)
}
