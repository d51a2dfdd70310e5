package planner

import (
	"errors"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

// ErrInvalidSwap rejects a day swap whose indices are out of range,
// equal, or whose plan does not carry a full week. Callers treat it as
// a no-op, never as a crash.
var ErrInvalidSwap = errors.New("planner: invalid day swap")

// SwapDays exchanges the content of two workout days while the weekday
// labels stay put: every field of the two DayWorkout values moves
// except Day and DayName. The input plan is not modified.
func SwapDays(plan models.GeneratedPlan, i, j int) (models.GeneratedPlan, error) {
	if i == j || i < 0 || i > 6 || j < 0 || j > 6 {
		return plan, ErrInvalidSwap
	}
	if len(plan.WorkoutPlan.Days) != 7 {
		return plan, ErrInvalidSwap
	}

	days := make([]models.DayWorkout, len(plan.WorkoutPlan.Days))
	copy(days, plan.WorkoutPlan.Days)

	days[i], days[j] = days[j], days[i]
	days[i].Day, days[i].DayName = i, models.DayName(i)
	days[j].Day, days[j].DayName = j, models.DayName(j)

	plan.WorkoutPlan.Days = days
	plan.WorkoutPlan.RestDays = restDayIndices(days)
	return plan, nil
}
