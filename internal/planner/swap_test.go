package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

func weekPlan(t *testing.T) models.GeneratedPlan {
	t.Helper()
	return *FallbackPlan(GenerationInput{Goals: baseGoals()}, time.Unix(0, 0))
}

func TestSwapDaysMovesContentKeepsLabels(t *testing.T) {
	plan := weekPlan(t)
	mondayTitle := plan.WorkoutPlan.Days[1].Title
	tuesdayTitle := plan.WorkoutPlan.Days[2].Title

	swapped, err := SwapDays(plan, 1, 2)
	if err != nil {
		t.Fatalf("SwapDays: %v", err)
	}

	if swapped.WorkoutPlan.Days[1].Title != tuesdayTitle {
		t.Fatalf("expected day 1 to carry %q, got %q", tuesdayTitle, swapped.WorkoutPlan.Days[1].Title)
	}
	if swapped.WorkoutPlan.Days[2].Title != mondayTitle {
		t.Fatalf("expected day 2 to carry %q, got %q", mondayTitle, swapped.WorkoutPlan.Days[2].Title)
	}
	for i, day := range swapped.WorkoutPlan.Days {
		if day.Day != i || day.DayName != models.DayName(i) {
			t.Fatalf("day %d has index %d name %q after swap", i, day.Day, day.DayName)
		}
	}
}

func TestSwapDaysTwiceRestoresPlan(t *testing.T) {
	plan := weekPlan(t)

	once, err := SwapDays(plan, 0, 5)
	if err != nil {
		t.Fatalf("first swap: %v", err)
	}
	twice, err := SwapDays(once, 0, 5)
	if err != nil {
		t.Fatalf("second swap: %v", err)
	}

	if diff := cmp.Diff(plan, twice); diff != "" {
		t.Fatalf("double swap changed the plan (-want +got):\n%s", diff)
	}
}

func TestSwapDaysRecomputesRestDays(t *testing.T) {
	plan := weekPlan(t)

	swapped, err := SwapDays(plan, 0, 1)
	if err != nil {
		t.Fatalf("SwapDays: %v", err)
	}

	for _, rest := range swapped.WorkoutPlan.RestDays {
		if !swapped.WorkoutPlan.Days[rest].IsRestDay {
			t.Fatalf("rest day index %d points at a training day", rest)
		}
	}
	if len(swapped.WorkoutPlan.RestDays) != len(plan.WorkoutPlan.RestDays) {
		t.Fatalf("rest day count changed from %d to %d",
			len(plan.WorkoutPlan.RestDays), len(swapped.WorkoutPlan.RestDays))
	}
}

func TestSwapDaysRejectsInvalidIndices(t *testing.T) {
	plan := weekPlan(t)

	cases := [][2]int{{3, 3}, {-1, 2}, {2, 7}, {9, -4}}
	for _, c := range cases {
		got, err := SwapDays(plan, c[0], c[1])
		if !errors.Is(err, ErrInvalidSwap) {
			t.Fatalf("swap(%d,%d): expected ErrInvalidSwap, got %v", c[0], c[1], err)
		}
		if diff := cmp.Diff(plan, got); diff != "" {
			t.Fatalf("swap(%d,%d) modified the plan (-want +got):\n%s", c[0], c[1], diff)
		}
	}
}

func TestSwapDaysDoesNotModifyInput(t *testing.T) {
	plan := weekPlan(t)
	original := weekPlan(t)

	if _, err := SwapDays(plan, 1, 2); err != nil {
		t.Fatalf("SwapDays: %v", err)
	}
	if diff := cmp.Diff(original, plan); diff != "" {
		t.Fatalf("input plan was modified (-want +got):\n%s", diff)
	}
}
