package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Aguti1902/appfitness-backend/internal/localstore"
)

func newTestGoalService(t *testing.T, model *stubChatModel) *GoalService {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewGoalService(store, &stubProfileReader{profile: testProfile()}, model)
}

func TestCreateGoalBuildsMilestones(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{err: errors.New("offline")})

	goal, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title:        "Bajar a 70 kg",
		Category:     "weight",
		CurrentValue: 80,
		TargetValue:  70,
		Unit:         "kg",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if goal.ID == "" {
		t.Fatal("expected a generated id")
	}
	if goal.StartValue != 80 {
		t.Fatalf("expected start value 80, got %v", goal.StartValue)
	}
	if len(goal.Milestones) != 5 {
		t.Fatalf("expected 5 milestones, got %d", len(goal.Milestones))
	}

	want := []float64{78, 76, 74, 72, 70}
	for i, milestone := range goal.Milestones {
		if milestone.Value != want[i] {
			t.Fatalf("milestone %d: expected %v, got %v", i, want[i], milestone.Value)
		}
		if milestone.Completed {
			t.Fatalf("milestone %d should start incomplete", i)
		}
	}
	if len(goal.PlanSteps) == 0 {
		t.Fatal("expected canned plan steps when the model is offline")
	}
}

func TestCreateGoalUsesModelSteps(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{
		reply: "1. Pésate cada lunes\n2. Camina 8000 pasos\n- Entrena fuerza 3 días",
	})

	goal, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title:        "Bajar a 70 kg",
		CurrentValue: 80,
		TargetValue:  70,
		Unit:         "kg",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(goal.PlanSteps) != 3 {
		t.Fatalf("expected 3 parsed steps, got %d: %v", len(goal.PlanSteps), goal.PlanSteps)
	}
	if goal.PlanSteps[0] != "Pésate cada lunes" {
		t.Fatalf("expected list markers stripped, got %q", goal.PlanSteps[0])
	}
}

func TestCreateGoalValidation(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{})

	if _, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title: " ", CurrentValue: 80, TargetValue: 70,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}

	if _, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title: "Meta", CurrentValue: 70, TargetValue: 70,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for equal values, got %v", err)
	}
}

func TestUpdateProgressDescendingGoal(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{err: errors.New("offline")})

	created, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title: "Bajar a 70 kg", CurrentValue: 80, TargetValue: 70, Unit: "kg",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	goal, err := service.UpdateProgress(1, created.ID, 75)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	// 78, 76 reached; 74, 72, 70 not yet.
	wantDone := []bool{true, true, false, false, false}
	for i, milestone := range goal.Milestones {
		if milestone.Completed != wantDone[i] {
			t.Fatalf("milestone %d: expected completed=%v at value 75", i, wantDone[i])
		}
	}
	if goal.Completed {
		t.Fatal("goal should not be complete at 75")
	}

	goal, err = service.UpdateProgress(1, created.ID, 69.5)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if !goal.Completed {
		t.Fatal("expected goal complete below target")
	}
}

func TestUpdateProgressAscendingGoal(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{err: errors.New("offline")})

	created, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title: "Press banca 100 kg", Category: "strength",
		CurrentValue: 80, TargetValue: 100, Unit: "kg",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	goal, err := service.UpdateProgress(1, created.ID, 92)
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	// 84, 88, 92 reached; 96, 100 not yet.
	wantDone := []bool{true, true, true, false, false}
	for i, milestone := range goal.Milestones {
		if milestone.Completed != wantDone[i] {
			t.Fatalf("milestone %d: expected completed=%v at value 92", i, wantDone[i])
		}
	}
}

func TestUpdateProgressUnknownGoal(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{})

	if _, err := service.UpdateProgress(1, "nope", 5); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestDeleteGoal(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{err: errors.New("offline")})

	created, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title: "Meta", CurrentValue: 0, TargetValue: 10, Unit: "km",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := service.Delete(1, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	goals, err := service.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(goals) != 0 {
		t.Fatalf("expected no goals after delete, got %d", len(goals))
	}

	if err := service.Delete(1, created.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound on second delete, got %v", err)
	}
}

func TestGoalsPersistAcrossServiceReads(t *testing.T) {
	service := newTestGoalService(t, &stubChatModel{err: errors.New("offline")})

	if _, err := service.Create(context.Background(), 1, CreateGoalInput{
		Title: "Correr 10 km", Category: "cardio", CurrentValue: 3, TargetValue: 10, Unit: "km",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	goals, err := service.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Correr 10 km" {
		t.Fatalf("unexpected goals: %+v", goals)
	}
}
