package planner

import (
	"errors"
	"testing"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

func TestSetWODFieldCreatesEntry(t *testing.T) {
	wods := models.WeeklyWODs{}

	if err := SetWODField(wods, "Monday", WODFieldStrength, "5x5 back squat"); err != nil {
		t.Fatalf("SetWODField: %v", err)
	}
	if err := SetWODField(wods, "monday", WODFieldWOD, "Fran"); err != nil {
		t.Fatalf("SetWODField: %v", err)
	}

	entry, ok := wods["monday"]
	if !ok {
		t.Fatal("expected monday entry to exist")
	}
	if entry.Strength != "5x5 back squat" || entry.WOD != "Fran" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestSetWODFieldEmptyValueKeepsKey(t *testing.T) {
	wods := models.WeeklyWODs{}

	if err := SetWODField(wods, "tuesday", WODFieldNotes, ""); err != nil {
		t.Fatalf("SetWODField: %v", err)
	}
	if _, ok := wods["tuesday"]; !ok {
		t.Fatal("expected empty write to keep the day key")
	}
}

func TestSetWODFieldRejectsBadInput(t *testing.T) {
	wods := models.WeeklyWODs{}

	if err := SetWODField(wods, "lunes", WODFieldWOD, "x"); !errors.Is(err, ErrInvalidWODDay) {
		t.Fatalf("expected ErrInvalidWODDay, got %v", err)
	}
	if err := SetWODField(wods, "monday", "warmup", "x"); !errors.Is(err, ErrInvalidWODField) {
		t.Fatalf("expected ErrInvalidWODField, got %v", err)
	}
	if len(wods) != 0 {
		t.Fatalf("rejected writes must not create entries, got %v", wods)
	}
}

func TestClearWODDayRemovesKey(t *testing.T) {
	wods := models.WeeklyWODs{"friday": {WOD: "Murph"}}

	if err := ClearWODDay(wods, "FRIDAY"); err != nil {
		t.Fatalf("ClearWODDay: %v", err)
	}
	if _, ok := wods["friday"]; ok {
		t.Fatal("expected friday key to be removed")
	}

	// Clearing an absent day is a no-op.
	if err := ClearWODDay(wods, "friday"); err != nil {
		t.Fatalf("ClearWODDay on empty day: %v", err)
	}
}
