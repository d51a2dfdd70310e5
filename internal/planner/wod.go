package planner

import (
	"errors"
	"strings"

	"github.com/Aguti1902/appfitness-backend/internal/models"
)

// WODField names one of the three free-text fields of a day's WOD
// entry.
type WODField string

const (
	WODFieldStrength WODField = "strength"
	WODFieldWOD      WODField = "wod"
	WODFieldNotes    WODField = "notes"
)

var ErrInvalidWODDay = errors.New("planner: invalid wod day")
var ErrInvalidWODField = errors.New("planner: invalid wod field")

var validWODDays = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

// NormalizeWODDay lowercases and validates a weekday key.
func NormalizeWODDay(day string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(day))
	if !validWODDays[normalized] {
		return "", ErrInvalidWODDay
	}
	return normalized, nil
}

// SetWODField writes one field of one weekday's entry, creating the
// entry when the day had none. Writing an empty string keeps the key:
// only ClearWODDay removes it.
func SetWODField(wods models.WeeklyWODs, day string, field WODField, value string) error {
	key, err := NormalizeWODDay(day)
	if err != nil {
		return err
	}

	entry := wods[key]
	switch field {
	case WODFieldStrength:
		entry.Strength = value
	case WODFieldWOD:
		entry.WOD = value
	case WODFieldNotes:
		entry.Notes = value
	default:
		return ErrInvalidWODField
	}

	wods[key] = entry
	return nil
}

// ClearWODDay removes a weekday's entry entirely, so "has content" can
// be tested by key presence. Clearing a day with no entry is a no-op.
func ClearWODDay(wods models.WeeklyWODs, day string) error {
	key, err := NormalizeWODDay(day)
	if err != nil {
		return err
	}

	delete(wods, key)
	return nil
}
