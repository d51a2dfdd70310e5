package models

// WODEntry is the free-form training content for a single day of a
// class-based sport (CrossFit, Hyrox, ...).
type WODEntry struct {
	Strength string `json:"strength,omitempty"`
	WOD      string `json:"wod,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// WeeklyWODs maps lowercase weekday names ("monday"...) to the day's
// entry. A day with no content has no key at all; clearing a day
// removes the key rather than leaving empty strings behind.
type WeeklyWODs map[string]WODEntry
