// Package entities contains domain entities used across the application.
package entities

// DefaultMeaning is returned when a name has no recorded meaning.
const DefaultMeaning = "Divine Name"

// Name represents one of the 99 names of Allah.
type Name struct {
	Number          int    `json:"number"`          // canonical ordinal (from 1 to 99)
	Transliteration string `json:"transliteration"` // English transcription, e.g. "Ar Rahmaan"
	Meaning         string `json:"meaning"`         // short English meaning
}

// NameDetail is the richer per-name record shown on the detail view.
type NameDetail struct {
	Number         int     `json:"number"`
	Name           string  `json:"name"`
	Meaning        string  `json:"meaning"`
	Appearances    string  `json:"appearances"`
	ArabicText     string  `json:"arabicText"`
	Translation    string  `json:"translation"`
	QuranReference string  `json:"quranReference"`
	Description    string  `json:"description"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
}
