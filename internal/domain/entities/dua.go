package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrDuaWithoutNames = errors.New("dua has no associated names")

// Dua is a supplication associated with one or more names.
type Dua struct {
	ID          string   `json:"-"`           // assigned at load time
	Names       []string `json:"name"`        // associated names, never empty
	Arabic      string   `json:"dua_arabic"`  // Arabic text
	Translation string   `json:"translation"` // English translation
	Source      string   `json:"source"`      // hadith or Quran reference
	Keywords    []string `json:"keywords,omitempty"`
	UsageNote   *string  `json:"application,omitempty"`
}

// NamesText returns the associated names joined with the given separator.
func (d Dua) NamesText(sep string) string {
	return strings.Join(d.Names, sep)
}

// HasKeyword reports whether the dua is tagged with the keyword, ignoring case.
func (d Dua) HasKeyword(keyword string) bool {
	for _, k := range d.Keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts "name" either as a single string or as an array of strings.
func (d *Dua) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        json.RawMessage `json:"name"`
		Arabic      string          `json:"dua_arabic"`
		Translation string          `json:"translation"`
		Source      string          `json:"source"`
		Keywords    []string        `json:"keywords"`
		Application *string         `json:"application"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	names, err := decodeNames(raw.Name)
	if err != nil {
		return err
	}

	d.Names = names
	d.Arabic = raw.Arabic
	d.Translation = raw.Translation
	d.Source = raw.Source
	d.Keywords = raw.Keywords
	d.UsageNote = raw.Application

	return nil
}

func decodeNames(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrDuaWithoutNames
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single == "" {
			return nil, ErrDuaWithoutNames
		}
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("decode dua names: %w", err)
	}
	if len(many) == 0 {
		return nil, ErrDuaWithoutNames
	}

	return many, nil
}
