package entities

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestDuaUnmarshalNames(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "single string",
			input: `{"name": "Al Haadi", "dua_arabic": "x", "translation": "t", "source": "s"}`,
			want:  []string{"Al Haadi"},
		},
		{
			name:  "array",
			input: `{"name": ["Ar Rahmaan", "Ar Raheem"], "dua_arabic": "x", "translation": "t", "source": "s"}`,
			want:  []string{"Ar Rahmaan", "Ar Raheem"},
		},
		{
			name:    "missing",
			input:   `{"dua_arabic": "x"}`,
			wantErr: ErrDuaWithoutNames,
		},
		{
			name:    "empty array",
			input:   `{"name": []}`,
			wantErr: ErrDuaWithoutNames,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dua
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(d.Names, tt.want) {
				t.Errorf("Names = %v, want %v", d.Names, tt.want)
			}
		})
	}
}

func TestDuaOptionalFields(t *testing.T) {
	var d Dua
	input := `{"name": "As Saboor", "dua_arabic": "a", "translation": "t", "source": "s",
		"keywords": ["Patience"], "application": "In hardship."}`
	if err := json.Unmarshal([]byte(input), &d); err != nil {
		t.Fatal(err)
	}

	if d.UsageNote == nil || *d.UsageNote != "In hardship." {
		t.Errorf("UsageNote = %v", d.UsageNote)
	}
	if !d.HasKeyword("patience") {
		t.Error("HasKeyword should ignore case")
	}
	if d.HasKeyword("Patient") {
		t.Error("HasKeyword should not match partial words")
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{Color{0, 0, 0}, "#000000"},
		{Color{1, 1, 1}, "#ffffff"},
		{Color{1, 0.5, 0}, "#ff8000"},
		{Color{2, -1, 0}, "#ff0000"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %s, want %s", tt.c, got, tt.want)
		}
	}
}
