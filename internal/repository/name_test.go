package repository

import (
	"errors"
	"testing"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

func TestNameRepositoryCanonicalTable(t *testing.T) {
	r := NewNameRepository()

	if r.Len() != 99 {
		t.Fatalf("Len = %d, want 99", r.Len())
	}

	seen := make(map[string]bool, r.Len())
	for i, n := range r.GetAll() {
		if n.Number != i+1 {
			t.Errorf("position %d has ordinal %d", i, n.Number)
		}
		if seen[n.Transliteration] {
			t.Errorf("duplicate transliteration %q", n.Transliteration)
		}
		seen[n.Transliteration] = true
		if n.Meaning == "" {
			t.Errorf("%q has no meaning", n.Transliteration)
		}
	}
}

func TestNameRepositoryGetByNumber(t *testing.T) {
	r := NewNameRepository()

	tests := []struct {
		number  int
		want    string
		wantErr error
	}{
		{1, "Ar Rahmaan", nil},
		{99, "As Saboor", nil},
		{0, "", ErrInvalidNumber},
		{100, "", ErrInvalidNumber},
		{-5, "", ErrInvalidNumber},
	}

	for _, tt := range tests {
		got, err := r.GetByNumber(tt.number)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("GetByNumber(%d): err = %v, want %v", tt.number, err, tt.wantErr)
			continue
		}
		if got.Transliteration != tt.want {
			t.Errorf("GetByNumber(%d) = %q, want %q", tt.number, got.Transliteration, tt.want)
		}
	}
}

func TestNameRepositoryMissingOrdinal(t *testing.T) {
	r := NewNameRepositoryFrom([]entities.Name{
		{Number: 1, Transliteration: "A", Meaning: "a"},
		{Number: 3, Transliteration: "C", Meaning: "c"},
	})

	if _, err := r.GetByNumber(2); !errors.Is(err, ErrNameNotFound) {
		t.Errorf("err = %v, want ErrNameNotFound", err)
	}
	if _, err := r.GetByNumbers([]int{1, 2}); !errors.Is(err, ErrNameNotFound) {
		t.Errorf("GetByNumbers err = %v, want ErrNameNotFound", err)
	}
}

func TestNameRepositoryGetMeaning(t *testing.T) {
	r := NewNameRepositoryFrom([]entities.Name{
		{Number: 1, Transliteration: "Ar Rahmaan", Meaning: "The Most Compassionate"},
		{Number: 2, Transliteration: "Unknown"},
	})

	if got := r.GetMeaning("Ar Rahmaan"); got != "The Most Compassionate" {
		t.Errorf("GetMeaning = %q", got)
	}
	if got := r.GetMeaning("Unknown"); got != entities.DefaultMeaning {
		t.Errorf("GetMeaning without meaning = %q, want %q", got, entities.DefaultMeaning)
	}
	if got := r.GetMeaning("Nope"); got != entities.DefaultMeaning {
		t.Errorf("GetMeaning of missing name = %q, want %q", got, entities.DefaultMeaning)
	}
}

func TestNameRepositoryGetAllIsACopy(t *testing.T) {
	r := NewNameRepository()

	all := r.GetAll()
	all[0].Transliteration = "changed"

	if n, _ := r.GetByNumber(1); n.Transliteration != "Ar Rahmaan" {
		t.Error("mutating GetAll result changed the registry")
	}
}

func TestNameRepositoryIndexOfAndAt(t *testing.T) {
	r := NewNameRepository()

	i, ok := r.IndexOf("Al Malik")
	if !ok || i != 2 {
		t.Fatalf("IndexOf(Al Malik) = (%d, %v), want (2, true)", i, ok)
	}
	if _, ok := r.IndexOf("al malik"); ok {
		t.Error("IndexOf must match exactly")
	}

	n, err := r.At(i)
	if err != nil || n.Transliteration != "Al Malik" {
		t.Errorf("At(%d) = (%v, %v)", i, n, err)
	}
	if _, err := r.At(99); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("At(99): err = %v, want ErrInvalidNumber", err)
	}
}

func TestNameRepositoryGetRandom(t *testing.T) {
	if _, err := NewNameRepositoryFrom(nil).GetRandom(); !errors.Is(err, ErrNameNotFound) {
		t.Errorf("empty registry: err = %v, want ErrNameNotFound", err)
	}

	r := NewNameRepository()
	for range 20 {
		n, err := r.GetRandom()
		if err != nil {
			t.Fatal(err)
		}
		if n.Number < 1 || n.Number > 99 {
			t.Fatalf("random ordinal %d out of range", n.Number)
		}
	}
}
