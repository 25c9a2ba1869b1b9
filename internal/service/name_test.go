package service

import (
	"errors"
	"testing"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/repository"
)

func newTestNameService(t *testing.T, details ...entities.NameDetail) *NameService {
	t.Helper()

	names := repository.NewNameRepository()
	categories, err := repository.NewCategoryIndex(names)
	if err != nil {
		t.Fatal(err)
	}
	return NewNameService(names, categories, repository.NewDetailRepositoryFrom(details))
}

func TestParseOrdinal(t *testing.T) {
	s := newTestNameService(t)

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{" 99 ", 99, false},
		{"42", 42, false},
		{"0", 0, true},
		{"100", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := s.ParseOrdinal(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidJumpInput) {
				t.Errorf("ParseOrdinal(%q): err = %v, want ErrInvalidJumpInput", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseOrdinal(%q) = (%d, %v), want %d", tt.input, got, err, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	s := newTestNameService(t)

	tests := []struct {
		text   string
		want   int
		wantOK bool
	}{
		{"Ar Rahmaan", 1, true},
		{"ar rahman", 1, true},
		{"AL-MALIK", 3, true},
		{"al azeez", 8, true},
		{"zzzzzz", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		got, ok := s.Search(tt.text)
		if ok != tt.wantOK || got.Number != tt.want {
			t.Errorf("Search(%q) = (%d, %v), want (%d, %v)", tt.text, got.Number, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCard(t *testing.T) {
	info := "extra"
	s := newTestNameService(t, entities.NameDetail{Number: 1, Name: "Ar Rahmaan", AdditionalInfo: &info})

	card, err := s.Card(1)
	if err != nil {
		t.Fatal(err)
	}
	if card.Name.Transliteration != "Ar Rahmaan" {
		t.Errorf("name = %q", card.Name.Transliteration)
	}
	if card.Category == nil || card.Category.Name != "Mercy" {
		t.Errorf("category = %+v, want Mercy", card.Category)
	}
	if card.Detail == nil || *card.Detail.AdditionalInfo != "extra" {
		t.Errorf("detail = %+v", card.Detail)
	}

	// As Salaam belongs to no category and has no detail.
	card, err = s.Card(5)
	if err != nil {
		t.Fatal(err)
	}
	if card.Category != nil || card.Detail != nil {
		t.Errorf("card 5 = %+v, want no category and no detail", card)
	}

	if _, err := s.Card(100); !errors.Is(err, repository.ErrInvalidNumber) {
		t.Errorf("Card(100): err = %v, want ErrInvalidNumber", err)
	}
}

func TestPage(t *testing.T) {
	s := newTestNameService(t)

	tests := []struct {
		page, perPage int
		wantLen       int
		wantTotal     int
		wantFirst     int
	}{
		{0, 10, 10, 10, 1},
		{9, 10, 9, 10, 91},
		{10, 10, 0, 10, 0},
		{-1, 10, 0, 10, 0},
		{0, 0, 0, 0, 0},
		{0, 200, 99, 1, 1},
	}

	for _, tt := range tests {
		names, total := s.Page(tt.page, tt.perPage)
		if len(names) != tt.wantLen || total != tt.wantTotal {
			t.Errorf("Page(%d, %d) = (%d names, %d pages), want (%d, %d)",
				tt.page, tt.perPage, len(names), total, tt.wantLen, tt.wantTotal)
			continue
		}
		if tt.wantLen > 0 && names[0].Number != tt.wantFirst {
			t.Errorf("Page(%d, %d) starts at %d, want %d", tt.page, tt.perPage, names[0].Number, tt.wantFirst)
		}
	}
}

func TestNamesInCategory(t *testing.T) {
	s := newTestNameService(t)

	mercy := s.Categories()[0]
	names, err := s.NamesInCategory(mercy.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != len(mercy.Names) || names[0].Transliteration != "Ar Rahmaan" {
		t.Errorf("NamesInCategory(Mercy) = %v", names)
	}

	if _, err := s.NamesInCategory("missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestNameMatcher(t *testing.T) {
	m := NewNameMatcher()

	tests := []struct {
		input, name string
		want        bool
	}{
		{"al-'azeez", "Al 'Azeez", true},
		{"dhul jalaali wal ikraam", "Dhul-Jalaali wal-Ikraam", true},
		{"ar raheem", "Ar Rahmaan", false},
		{"", "Al Malik", false},
	}

	for _, tt := range tests {
		if got := m.Match(tt.input, tt.name); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v (score %.2f)", tt.input, tt.name, got, tt.want, m.Score(tt.input, tt.name))
		}
	}
}
