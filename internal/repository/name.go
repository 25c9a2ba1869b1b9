package repository

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var (
	ErrNameNotFound  = errors.New("name not found")
	ErrInvalidNumber = errors.New("invalid name number")
)

// NameRepository provides access to the 99 Names of Allah.
// The registry is populated once and never mutated afterwards.
type NameRepository struct {
	names    []entities.Name
	byName   map[string]int // transliteration -> zero-based position
	meanings map[string]string
}

// NewNameRepository creates a NameRepository backed by the compiled-in table.
func NewNameRepository() *NameRepository {
	return NewNameRepositoryFrom(canonicalNames)
}

// NewNameRepositoryFrom creates a NameRepository from an arbitrary table.
// The table order is taken as the canonical order.
func NewNameRepositoryFrom(names []entities.Name) *NameRepository {
	r := &NameRepository{
		names:    make([]entities.Name, len(names)),
		byName:   make(map[string]int, len(names)),
		meanings: make(map[string]string, len(names)),
	}
	copy(r.names, names)

	for i, n := range r.names {
		if _, dup := r.byName[n.Transliteration]; !dup {
			r.byName[n.Transliteration] = i
		}
		if n.Meaning != "" {
			r.meanings[n.Transliteration] = n.Meaning
		}
	}

	return r
}

// Len returns the number of names in the registry.
func (r *NameRepository) Len() int {
	return len(r.names)
}

// GetByNumber retrieves a name by its ordinal (1..Len).
func (r *NameRepository) GetByNumber(number int) (entities.Name, error) {
	if number < 1 || number > len(r.names) {
		return entities.Name{}, ErrInvalidNumber
	}

	for _, name := range r.names {
		if name.Number == number {
			return name, nil
		}
	}

	return entities.Name{}, ErrNameNotFound
}

// GetByNumbers retrieves multiple names by their ordinals.
func (r *NameRepository) GetByNumbers(numbers []int) ([]entities.Name, error) {
	result := make([]entities.Name, 0, len(numbers))

	for _, num := range numbers {
		name, err := r.GetByNumber(num)
		if err != nil {
			return nil, fmt.Errorf("get name %d: %w", num, err)
		}
		result = append(result, name)
	}

	return result, nil
}

// GetMeaning returns the meaning of a name, or entities.DefaultMeaning
// when none is recorded.
func (r *NameRepository) GetMeaning(name string) string {
	if m, ok := r.meanings[name]; ok {
		return m
	}
	return entities.DefaultMeaning
}

// GetRandom retrieves a random name.
func (r *NameRepository) GetRandom() (entities.Name, error) {
	if len(r.names) == 0 {
		return entities.Name{}, ErrNameNotFound
	}

	idx := rand.Intn(len(r.names))
	return r.names[idx], nil
}

// GetAll retrieves all names in canonical order.
func (r *NameRepository) GetAll() []entities.Name {
	out := make([]entities.Name, len(r.names))
	copy(out, r.names)
	return out
}

// IndexOf returns the zero-based canonical position of a name by exact match.
func (r *NameRepository) IndexOf(name string) (int, bool) {
	idx, ok := r.byName[name]
	return idx, ok
}

// At returns the name at a zero-based canonical position.
func (r *NameRepository) At(index int) (entities.Name, error) {
	if index < 0 || index >= len(r.names) {
		return entities.Name{}, ErrInvalidNumber
	}
	return r.names[index], nil
}
