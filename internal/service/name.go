package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var (
	ErrInvalidJumpInput = errors.New("invalid jump input")
	ErrCategoryNotFound = errors.New("category not found")
)

// NameCard is everything shown for a single name: the name itself,
// its first category and the optional detail record.
type NameCard struct {
	Name     entities.Name
	Category *entities.Category
	Detail   *entities.NameDetail
}

type NameService struct {
	names      NameRepository
	categories CategoryRepository
	details    DetailRepository
	matcher    *NameMatcher
}

func NewNameService(names NameRepository, categories CategoryRepository, details DetailRepository) *NameService {
	return &NameService{
		names:      names,
		categories: categories,
		details:    details,
		matcher:    NewNameMatcher(),
	}
}

func (s *NameService) GetByNumber(number int) (entities.Name, error) {
	return s.names.GetByNumber(number)
}

func (s *NameService) GetRandom() (entities.Name, error) {
	return s.names.GetRandom()
}

func (s *NameService) GetAll() []entities.Name {
	return s.names.GetAll()
}

func (s *NameService) Count() int {
	return s.names.Len()
}

// ParseOrdinal validates "jump to" input and returns the ordinal.
func (s *NameService) ParseOrdinal(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > s.names.Len() {
		return 0, ErrInvalidJumpInput
	}
	return n, nil
}

// Card assembles the flashcard for an ordinal.
func (s *NameService) Card(number int) (NameCard, error) {
	name, err := s.names.GetByNumber(number)
	if err != nil {
		return NameCard{}, err
	}

	card := NameCard{Name: name}
	if cat, ok := s.categories.CategoryFor(name.Transliteration); ok {
		card.Category = &cat
	}
	if d, ok := s.details.GetDetail(number); ok {
		card.Detail = &d
	}

	return card, nil
}

// Page returns one page of the canonical list and the total number of pages.
func (s *NameService) Page(page, perPage int) ([]entities.Name, int) {
	all := s.names.GetAll()
	if perPage <= 0 || len(all) == 0 {
		return nil, 0
	}

	totalPages := (len(all) + perPage - 1) / perPage
	if page < 0 || page >= totalPages {
		return nil, totalPages
	}

	start := page * perPage
	end := min(start+perPage, len(all))
	return all[start:end], totalPages
}

// Search finds the name whose transliteration best matches text.
func (s *NameService) Search(text string) (entities.Name, bool) {
	if strings.TrimSpace(text) == "" {
		return entities.Name{}, false
	}

	var (
		best      entities.Name
		bestScore float64
	)
	for _, n := range s.names.GetAll() {
		score := s.matcher.Score(text, n.Transliteration)
		if score > bestScore {
			best, bestScore = n, score
		}
	}

	if bestScore < s.matcher.threshold {
		return entities.Name{}, false
	}
	return best, true
}

// Categories returns all categories in declared order.
func (s *NameService) Categories() []entities.Category {
	return s.categories.All()
}

// NamesInCategory resolves a category's members to registry entries.
func (s *NameService) NamesInCategory(id string) ([]entities.Name, error) {
	if _, ok := s.categories.ByID(id); !ok {
		return nil, fmt.Errorf("category %s: %w", id, ErrCategoryNotFound)
	}

	indices := s.categories.IndicesIn(id)
	out := make([]entities.Name, 0, len(indices))
	for _, i := range indices {
		n, err := s.names.At(i)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
