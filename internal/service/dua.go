package service

import (
	"strings"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// DuaQuery selects duas either by quality or by name text, never both.
type DuaQuery struct {
	Quality string
	Text    string
}

// WithQuality returns a query for the quality; any text is cleared.
func (q DuaQuery) WithQuality(quality string) DuaQuery {
	return DuaQuery{Quality: quality}
}

// WithText returns a query for the name text; any quality is cleared.
func (q DuaQuery) WithText(text string) DuaQuery {
	return DuaQuery{Text: text}
}

type DuaService struct {
	repository DuaRepository
}

func NewDuaService(repository DuaRepository) *DuaService {
	return &DuaService{repository: repository}
}

// Search runs the query. An empty query yields no duas.
func (s *DuaService) Search(q DuaQuery) []entities.Dua {
	switch {
	case strings.TrimSpace(q.Quality) != "":
		return s.repository.FilterByKeyword(q.Quality)
	case strings.TrimSpace(q.Text) != "":
		return s.repository.FilterByNameSubstring(q.Text)
	default:
		return []entities.Dua{}
	}
}

func (s *DuaService) Qualities() []string {
	return s.repository.Qualities()
}
