package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// duaQualities are the qualities offered for keyword filtering.
var duaQualities = []string{
	"Forgiveness",
	"Guidance",
	"Patience",
	"Protection",
	"Rizq",
	"Praise",
	"Remembrance",
	"Mercy",
}

// DuaRepository provides read-only access to the bundled supplications.
type DuaRepository struct {
	duas []entities.Dua
}

// NewDuaRepository loads duas from a JSON document. A missing or broken
// document is logged and results in an empty repository.
func NewDuaRepository(path string, logger *zap.Logger) *DuaRepository {
	duas, err := LoadDuas(path)
	if err != nil {
		logger.Warn("duas unavailable, continuing without them",
			zap.String("path", path),
			zap.Error(err),
		)
		return NewDuaRepositoryFrom(nil)
	}

	logger.Info("duas loaded", zap.Int("count", len(duas)))
	return NewDuaRepositoryFrom(duas)
}

// NewDuaRepositoryFrom creates a DuaRepository over the given records.
func NewDuaRepositoryFrom(duas []entities.Dua) *DuaRepository {
	out := make([]entities.Dua, len(duas))
	copy(out, duas)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return &DuaRepository{duas: out}
}

// LoadDuas reads and decodes a dua document.
func LoadDuas(path string) ([]entities.Dua, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var duas []entities.Dua
	if err = json.Unmarshal(data, &duas); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duas JSON: %w", err)
	}

	return duas, nil
}

// Len returns the number of duas.
func (r *DuaRepository) Len() int {
	return len(r.duas)
}

// All returns every dua in document order.
func (r *DuaRepository) All() []entities.Dua {
	out := make([]entities.Dua, len(r.duas))
	copy(out, r.duas)
	return out
}

// Qualities returns the qualities that can be used with FilterByKeyword.
func (r *DuaRepository) Qualities() []string {
	out := make([]string, len(duaQualities))
	copy(out, duaQualities)
	return out
}

// FilterByKeyword returns duas tagged with the quality, ignoring case.
func (r *DuaRepository) FilterByKeyword(quality string) []entities.Dua {
	quality = strings.TrimSpace(quality)
	result := make([]entities.Dua, 0)
	if quality == "" {
		return result
	}

	for _, d := range r.duas {
		if d.HasKeyword(quality) {
			result = append(result, d)
		}
	}
	return result
}

// FilterByNameSubstring returns duas whose associated names contain text,
// ignoring case. Empty text matches nothing.
func (r *DuaRepository) FilterByNameSubstring(text string) []entities.Dua {
	needle := strings.ToLower(strings.TrimSpace(text))
	result := make([]entities.Dua, 0)
	if needle == "" {
		return result
	}

	for _, d := range r.duas {
		if strings.Contains(strings.ToLower(d.NamesText(" ")), needle) {
			result = append(result, d)
		}
	}
	return result
}
