package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// DetailRepository holds the optional per-name detail records.
type DetailRepository struct {
	details map[int]entities.NameDetail
}

// NewDetailRepository loads the detail document. Load failures are logged
// and leave the repository empty.
func NewDetailRepository(path string, logger *zap.Logger) *DetailRepository {
	details, err := LoadDetails(path)
	if err != nil {
		logger.Warn("name details unavailable, continuing without them",
			zap.String("path", path),
			zap.Error(err),
		)
		return NewDetailRepositoryFrom(nil)
	}

	logger.Info("name details loaded", zap.Int("count", len(details)))
	return NewDetailRepositoryFrom(details)
}

// NewDetailRepositoryFrom creates a DetailRepository over the given records.
func NewDetailRepositoryFrom(details []entities.NameDetail) *DetailRepository {
	r := &DetailRepository{details: make(map[int]entities.NameDetail, len(details))}
	for _, d := range details {
		r.details[d.Number] = d
	}
	return r
}

// LoadDetails reads and decodes a detail document of the form {"names": [...]}.
func LoadDetails(path string) ([]entities.NameDetail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Names []entities.NameDetail `json:"names"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal name details JSON: %w", err)
	}

	return wrapper.Names, nil
}

// GetDetail returns the detail record for an ordinal, if one exists.
func (r *DetailRepository) GetDetail(number int) (entities.NameDetail, bool) {
	d, ok := r.details[number]
	return d, ok
}

// Len returns the number of detail records.
func (r *DetailRepository) Len() int {
	return len(r.details)
}
