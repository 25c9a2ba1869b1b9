package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/infra/postgres"
)

var ErrUnknownFlag = errors.New("unknown tutorial flag")

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx postgres.DBTX) error) error
}

// TutorialRepository persists tutorial flags in the tutorial_flags table.
type TutorialRepository struct {
	db postgres.DBTX
	tx TxRunner
}

// NewTutorialRepository creates a new TutorialRepository.
func NewTutorialRepository(db postgres.DBTX, tx TxRunner) *TutorialRepository {
	return &TutorialRepository{db: db, tx: tx}
}

const upsertFlagQuery = `
	INSERT INTO tutorial_flags (user_id, flag, value, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (user_id, flag) DO UPDATE
	SET value = EXCLUDED.value,
	    updated_at = NOW()
`

// GetFlags returns all known flags stored for a user. Unknown rows are ignored.
func (r *TutorialRepository) GetFlags(ctx context.Context, userID int64) (entities.TutorialFlags, error) {
	query := `
		SELECT flag, value
		FROM tutorial_flags
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get tutorial flags: %w", err)
	}
	defer rows.Close()

	flags := make(entities.TutorialFlags)
	for rows.Next() {
		var (
			flag  string
			value bool
		)
		if err := rows.Scan(&flag, &value); err != nil {
			return nil, fmt.Errorf("scan tutorial flag: %w", err)
		}
		if f := entities.TutorialFlag(flag); f.Valid() {
			flags[f] = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tutorial flags: %w", err)
	}

	return flags, nil
}

// SetFlag upserts a single flag.
func (r *TutorialRepository) SetFlag(ctx context.Context, userID int64, flag entities.TutorialFlag, value bool) error {
	if !flag.Valid() {
		return ErrUnknownFlag
	}

	if _, err := r.db.Exec(ctx, upsertFlagQuery, userID, string(flag), value); err != nil {
		return fmt.Errorf("set tutorial flag: %w", err)
	}
	return nil
}

// SetFlags upserts several flags in one transaction.
func (r *TutorialRepository) SetFlags(ctx context.Context, userID int64, flags entities.TutorialFlags) error {
	for f := range flags {
		if !f.Valid() {
			return ErrUnknownFlag
		}
	}

	return r.tx.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		for f, v := range flags {
			if _, err := tx.Exec(ctx, upsertFlagQuery, userID, string(f), v); err != nil {
				return fmt.Errorf("set tutorial flag %s: %w", f, err)
			}
		}
		return nil
	})
}
