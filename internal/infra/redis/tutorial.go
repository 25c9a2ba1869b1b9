package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var ErrUnknownFlag = errors.New("unknown tutorial flag")

// TutorialStore keeps tutorial flags in one redis hash per user.
type TutorialStore struct {
	rdb    goredis.Cmdable
	prefix string
}

// NewTutorialStore creates a TutorialStore. Keys look like "<prefix>:<user id>".
func NewTutorialStore(rdb goredis.Cmdable, prefix string) *TutorialStore {
	if prefix == "" {
		prefix = "tutorial"
	}
	return &TutorialStore{rdb: rdb, prefix: prefix}
}

func (s *TutorialStore) key(userID int64) string {
	return s.prefix + ":" + strconv.FormatInt(userID, 10)
}

// GetFlags returns all known flags stored for a user.
func (s *TutorialStore) GetFlags(ctx context.Context, userID int64) (entities.TutorialFlags, error) {
	raw, err := s.rdb.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get tutorial flags: %w", err)
	}

	flags := make(entities.TutorialFlags, len(raw))
	for k, v := range raw {
		f := entities.TutorialFlag(k)
		if !f.Valid() {
			continue
		}
		value, err := strconv.ParseBool(v)
		if err != nil {
			continue
		}
		flags[f] = value
	}

	return flags, nil
}

// SetFlag stores a single flag.
func (s *TutorialStore) SetFlag(ctx context.Context, userID int64, flag entities.TutorialFlag, value bool) error {
	if !flag.Valid() {
		return ErrUnknownFlag
	}

	if err := s.rdb.HSet(ctx, s.key(userID), string(flag), strconv.FormatBool(value)).Err(); err != nil {
		return fmt.Errorf("set tutorial flag: %w", err)
	}
	return nil
}

// SetFlags stores several flags with a single HSET.
func (s *TutorialStore) SetFlags(ctx context.Context, userID int64, flags entities.TutorialFlags) error {
	if len(flags) == 0 {
		return nil
	}

	values := make([]any, 0, len(flags)*2)
	for f, v := range flags {
		if !f.Valid() {
			return ErrUnknownFlag
		}
		values = append(values, string(f), strconv.FormatBool(v))
	}

	if err := s.rdb.HSet(ctx, s.key(userID), values...).Err(); err != nil {
		return fmt.Errorf("set tutorial flags: %w", err)
	}
	return nil
}
