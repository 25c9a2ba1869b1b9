package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var ErrUnknownFlag = errors.New("unknown tutorial flag")

// FlagStorage keeps tutorial flags in memory. Values are lost on restart.
type FlagStorage struct {
	mu    sync.RWMutex
	flags map[int64]entities.TutorialFlags
}

// NewFlagStorage creates a new FlagStorage.
func NewFlagStorage() *FlagStorage {
	return &FlagStorage{
		flags: make(map[int64]entities.TutorialFlags),
	}
}

// GetFlags returns a copy of the user's flags.
func (s *FlagStorage) GetFlags(_ context.Context, userID int64) (entities.TutorialFlags, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(entities.TutorialFlags, len(s.flags[userID]))
	for k, v := range s.flags[userID] {
		out[k] = v
	}
	return out, nil
}

// SetFlag stores a single flag value.
func (s *FlagStorage) SetFlag(_ context.Context, userID int64, flag entities.TutorialFlag, value bool) error {
	if !flag.Valid() {
		return ErrUnknownFlag
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.userFlags(userID)[flag] = value
	return nil
}

// SetFlags stores several flag values at once. Nothing is stored if any
// flag is unknown.
func (s *FlagStorage) SetFlags(_ context.Context, userID int64, flags entities.TutorialFlags) error {
	for k := range flags {
		if !k.Valid() {
			return ErrUnknownFlag
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dst := s.userFlags(userID)
	for k, v := range flags {
		dst[k] = v
	}
	return nil
}

func (s *FlagStorage) userFlags(userID int64) entities.TutorialFlags {
	f, ok := s.flags[userID]
	if !ok {
		f = make(entities.TutorialFlags)
		s.flags[userID] = f
	}
	return f
}
