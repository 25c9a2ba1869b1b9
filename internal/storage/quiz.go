package storage

import (
	"sync"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// QuizStorage provides in-memory storage for quiz sessions by chat ID.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *QuizStorage) Store(chatID int64, session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a chat.
func (s *QuizStorage) Get(chatID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Update runs fn on the chat's session while holding the write lock.
// It reports false when the chat has no session.
func (s *QuizStorage) Update(chatID int64, fn func(*entities.QuizSession) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[chatID]
	if !ok {
		return false, nil
	}
	return true, fn(session)
}

// Delete removes the session for a chat.
func (s *QuizStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
