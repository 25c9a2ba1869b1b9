package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("quiz session not found")

// QuizState is a snapshot of a chat's quiz session.
type QuizState struct {
	Question   entities.Question // current question, zero value once completed
	Index      int               // zero-based index of the current question
	Total      int
	Score      int
	Completed  bool
	Percentage int
	Passed     bool
}

func snapshot(s *entities.QuizSession) QuizState {
	st := QuizState{
		Index:      s.CurrentIndex,
		Total:      s.Total(),
		Score:      s.Score,
		Completed:  s.IsCompleted(),
		Percentage: s.Percentage(),
		Passed:     s.Passed(),
	}
	if q, err := s.Current(); err == nil {
		st.Question = *q
		st.Question.Options = append([]string(nil), q.Options...)
		if q.SelectedIndex != nil {
			sel := *q.SelectedIndex
			st.Question.SelectedIndex = &sel
		}
	}
	return st
}

// QuizService runs one quiz session per chat.
type QuizService struct {
	generator     QuestionGenerator
	storage       QuizStorage
	questionCount int
	logger        *zap.Logger
}

func NewQuizService(generator QuestionGenerator, storage QuizStorage, questionCount int, logger *zap.Logger) *QuizService {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	return &QuizService{
		generator:     generator,
		storage:       storage,
		questionCount: questionCount,
		logger:        logger,
	}
}

// Start replaces the chat's session with a freshly generated one.
func (s *QuizService) Start(chatID int64) QuizState {
	questions := s.generator.Generate(s.questionCount)
	if len(questions) < s.questionCount {
		s.logger.Warn("quiz batch shorter than requested",
			zap.Int64("chat_id", chatID),
			zap.Int("requested", s.questionCount),
			zap.Int("generated", len(questions)),
		)
	}

	session := entities.NewQuizSession(questions)
	s.storage.Store(chatID, session)

	s.logger.Debug("quiz started",
		zap.Int64("chat_id", chatID),
		zap.Int("questions", session.Total()),
	)

	return snapshot(session)
}

// Restart requests a new batch and resets the score ("try again").
func (s *QuizService) Restart(chatID int64) QuizState {
	return s.Start(chatID)
}

// State returns the chat's current session state.
func (s *QuizService) State(chatID int64) (QuizState, error) {
	var st QuizState
	found, err := s.storage.Update(chatID, func(session *entities.QuizSession) error {
		st = snapshot(session)
		return nil
	})
	if err != nil {
		return QuizState{}, err
	}
	if !found {
		return QuizState{}, ErrSessionNotFound
	}
	return st, nil
}

// Select records the answer for the current question. Selecting again
// before Advance replaces the earlier choice.
func (s *QuizService) Select(chatID int64, index int) (QuizState, error) {
	var st QuizState
	found, err := s.storage.Update(chatID, func(session *entities.QuizSession) error {
		if err := session.SelectAnswer(index); err != nil {
			return err
		}
		st = snapshot(session)
		return nil
	})
	if err != nil {
		return QuizState{}, err
	}
	if !found {
		return QuizState{}, ErrSessionNotFound
	}
	return st, nil
}

// Advance scores the current answer and moves on. It returns the state
// after the move, the question that was just answered and whether it was correct.
func (s *QuizService) Advance(chatID int64) (QuizState, entities.Question, bool, error) {
	var (
		st       QuizState
		answered entities.Question
		correct  bool
	)
	found, err := s.storage.Update(chatID, func(session *entities.QuizSession) error {
		answered = snapshot(session).Question

		var err error
		correct, err = session.Advance()
		if err != nil {
			return err
		}
		st = snapshot(session)
		return nil
	})
	if err != nil {
		return QuizState{}, entities.Question{}, false, err
	}
	if !found {
		return QuizState{}, entities.Question{}, false, ErrSessionNotFound
	}

	if st.Completed {
		s.logger.Info("quiz completed",
			zap.Int64("chat_id", chatID),
			zap.Int("score", st.Score),
			zap.Int("total", st.Total),
		)
	}

	return st, answered, correct, nil
}

// Finish discards the chat's session.
func (s *QuizService) Finish(chatID int64) {
	s.storage.Delete(chatID)
}
