package entities

import (
	"errors"
	"time"
)

var (
	ErrNoSelection      = errors.New("no answer selected for the current question")
	ErrInvalidOption    = errors.New("option index out of range")
	ErrSessionCompleted = errors.New("quiz session is completed")
)

// QuizStatus is the state of a quiz session.
type QuizStatus string

const (
	QuizStatusInProgress QuizStatus = "in_progress"
	QuizStatusCompleted  QuizStatus = "completed"
)

// QuizSession tracks progress through a generated question set.
// It moves from InProgress(0) through InProgress(n-1) to Completed.
type QuizSession struct {
	Questions    []Question
	CurrentIndex int        // index of the question being answered
	Score        int        // number of correct answers so far
	Status       QuizStatus // in_progress or completed
	StartedAt    time.Time
	CompletedAt  *time.Time
}

// NewQuizSession creates a session positioned at the first question.
// A session without questions starts completed.
func NewQuizSession(questions []Question) *QuizSession {
	s := &QuizSession{
		Questions: questions,
		Status:    QuizStatusInProgress,
		StartedAt: time.Now(),
	}
	if len(questions) == 0 {
		s.complete()
	}
	return s
}

// Total returns the number of questions in the session.
func (s *QuizSession) Total() int {
	return len(s.Questions)
}

// IsCompleted reports whether the session reached its terminal state.
func (s *QuizSession) IsCompleted() bool {
	return s.Status == QuizStatusCompleted
}

// Current returns the question being answered.
func (s *QuizSession) Current() (*Question, error) {
	if s.IsCompleted() {
		return nil, ErrSessionCompleted
	}
	return &s.Questions[s.CurrentIndex], nil
}

// SelectAnswer records the selection for the current question.
// Selecting again before Advance overwrites the previous choice.
func (s *QuizSession) SelectAnswer(index int) error {
	q, err := s.Current()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(q.Options) {
		return ErrInvalidOption
	}

	q.SelectedIndex = &index
	return nil
}

// Advance scores the current question and moves to the next one,
// completing the session after the last question. It returns whether
// the answered question was correct. Without a selection nothing changes
// and ErrNoSelection is returned.
func (s *QuizSession) Advance() (bool, error) {
	q, err := s.Current()
	if err != nil {
		return false, err
	}
	if !q.IsAnswered() {
		return false, ErrNoSelection
	}

	correct := q.IsCorrect()
	if correct {
		s.Score++
	}

	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	} else {
		s.complete()
	}

	return correct, nil
}

// Percentage returns the score as a whole percentage of the total.
func (s *QuizSession) Percentage() int {
	if len(s.Questions) == 0 {
		return 0
	}
	return s.Score * 100 / len(s.Questions)
}

// Passed reports whether more than half of the answers were correct.
func (s *QuizSession) Passed() bool {
	return s.Score > len(s.Questions)/2
}

func (s *QuizSession) complete() {
	s.Status = QuizStatusCompleted
	now := time.Now()
	s.CompletedAt = &now
}
