package entities

import (
	"errors"
	"testing"
)

func makeQuestions(correct ...int) []Question {
	qs := make([]Question, 0, len(correct))
	for i, c := range correct {
		qs = append(qs, Question{
			Kind:         QuestionKindMeaning,
			NameNumber:   i + 1,
			Prompt:       "prompt",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: c,
		})
	}
	return qs
}

func TestQuizSessionScoresAndCompletes(t *testing.T) {
	s := NewQuizSession(makeQuestions(0, 1, 2))

	answers := []struct {
		selected int
		want     bool
	}{
		{0, true},
		{3, false},
		{2, true},
	}

	for i, a := range answers {
		if s.CurrentIndex != i {
			t.Fatalf("CurrentIndex = %d, want %d", s.CurrentIndex, i)
		}
		if err := s.SelectAnswer(a.selected); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", a.selected, err)
		}
		got, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		if got != a.want {
			t.Errorf("question %d correct = %v, want %v", i, got, a.want)
		}
	}

	if !s.IsCompleted() {
		t.Fatal("session not completed after last question")
	}
	if s.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if s.Score != 2 {
		t.Errorf("Score = %d, want 2", s.Score)
	}
	if got := s.Percentage(); got != 66 {
		t.Errorf("Percentage = %d, want 66", got)
	}
	if !s.Passed() {
		t.Error("Passed = false, want true for 2 of 3")
	}
	if _, err := s.Current(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Current after completion: err = %v, want ErrSessionCompleted", err)
	}
}

func TestQuizSessionSelectionOverwrites(t *testing.T) {
	s := NewQuizSession(makeQuestions(2))

	if err := s.SelectAnswer(0); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectAnswer(2); err != nil {
		t.Fatal(err)
	}

	correct, err := s.Advance()
	if err != nil {
		t.Fatal(err)
	}
	if !correct || s.Score != 1 {
		t.Errorf("correct = %v, score = %d; want the last selection to count", correct, s.Score)
	}
}

func TestQuizSessionAdvanceWithoutSelection(t *testing.T) {
	s := NewQuizSession(makeQuestions(0, 0))

	if _, err := s.Advance(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if s.CurrentIndex != 0 || s.Score != 0 || s.IsCompleted() {
		t.Errorf("state changed: index=%d score=%d status=%s", s.CurrentIndex, s.Score, s.Status)
	}
}

func TestQuizSessionRejectsInvalidOption(t *testing.T) {
	s := NewQuizSession(makeQuestions(0))

	for _, idx := range []int{-1, 4, 10} {
		if err := s.SelectAnswer(idx); !errors.Is(err, ErrInvalidOption) {
			t.Errorf("SelectAnswer(%d): err = %v, want ErrInvalidOption", idx, err)
		}
	}
	if q, _ := s.Current(); q.IsAnswered() {
		t.Error("invalid selection was recorded")
	}
}

func TestQuizSessionEmpty(t *testing.T) {
	s := NewQuizSession(nil)

	if !s.IsCompleted() {
		t.Fatal("empty session should start completed")
	}
	if s.Percentage() != 0 {
		t.Errorf("Percentage = %d, want 0", s.Percentage())
	}
	if s.Passed() {
		t.Error("empty session should not pass")
	}
	if err := s.SelectAnswer(0); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("SelectAnswer: err = %v, want ErrSessionCompleted", err)
	}
}

func TestQuizSessionPassedThreshold(t *testing.T) {
	tests := []struct {
		score, total int
		want         bool
	}{
		{5, 10, false},
		{6, 10, true},
		{1, 1, true},
		{0, 1, false},
		{2, 4, false},
	}

	for _, tt := range tests {
		s := &QuizSession{Questions: make([]Question, tt.total), Score: tt.score}
		if got := s.Passed(); got != tt.want {
			t.Errorf("Passed(%d/%d) = %v, want %v", tt.score, tt.total, got, tt.want)
		}
	}
}
