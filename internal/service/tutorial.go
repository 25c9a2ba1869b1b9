package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var ErrUnknownTab = errors.New("unknown tutorial tab")

// TutorialView is the step of a tutorial to display.
type TutorialView struct {
	entities.TutorialStep
	Tab   entities.TutorialTab
	Step  int // zero-based
	Total int
}

// Last reports whether this is the final step.
func (v TutorialView) Last() bool {
	return v.Step >= v.Total-1
}

// TutorialService decides which tutorials to show and remembers what was seen.
type TutorialService struct {
	flags FlagStore
}

func NewTutorialService(flags FlagStore) *TutorialService {
	return &TutorialService{flags: flags}
}

// Flags returns the user's tutorial flags.
func (s *TutorialService) Flags(ctx context.Context, userID int64) (entities.TutorialFlags, error) {
	flags, err := s.flags.GetFlags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get flags: %w", err)
	}
	return flags, nil
}

// ShouldShowWelcome reports whether the user has never finished the main tutorial.
func (s *TutorialService) ShouldShowWelcome(ctx context.Context, userID int64) (bool, error) {
	flags, err := s.Flags(ctx, userID)
	if err != nil {
		return false, err
	}
	return !flags.Seen(entities.FlagSeenTutorial), nil
}

// Start opens a tab's tutorial at its first step and marks the tab as seen.
func (s *TutorialService) Start(ctx context.Context, userID int64, tab entities.TutorialTab) (TutorialView, error) {
	view, err := s.Step(tab, 0)
	if err != nil {
		return TutorialView{}, err
	}

	if flag, ok := tab.Flag(); ok {
		if err := s.flags.SetFlag(ctx, userID, flag, true); err != nil {
			return TutorialView{}, fmt.Errorf("mark %s seen: %w", tab, err)
		}
	}

	return view, nil
}

// Step returns a step of a tab's tutorial. Steps past the end show the last one.
func (s *TutorialService) Step(tab entities.TutorialTab, step int) (TutorialView, error) {
	steps := entities.TutorialSteps(tab)
	if len(steps) == 0 {
		return TutorialView{}, ErrUnknownTab
	}

	step = max(0, min(step, len(steps)-1))
	return TutorialView{
		TutorialStep: steps[step],
		Tab:          tab,
		Step:         step,
		Total:        len(steps),
	}, nil
}

// Next returns the step after the given one, or false when the tutorial is over.
func (s *TutorialService) Next(tab entities.TutorialTab, step int) (TutorialView, bool, error) {
	steps := entities.TutorialSteps(tab)
	if len(steps) == 0 {
		return TutorialView{}, false, ErrUnknownTab
	}
	if step+1 >= len(steps) {
		return TutorialView{}, false, nil
	}

	view, err := s.Step(tab, step+1)
	return view, err == nil, err
}

// End closes a tutorial and marks the main tutorial as seen.
func (s *TutorialService) End(ctx context.Context, userID int64) error {
	if err := s.flags.SetFlag(ctx, userID, entities.FlagSeenTutorial, true); err != nil {
		return fmt.Errorf("mark tutorial seen: %w", err)
	}
	return nil
}

// CheckForTab starts a tab's tutorial when the main tutorial was seen but
// the tab's own tutorial was not.
func (s *TutorialService) CheckForTab(ctx context.Context, userID int64, tab entities.TutorialTab) (TutorialView, bool, error) {
	flag, ok := tab.Flag()
	if !ok {
		return TutorialView{}, false, nil
	}

	flags, err := s.Flags(ctx, userID)
	if err != nil {
		return TutorialView{}, false, err
	}
	if !flags.Seen(entities.FlagSeenTutorial) || flags.Seen(flag) {
		return TutorialView{}, false, nil
	}

	view, err := s.Start(ctx, userID, tab)
	if err != nil {
		return TutorialView{}, false, err
	}
	return view, true, nil
}

// Reset clears every flag so all tutorials show again.
func (s *TutorialService) Reset(ctx context.Context, userID int64) error {
	flags := make(entities.TutorialFlags, len(entities.TutorialFlagList))
	for _, f := range entities.TutorialFlagList {
		flags[f] = false
	}
	if err := s.flags.SetFlags(ctx, userID, flags); err != nil {
		return fmt.Errorf("reset flags: %w", err)
	}
	return nil
}
