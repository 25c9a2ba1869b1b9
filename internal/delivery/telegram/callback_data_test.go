package telegram

import (
	"errors"
	"testing"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

func TestCallbackBuilders(t *testing.T) {
	tests := []struct {
		got        string
		wantAction string
		wantParams []string
	}{
		{buildNamesPageCallback(3), actionNames, []string{"3"}},
		{buildCategoryCallback(0), actionCategory, []string{"0"}},
		{buildCardCallback(99, sideBack), actionCard, []string{"99", sideBack}},
		{buildQuizSelectCallback(2), actionQuiz, []string{quizSelect, "2"}},
		{buildQuizNextCallback(), actionQuiz, []string{quizNext}},
		{buildQuizRestartCallback(), actionQuiz, []string{quizRestart}},
		{buildDuaQualityCallback(7), actionDua, []string{duaQuality, "7"}},
		{buildTutorialCallback(entities.TabQuiz, 1), actionTutorial, []string{string(entities.TabQuiz), "1"}},
		{buildTutorialEndCallback(), actionTutorial, []string{tutorialEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.got, func(t *testing.T) {
			if len(tt.got) > 64 {
				t.Errorf("callback data %q exceeds the 64 byte limit", tt.got)
			}

			cd := decodeCallback(tt.got)
			if cd.Action != tt.wantAction {
				t.Errorf("action = %q, want %q", cd.Action, tt.wantAction)
			}
			if len(cd.Params) != len(tt.wantParams) {
				t.Fatalf("params = %v, want %v", cd.Params, tt.wantParams)
			}
			for i := range tt.wantParams {
				if cd.param(i) != tt.wantParams[i] {
					t.Errorf("param(%d) = %q, want %q", i, cd.param(i), tt.wantParams[i])
				}
			}
			if cd.encode() != tt.got {
				t.Errorf("encode() = %q, want %q", cd.encode(), tt.got)
			}
		})
	}
}

func TestCallbackIntParam(t *testing.T) {
	cd := decodeCallback("card:12:front")

	if n, err := cd.intParam(0); err != nil || n != 12 {
		t.Errorf("intParam(0) = %d, %v", n, err)
	}
	if _, err := cd.intParam(1); !errors.Is(err, errInvalidCallback) {
		t.Errorf("intParam(1) err = %v, want errInvalidCallback", err)
	}
	if _, err := cd.intParam(5); !errors.Is(err, errInvalidCallback) {
		t.Errorf("intParam(5) err = %v, want errInvalidCallback", err)
	}
	if _, err := decodeCallback("names:-1").intParam(0); !errors.Is(err, errInvalidCallback) {
		t.Errorf("negative page err = %v, want errInvalidCallback", err)
	}
	if cd := decodeCallback("quiz"); cd.Action != actionQuiz || len(cd.Params) != 0 {
		t.Errorf("bare action decoded as %+v", cd)
	}
}
