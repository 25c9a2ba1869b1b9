package telegram

import (
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

var errInvalidCallback = errors.New("invalid callback data")

// Callback action constants.
const (
	actionNames    = "names"
	actionCategory = "cat"
	actionCard     = "card"
	actionQuiz     = "quiz"
	actionDua      = "dua"
	actionTutorial = "tut"
)

// Card sides.
const (
	sideFront = "front"
	sideBack  = "back"
)

// Quiz sub-actions.
const (
	quizSelect  = "select"
	quizNext    = "next"
	quizRestart = "restart"
)

// Dua sub-actions.
const (
	duaQuality = "q"
)

const tutorialEnd = "end"

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam parses the i-th parameter as a non-negative integer.
func (cd callbackData) intParam(i int) (int, error) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil || n < 0 {
		return 0, errInvalidCallback
	}
	return n, nil
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildNamesPageCallback builds callback data for a page of the names list.
func buildNamesPageCallback(page int) string {
	return callbackData{
		Action: actionNames,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildCategoryCallback builds callback data for opening a category by position.
func buildCategoryCallback(index int) string {
	return callbackData{
		Action: actionCategory,
		Params: []string{strconv.Itoa(index)},
	}.encode()
}

// buildCardCallback builds callback data for a side of a name card.
func buildCardCallback(number int, side string) string {
	return callbackData{
		Action: actionCard,
		Params: []string{strconv.Itoa(number), side},
	}.encode()
}

func buildQuizSelectCallback(index int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizSelect, strconv.Itoa(index)},
	}.encode()
}

func buildQuizNextCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext}}.encode()
}

func buildQuizRestartCallback() string {
	return callbackData{Action: actionQuiz, Params: []string{quizRestart}}.encode()
}

// buildDuaQualityCallback builds callback data for a quality filter by position.
func buildDuaQualityCallback(index int) string {
	return callbackData{
		Action: actionDua,
		Params: []string{duaQuality, strconv.Itoa(index)},
	}.encode()
}

// buildTutorialCallback builds callback data for moving past a tutorial step.
func buildTutorialCallback(tab entities.TutorialTab, step int) string {
	return callbackData{
		Action: actionTutorial,
		Params: []string{string(tab), strconv.Itoa(step)},
	}.encode()
}

func buildTutorialEndCallback() string {
	return callbackData{Action: actionTutorial, Params: []string{tutorialEnd}}.encode()
}
