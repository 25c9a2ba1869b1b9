package telegram

import (
	"context"
	"errors"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

// handleQuiz starts a fresh quiz for the chat.
func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.checkTutorial(ctx, chatID, userID, entities.TabQuiz)

		st := h.quiz.Start(chatID)
		text, kb := renderQuiz(st, "")

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		h.send(msg)
		return nil
	}
}

// renderQuiz renders the current question, or the result once the session
// is over. A non-empty prefix is shown above it.
func renderQuiz(st service.QuizState, prefix string) (string, inlineKeyboard) {
	var text string
	var kb inlineKeyboard

	switch {
	case st.Total == 0:
		text = md(msgNoQuestions)
		kb = buildQuizResultKeyboard()
	case st.Completed:
		text = quizResultMessage(st)
		kb = buildQuizResultKeyboard()
	default:
		text = questionMessage(st)
		kb = buildQuizAnswerKeyboard(st.Question)
	}

	if prefix != "" {
		text = prefix + "\n\n" + text
	}
	return text, kb
}

// quizCallback handles quiz:select:<i>, quiz:next and quiz:restart. The
// returned toast is shown to the user without editing the message.
func (h *Handler) quizCallback(chatID int64, cd callbackData) (text string, kb *inlineKeyboard, toast string, err error) {
	var st service.QuizState
	prefix := ""

	switch cd.param(0) {
	case quizSelect:
		i, err := cd.intParam(1)
		if err != nil {
			return "", nil, "", err
		}
		st, err = h.quiz.Select(chatID, i)
		if err != nil {
			return "", nil, "", err
		}

	case quizNext:
		var (
			answered entities.Question
			correct  bool
		)
		st, answered, correct, err = h.quiz.Advance(chatID)
		if errors.Is(err, entities.ErrNoSelection) {
			return "", nil, msgPickAnswerFirst, nil
		}
		if err != nil {
			return "", nil, "", err
		}
		prefix = feedbackLine(answered, correct)
		if st.Completed {
			h.quiz.Finish(chatID)
		}

	case quizRestart:
		st = h.quiz.Restart(chatID)

	default:
		return "", nil, "", errInvalidCallback
	}

	t, k := renderQuiz(st, prefix)
	return t, &k, "", nil
}
