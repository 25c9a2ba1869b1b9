package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

// startTutorial sends the first step of a tab's tutorial.
func (h *Handler) startTutorial(ctx context.Context, chatID, userID int64, tab entities.TutorialTab) error {
	view, err := h.tutorial.Start(ctx, userID, tab)
	if err != nil {
		return fmt.Errorf("start %s tutorial: %w", tab, err)
	}
	h.sendTutorialStep(chatID, view)
	return nil
}

// checkTutorial sends a tab's tutorial the first time the tab is opened
// after the main tutorial. Flag store failures only skip the tutorial.
func (h *Handler) checkTutorial(ctx context.Context, chatID, userID int64, tab entities.TutorialTab) {
	view, ok, err := h.tutorial.CheckForTab(ctx, userID, tab)
	if err != nil {
		h.logger.Warn("failed to check tab tutorial",
			zap.Int64("user_id", userID),
			zap.String("tab", string(tab)),
			zap.Error(err),
		)
		return
	}
	if ok {
		h.sendTutorialStep(chatID, view)
	}
}

func (h *Handler) sendTutorialStep(chatID int64, view service.TutorialView) {
	msg := newMessage(chatID, tutorialMessage(view))
	msg.ReplyMarkup = buildTutorialKeyboard(view)
	h.send(msg)
}

// tutorialCallback handles tut:<tab>:<step> and tut:end.
func (h *Handler) tutorialCallback(ctx context.Context, userID int64, cd callbackData) (string, *inlineKeyboard, error) {
	if cd.param(0) == tutorialEnd {
		if err := h.tutorial.End(ctx, userID); err != nil {
			return "", nil, err
		}
		return md(msgTutorialDone), nil, nil
	}

	tab := entities.TutorialTab(cd.param(0))
	step, err := cd.intParam(1)
	if err != nil {
		return "", nil, err
	}

	view, ok, err := h.tutorial.Next(tab, step)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		if err := h.tutorial.End(ctx, userID); err != nil {
			return "", nil, err
		}
		return md(msgTutorialDone), nil, nil
	}

	kb := buildTutorialKeyboard(view)
	return tutorialMessage(view), &kb, nil
}
