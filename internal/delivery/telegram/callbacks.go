package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	var (
		chatID = cb.Message.Chat.ID
		userID = cb.From.ID
		cd     = decodeCallback(cb.Data)

		text  string
		kb    *inlineKeyboard
		toast string
		err   error
	)

	switch cd.Action {
	case actionNames:
		text, kb, err = h.namesCallback(cd)
	case actionCategory:
		text, kb, err = h.categoryCallback(cd)
	case actionCard:
		text, kb, err = h.cardCallback(cd)
	case actionQuiz:
		text, kb, toast, err = h.quizCallback(chatID, cd)
	case actionDua:
		text, kb, err = h.duaCallback(cd)
	case actionTutorial:
		text, kb, err = h.tutorialCallback(ctx, userID, cd)
	default:
		err = errInvalidCallback
	}

	if err != nil {
		h.answerCallback(cb.ID, h.callbackErrorText(chatID, cd, err))
		return
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, toast)

	if text == "" {
		return
	}

	edit := newEdit(chatID, cb.Message.MessageID, text)
	if kb != nil {
		edit.ReplyMarkup = kb
	}
	h.send(edit)
}

// callbackErrorText logs a failed callback and returns the toast for it.
func (h *Handler) callbackErrorText(chatID int64, cd callbackData, err error) string {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, entities.ErrSessionCompleted):
		return msgNoActiveQuiz
	case errors.Is(err, errInvalidCallback), errors.Is(err, entities.ErrInvalidOption), errors.Is(err, service.ErrUnknownTab):
		h.logger.Warn("invalid callback data",
			zap.Int64("chat_id", chatID),
			zap.String("data", cd.Raw),
			zap.Error(err),
		)
		return ""
	case errors.Is(err, service.ErrCategoryNotFound):
		return msgCategoryNotFound
	default:
		h.logger.Error("callback error",
			zap.Int64("chat_id", chatID),
			zap.String("data", cd.Raw),
			zap.Error(err),
		)
		return msgInternalError
	}
}

// namesCallback handles names:<page>.
func (h *Handler) namesCallback(cd callbackData) (string, *inlineKeyboard, error) {
	page, err := cd.intParam(0)
	if err != nil {
		return "", nil, err
	}

	text, totalPages, ok := h.namesPage(page)
	if !ok {
		return "", nil, fmt.Errorf("page %d of %d: %w", page, totalPages, errInvalidCallback)
	}

	return text, buildPagerKeyboard(page, totalPages), nil
}

// categoryCallback handles cat:<index>.
func (h *Handler) categoryCallback(cd callbackData) (string, *inlineKeyboard, error) {
	i, err := cd.intParam(0)
	if err != nil {
		return "", nil, err
	}

	categories := h.names.Categories()
	if i >= len(categories) {
		return "", nil, service.ErrCategoryNotFound
	}

	category := categories[i]
	names, err := h.names.NamesInCategory(category.ID)
	if err != nil {
		return "", nil, err
	}

	kb := buildCategoriesKeyboard(categories)
	return categoryMessage(category, names), &kb, nil
}

// cardCallback handles card:<n>:<side>.
func (h *Handler) cardCallback(cd callbackData) (string, *inlineKeyboard, error) {
	number, err := cd.intParam(0)
	if err != nil {
		return "", nil, err
	}

	side := cd.param(1)
	if side != sideFront && side != sideBack {
		return "", nil, errInvalidCallback
	}

	card, err := h.names.Card(number)
	if err != nil {
		return "", nil, fmt.Errorf("card %d: %w", number, errInvalidCallback)
	}

	text := cardFrontMessage(card)
	if side == sideBack {
		text = cardBackMessage(card)
	}

	kb := buildCardKeyboard(number, h.names.Count(), side)
	return text, &kb, nil
}
