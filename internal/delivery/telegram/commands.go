package telegram

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// handleStart greets the user and opens the home tutorial on first contact.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newMessage(chatID, welcomeMessage()))

		show, err := h.tutorial.ShouldShowWelcome(ctx, userID)
		if err != nil {
			return fmt.Errorf("check welcome: %w", err)
		}
		if !show {
			h.send(newMessage(chatID, helpMessage()))
			return nil
		}

		return h.startTutorial(ctx, chatID, userID, entities.TabHome)
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newMessage(chatID, helpMessage()))
		return nil
	}
}

// handleTutorial clears every tutorial flag and replays the home tutorial.
func (h *Handler) handleTutorial(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.tutorial.Reset(ctx, userID); err != nil {
			return err
		}
		return h.startTutorial(ctx, chatID, userID, entities.TabHome)
	}
}

// handleName opens the card for /name N.
func (h *Handler) handleName(userID int64, args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := h.names.ParseOrdinal(args)
		if err != nil {
			return err
		}
		return h.sendCard(ctx, chatID, userID, n)
	}
}

func (h *Handler) handleRandom(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		name, err := h.names.GetRandom()
		if err != nil {
			return fmt.Errorf("get random name: %w", err)
		}
		return h.sendCard(ctx, chatID, userID, name.Number)
	}
}

// handleText treats digits as a jump to an ordinal and anything else as a
// fuzzy name search.
func (h *Handler) handleText(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}

		if isNumeric(text) {
			n, err := h.names.ParseOrdinal(text)
			if err != nil {
				return err
			}
			return h.sendCard(ctx, chatID, userID, n)
		}

		name, ok := h.names.Search(text)
		if !ok {
			h.send(newMessage(chatID, md(msgNameNotFound)))
			return nil
		}
		return h.sendCard(ctx, chatID, userID, name.Number)
	}
}

// sendCard sends the front of a card, after the card tutorial when it is due.
func (h *Handler) sendCard(ctx context.Context, chatID, userID int64, number int) error {
	h.checkTutorial(ctx, chatID, userID, entities.TabCards)

	card, err := h.names.Card(number)
	if err != nil {
		h.logger.Warn("failed to build card", zap.Int("number", number), zap.Error(err))
		h.send(newMessage(chatID, md(msgNameUnavailable)))
		return nil
	}

	msg := newMessage(chatID, cardFrontMessage(card))
	msg.ReplyMarkup = buildCardKeyboard(number, h.names.Count(), sideFront)
	h.send(msg)

	return nil
}

func (h *Handler) handleCategories() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		categories := h.names.Categories()
		if len(categories) == 0 {
			h.send(newMessage(chatID, md(msgNoCategories)))
			return nil
		}

		msg := newMessage(chatID, categoriesMessage(categories))
		msg.ReplyMarkup = buildCategoriesKeyboard(categories)
		h.send(msg)
		return nil
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
