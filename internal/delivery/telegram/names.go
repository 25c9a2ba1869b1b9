package telegram

import (
	"context"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// handleNames shows the first page of the names list.
func (h *Handler) handleNames(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.checkTutorial(ctx, chatID, userID, entities.TabNames)

		text, totalPages, ok := h.namesPage(0)
		if !ok {
			h.send(newMessage(chatID, md(msgNameUnavailable)))
			return nil
		}

		msg := newMessage(chatID, text)
		if kb := buildPagerKeyboard(0, totalPages); kb != nil {
			msg.ReplyMarkup = *kb
		}
		h.send(msg)
		return nil
	}
}

// namesPage renders a page of the list. It reports false for pages out of range.
func (h *Handler) namesPage(page int) (string, int, bool) {
	names, totalPages := h.names.Page(page, namesPerPage)
	if len(names) == 0 {
		return "", totalPages, false
	}
	return namesPageMessage(names, page, totalPages), totalPages, true
}
