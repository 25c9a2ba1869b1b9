package telegram

import (
	"context"
	"strings"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

// handleDuas shows the quality picker.
func (h *Handler) handleDuas(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.checkTutorial(ctx, chatID, userID, entities.TabDuas)

		msg := newMessage(chatID, duaQualitiesMessage())
		msg.ReplyMarkup = buildDuaQualitiesKeyboard(h.duas.Qualities())
		h.send(msg)
		return nil
	}
}

// handleDuaSearch searches duas by associated name.
func (h *Handler) handleDuaSearch(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text := strings.TrimSpace(args)
		if text == "" {
			h.send(newMessage(chatID, md(msgUseDua)))
			return nil
		}

		duas := h.duas.Search(service.DuaQuery{}.WithText(text))
		h.send(newMessage(chatID, duasMessage("Duas for \""+text+"\"", duas)))
		return nil
	}
}

// duaCallback handles dua:q:<index>.
func (h *Handler) duaCallback(cd callbackData) (string, *inlineKeyboard, error) {
	if cd.param(0) != duaQuality {
		return "", nil, errInvalidCallback
	}

	i, err := cd.intParam(1)
	if err != nil {
		return "", nil, err
	}

	qualities := h.duas.Qualities()
	if i >= len(qualities) {
		return "", nil, errInvalidCallback
	}

	quality := qualities[i]
	duas := h.duas.Search(service.DuaQuery{}.WithQuality(quality))

	kb := buildDuaQualitiesKeyboard(qualities)
	return duasMessage(quality, duas), &kb, nil
}
