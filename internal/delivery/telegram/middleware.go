package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler and answers with a message the
// user can act on. Unexpected errors get the generic message.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, entities.ErrSessionCompleted):
			h.logger.Debug("no active quiz", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendError(chatID, msgNoActiveQuiz)
		case errors.Is(err, service.ErrInvalidJumpInput):
			h.sendError(chatID, jumpErrorMessage(h.names.Count()))
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
