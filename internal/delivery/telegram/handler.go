package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Handler struct {
	bot      BotAPI
	logger   *zap.Logger
	names    NameService
	quiz     QuizService
	duas     DuaService
	tutorial TutorialService
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	names NameService,
	quiz QuizService,
	duas DuaService,
	tutorial TutorialService,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		names:    names,
		quiz:     quiz,
		duas:     duas,
		tutorial: tutorial,
	}
}

// Run long-polls Telegram until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if update.Message.IsCommand() {
		args := update.Message.CommandArguments()

		var fn HandlerFunc
		switch update.Message.Command() {
		case "start":
			fn = h.handleStart(userID)
		case "help":
			fn = h.handleHelp()
		case "names":
			fn = h.handleNames(userID)
		case "name":
			fn = h.handleName(userID, args)
		case "random":
			fn = h.handleRandom(userID)
		case "categories":
			fn = h.handleCategories()
		case "quiz":
			fn = h.handleQuiz(userID)
		case "duas":
			fn = h.handleDuas(userID)
		case "dua":
			fn = h.handleDuaSearch(args)
		case "tutorial":
			fn = h.handleTutorial(userID)
		default:
			h.send(newMessage(chatID, md(msgUnknownCommand)))
			return
		}

		_ = h.withErrorHandling(fn)(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.handleText(userID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newMessage(chatID, md(text)))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// answerCallback removes the loading indicator, optionally with a toast.
func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
