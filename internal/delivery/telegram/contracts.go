package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler talks to.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type NameService interface {
	GetRandom() (entities.Name, error)
	Count() int
	ParseOrdinal(input string) (int, error)
	Card(number int) (service.NameCard, error)
	Page(page, perPage int) ([]entities.Name, int)
	Search(text string) (entities.Name, bool)
	Categories() []entities.Category
	NamesInCategory(id string) ([]entities.Name, error)
}

type QuizService interface {
	Start(chatID int64) service.QuizState
	Restart(chatID int64) service.QuizState
	Select(chatID int64, index int) (service.QuizState, error)
	Advance(chatID int64) (service.QuizState, entities.Question, bool, error)
	Finish(chatID int64)
}

type DuaService interface {
	Search(q service.DuaQuery) []entities.Dua
	Qualities() []string
}

type TutorialService interface {
	ShouldShowWelcome(ctx context.Context, userID int64) (bool, error)
	Start(ctx context.Context, userID int64, tab entities.TutorialTab) (service.TutorialView, error)
	Next(tab entities.TutorialTab, step int) (service.TutorialView, bool, error)
	End(ctx context.Context, userID int64) error
	CheckForTab(ctx context.Context, userID int64, tab entities.TutorialTab) (service.TutorialView, bool, error)
	Reset(ctx context.Context, userID int64) error
}
