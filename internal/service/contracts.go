package service

import (
	"context"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

type NameRepository interface {
	GetByNumber(number int) (entities.Name, error)
	GetRandom() (entities.Name, error)
	GetAll() []entities.Name
	GetMeaning(name string) string
	At(index int) (entities.Name, error)
	Len() int
}

type CategoryRepository interface {
	All() []entities.Category
	ByID(id string) (entities.Category, bool)
	CategoryFor(name string) (entities.Category, bool)
	IndicesIn(id string) []int
}

type DetailRepository interface {
	GetDetail(number int) (entities.NameDetail, bool)
}

type DuaRepository interface {
	FilterByKeyword(quality string) []entities.Dua
	FilterByNameSubstring(text string) []entities.Dua
	Qualities() []string
}

type QuestionGenerator interface {
	Generate(count int) []entities.Question
}

type QuizStorage interface {
	Store(chatID int64, session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, bool)
	Update(chatID int64, fn func(*entities.QuizSession) error) (bool, error)
	Delete(chatID int64)
}

// FlagStore persists tutorial flags per user.
type FlagStore interface {
	GetFlags(ctx context.Context, userID int64) (entities.TutorialFlags, error)
	SetFlag(ctx context.Context, userID int64, flag entities.TutorialFlag, value bool) error
	SetFlags(ctx context.Context, userID int64, flags entities.TutorialFlags) error
}
