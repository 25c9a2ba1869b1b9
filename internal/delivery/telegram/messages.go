// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

// Error messages.
const (
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. Send /help to see what I can do."
	msgNameUnavailable  = "Could not load that name. Please try again later."
	msgNameNotFound     = "No name matches that text. Try a number between 1 and 99 or /names."
	msgNoActiveQuiz     = "There is no active quiz. Send /quiz to start one."
	msgPickAnswerFirst  = "Pick an answer first."
	msgNoQuestions      = "Not enough names to build a quiz right now."
	msgNoDuas           = "No duas found."
	msgUseDua           = "Use: /dua rahman"
	msgNoCategories     = "No categories available."
	msgCategoryNotFound = "That category is no longer available."
)

const (
	msgTutorialDone = "You're all set. Send /help any time to see the commands."
	msgHelp         = "/names - browse all names\n" +
		"/name N - open the card of name N\n" +
		"/random - a random name\n" +
		"/categories - names grouped by theme\n" +
		"/quiz - test yourself\n" +
		"/duas - supplications by quality\n" +
		"/dua TEXT - supplications that mention a name\n" +
		"/tutorial - replay the tutorial\n\n" +
		"You can also send a number or a name to open its card."
)

const (
	namesPerPage      = 10
	maxDuasPerMessage = 5
	flipHint          = "Tap Flip to see the meaning."
)

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

func jumpErrorMessage(count int) string {
	return fmt.Sprintf("Please enter a number between 1 and %d.", count)
}

func welcomeMessage() string {
	var sb strings.Builder

	sb.WriteString(md("السلام عليكم ورحمة الله وبركاته"))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Divine Names"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Learn the 99 Names of Allah with flashcards, quizzes and supplications."))

	return sb.String()
}

func helpMessage() string {
	return bold("Commands") + "\n\n" + md(msgHelp)
}

// namesPageMessage renders one page of the names list.
func namesPageMessage(names []entities.Name, page, totalPages int) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("The 99 Names (%d/%d)", page+1, totalPages)))
	sb.WriteString("\n\n")
	for _, n := range names {
		sb.WriteString(nameLine(n))
		sb.WriteString("\n")
	}

	return sb.String()
}

// cardFrontMessage shows the name only.
func cardFrontMessage(card service.NameCard) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%d. %s", card.Name.Number, card.Name.Transliteration)))
	if card.Detail != nil && card.Detail.ArabicText != "" {
		sb.WriteString("\n\n")
		sb.WriteString(md(card.Detail.ArabicText))
	}
	sb.WriteString("\n\n")
	sb.WriteString(italic(flipHint))

	return sb.String()
}

// cardBackMessage shows the meaning, category and optional detail of a name.
func cardBackMessage(card service.NameCard) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%d. %s", card.Name.Number, card.Name.Transliteration)))
	sb.WriteString("\n")
	sb.WriteString(md(card.Name.Meaning))
	sb.WriteString("\n\n")

	if card.Category != nil {
		sb.WriteString(md(fmt.Sprintf("Category: %s (%s)", card.Category.Name, card.Category.Color.Hex())))
		sb.WriteString("\n\n")
	}

	d := card.Detail
	if d == nil {
		sb.WriteString(italic("Details not available."))
		return sb.String()
	}

	writeField := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(bold(label))
		sb.WriteString(" ")
		sb.WriteString(md(value))
		sb.WriteString("\n")
	}

	writeField("Arabic:", d.ArabicText)
	writeField("Translation:", d.Translation)
	writeField("Quran:", d.QuranReference)
	writeField("Appearances:", d.Appearances)
	if d.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(md(d.Description))
		sb.WriteString("\n")
	}
	if d.AdditionalInfo != nil && *d.AdditionalInfo != "" {
		sb.WriteString("\n")
		sb.WriteString(italic(*d.AdditionalInfo))
	}

	return sb.String()
}

func categoriesMessage(categories []entities.Category) string {
	var sb strings.Builder

	sb.WriteString(bold("Categories"))
	sb.WriteString("\n\n")
	for _, c := range categories {
		sb.WriteString(bold(c.Name))
		sb.WriteString("\n")
		sb.WriteString(md(c.Description))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func categoryMessage(category entities.Category, names []entities.Name) string {
	var sb strings.Builder

	sb.WriteString(bold(category.Name))
	sb.WriteString("\n")
	sb.WriteString(italic(category.Description))
	sb.WriteString("\n\n")
	for _, n := range names {
		sb.WriteString(nameLine(n))
		sb.WriteString("\n")
	}

	return sb.String()
}

// questionMessage renders the current question of a quiz.
func questionMessage(st service.QuizState) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("Question %d of %d", st.Index+1, st.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(bold(st.Question.Prompt))

	return sb.String()
}

// feedbackLine tells the user how the previous question went.
func feedbackLine(answered entities.Question, correct bool) string {
	if correct {
		return md("✅ Correct!")
	}
	return md(fmt.Sprintf("❌ Not quite. The answer was: %s", answered.CorrectAnswer()))
}

// quizResultMessage renders the final score.
func quizResultMessage(st service.QuizState) string {
	var sb strings.Builder

	icon := "📘"
	if st.Passed {
		icon = "🏆"
	}

	sb.WriteString(bold(icon + " Quiz complete"))
	sb.WriteString("\n\n")
	sb.WriteString(md(fmt.Sprintf("Score: %d / %d (%d%%)", st.Score, st.Total, st.Percentage)))
	sb.WriteString("\n")
	if st.Passed {
		sb.WriteString(md("Well done!"))
	} else {
		sb.WriteString(md("Keep practising, you'll get there."))
	}

	return sb.String()
}

func duaQualitiesMessage() string {
	return bold("Duas") + "\n\n" + md("Choose a quality, or search by name with /dua TEXT.")
}

// duasMessage renders search results, capped at maxDuasPerMessage.
func duasMessage(title string, duas []entities.Dua) string {
	if len(duas) == 0 {
		return md(msgNoDuas)
	}

	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%s (%d)", title, len(duas))))
	sb.WriteString("\n\n")

	shown := duas
	if len(shown) > maxDuasPerMessage {
		shown = shown[:maxDuasPerMessage]
	}

	for _, d := range shown {
		sb.WriteString(bold(d.NamesText(", ")))
		sb.WriteString("\n")
		sb.WriteString(md(d.Arabic))
		sb.WriteString("\n")
		sb.WriteString(md(d.Translation))
		sb.WriteString("\n")
		sb.WriteString(italic(d.Source))
		sb.WriteString("\n")
		if d.UsageNote != nil && *d.UsageNote != "" {
			sb.WriteString(md("💡 " + *d.UsageNote))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if rest := len(duas) - len(shown); rest > 0 {
		sb.WriteString(italic(fmt.Sprintf("…and %d more. Narrow the search to see them.", rest)))
	}

	return sb.String()
}

// tutorialMessage renders one tutorial step.
func tutorialMessage(v service.TutorialView) string {
	var sb strings.Builder

	sb.WriteString(md(fmt.Sprintf("%d/%d", v.Step+1, v.Total)))
	sb.WriteString(" ")
	sb.WriteString(bold(v.Title))
	sb.WriteString("\n\n")
	sb.WriteString(md(v.Description))

	return sb.String()
}
