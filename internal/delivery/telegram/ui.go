package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
	"github.com/aliskhannn/divine-names-bot/internal/service"
)

type inlineKeyboard = tgbotapi.InlineKeyboardMarkup

// buildPagerKeyboard builds pagination keyboard for names list.
func buildPagerKeyboard(page, totalPages int) *tgbotapi.InlineKeyboardMarkup {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildNamesPageCallback(page-1)))
	}
	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildNamesPageCallback(page+1)))
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(row)
	return &kb
}

// buildCardKeyboard builds flip and neighbour buttons for a name card.
func buildCardKeyboard(number, count int, side string) tgbotapi.InlineKeyboardMarkup {
	flipTo := sideBack
	if side == sideBack {
		flipTo = sideFront
	}

	var nav []tgbotapi.InlineKeyboardButton
	if number > 1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️", buildCardCallback(number-1, sideFront)))
	}
	nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("🔄 Flip", buildCardCallback(number, flipTo)))
	if number < count {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("▶️", buildCardCallback(number+1, sideFront)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(nav)
}

// buildCategoriesKeyboard builds one button per category.
func buildCategoriesKeyboard(categories []entities.Category) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(categories)+1)/2)
	for i := 0; i < len(categories); i += 2 {
		row := tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(categories[i].Name, buildCategoryCallback(i)),
		)
		if i+1 < len(categories) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(categories[i+1].Name, buildCategoryCallback(i+1)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizAnswerKeyboard builds keyboard for quiz question. The selected
// option is marked and a Next button appears once something is selected.
func buildQuizAnswerKeyboard(q entities.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		label := option
		if q.SelectedIndex != nil && *q.SelectedIndex == i {
			label = "● " + option
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildQuizSelectCallback(i)),
		))
	}
	if q.IsAnswered() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildQuizNextCallback()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuizResultKeyboard builds keyboard for quiz results screen.
func buildQuizResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Try again", buildQuizRestartCallback()),
		),
	)
}

// buildDuaQualitiesKeyboard builds two-column keyboard of searchable qualities.
func buildDuaQualitiesKeyboard(qualities []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(qualities)+1)/2)
	for i := 0; i < len(qualities); i += 2 {
		row := tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(qualities[i], buildDuaQualityCallback(i)),
		)
		if i+1 < len(qualities) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(qualities[i+1], buildDuaQualityCallback(i+1)))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildTutorialKeyboard builds Next/Skip for intermediate steps and a
// single closing button for the last one.
func buildTutorialKeyboard(v service.TutorialView) tgbotapi.InlineKeyboardMarkup {
	if v.Last() {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(v.ButtonText, buildTutorialEndCallback()),
			),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Skip", buildTutorialEndCallback()),
			tgbotapi.NewInlineKeyboardButtonData(v.ButtonText, buildTutorialCallback(v.Tab, v.Step)),
		),
	)
}
