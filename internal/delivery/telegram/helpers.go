package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/divine-names-bot/internal/domain/entities"
)

// nameLine renders "N. Transliteration - Meaning" for lists.
func nameLine(n entities.Name) string {
	return md(fmt.Sprintf("%d. %s - %s", n.Number, n.Transliteration, n.Meaning))
}

// Commands returns the command menu registered with Telegram.
func Commands() tgbotapi.SetMyCommandsConfig {
	return tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "names", Description: "Browse all names"},
		tgbotapi.BotCommand{Command: "name", Description: "Open the card of a name"},
		tgbotapi.BotCommand{Command: "random", Description: "A random name"},
		tgbotapi.BotCommand{Command: "categories", Description: "Names grouped by theme"},
		tgbotapi.BotCommand{Command: "quiz", Description: "Test yourself"},
		tgbotapi.BotCommand{Command: "duas", Description: "Supplications by quality"},
		tgbotapi.BotCommand{Command: "dua", Description: "Supplications that mention a name"},
		tgbotapi.BotCommand{Command: "tutorial", Description: "Replay the tutorial"},
		tgbotapi.BotCommand{Command: "help", Description: "List commands"},
	)
}
