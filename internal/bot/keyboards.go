package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackHit       = "hit"
	CallbackStand     = "stand"
	CallbackDouble    = "double"
	CallbackShield    = "shield"
	CallbackPlayAgain = "play_again"
	CallbackBalance   = "balance"
)

type GameKeyboardOptions struct {
	CanDouble bool
	CanShield bool
}

func GameKeyboard(opts GameKeyboardOptions) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
		tgbotapi.NewInlineKeyboardButtonData("✋ Stand", CallbackStand),
	}

	if opts.CanDouble {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("💰 Double", CallbackDouble))
	}
	if opts.CanShield {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("🛡 Shield", CallbackShield))
	}

	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func EndGameKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Same bets", CallbackPlayAgain),
			tgbotapi.NewInlineKeyboardButtonData("💵 Balance", CallbackBalance),
		),
	)
}

func betPrompt(defaultMain int) string {
	return fmt.Sprintf("Place bets: /play <main> [trigger] [side] [progressive]\nExample: /play %d 50 20 10", defaultMain)
}
