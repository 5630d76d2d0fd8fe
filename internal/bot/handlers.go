package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sd0hni/pulsejack/internal/config"
	"github.com/sd0hni/pulsejack/internal/engine"
	"github.com/sd0hni/pulsejack/internal/history"
)

type Handler struct {
	bot     *tgbotapi.BotAPI
	cfg     *config.Config
	tables  *engine.Manager
	history history.Repository

	mu       sync.Mutex
	lastBets map[int64]engine.WagerSet
}

func NewHandler(bot *tgbotapi.BotAPI, cfg *config.Config, repo history.Repository) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		tables:   engine.NewManager(),
		history:  repo,
		lastBets: make(map[int64]engine.WagerSet),
	}
}

// ============== HELPERS ==============

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	h.bot.Request(tgbotapi.NewCallback(id, text))
}

func (h *Handler) table(chatID int64) *engine.Table {
	return h.tables.GetOrCreate(chatID, h.cfg.StartBalance)
}

func (h *Handler) rememberBets(chatID int64, w engine.WagerSet) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lastBets[chatID] = w
}

func (h *Handler) recallBets(chatID int64) (engine.WagerSet, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w, ok := h.lastBets[chatID]
	return w, ok
}

// ============== FORMATTING ==============

func formatHand(hand []engine.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

func formatTable(t *engine.Table, revealDealer bool) string {
	dealerDisplay := fmt.Sprintf("%s, Face Down", formatHand(t.DealerHand(false)))
	if revealDealer {
		dealerDisplay = fmt.Sprintf("%s (%d)", formatHand(t.DealerHand(true)), t.DealerScore())
	}

	return fmt.Sprintf("🎴 You: %s (%d)\n🃏 Dealer: %s",
		formatHand(t.PlayerHand()), t.PlayerScore(), dealerDisplay)
}

func outcomeText(o engine.Outcome) string {
	switch o {
	case engine.OutcomePlayerBust:
		return "💥 You bust!"
	case engine.OutcomeDealerBust:
		return "🎉 Dealer busts! You win!"
	case engine.OutcomePlayerWin:
		return "🎉 You win!"
	case engine.OutcomeDealerWin:
		return "😔 Dealer wins!"
	case engine.OutcomeTie:
		return "🤝 Tie! All stakes forfeited."
	}
	return "⚠️ Round abandoned."
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64) {
	t := h.table(chatID)

	h.send(chatID, fmt.Sprintf(
		"🎰 Welcome to Pulse Blackjack!\n\n"+
			"💵 Balance: %d\n\n"+
			"/play <main> [trigger] [side] [progressive] — deal\n"+
			"/stats — session stats\n"+
			"/top — top tables\n"+
			"/help — rules",
		t.Balance()))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Pulse Blackjack rules:\n\n"+
			"🎯 Beat the dealer without going over 21\n\n"+
			"💰 Main bet: win pays 1:1, 2-card blackjack 2:1, 3-card blackjack 3:1\n"+
			"⚡ Trigger bet: dealer opens with 19+ → 4x multiplier; combine with the Shield for 6x\n"+
			"🃏 Side bet: two face cards on the deal pays 3:1\n"+
			"💎 Progressive: three same-color cards pays 100x\n\n"+
			"🛡 Pulse Shield: at 17+ draw one card risk-free — a busting card is discarded.\n"+
			"After the Shield your turn ends.\n\n"+
			"⚠️ Ties forfeit all stakes.")
}

func (h *Handler) HandleStats(chatID int64) {
	t := h.table(chatID)
	s, err := h.history.StatsFor(chatID)
	if err != nil {
		log.Printf("Failed to load stats: %v", err)
		h.send(chatID, "❌ Something went wrong")
		return
	}

	h.send(chatID, fmt.Sprintf(
		"💰 Balance: %d\n\n"+
			"📊 This session:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"💸 Wagered: %d\n"+
			"💰 Paid out: %d",
		t.Balance(), s.Rounds, s.Wins, s.WinRate, s.Wagered, s.Paid))
}

func (h *Handler) HandleTop(chatID int64) {
	stats, err := h.history.TopByWinnings(10)
	if err != nil {
		log.Printf("Failed to load top: %v", err)
		h.send(chatID, "❌ Something went wrong")
		return
	}

	if len(stats) == 0 {
		h.send(chatID, "🏆 No rounds played yet!")
		return
	}

	var sb strings.Builder
	sb.WriteString("🏆 Top tables this session:\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, s := range stats {
		medal := fmt.Sprintf("%d.", i+1)
		if i < 3 {
			medal = medals[i]
		}
		sb.WriteString(fmt.Sprintf("%s 💰 %d paid | %d rounds (%.0f%%)\n",
			medal, s.Paid, s.Rounds, s.WinRate))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandlePlay(chatID int64, args []string) {
	bets := make([]int, 4)
	if len(args) == 0 {
		h.send(chatID, betPrompt(h.cfg.MinBet))
		return
	}
	for i, arg := range args {
		if i >= 4 {
			break
		}
		b, err := strconv.Atoi(arg)
		if err != nil || b < 0 {
			h.send(chatID, "❌ Bets must be non-negative numbers. "+betPrompt(h.cfg.MinBet))
			return
		}
		bets[i] = b
	}

	if bets[0] < h.cfg.MinBet || bets[0] > h.cfg.MaxBet {
		h.send(chatID, fmt.Sprintf("❌ Main bet must be between %d and %d", h.cfg.MinBet, h.cfg.MaxBet))
		return
	}

	h.startRound(chatID, engine.WagerSet{
		Main:        bets[0],
		Trigger:     bets[1],
		Side:        bets[2],
		Progressive: bets[3],
	})
}

func (h *Handler) startRound(chatID int64, w engine.WagerSet) {
	t := h.table(chatID)

	err := t.PlaceBets(w.Main, w.Trigger, w.Side, w.Progressive)
	switch {
	case errors.Is(err, engine.ErrInsufficientBalance):
		h.send(chatID, fmt.Sprintf("❌ Not enough balance! You have %d", t.Balance()))
		return
	case errors.Is(err, engine.ErrInvalidBet):
		h.send(chatID, "❌ Bets must be non-negative numbers.")
		return
	case errors.Is(err, engine.ErrActionRejected):
		h.send(chatID, "❌ Finish the current round first.")
		return
	case err != nil:
		log.Printf("Failed to start round: %v", err)
		h.send(chatID, "❌ Something went wrong")
		return
	}

	h.rememberBets(chatID, w)

	text := fmt.Sprintf("💰 Staked: %d | Balance: %d\n\n%s",
		w.Total(), t.Balance(), formatTable(t, false))
	if t.Multiplier() == 4 {
		text += "\n\n⚡ Multiplier activated! Your trigger bet can pay 4x."
	}
	if t.ShieldAvailable() && w.Trigger > 0 {
		text += "\n🛡 Pulse Shield is ready."
	}

	h.sendWithKeyboard(chatID, text, h.gameKeyboard(t, w))
}

func (h *Handler) gameKeyboard(t *engine.Table, w engine.WagerSet) tgbotapi.InlineKeyboardMarkup {
	// The shield button only surfaces alongside a trigger bet, the way
	// the original table did; the engine itself requires only 17+.
	return GameKeyboard(GameKeyboardOptions{
		CanDouble: t.CanDouble(),
		CanShield: t.ShieldAvailable() && w.Trigger > 0,
	})
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data
	t := h.table(chatID)

	switch data {
	case CallbackPlayAgain:
		h.answerCallback(callback.ID, "")
		w, ok := h.recallBets(chatID)
		if !ok {
			h.send(chatID, betPrompt(h.cfg.MinBet))
			return
		}
		h.startRound(chatID, w)
		return

	case CallbackBalance:
		h.answerCallback(callback.ID, fmt.Sprintf("💵 %d", t.Balance()))
		return
	}

	if t.Phase() != engine.PhasePlayerTurn {
		h.answerCallback(callback.ID, "No round in progress")
		return
	}

	var err error
	switch data {
	case CallbackHit:
		err = t.Hit()
	case CallbackStand:
		err = t.Stand()
	case CallbackDouble:
		err = t.DoubleDown()
	case CallbackShield:
		err = t.ActivateShield()
	default:
		h.answerCallback(callback.ID, "")
		return
	}

	switch {
	case errors.Is(err, engine.ErrActionRejected):
		h.answerCallback(callback.ID, "Not allowed right now")
		return
	case errors.Is(err, engine.ErrInsufficientBalance):
		h.answerCallback(callback.ID, "")
		h.send(chatID, "❌ Not enough balance to double down")
		return
	case errors.Is(err, engine.ErrEmptyDeck):
		h.answerCallback(callback.ID, "")
		h.send(chatID, "⚠️ The deck ran out; the round is abandoned.")
		h.finishRound(chatID, t)
		return
	case err != nil:
		log.Printf("Action failed: %v", err)
		h.answerCallback(callback.ID, "Something went wrong")
		return
	}

	h.answerCallback(callback.ID, "")

	if t.Phase() == engine.PhaseResolved {
		h.finishRound(chatID, t)
		return
	}

	h.sendWithKeyboard(chatID, formatTable(t, false), h.gameKeyboard(t, t.Wagers()))
}

// finishRound renders the resolved round and records it. The engine
// only signals "resolved"; scheduling the next round is on the player
// via the end-game keyboard.
func (h *Handler) finishRound(chatID int64, t *engine.Table) {
	res := t.LastResult()
	payout := t.LastPayout()

	if err := h.history.Record(history.FromResult(chatID, res, payout)); err != nil {
		log.Printf("Failed to record round: %v", err)
	}

	msg := fmt.Sprintf("%s\n\n%s", formatTable(t, true), outcomeText(res.Outcome))

	switch res.Blackjack {
	case engine.BlackjackTwoCard:
		msg += "\n🎰 BLACKJACK!"
	case engine.BlackjackThreeCard:
		msg += "\n🎰 3-CARD BLACKJACK!"
	}
	if res.Outcome.Won() && res.SideBetWon {
		msg += "\n🃏 Side bet hits!"
	}
	if res.Outcome.Won() && res.ProgressiveWon {
		msg += "\n💎 PULSE VAULT JACKPOT!"
	}

	msg += fmt.Sprintf("\n\n💰 Payout: %d\n💵 Balance: %d", payout, t.Balance())

	h.sendWithKeyboard(chatID, msg, EndGameKeyboard())
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID, args)
	case "/stats", "/balance":
		h.HandleStats(chatID)
	case "/top":
		h.HandleTop(chatID)
	}
}
