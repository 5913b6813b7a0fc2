package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/mrmeowless/PartnerKitHelper/store"
)

// Bot wires the Telegram side: offer handout on /start and the admin
// stats report on /stats <key>.
type Bot struct {
	B        *telebot.Bot
	AdminID  int64
	AdminKey string
	Hostname string

	assign *store.AssignmentLedger
	stats  *store.StatsAggregator
}

func NewBot(token string, adminID int64, adminKey, hostname string, assign *store.AssignmentLedger, stats *store.StatsAggregator) (*Bot, error) {
	pref := telebot.Settings{
		Token:  token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := telebot.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		B:        b,
		AdminID:  adminID,
		AdminKey: adminKey,
		Hostname: hostname,
		assign:   assign,
		stats:    stats,
	}

	bot.registerHandlers()
	return bot, nil
}

func (bot *Bot) Start() {
	bot.B.Start()
}

func (bot *Bot) registerHandlers() {
	bot.B.Handle("/start", bot.handleStart)
	bot.B.Handle("/stats", bot.handleStats)
}

// --- Handlers ---

func (bot *Bot) handleStart(c telebot.Context) error {
	tgID := strconv.FormatInt(c.Sender().ID, 10)

	offer, err := bot.assign.Assign(tgID)
	if errors.Is(err, store.ErrNoOffers) {
		return c.Send("❌ Сейчас нет доступных предложений. Загляни позже.")
	}
	if err != nil {
		log.Printf("assign error for user %s: %v", tgID, err)
		return c.Send("Что-то пошло не так. Попробуй ещё раз позже.")
	}

	menu := &telebot.ReplyMarkup{}
	menu.Inline(menu.Row(menu.URL("🔥 Получить бонус", bot.RedirectLink(offer.ID, tgID))))

	return c.Send("👋 Привет! У нас для тебя есть эксклюзивное предложение.\n\nНажми кнопку ниже и забери свой бонус прямо сейчас:", menu)
}

func (bot *Bot) handleStats(c telebot.Context) error {
	if bot.AdminID == 0 || c.Sender().ID != bot.AdminID {
		return c.Send("⛔ Доступ запрещён.")
	}
	if key := c.Message().Payload; key == "" || key != bot.AdminKey {
		return c.Send("❌ Неверный ключ администратора.")
	}

	rep, err := bot.stats.Report()
	if err != nil {
		log.Printf("stats error: %v", err)
		return c.Send("Не удалось собрать статистику.")
	}
	return c.Send(RenderReport(rep))
}

// RedirectLink builds the tracked redirect URL handed to a user.
func (bot *Bot) RedirectLink(offerID int64, tgID string) string {
	return fmt.Sprintf("%s/r/%d?u=%s", bot.Hostname, offerID, tgID)
}

// RenderReport formats the numbered stats message sent to the admin.
func RenderReport(rep store.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Статистика:\n\n👥 Пользователей: %d\n🖱 Клики: %d\n\n", rep.TotalUsers, rep.TotalClicks)
	for i, row := range rep.PerOffer {
		fmt.Fprintf(&b, "%d) %s — %d кликов\n", i+1, row.URL, row.Clicks)
	}
	return b.String()
}

// SendStatsDigest pushes the report to the admin chat. Called by the
// cron scheduler when STATS_CRON is configured.
func (bot *Bot) SendStatsDigest() {
	if bot.AdminID == 0 {
		return
	}

	rep, err := bot.stats.Report()
	if err != nil {
		log.Printf("stats digest error: %v", err)
		return
	}
	if _, err := bot.B.Send(&telebot.User{ID: bot.AdminID}, RenderReport(rep)); err != nil {
		log.Printf("stats digest send error: %v", err)
	}
}
