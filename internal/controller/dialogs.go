package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/salonberry/schedule_bot/internal/controller/formatting"
	"github.com/salonberry/schedule_bot/internal/controller/keyboards"
	"github.com/salonberry/schedule_bot/internal/controller/state"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

// Ключи временных данных диалога записи
const (
	dataBookingDate     = "booking_date" // "2006-01-02"
	dataBookingTime     = "booking_time" // "HH:MM"
	dataBookingService  = "booking_service"
	dataBookingDuration = "booking_duration"
	dataBookingPrice    = "booking_price"
	dataBookingStaff    = "booking_staff"
)

// startBookingDialog начинает диалог записи на свободный слот.
// Дата и время уже выбраны нажатием, остальное собираем по шагам.
func (c *BotController) startBookingDialog(ctx context.Context, b *bot.Bot, chatID int64, date time.Time, clock string) {
	c.states.ClearDialog(chatID)
	c.states.SetData(chatID, dataBookingDate, date.Format("2006-01-02"))
	c.states.SetData(chatID, dataBookingTime, clock)
	c.states.SetDialog(chatID, state.StateBookingService)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: fmt.Sprintf("Записываем на %s в %s.\n\nНазвание услуги?",
			formatting.FormatDayTitle(date), clock),
	})
}

// routeDialog обрабатывает текстовый шаг активного диалога
func (c *BotController) routeDialog(ctx context.Context, b *bot.Bot, msg *models.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// Команды обрабатываются своими handlers
	if strings.HasPrefix(text, "/") {
		return
	}

	switch c.states.GetDialog(chatID) {
	case state.StateBookingService:
		c.stepService(ctx, b, chatID, text)
	case state.StateBookingDuration:
		c.stepDuration(ctx, b, chatID, text)
	case state.StateBookingPrice:
		c.stepPrice(ctx, b, chatID, text)
	case state.StateBookingStaff:
		c.stepStaff(ctx, b, chatID, text)
	default:
		// Нет активного диалога, текст игнорируем
	}
}

func (c *BotController) stepService(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if text == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "Название не может быть пустым. Попробуйте ещё раз."})
		return
	}

	c.states.SetData(chatID, dataBookingService, text)
	c.states.SetDialog(chatID, state.StateBookingDuration)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("Длительность в минутах? (кратно %d, например 45)", timeline.SlotMinutes),
	})
}

func (c *BotController) stepDuration(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	minutes, err := strconv.Atoi(text)
	if err != nil || minutes <= 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "Нужно положительное число минут, например 45."})
		return
	}

	c.states.SetData(chatID, dataBookingDuration, minutes)
	c.states.SetDialog(chatID, state.StateBookingPrice)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Цена в рублях? (0 — без цены)",
	})
}

func (c *BotController) stepPrice(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	rubles, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil || rubles < 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "Нужна цена числом, например 1500."})
		return
	}

	c.states.SetData(chatID, dataBookingPrice, int64(rubles*100))
	c.states.SetDialog(chatID, state.StateBookingStaff)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Имя мастера? («-» — не указывать)",
	})
}

func (c *BotController) stepStaff(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if text == "-" {
		text = ""
	}
	c.states.SetData(chatID, dataBookingStaff, text)
	c.states.SetDialog(chatID, state.StateNone)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        c.bookingSummary(chatID),
		ReplyMarkup: keyboards.BookingConfirm(),
	})
}

// bookingSummary собирает сводку диалога для подтверждения
func (c *BotController) bookingSummary(chatID int64) string {
	dateRaw, _ := c.states.GetData(chatID, dataBookingDate)
	clockRaw, _ := c.states.GetData(chatID, dataBookingTime)
	serviceRaw, _ := c.states.GetData(chatID, dataBookingService)
	durationRaw, _ := c.states.GetData(chatID, dataBookingDuration)
	priceRaw, _ := c.states.GetData(chatID, dataBookingPrice)
	staffRaw, _ := c.states.GetData(chatID, dataBookingStaff)

	var sb strings.Builder
	sb.WriteString("Проверьте запись:\n\n")
	if date, err := time.Parse("2006-01-02", asString(dateRaw)); err == nil {
		fmt.Fprintf(&sb, "📅 %s в %s\n", formatting.FormatDayTitle(date), asString(clockRaw))
	}
	fmt.Fprintf(&sb, "💇 %s\n", asString(serviceRaw))
	if minutes, ok := durationRaw.(int); ok {
		fmt.Fprintf(&sb, "⏱ %s\n", formatting.FormatDuration(minutes))
	}
	if cents, ok := priceRaw.(int64); ok && cents > 0 {
		fmt.Fprintf(&sb, "💰 %s\n", formatting.FormatPrice(cents))
	}
	if staff := asString(staffRaw); staff != "" {
		fmt.Fprintf(&sb, "👤 %s\n", staff)
	}

	return sb.String()
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
