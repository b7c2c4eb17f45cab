package controller

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (c *BotController) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text: "Привет! Я помогу вести расписание записей.\n\n" +
			"Ниже — ваш день: занятые слоты показаны на картинке, " +
			"свободные — кнопками. Нажмите на свободное время, чтобы " +
			"создать запись, или на существующую запись, чтобы открыть её.",
	})

	c.showDayScreen(ctx, b, chatID)
}

func (c *BotController) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: "Команды:\n" +
			"/today — открыть сегодняшний день\n" +
			"/day 2026-09-02 — открыть конкретный день\n" +
			"/cancel — прервать текущий диалог\n\n" +
			"Календарная панель над расписанием переключается кнопкой " +
			"«Развернуть»: свёрнутая показывает неделю, развёрнутая — месяц. " +
			"Выбор дня в месячном календаре сворачивает его.",
	})
}

// handleToday возвращает экран на сегодняшний день
func (c *BotController) handleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	c.states.View(chatID).SelectDay(time.Now())
	c.showDayScreen(ctx, b, chatID)
}

// handleDay открывает экран указанного дня: /day 2026-09-02
func (c *BotController) handleDay(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	arg := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/day"))
	date, err := time.Parse("2006-01-02", arg)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Укажите дату в формате ГГГГ-ММ-ДД, например: /day 2026-09-02",
		})
		return
	}

	c.states.View(chatID).SelectDay(date)
	c.showDayScreen(ctx, b, chatID)
}

// handleCancelDialog прерывает диалог записи
func (c *BotController) handleCancelDialog(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := update.Message.Chat.ID

	c.states.ClearDialog(chatID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Диалог прерван.",
	})
}
