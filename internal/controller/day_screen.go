package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/cache"
	"github.com/salonberry/schedule_bot/internal/calendarview"
	"github.com/salonberry/schedule_bot/internal/controller/formatting"
	"github.com/salonberry/schedule_bot/internal/controller/keyboards"
	"github.com/salonberry/schedule_bot/internal/model"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

// showDayScreen загружает записи выбранного дня и отрисовывает экран.
// Загрузка идёт через DayLoader: если пока она шла пользователь выбрал
// другой день, опоздавший ответ отбрасывается и экран не затирается.
func (c *BotController) showDayScreen(ctx context.Context, b *bot.Bot, chatID int64) {
	view := c.states.View(chatID)

	c.loaderFor(chatID).Load(ctx, view.SelectedDate(), func(date time.Time, appts []*model.Appointment) {
		current := c.states.View(chatID).SelectedDate()
		if !calendarview.SameDay(date, current) {
			return
		}
		c.renderDayScreen(ctx, b, chatID, date, appts)
	})
}

// renderDayScreen собирает раскладку дня и доставляет её в чат
func (c *BotController) renderDayScreen(ctx context.Context, b *bot.Bot, chatID int64, date time.Time, appts []*model.Appointment) {
	view := c.states.View(chatID)
	layout := c.grid.BuildDayLayout(date, appts, time.Now())

	for _, skipped := range layout.Skipped {
		c.logger.Warn("Appointment excluded from day layout",
			zap.String("id", skipped.Appointment.ID.String()),
			zap.String("reason", skipped.Reason))
	}

	png, err := c.dayPNG(ctx, chatID, date, appts, layout)
	if err != nil {
		c.logger.Error("Failed to render day image", zap.Error(err))
		return
	}

	keyboard := keyboards.DayScreen(view, layout, c.busyCounts(ctx, chatID, view))
	caption := dayCaption(date, len(layout.Blocks))

	c.deliverDayScreen(ctx, b, chatID, png, caption, keyboard)
}

// dayPNG возвращает PNG дня из кэша или отрисовывает его заново
func (c *BotController) dayPNG(ctx context.Context, chatID int64, date time.Time, appts []*model.Appointment, layout timeline.DayLayout) ([]byte, error) {
	// Линия текущего времени делает отрисовку сегодняшнего дня
	// зависимой от минуты, кэшировать её нельзя
	cacheable := !layout.CursorVisible
	hash := cache.SnapshotHash(appts)

	if cacheable {
		if png, ok := c.imageCache.Get(ctx, chatID, date, hash); ok {
			return png, nil
		}
	}

	png, err := timeline.RenderDayImage(layout, c.grid)
	if err != nil {
		return nil, err
	}

	if cacheable {
		c.imageCache.Set(ctx, chatID, date, hash, png)
	}

	return png, nil
}

// deliverDayScreen редактирует существующее сообщение экрана дня
// или отправляет новое
func (c *BotController) deliverDayScreen(ctx context.Context, b *bot.Bot, chatID int64, png []byte, caption string, keyboard *models.InlineKeyboardMarkup) {
	if messageID := c.dayMessageID(chatID); messageID != 0 {
		_, err := b.EditMessageMedia(ctx, &bot.EditMessageMediaParams{
			ChatID:    chatID,
			MessageID: messageID,
			Media: &models.InputMediaPhoto{
				Media:           "attach://day.png",
				MediaAttachment: bytes.NewReader(png),
				Caption:         caption,
			},
			ReplyMarkup: keyboard,
		})
		if err == nil {
			return
		}
		c.logger.Debug("Day screen edit failed, sending new message", zap.Error(err))
	}

	msg, err := b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:      chatID,
		Photo:       &models.InputFileUpload{Filename: "day.png", Data: bytes.NewReader(png)},
		Caption:     caption,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		c.logger.Error("Failed to send day screen", zap.Error(err))
		return
	}

	c.setDayMessageID(chatID, msg.ID)
}

// updateCalendarKeyboard перестраивает только клавиатуру экрана дня —
// для переключений панели, не меняющих саму картинку
func (c *BotController) updateCalendarKeyboard(ctx context.Context, b *bot.Bot, chatID int64) {
	messageID := c.dayMessageID(chatID)
	if messageID == 0 {
		c.showDayScreen(ctx, b, chatID)
		return
	}

	view := c.states.View(chatID)
	appts, err := c.appointments.GetDay(ctx, chatID, view.SelectedDate())
	if err != nil {
		c.logger.Error("Failed to fetch day for keyboard update", zap.Error(err))
		return
	}

	layout := c.grid.BuildDayLayout(view.SelectedDate(), appts, time.Now())
	keyboard := keyboards.DayScreen(view, layout, c.busyCounts(ctx, chatID, view))

	_, err = b.EditMessageReplyMarkup(ctx, &bot.EditMessageReplyMarkupParams{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		c.logger.Debug("Keyboard update failed", zap.Error(err))
	}
}

// busyCounts возвращает занятость дней, видимых календарной панелью
func (c *BotController) busyCounts(ctx context.Context, chatID int64, view *calendarview.ViewState) map[string]int {
	var from, to time.Time

	if view.Mode() == calendarview.ModeExpanded {
		weeks := calendarview.MonthGrid(view.MonthAnchor())
		from = weeks[0][0]
		to = weeks[len(weeks)-1][6].AddDate(0, 0, 1)
	} else {
		days := calendarview.WeekStrip(view.SelectedDate())
		from = days[0]
		to = days[6].AddDate(0, 0, 1)
	}

	counts, err := c.appointments.DayCounts(ctx, chatID, from, to)
	if err != nil {
		c.logger.Warn("Failed to count appointments for calendar", zap.Error(err))
		return nil
	}
	return counts
}

// RefreshOpenDays пересчитывает экраны, показывающие сегодняшний день, —
// линия текущего времени должна ползти без действий пользователя.
// Вызывается планировщиком раз в минуту.
func (c *BotController) RefreshOpenDays(ctx context.Context) {
	now := time.Now()

	for _, chatID := range c.states.Chats() {
		if c.dayMessageID(chatID) == 0 {
			continue
		}

		view := c.states.View(chatID)
		if !calendarview.SameDay(view.SelectedDate(), now) {
			continue
		}

		if _, visible := c.grid.CursorOffset(now, view.SelectedDate()); !visible {
			continue
		}

		c.showDayScreen(ctx, c.bot, chatID)
	}
}

// dayCaption строит подпись экрана дня
func dayCaption(date time.Time, blocks int) string {
	return fmt.Sprintf("📅 %s — %s", formatting.FormatDayTitle(date), pluralizeAppointments(blocks))
}

// pluralizeAppointments склоняет число записей
func pluralizeAppointments(n int) string {
	mod10 := n % 10
	mod100 := n % 100

	switch {
	case n == 0:
		return "записей нет"
	case mod10 == 1 && mod100 != 11:
		return fmt.Sprintf("%d запись", n)
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return fmt.Sprintf("%d записи", n)
	default:
		return fmt.Sprintf("%d записей", n)
	}
}
