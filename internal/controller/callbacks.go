package controller

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/controller/formatting"
	"github.com/salonberry/schedule_bot/internal/controller/keyboards"
	"github.com/salonberry/schedule_bot/internal/service"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

// routeCallback распределяет callback query по обработчикам
func (c *BotController) routeCallback(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery) {
	data := callback.Data

	c.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID))

	msg := messageFromCallback(callback)
	if msg == nil {
		answerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}
	chatID := msg.Chat.ID

	switch {
	case data == keyboards.Noop:
		answerCallback(ctx, b, callback.ID, "")

	case data == keyboards.CalToggle:
		c.handleCalendarToggle(ctx, b, callback, chatID)

	case strings.HasPrefix(data, keyboards.CalDay):
		c.handleCalendarDay(ctx, b, callback, chatID, strings.TrimPrefix(data, keyboards.CalDay))

	case strings.HasPrefix(data, keyboards.CalMonth):
		c.handleCalendarMonth(ctx, b, callback, chatID, strings.TrimPrefix(data, keyboards.CalMonth))

	case strings.HasPrefix(data, keyboards.TapSlot):
		c.handleSlotTap(ctx, b, callback, chatID, strings.TrimPrefix(data, keyboards.TapSlot))

	case strings.HasPrefix(data, keyboards.TapAppt):
		c.handleAppointmentTap(ctx, b, callback, chatID, strings.TrimPrefix(data, keyboards.TapAppt))

	case strings.HasPrefix(data, keyboards.ApptConfirm):
		c.handleAppointmentConfirm(ctx, b, callback, chatID, strings.TrimPrefix(data, keyboards.ApptConfirm))

	case strings.HasPrefix(data, keyboards.ApptCancel):
		c.handleAppointmentCancel(ctx, b, callback, chatID, strings.TrimPrefix(data, keyboards.ApptCancel))

	case data == keyboards.BookConfirm:
		c.handleBookingConfirm(ctx, b, callback, chatID)

	case data == keyboards.BookAbort:
		c.states.ClearDialog(chatID)
		answerCallback(ctx, b, callback.ID, "Отменено")

	default:
		c.logger.Warn("Unknown callback", zap.String("data", data))
		answerCallback(ctx, b, callback.ID, "")
	}
}

// handleCalendarToggle переключает панель неделя/месяц
func (c *BotController) handleCalendarToggle(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64) {
	c.states.View(chatID).Toggle()
	answerCallback(ctx, b, callback.ID, "")
	c.updateCalendarKeyboard(ctx, b, chatID)
}

// handleCalendarDay обрабатывает выбор дня на панели
func (c *BotController) handleCalendarDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64, raw string) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Неверная дата")
		return
	}

	answerCallback(ctx, b, callback.ID, "")

	if c.states.View(chatID).SelectDay(date) {
		// День сменился: прежние назначения колонок недействительны,
		// экран строится заново из свежего снимка
		c.showDayScreen(ctx, b, chatID)
	} else {
		c.updateCalendarKeyboard(ctx, b, chatID)
	}
}

// handleCalendarMonth листает развёрнутый календарь по месяцам
func (c *BotController) handleCalendarMonth(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64, raw string) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Неверная дата")
		return
	}

	c.states.View(chatID).BrowseMonth(date)
	answerCallback(ctx, b, callback.ID, "")
	c.updateCalendarKeyboard(ctx, b, chatID)
}

// handleSlotTap — нажатие на свободный слот сетки
func (c *BotController) handleSlotTap(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64, raw string) {
	slotIndex, err := strconv.Atoi(raw)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	dispatcher, err := c.dispatcherFor(ctx, b, chatID)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Не удалось загрузить день")
		return
	}

	if !dispatcher.TapSlot(slotIndex) {
		// Слот успели занять с момента отрисовки клавиатуры
		answerCallbackAlert(ctx, b, callback.ID, "Это время уже занято, обновляю экран")
		c.showDayScreen(ctx, b, chatID)
		return
	}

	answerCallback(ctx, b, callback.ID, "")
}

// handleAppointmentTap — нажатие на блок записи
func (c *BotController) handleAppointmentTap(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64, raw string) {
	id, err := uuid.Parse(raw)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	dispatcher, err := c.dispatcherFor(ctx, b, chatID)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Не удалось загрузить день")
		return
	}

	if !dispatcher.TapAppointment(id) {
		answerCallbackAlert(ctx, b, callback.ID, "Записи уже нет, обновляю экран")
		c.showDayScreen(ctx, b, chatID)
		return
	}

	answerCallback(ctx, b, callback.ID, "")
}

// dispatcherFor строит диспетчер нажатий по свежей раскладке дня
func (c *BotController) dispatcherFor(ctx context.Context, b *bot.Bot, chatID int64) (*timeline.Dispatcher, error) {
	view := c.states.View(chatID)

	appts, err := c.appointments.GetDay(ctx, chatID, view.SelectedDate())
	if err != nil {
		return nil, err
	}

	layout := c.grid.BuildDayLayout(view.SelectedDate(), appts, time.Now())
	return timeline.NewDispatcher(layout, tapEvents{c: c, ctx: ctx, b: b, chatID: chatID}), nil
}

// tapEvents реализует обратные вызовы движка для одного нажатия
type tapEvents struct {
	c      *BotController
	ctx    context.Context
	b      *bot.Bot
	chatID int64
}

func (e tapEvents) SlotTapped(date time.Time, clock string) {
	e.c.startBookingDialog(e.ctx, e.b, e.chatID, date, clock)
}

func (e tapEvents) AppointmentTapped(id uuid.UUID) {
	e.c.showAppointmentDetail(e.ctx, e.b, e.chatID, id)
}

// showAppointmentDetail отправляет карточку записи
func (c *BotController) showAppointmentDetail(ctx context.Context, b *bot.Bot, chatID int64, id uuid.UUID) {
	appointment, err := c.appointments.GetByID(ctx, id)
	if err != nil || appointment == nil {
		c.logger.Warn("Appointment detail unavailable", zap.String("id", id.String()), zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: "Запись не найдена."})
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "💇 %s\n\n", appointment.ServiceName)
	fmt.Fprintf(&sb, "📅 %s\n", formatting.FormatDate(appointment.Date))

	if start, err := timeline.ParseClock(appointment.Time); err == nil {
		end := timeline.CalculateEndTime(start, appointment.DurationMinutes)
		fmt.Fprintf(&sb, "🕒 %s-%s (%s)\n",
			timeline.FormatClock(start),
			timeline.FormatClock(end),
			formatting.FormatDuration(appointment.DurationMinutes))
	}

	if appointment.PriceCents > 0 {
		fmt.Fprintf(&sb, "💰 %s\n", formatting.FormatPrice(appointment.PriceCents))
	}
	if appointment.StaffName != "" {
		fmt.Fprintf(&sb, "👤 %s\n", appointment.StaffName)
	}
	fmt.Fprintf(&sb, "\n%s", formatting.StatusLabel(appointment.Status))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        sb.String(),
		ReplyMarkup: keyboards.AppointmentDetail(appointment),
	})
}

// handleAppointmentConfirm подтверждает запись
func (c *BotController) handleAppointmentConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64, raw string) {
	id, err := uuid.Parse(raw)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	if err := c.appointments.Confirm(ctx, id); err != nil {
		c.logger.Error("Failed to confirm appointment", zap.Error(err))
		answerCallbackAlert(ctx, b, callback.ID, "❌ Не удалось подтвердить")
		return
	}

	answerCallback(ctx, b, callback.ID, "Запись подтверждена ✅")
	c.showDayScreen(ctx, b, chatID)
}

// handleAppointmentCancel отменяет запись: она удаляется из расписания
func (c *BotController) handleAppointmentCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64, raw string) {
	id, err := uuid.Parse(raw)
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	if err := c.appointments.Cancel(ctx, id); err != nil {
		c.logger.Error("Failed to cancel appointment", zap.Error(err))
		answerCallbackAlert(ctx, b, callback.ID, "❌ Не удалось отменить")
		return
	}

	answerCallback(ctx, b, callback.ID, "Запись отменена")
	c.showDayScreen(ctx, b, chatID)
}

// handleBookingConfirm создаёт запись из собранных диалогом данных
func (c *BotController) handleBookingConfirm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, chatID int64) {
	dateRaw, okDate := c.states.GetData(chatID, dataBookingDate)
	clockRaw, okClock := c.states.GetData(chatID, dataBookingTime)
	serviceRaw, okService := c.states.GetData(chatID, dataBookingService)
	durationRaw, okDuration := c.states.GetData(chatID, dataBookingDuration)

	if !okDate || !okClock || !okService || !okDuration {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Диалог устарел, начните заново")
		c.states.ClearDialog(chatID)
		return
	}

	date, err := time.Parse("2006-01-02", asString(dateRaw))
	if err != nil {
		answerCallbackAlert(ctx, b, callback.ID, "❌ Диалог устарел, начните заново")
		c.states.ClearDialog(chatID)
		return
	}

	input := service.CreateAppointmentInput{
		ChatID:          chatID,
		Date:            date,
		Time:            asString(clockRaw),
		ServiceName:     asString(serviceRaw),
		DurationMinutes: asInt(durationRaw),
	}
	if cents, ok := c.states.GetData(chatID, dataBookingPrice); ok {
		input.PriceCents, _ = cents.(int64)
	}
	if staff, ok := c.states.GetData(chatID, dataBookingStaff); ok {
		input.StaffName = asString(staff)
	}

	if _, err := c.appointments.Create(ctx, input); err != nil {
		c.logger.Error("Failed to create appointment", zap.Error(err))
		answerCallbackAlert(ctx, b, callback.ID, "❌ Не удалось создать запись: "+err.Error())
		return
	}

	c.states.ClearDialog(chatID)
	answerCallback(ctx, b, callback.ID, "Запись создана ✅")
	c.showDayScreen(ctx, b, chatID)
}

func asInt(v interface{}) int {
	n, _ := v.(int)
	return n
}

// answerCallback отвечает на callback query без alert
func answerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// answerCallbackAlert отвечает на callback query всплывающим окном
func answerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// messageFromCallback извлекает сообщение из callback query
func messageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}
