package controller

import (
	"context"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/cache"
	"github.com/salonberry/schedule_bot/internal/controller/state"
	"github.com/salonberry/schedule_bot/internal/model"
	"github.com/salonberry/schedule_bot/internal/service"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

// BotController связывает Telegram-бота с движком раскладки дня
type BotController struct {
	bot          *bot.Bot
	appointments *service.AppointmentService
	imageCache   *cache.ImageCache
	grid         timeline.Config
	states       *state.Manager
	logger       *zap.Logger

	mu          sync.Mutex
	dayMessages map[int64]int                // chatID -> id сообщения с экраном дня
	loaders     map[int64]*service.DayLoader // chatID -> загрузчик дня со стражем гонок
}

func NewBotController(
	botInstance *bot.Bot,
	appointments *service.AppointmentService,
	imageCache *cache.ImageCache,
	grid timeline.Config,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:          botInstance,
		appointments: appointments,
		imageCache:   imageCache,
		grid:         grid,
		states:       state.NewManager(),
		logger:       logger,
		dayMessages:  make(map[int64]int),
		loaders:      make(map[int64]*service.DayLoader),
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypeExact, c.handleToday)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/day", bot.MatchTypePrefix, c.handleDay)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handleCancelDialog)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.handleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

func (c *BotController) handleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	c.routeDialog(ctx, b, update.Message)
}

func (c *BotController) handleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	c.routeCallback(ctx, b, update.CallbackQuery)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "today", Description: "📅 Расписание на сегодня"},
		{Command: "cancel", Description: "✖️ Прервать текущий диалог"},
		{Command: "help", Description: "❓ Справка"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}

// loaderFor возвращает загрузчик дня для чата, создавая его при
// первом обращении
func (c *BotController) loaderFor(chatID int64) *service.DayLoader {
	c.mu.Lock()
	defer c.mu.Unlock()

	loader, exists := c.loaders[chatID]
	if !exists {
		fetch := func(ctx context.Context, date time.Time) ([]*model.Appointment, error) {
			return c.appointments.GetDay(ctx, chatID, date)
		}
		loader = service.NewDayLoader(fetch, c.logger)
		c.loaders[chatID] = loader
	}
	return loader
}

// dayMessageID возвращает id сообщения с экраном дня, 0 если его нет
func (c *BotController) dayMessageID(chatID int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dayMessages[chatID]
}

func (c *BotController) setDayMessageID(chatID int64, messageID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dayMessages[chatID] = messageID
}
