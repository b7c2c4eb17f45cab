package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger создаёт логгер под окружение: JSON в production,
// цветной консольный вывод при разработке
func NewLogger(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build(zap.Fields(zap.String("service", "schedule_bot")))
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}
