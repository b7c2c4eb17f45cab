package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/salonberry/schedule_bot/internal/model"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

func main() {
	// Создаем тестовые данные
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	appts := []*model.Appointment{
		{
			ID:              uuid.New(),
			Date:            today,
			Time:            "09:30",
			DurationMinutes: 45,
			Status:          model.AppointmentStatusConfirmed,
			ServiceName:     "Стрижка",
		},
		// Пересекающаяся пара: делит ширину колонок
		{
			ID:              uuid.New(),
			Date:            today,
			Time:            "11:00",
			DurationMinutes: 60,
			Status:          model.AppointmentStatusConfirmed,
			ServiceName:     "Окрашивание",
		},
		{
			ID:              uuid.New(),
			Date:            today,
			Time:            "11:30",
			DurationMinutes: 45,
			Status:          model.AppointmentStatusPending,
			ServiceName:     "Маникюр",
		},
		{
			ID:              uuid.New(),
			Date:            today,
			Time:            "15:00",
			DurationMinutes: 90,
			Status:          model.AppointmentStatusPending,
			ServiceName:     "Массаж",
		},
	}

	grid := timeline.DefaultConfig()
	layout := grid.BuildDayLayout(today, appts, now)

	// Генерируем изображение
	imageData, err := timeline.RenderDayImage(layout, grid)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "day.png"
	err = os.WriteFile(filename, imageData, 0644)
	if err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 День: %s\n", today.Format("02.01.2006"))
	fmt.Printf("📊 Блоков: %d, свободных слотов: %d\n", len(layout.Blocks), len(layout.FreeTargets))
}
