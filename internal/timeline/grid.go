package timeline

// Константы сетки рабочего дня
const (
	// SlotMinutes — шаг сетки, все записи выравниваются по 15 минут
	SlotMinutes  = 15
	SlotsPerHour = 60 / SlotMinutes

	DefaultStartHour  = 9
	DefaultEndHour    = 18
	DefaultSlotHeight = 48.0
)

// Config описывает окно рабочего дня и геометрию сетки.
// Значения передаются явно при создании, без глобального состояния.
type Config struct {
	StartHour  int     // начало рабочего дня, часы
	EndHour    int     // конец рабочего дня, слот на этой границе — последний
	SlotHeight float64 // высота одного слота в пикселях
}

// DefaultConfig возвращает конфигурацию стандартного рабочего дня 09:00-18:00
func DefaultConfig() Config {
	return Config{
		StartHour:  DefaultStartHour,
		EndHour:    DefaultEndHour,
		SlotHeight: DefaultSlotHeight,
	}
}

// StartMinutes возвращает начало окна в минутах от полуночи
func (c Config) StartMinutes() int {
	return c.StartHour * 60
}

// EndMinutes возвращает конец окна в минутах от полуночи
func (c Config) EndMinutes() int {
	return c.EndHour * 60
}

// SlotCount возвращает число слотов сетки, включая слот на границе окна.
// Для окна 09:00-18:00 это 37 слотов.
func (c Config) SlotCount() int {
	return (c.EndMinutes()-c.StartMinutes())/SlotMinutes + 1
}

// SlotIndex возвращает индекс слота для минут от полуночи
func (c Config) SlotIndex(minutes int) int {
	return (minutes - c.StartMinutes()) / SlotMinutes
}

// Contains проверяет, попадают ли минуты в рабочее окно [start, end)
func (c Config) Contains(minutes int) bool {
	return minutes >= c.StartMinutes() && minutes < c.EndMinutes()
}

// TimeSlot — одна линия сетки. Генерируется, а не хранится.
type TimeSlot struct {
	Hour   int
	Minute int
}

// Minutes возвращает время слота в минутах от полуночи
func (s TimeSlot) Minutes() int {
	return s.Hour*60 + s.Minute
}

// Label возвращает подпись слота вида "09:15"
func (s TimeSlot) Label() string {
	return FormatClock(s.Minutes())
}

// GenerateSlots генерирует упорядоченную последовательность слотов дня.
// Порядок стабилен между вызовами, чтобы пиксельные смещения не плыли
// от кадра к кадру.
func (c Config) GenerateSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, c.SlotCount())
	for m := c.StartMinutes(); m <= c.EndMinutes(); m += SlotMinutes {
		slots = append(slots, TimeSlot{Hour: m / 60, Minute: m % 60})
	}
	return slots
}
