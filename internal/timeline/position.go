package timeline

// Geometry задаёт абсолютное пиксельное размещение блока на холсте дня.
// Горизонталь — в процентах ширины области, вертикаль — в пикселях.
type Geometry struct {
	Top          float64
	Height       float64
	LeftPercent  float64
	WidthPercent float64
}

// SlotsSpanned возвращает число слотов, занимаемых длительностью.
// Запись короче одного слота всё равно занимает ровно один слот.
func SlotsSpanned(durationMinutes int) int {
	spanned := (durationMinutes + SlotMinutes - 1) / SlotMinutes
	if spanned < 1 {
		spanned = 1
	}
	return spanned
}

// MapToGeometry переводит слот и назначение колонки в геометрию блока.
// Обрезкой за пределами контейнера занимается вызывающая сторона.
func (c Config) MapToGeometry(durationMinutes int, assignment ColumnAssignment, slotIndex int) Geometry {
	width := 100.0 / float64(assignment.ColumnCount)

	return Geometry{
		Top:          float64(slotIndex) * c.SlotHeight,
		Height:       float64(SlotsSpanned(durationMinutes)) * c.SlotHeight,
		LeftPercent:  float64(assignment.ColumnIndex) * width,
		WidthPercent: width,
	}
}
