package timeline

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/salonberry/schedule_bot/internal/model"
)

// Константы размеров и отступов холста дня
const (
	imageWidth      = 760
	headerHeight    = 64
	leftLabelsWidth = 72
	rightPadding    = 16
	bottomPadding   = 24
	blockPaddingX   = 3.0
	blockPaddingY   = 1.5
	blockRadius     = 5.0
	shadowOffset    = 2.0
)

// Цветовая схема
var (
	dayBgColor       = color.RGBA{245, 246, 248, 255}
	headerTextColor  = color.RGBA{70, 74, 78, 255}
	slotLineColor    = color.NRGBA{205, 208, 212, 255}
	hourLineColor    = color.NRGBA{160, 164, 168, 255}
	hourLabelColor   = color.RGBA{110, 115, 120, 220}
	cursorColor      = color.NRGBA{255, 80, 80, 220}
	blockShadowColor = color.RGBA{0, 0, 0, 22}
	blockTextColor   = color.RGBA{25, 30, 35, 235}

	confirmedColor = color.RGBA{151, 201, 120, 235}
	pendingColor   = color.RGBA{245, 205, 120, 235}
)

// RenderDayImage отрисовывает раскладку дня в PNG: часовая сетка слева,
// блоки записей в своих колонках, красная линия текущего времени.
func RenderDayImage(layout DayLayout, cfg Config) ([]byte, error) {
	if len(layout.Slots) == 0 {
		return nil, fmt.Errorf("layout has no slots")
	}

	gridHeight := float64(len(layout.Slots)-1) * cfg.SlotHeight
	imageHeight := int(float64(headerHeight) + gridHeight + bottomPadding)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(dayBgColor)
	dc.Clear()

	drawDayHeader(dc, layout)
	drawGridLines(dc, layout, cfg)
	drawBlocks(dc, layout, cfg)
	drawCursorLine(dc, layout)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode day image: %w", err)
	}
	return buf.Bytes(), nil
}

// timelineWidth возвращает ширину области записей в пикселях
func timelineWidth() float64 {
	return float64(imageWidth - leftLabelsWidth - rightPadding)
}

// drawDayHeader рисует заголовок с датой
func drawDayHeader(dc *gg.Context, layout DayLayout) {
	title := layout.Date.Format("02.01.2006")
	dc.SetColor(headerTextColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2, 0.5, 0.5)
}

// drawGridLines рисует линии слотов и подписи часов слева
func drawGridLines(dc *gg.Context, layout DayLayout, cfg Config) {
	for i, slot := range layout.Slots {
		y := float64(headerHeight) + float64(i)*cfg.SlotHeight

		onHour := slot.Minute == 0
		if onHour {
			dc.SetColor(hourLineColor)
			dc.SetLineWidth(0.8)
		} else {
			dc.SetColor(slotLineColor)
			dc.SetLineWidth(0.3)
		}
		dc.DrawLine(float64(leftLabelsWidth), y, float64(imageWidth-rightPadding), y)
		dc.Stroke()

		if onHour {
			dc.SetColor(hourLabelColor)
			dc.DrawStringAnchored(slot.Label(), float64(leftLabelsWidth)-8, y, 1, 0.35)
		}
	}
}

// drawBlocks рисует блоки записей в их колонках
func drawBlocks(dc *gg.Context, layout DayLayout, cfg Config) {
	areaWidth := timelineWidth()

	for _, block := range layout.Blocks {
		x := float64(leftLabelsWidth) + areaWidth*block.Geometry.LeftPercent/100 + blockPaddingX
		y := float64(headerHeight) + block.Geometry.Top + blockPaddingY
		w := areaWidth*block.Geometry.WidthPercent/100 - blockPaddingX*2
		h := block.Geometry.Height - blockPaddingY*2

		// Тень
		dc.SetColor(blockShadowColor)
		dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, w, h, blockRadius)
		dc.Fill()

		fill := appointmentColor(block.Appointment.Status)
		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x, y, w, h, blockRadius)
		dc.Fill()

		dc.SetColor(darkenColor(fill, 0.75))
		dc.SetLineWidth(1)
		dc.DrawRoundedRectangle(x, y, w, h, blockRadius)
		dc.Stroke()

		drawBlockText(dc, block, x, y, w, h)
	}
}

// drawBlockText подписывает блок временем и услугой, если есть место
func drawBlockText(dc *gg.Context, block Block, x, y, w, h float64) {
	start, err := ParseClock(block.Appointment.Time)
	if err != nil {
		return
	}
	end := CalculateEndTime(start, block.Appointment.DurationMinutes)

	dc.SetColor(blockTextColor)
	label := FormatClock(start) + "-" + FormatClock(end)
	dc.DrawStringAnchored(label, x+6, y+11, 0, 0.3)

	if block.Appointment.ServiceName != "" && h > 28 {
		service := block.Appointment.ServiceName
		maxChars := int(w / 8)
		if maxChars > 3 && len(service) > maxChars {
			service = service[:maxChars-3] + "..."
		}
		dc.DrawStringAnchored(service, x+6, y+25, 0, 0.3)
	}
}

// drawCursorLine рисует линию текущего времени, когда она применима
func drawCursorLine(dc *gg.Context, layout DayLayout) {
	if !layout.CursorVisible {
		return
	}

	y := float64(headerHeight) + layout.CursorOffset
	dc.SetColor(cursorColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(float64(leftLabelsWidth), y, float64(imageWidth-rightPadding), y)
	dc.Stroke()
}

// appointmentColor возвращает цвет блока по статусу записи
func appointmentColor(status model.AppointmentStatus) color.RGBA {
	switch status {
	case model.AppointmentStatusConfirmed:
		return confirmedColor
	case model.AppointmentStatusPending:
		return pendingColor
	default:
		return pendingColor
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
