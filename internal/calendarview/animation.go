package calendarview

// AnimationTarget — целевые значения анимации панели для режима.
// Чистая функция состояния: при быстром переключении побеждает цель
// последнего состояния, прерывая любую незавершённую анимацию.
type AnimationTarget struct {
	PanelHeight    float64
	ChevronDegrees float64
	Opacity        float64
}

// AnimationConfig — геометрия панели в обоих режимах
type AnimationConfig struct {
	CollapsedHeight float64
	ExpandedHeight  float64
	DurationMillis  int
}

// DefaultAnimationConfig возвращает стандартную геометрию панели
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		CollapsedHeight: 72,
		ExpandedHeight:  320,
		DurationMillis:  220,
	}
}

// TargetFor возвращает цель анимации для режима панели
func TargetFor(mode Mode, cfg AnimationConfig) AnimationTarget {
	if mode == ModeExpanded {
		return AnimationTarget{
			PanelHeight:    cfg.ExpandedHeight,
			ChevronDegrees: 180,
			Opacity:        1,
		}
	}
	return AnimationTarget{
		PanelHeight:    cfg.CollapsedHeight,
		ChevronDegrees: 0,
		Opacity:        0,
	}
}
