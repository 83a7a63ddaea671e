package world

import "time"

// Weather is the current sky condition and temperature, updated on every
// clock advance.
type Weather struct {
	Condition   string `json:"condition"`
	Temperature int    `json:"temperature"` // °F
}

// weatherAt samples the noise field at the elapsed-hour coordinate. Smooth
// in time: adjacent hours give similar skies, fronts roll through over
// days.
func (w *World) weatherAt(at time.Time) Weather {
	hours := at.Sub(w.start).Hours()

	sky := w.noise.Eval2(hours*0.03, 0)
	var condition string
	switch {
	case sky < 0.35:
		condition = "sunny"
	case sky < 0.55:
		condition = "partly_cloudy"
	case sky < 0.75:
		condition = "cloudy"
	case sky < 0.92:
		condition = "rainy"
	default:
		condition = "stormy"
	}

	// Daily cycle on top of a slow seasonal drift, roughly 55–85°F.
	drift := w.noise.Eval2(hours*0.005, 40)
	daily := w.noise.Eval2(hours*0.2, 80)
	temp := 55 + int(drift*24) + int(daily*6)

	return Weather{Condition: condition, Temperature: temp}
}
