package domain

import (
	"fmt"
	"strconv"
)

// WeatherUnavailable is the display text stored on a task when no snapshot
// could be captured at creation time.
const WeatherUnavailable = "Weather unavailable"

// WeatherSnapshot is the weather state captured once at task creation and
// never refreshed afterwards.
type WeatherSnapshot struct {
	Main  string  `json:"main"`
	Icon  string  `json:"icon"`
	TempC float64 `json:"temp_c"`
}

// Text renders the snapshot in its display form, e.g. "Clouds, 21.5°C".
func (s *WeatherSnapshot) Text() string {
	if s == nil {
		return WeatherUnavailable
	}
	return fmt.Sprintf("%s, %s°C", s.Main, strconv.FormatFloat(s.TempC, 'f', -1, 64))
}
