package travel

import "fmt"

// FormatDuration renders raw seconds as "1時間30分", omitting the hour
// component when zero ("45分").
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	minutes := seconds / 60
	hours := minutes / 60
	minutes %= 60

	if hours > 0 {
		return fmt.Sprintf("%d時間%d分", hours, minutes)
	}
	return fmt.Sprintf("%d分", minutes)
}

// FormatDistance renders raw meters as kilometers to one decimal place
// from 1000 m up ("2.0 km"), otherwise whole meters ("600 m").
func FormatDistance(meters int) string {
	if meters < 0 {
		meters = 0
	}

	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", float64(meters)/1000)
	}
	return fmt.Sprintf("%d m", meters)
}
