package board

import "github.com/mobil-koeln/bart-cli/internal/models"

// Classification thresholds
const (
	urgentMinutes  = 5
	warningMinutes = 10
	shortTrainCars = 6
	longTrainCars  = 8
)

// MinutesColor classifies a minutes-to-arrival value. Non-numeric values such as
// "Leaving" mean the train is at the platform and are urgent.
func MinutesColor(minutes string) Color {
	n, ok := models.ParseMinutes(minutes)
	switch {
	case !ok, n <= urgentMinutes:
		return Urgent
	case n <= warningMinutes:
		return Warning
	default:
		return ColorNone
	}
}

// LengthColor classifies a train by its number of cars
func LengthColor(cars int) Color {
	switch {
	case cars < shortTrainCars:
		return Warning
	case cars >= longTrainCars:
		return Good
	default:
		return ColorNone
	}
}

// LineColor maps a route color reported by the API onto the palette
func LineColor(c models.LineColor) Color {
	switch c {
	case models.LineRed:
		return ColorRed
	case models.LineOrange:
		return ColorOrange
	case models.LineYellow:
		return ColorYellow
	case models.LineGreen:
		return ColorGreen
	case models.LineBlue:
		return ColorBlue
	case models.LineWhite:
		return ColorWhite
	default:
		return ColorNone
	}
}
