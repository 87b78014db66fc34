package search

// Fixed fare model: every train averages the same speed and every
// kilometre costs the same.
const (
    AverageSpeedKmph = 50
    PricePerKm       = 1.25
)

// PriceAndDuration converts an aggregated distance into presentation
// values. Hours and minutes are floored, not rounded, so outputs stay
// stable for a given distance.
func PriceAndDuration(distanceKm int) (hours, minutes int, price float64) {
    totalHours := float64(distanceKm) / AverageSpeedKmph
    hours = int(totalHours)
    minutes = int((totalHours - float64(hours)) * 60)
    price = float64(distanceKm) * PricePerKm
    return hours, minutes, price
}
