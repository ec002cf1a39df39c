package service

import "math"

// forecastNextHours predicts the next hours value for one client from its
// chronologically ordered history.
//
// With two or more points it fits an ordinary least-squares line of hours
// against sequence index 0..n-1 and extrapolates to index n. A single
// point forecasts itself; an empty history forecasts 0. The result is
// rounded to one decimal place.
func forecastNextHours(hours []float64) float64 {
	n := len(hours)
	switch n {
	case 0:
		return 0
	case 1:
		return round1(hours[0])
	}

	// Closed-form simple linear regression over x = 0..n-1.
	meanX := float64(n-1) / 2
	var meanY float64
	for _, y := range hours {
		meanY += y
	}
	meanY /= float64(n)

	var num, den float64
	for i, y := range hours {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}

	slope := num / den
	intercept := meanY - slope*meanX
	return round1(intercept + slope*float64(n))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
