// Package geo projects airport coordinates onto the flat route map.
package geo

import (
	"math"

	"github.com/skytrack/flight-tracker/internal/domain"
)

const (
	// EarthRadius is the WGS84 semi-major axis in meters.
	EarthRadius = 6378137.0

	// halfRadius is EarthRadius / 2, the factor of the logarithmic y form.
	halfRadius = 3189068.5

	// X0 is the western edge of the projected world in meters.
	X0 = -2.0037508342789248e7

	// MaxLatitude is where the projected y reaches -X0, the edge of the square map.
	// Poleward latitudes are clamped to it; the poles themselves would project to ±Inf.
	MaxLatitude = 85.05112877980659
)

// Project maps a latitude/longitude pair to spherical Mercator meters.
// (0, 0) maps to (0, 0). Every valid coordinate projects to finite values.
func Project(lat, lon float64) (x, y float64, err error) {
	if math.Abs(lat) > 90 || math.Abs(lon) > 180 || math.IsNaN(lat) || math.IsNaN(lon) {
		return 0, 0, &domain.InvalidCoordinateError{Lat: lat, Lon: lon}
	}

	x = lon * (math.Pi / 180) * EarthRadius

	lat = math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
	sin := math.Sin(lat * math.Pi / 180)
	y = halfRadius * math.Log((1+sin)/(1-sin))

	return x, y, nil
}

// Normalize maps value affinely so that min -> 0 and max -> 1.
// The result is not clamped; min == max yields NaN or ±Inf.
func Normalize(value, min, max float64) float64 {
	return (value - min) / (max - min)
}

// ProjectNormalized projects a coordinate and normalizes it into map space.
// x runs west to east, y runs north to south.
func ProjectNormalized(lat, lon float64) (x, y float64, err error) {
	px, py, err := Project(lat, lon)
	if err != nil {
		return 0, 0, err
	}
	return Normalize(px, X0, -X0), Normalize(py, -X0, X0), nil
}
