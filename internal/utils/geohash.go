package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// DefaultGeohashPrecision is ~5km cells, enough to bucket a pickup city area
const DefaultGeohashPrecision uint = 5

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ValidCoordinates reports whether lat/lng are within WGS84 bounds
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// EncodePoint converts a coordinate to a geohash string
func EncodePoint(lat, lng float64, precision uint) string {
	if precision == 0 || precision > 12 {
		precision = DefaultGeohashPrecision
	}
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// NearbyCells returns the cell containing the point plus its eight neighbours
func NearbyCells(lat, lng float64, precision uint) []string {
	cell := EncodePoint(lat, lng, precision)
	return append([]string{cell}, geohash.Neighbors(cell)...)
}

// DecodeGeohash converts a geohash string to the centre of its cell
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
