package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine
// formula. No projection or geodesic correction is applied; at
// gym-scale distances (<few km) the error is negligible.
const earthRadiusMeters = 6371000.0

// Distance returns the great-circle distance in meters between two
// coordinates using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// ValidCoordinates reports whether lat/lng are in range.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
