package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance returns the great-circle distance between two points in km.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// PolylineLengthKm sums segment distances along an ordered lat/lon path.
func PolylineLengthKm(points [][2]float64) float64 {
	if len(points) < 2 {
		return 0
	}

	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += HaversineDistance(
			points[i][0], points[i][1],
			points[i+1][0], points[i+1][1],
		)
	}
	return total
}

// DecodePolyline decodes a Google-encoded polyline into [lat, lon] pairs.
// Malformed input yields the points decoded so far.
func DecodePolyline(encoded string) [][2]float64 {
	var points [][2]float64
	var lat, lon int64

	i := 0
	for i < len(encoded) {
		dLat, next, ok := decodeVarint(encoded, i)
		if !ok {
			return points
		}
		lat += dLat
		i = next

		dLon, next, ok := decodeVarint(encoded, i)
		if !ok {
			return points
		}
		lon += dLon
		i = next

		points = append(points, [2]float64{
			float64(lat) / 1e5,
			float64(lon) / 1e5,
		})
	}

	return points
}

func decodeVarint(encoded string, i int) (int64, int, bool) {
	var result int64
	var shift uint

	for {
		if i >= len(encoded) {
			return 0, i, false
		}
		b := int64(encoded[i]) - 63
		i++

		result |= (b & 0x1f) << shift
		shift += 5

		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), i, true
	}
	return result >> 1, i, true
}

// ValidateCoordinates checks that a point is a valid WGS84 coordinate.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
