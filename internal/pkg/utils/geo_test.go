package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traffic-analysis-microservice/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	// Bengaluru city center to the airport, roughly 32 km.
	got := utils.HaversineDistance(12.9716, 77.5946, 13.1986, 77.7066)

	assert.InDelta(t, 28.0, got, 2.0)
}

func TestHaversineDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, utils.HaversineDistance(12.9716, 77.5946, 12.9716, 77.5946))
}

func TestPolylineLengthKm(t *testing.T) {
	// Two roughly 1.11 km segments along a meridian (0.01 deg latitude each).
	points := [][2]float64{
		{12.97, 77.59},
		{12.98, 77.59},
		{12.99, 77.59},
	}

	got := utils.PolylineLengthKm(points)

	assert.InDelta(t, 2.22, got, 0.05)
}

func TestPolylineLengthKm_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, utils.PolylineLengthKm(nil))
	assert.Equal(t, 0.0, utils.PolylineLengthKm([][2]float64{{12.97, 77.59}}))
}

func TestDecodePolyline(t *testing.T) {
	// Reference example from the encoded polyline format description.
	points := utils.DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")

	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0][0], 1e-5)
	assert.InDelta(t, -120.2, points[0][1], 1e-5)
	assert.InDelta(t, 40.7, points[1][0], 1e-5)
	assert.InDelta(t, -120.95, points[1][1], 1e-5)
	assert.InDelta(t, 43.252, points[2][0], 1e-5)
	assert.InDelta(t, -126.453, points[2][1], 1e-5)
}

func TestDecodePolyline_Empty(t *testing.T) {
	assert.Empty(t, utils.DecodePolyline(""))
}

func TestDecodePolyline_TruncatedInputKeepsDecodedPrefix(t *testing.T) {
	// First pair is intact, the second is cut mid-varint.
	points := utils.DecodePolyline("_p~iF~ps|U_ulL")

	require.Len(t, points, 1)
	assert.InDelta(t, 38.5, points[0][0], 1e-5)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(12.97, 77.59))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}
