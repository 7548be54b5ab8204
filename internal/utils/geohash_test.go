package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeLocation(t *testing.T) {
	point := GeoPoint{Latitude: -6.2088, Longitude: 106.8456} // Jakarta

	hash := EncodeLocation(point, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, point.Latitude, lat, 0.01)
	assert.InDelta(t, point.Longitude, lng, 0.01)
}

func TestGetNeighbors(t *testing.T) {
	hash := EncodeLocation(GeoPoint{Latitude: -6.2088, Longitude: 106.8456}, 6)
	neighbors := GetNeighbors(hash)
	assert.Len(t, neighbors, 8)
}

func TestCalculateDistance(t *testing.T) {
	jakarta := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}
	bandung := GeoPoint{Latitude: -6.9175, Longitude: 107.6191}

	distance := CalculateDistance(jakarta, bandung)

	// Roughly 115 km between the two city centers
	assert.InDelta(t, 115.0, distance, 10.0)
}

func TestCalculateDistanceSamePoint(t *testing.T) {
	point := GeoPoint{Latitude: -6.2088, Longitude: 106.8456}
	assert.InDelta(t, 0.0, CalculateDistance(point, point), 0.0001)
}
