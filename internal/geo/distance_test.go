package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePoint(t *testing.T) {
	points := []Point{
		{Lat: 59.33, Lon: 18.06},
		{Lat: -6.2088, Lon: 106.8456},
		{Lat: 0, Lon: 0},
		{Lat: 89.9, Lon: -179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{{Lat: 59.33, Lon: 18.06}, {Lat: 59.40, Lon: 18.20}},
		{{Lat: -6.2088, Lon: 106.8456}, {Lat: -6.2100, Lon: 106.8456}},
		{{Lat: 51.5, Lon: -0.12}, {Lat: 40.71, Lon: -74.0}},
	}
	for _, p := range pairs {
		assert.InDelta(t, Distance(p[0], p[1]), Distance(p[1], p[0]), 1e-6)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// 0.0012 градуса широты ~ 133 м
	d := Distance(Point{Lat: -6.2088, Lon: 106.8456}, Point{Lat: -6.2100, Lon: 106.8456})
	assert.InDelta(t, 133.4, d, 1)

	// один градус по экватору
	d = Distance(Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 1})
	assert.InDelta(t, 111195, d, 1)
}

func TestDistance_NaN(t *testing.T) {
	d := Distance(Point{Lat: math.NaN(), Lon: 18.06}, Point{Lat: 59.33, Lon: 18.06})
	assert.True(t, math.IsNaN(d))
	assert.False(t, Within(Point{Lat: math.NaN(), Lon: 0}, Circle{RadiusMeters: 1e9}))
}

func TestWithin_Boundary(t *testing.T) {
	center := Point{Lat: 59.33, Lon: 18.06}
	edge := Point{Lat: 59.33, Lon: 18.07}
	radius := Distance(center, edge)

	assert.True(t, Within(edge, Circle{Center: center, RadiusMeters: radius}))
	assert.False(t, Within(edge, Circle{Center: center, RadiusMeters: radius - 1}))
}

func TestWithinAny(t *testing.T) {
	circles := []Circle{
		{Center: Point{Lat: -7.0, Lon: 107.0}, RadiusMeters: 50},
		{Center: Point{Lat: -6.2088, Lon: 106.8456}, RadiusMeters: 50},
	}

	assert.True(t, WithinAny(Point{Lat: -6.2088, Lon: 106.8456}, circles))
	assert.False(t, WithinAny(Point{Lat: -8.0, Lon: 108.0}, circles))
	assert.False(t, WithinAny(Point{Lat: -6.2088, Lon: 106.8456}, nil))
}
