package geo

import "math"

const (
	earthRadiusMeters = 6371000

	// DefaultRadiusMeters используется для зон без заданного радиуса
	DefaultRadiusMeters = 500
)

// Point - географическая точка в градусах
type Point struct {
	Lat float64
	Lon float64
}

// Circle - круговая зона: центр и радиус в метрах
type Circle struct {
	Center       Point
	RadiusMeters float64
}

// Distance возвращает расстояние по большой окружности в метрах (формула гаверсинусов).
// Некорректные координаты дают NaN
func Distance(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Within проверяет, попадает ли точка в зону (граница включительно).
// NaN в расстоянии всегда дает false
func Within(p Point, c Circle) bool {
	return Distance(p, c.Center) <= c.RadiusMeters
}

// WithinAny возвращает true на первой зоне, в которую попадает точка
func WithinAny(p Point, circles []Circle) bool {
	for _, c := range circles {
		if Within(p, c) {
			return true
		}
	}
	return false
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
