package classifier

import (
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/drive_journal/internal/geo"
	"github.com/shenikar/drive_journal/internal/models"
)

// Пороговые значения, не зависящие от политики
const (
	MaxTripKm        = 500
	MaxTripMinutes   = 480
	MinPurposeLength = 5
)

// Rules - разрешенное представление политики. Отсутствующие или некорректные поля
// политики превращаются в "нет ограничения":
//   - WorkDays == nil: рабочий каждый день
//   - HasWindow == false: любое время суток рабочее
//   - Location == nil: используется зона самой отметки времени
//   - AutoApproveKm == 0: автосогласование выключено
//   - PurposeRequiredKm == 0: цель поездки не обязательна
type Rules struct {
	WorkDays          map[time.Weekday]bool
	HasWindow         bool
	WindowStart       int
	WindowEnd         int
	Location          *time.Location
	Offices           []geo.Circle
	AutoApproveKm     float64
	PurposeRequiredKm float64
}

// Resolve строит Rules из политики и текущего набора геозон. Никогда не возвращает ошибку
func Resolve(p *models.Policy, fences []models.Geofence) Rules {
	var r Rules
	if p != nil {
		r.WorkDays = resolveWorkDays(p.WorkDays)
		r.WindowStart, r.WindowEnd, r.HasWindow = resolveWindow(p.WorkHoursStart, p.WorkHoursEnd)
		r.Location = resolveLocation(p.Timezone)
		r.AutoApproveKm = positive(p.AutoApproveKm)
		r.PurposeRequiredKm = positive(p.PurposeRequiredKm)

		for _, o := range p.Offices {
			radius := float64(geo.DefaultRadiusMeters)
			if o.RadiusMeters != nil && *o.RadiusMeters > 0 {
				radius = *o.RadiusMeters
			}
			r.Offices = append(r.Offices, geo.Circle{
				Center:       geo.Point{Lat: o.Latitude, Lon: o.Longitude},
				RadiusMeters: radius,
			})
		}
	}

	for _, f := range fences {
		if !f.IsActive || f.AutoCategory != models.CategoryBusiness {
			continue
		}
		radius := f.RadiusMeters
		if radius <= 0 {
			radius = geo.DefaultRadiusMeters
		}
		r.Offices = append(r.Offices, geo.Circle{
			Center:       geo.Point{Lat: f.Latitude, Lon: f.Longitude},
			RadiusMeters: radius,
		})
	}
	return r
}

// IsWorkTime проверяет день недели и время суток отметки по правилам
func (r Rules) IsWorkTime(t time.Time) bool {
	if r.Location != nil {
		t = t.In(r.Location)
	}
	if r.WorkDays != nil && !r.WorkDays[t.Weekday()] {
		return false
	}
	if !r.HasWindow {
		return true
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= r.WindowStart && minute <= r.WindowEnd
}

// NearOffice проверяет, находится ли точка в радиусе хотя бы одного офиса
func (r Rules) NearOffice(p geo.Point) bool {
	return geo.WithinAny(p, r.Offices)
}

func resolveWorkDays(days []int) map[time.Weekday]bool {
	if len(days) == 0 {
		return nil
	}
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		if d >= 0 && d <= 6 {
			set[time.Weekday(d)] = true
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func resolveWindow(start, end *string) (int, int, bool) {
	if start == nil || end == nil {
		return 0, 0, false
	}
	s, ok := ParseClock(*start)
	if !ok {
		return 0, 0, false
	}
	e, ok := ParseClock(*end)
	if !ok {
		return 0, 0, false
	}
	return s, e, true
}

func resolveLocation(tz *string) *time.Location {
	if tz == nil || *tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(*tz)
	if err != nil {
		return nil
	}
	return loc
}

func positive(v *float64) float64 {
	if v == nil || *v <= 0 {
		return 0
	}
	return *v
}

// ParseClock разбирает строку "HH:MM" в минуты от начала суток
func ParseClock(s string) (int, bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
