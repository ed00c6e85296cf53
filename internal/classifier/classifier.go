package classifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/drive_journal/internal/geo"
	"github.com/shenikar/drive_journal/internal/models"
)

// SystemReviewer указывается в поездках, согласованных автоматически
const SystemReviewer = "system"

// Result - итог оценки одной поездки
type Result struct {
	Category    string
	FlagReasons []string
	Approved    bool
	ReviewedBy  string
	ReviewedAt  time.Time
}

// Flagged сообщает, требует ли поездка внимания человека
func (r Result) Flagged() bool {
	return len(r.FlagReasons) > 0
}

// FlagReason склеивает причины в одну строку
func (r Result) FlagReason() string {
	return strings.Join(r.FlagReasons, "; ")
}

// Classify оценивает поездку по правилам. Результат зависит только от поездки,
// правил и now; прежняя категория и флаг поездки не учитываются
func Classify(trip models.Trip, rules Rules, now time.Time) Result {
	res := Result{
		Category:    categorize(trip, rules),
		FlagReasons: flags(trip, rules),
	}

	if trip.Status == models.StatusPending &&
		rules.AutoApproveKm > 0 &&
		trip.DistanceKm < rules.AutoApproveKm &&
		!res.Flagged() &&
		res.Category != models.CategoryUnclassified {
		res.Approved = true
		res.ReviewedBy = SystemReviewer
		res.ReviewedAt = now
	}
	return res
}

// Apply переносит результат оценки в поездку. Сохранение остается за вызывающим
func Apply(trip *models.Trip, res Result) {
	trip.Category = res.Category
	trip.IsFlagged = res.Flagged()
	trip.FlagReason = res.FlagReason()
	if res.Approved {
		reviewedAt := res.ReviewedAt
		trip.Status = models.StatusApproved
		trip.ReviewedBy = res.ReviewedBy
		trip.ReviewedAt = &reviewedAt
	}
}

// RevokeAutoApproval возвращает автоматически согласованную поездку в ожидание,
// чтобы ее можно было оценить заново. Ручные решения не трогаются
func RevokeAutoApproval(trip *models.Trip) bool {
	if trip.Status != models.StatusApproved || trip.ReviewedBy != SystemReviewer {
		return false
	}
	trip.Status = models.StatusPending
	trip.ReviewedBy = ""
	trip.ReviewedAt = nil
	return true
}

func categorize(trip models.Trip, rules Rules) string {
	workTime := rules.IsWorkTime(trip.StartedAt)
	if workTime && (nearOffice(trip.Start, rules) || nearOffice(trip.End, rules)) {
		return models.CategoryBusiness
	}
	if !workTime {
		return models.CategoryPrivate
	}
	// рабочее время, но вдали от офисов: решает человек
	return models.CategoryUnclassified
}

func nearOffice(p models.TripPoint, rules Rules) bool {
	if !p.HasCoordinates() {
		return false
	}
	return rules.NearOffice(geo.Point{Lat: *p.Latitude, Lon: *p.Longitude})
}

func flags(trip models.Trip, rules Rules) []string {
	var reasons []string
	if strings.TrimSpace(trip.DriverID) == "" {
		reasons = append(reasons, "missing driver")
	}
	if rules.PurposeRequiredKm > 0 && trip.DistanceKm > rules.PurposeRequiredKm &&
		len([]rune(strings.TrimSpace(trip.Purpose))) < MinPurposeLength {
		reasons = append(reasons, fmt.Sprintf("missing purpose for trip over %gkm", rules.PurposeRequiredKm))
	}
	if trip.DistanceKm > MaxTripKm {
		reasons = append(reasons, fmt.Sprintf("unusually long trip (>%dkm)", MaxTripKm))
	}
	if trip.DurationMinutes > MaxTripMinutes {
		reasons = append(reasons, fmt.Sprintf("unusually long duration (>%dh)", MaxTripMinutes/60))
	}
	return reasons
}
