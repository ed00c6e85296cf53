package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
)

const exportPageSize = 100

var exportHeader = []string{
	"id", "driver_id", "vehicle_id", "started_at", "ended_at",
	"start_address", "end_address", "distance_km", "duration_minutes",
	"purpose", "category", "status", "is_flagged", "flag_reason",
	"reviewed_by", "reviewed_at",
}

// ExportCSV выгружает все поездки, подходящие под фильтр, постранично
func (s *tripService) ExportCSV(ctx context.Context, filter models.TripFilter, w io.Writer) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "trip",
		"method":  "ExportCSV",
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("service: could not write export header: %w", err)
	}

	filter.PageSize = exportPageSize
	total := 0
	for page := 1; ; page++ {
		filter.Page = page
		trips, err := s.repo.List(ctx, filter)
		if err != nil {
			log.WithError(err).WithField("page", page).Error("Failed to list trips for export")
			return fmt.Errorf("service: could not export trips: %w", err)
		}
		for _, t := range trips {
			if err := cw.Write(exportRow(t)); err != nil {
				return fmt.Errorf("service: could not write export row: %w", err)
			}
		}
		total += len(trips)
		if len(trips) < exportPageSize {
			break
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("service: could not flush export: %w", err)
	}

	log.WithField("count", total).Info("Trips exported")
	return nil
}

func exportRow(t *models.Trip) []string {
	reviewedAt := ""
	if t.ReviewedAt != nil {
		reviewedAt = t.ReviewedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		t.ID.String(),
		t.DriverID,
		t.VehicleID,
		t.StartedAt.UTC().Format(time.RFC3339),
		t.EndedAt.UTC().Format(time.RFC3339),
		t.Start.Address,
		t.End.Address,
		strconv.FormatFloat(t.DistanceKm, 'f', 2, 64),
		strconv.FormatFloat(t.DurationMinutes, 'f', 0, 64),
		t.Purpose,
		t.Category,
		t.Status,
		strconv.FormatBool(t.IsFlagged),
		t.FlagReason,
		t.ReviewedBy,
		reviewedAt,
	}
}
