package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

type PositionRepository struct {
	db *pgxpool.Pool
}

func NewPositionRepository(db *pgxpool.Pool) service.PositionRepository {
	return &PositionRepository{db: db}
}

// SaveBatch сохраняет отметки одной пачкой
func (r *PositionRepository) SaveBatch(ctx context.Context, samples []models.PositionSample) error {
	if len(samples) == 0 {
		return nil
	}

	query := `
		INSERT INTO positions (entity_id, location, speed_kmh, recorded_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5);
	`
	batch := &pgx.Batch{}
	for _, s := range samples {
		batch.Queue(query, s.EntityID, s.Longitude, s.Latitude, s.SpeedKmh, s.RecordedAt)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save positions: %w", err)
	}
	return nil
}

// History возвращает трек объекта за период
func (r *PositionRepository) History(ctx context.Context, entityID string, from, to time.Time) ([]models.PositionSample, error) {
	query := `
		SELECT
			id,
			entity_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			speed_kmh,
			recorded_at
		FROM positions
		WHERE entity_id = $1 AND recorded_at >= $2 AND recorded_at < $3
		ORDER BY recorded_at ASC;
	`
	rows, err := r.db.Query(ctx, query, entityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get position history: %w", err)
	}
	defer rows.Close()

	samples := make([]models.PositionSample, 0)
	for rows.Next() {
		var s models.PositionSample
		if err := rows.Scan(&s.ID, &s.EntityID, &s.Latitude, &s.Longitude, &s.SpeedKmh, &s.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position row: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error history iteration: %w", err)
	}
	return samples, nil
}

// CountActiveEntities возвращает количество объектов, присылавших отметки за последние minutes минут
func (r *PositionRepository) CountActiveEntities(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT entity_id)
		FROM positions
		WHERE recorded_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count active entities: %w", err)
	}
	return count, nil
}
