package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

const geofenceColumns = `
	id,
	name,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	radius_meters,
	is_active,
	auto_category,
	created_at,
	updated_at`

type GeofenceRepository struct {
	db *pgxpool.Pool
}

func NewGeofenceRepository(db *pgxpool.Pool) service.GeofenceRepository {
	return &GeofenceRepository{db: db}
}

// Create создает новую геозону в бд
func (r *GeofenceRepository) Create(ctx context.Context, fence *models.Geofence) error {
	query := `
		INSERT INTO geofences (name, location, radius_meters, is_active, auto_category)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		fence.Name,
		fence.Longitude,
		fence.Latitude,
		fence.RadiusMeters,
		fence.IsActive,
		fence.AutoCategory,
	).Scan(&fence.ID, &fence.CreatedAt, &fence.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create geofence: %w", err)
	}
	return nil
}

// GetByID возвращает геозону по ее UUID
func (r *GeofenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Geofence, error) {
	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE id = $1;`

	fence, err := scanGeofence(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("geofence with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get geofence by id: %w", err)
	}
	return fence, nil
}

func (r *GeofenceRepository) Update(ctx context.Context, fence *models.Geofence) error {
	query := `
		UPDATE geofences SET
			name = $1,
			location = ST_SetSRID(ST_MakePoint($2, $3), 4326),
			radius_meters = $4,
			is_active = $5,
			auto_category = $6,
			updated_at = NOW()
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		fence.Name,
		fence.Longitude,
		fence.Latitude,
		fence.RadiusMeters,
		fence.IsActive,
		fence.AutoCategory,
		fence.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update geofence: %w", err)
	}

	// RowsAffected() == 0 - геозоны с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geofence with id %s for update: %w", fence.ID, models.ErrNotFound)
	}
	return nil
}

// Deactivate выключает геозону, история событий по ней сохраняется
func (r *GeofenceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE geofences SET
			is_active = FALSE,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate geofence: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("geofence with id %s for deactivate: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает список геозон с пагинацией
func (r *GeofenceRepository) List(ctx context.Context, page, pageSize int) ([]*models.Geofence, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `SELECT ` + geofenceColumns + `
		FROM geofences
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`

	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	defer rows.Close()

	return collectGeofences(rows)
}

// ListActive возвращает все активные геозоны
func (r *GeofenceRepository) ListActive(ctx context.Context) ([]models.Geofence, error) {
	query := `SELECT ` + geofenceColumns + ` FROM geofences WHERE is_active;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active geofences: %w", err)
	}
	defer rows.Close()

	fences, err := collectGeofences(rows)
	if err != nil {
		return nil, err
	}
	out := make([]models.Geofence, len(fences))
	for i, f := range fences {
		out[i] = *f
	}
	return out, nil
}

// FindActiveLocation находит активные геозоны, в радиус которых попадает точка
func (r *GeofenceRepository) FindActiveLocation(ctx context.Context, lat, lon float64) ([]*models.Geofence, error) {
	query := `SELECT ` + geofenceColumns + `
		FROM geofences
		WHERE
			is_active
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				radius_meters
			);`

	rows, err := r.db.Query(ctx, query, lon, lat)
	if err != nil {
		return nil, fmt.Errorf("failed to find active geofences by location: %w", err)
	}
	defer rows.Close()

	return collectGeofences(rows)
}

func collectGeofences(rows pgx.Rows) ([]*models.Geofence, error) {
	fences := make([]*models.Geofence, 0)
	for rows.Next() {
		fence, err := scanGeofence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan geofence row: %w", err)
		}
		fences = append(fences, fence)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return fences, nil
}

func scanGeofence(row pgx.Row) (*models.Geofence, error) {
	fence := &models.Geofence{}
	err := row.Scan(
		&fence.ID,
		&fence.Name,
		&fence.Latitude,
		&fence.Longitude,
		&fence.RadiusMeters,
		&fence.IsActive,
		&fence.AutoCategory,
		&fence.CreatedAt,
		&fence.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return fence, nil
}
