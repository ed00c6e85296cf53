package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

const tripColumns = `
	id,
	driver_id,
	vehicle_id,
	started_at,
	ended_at,
	start_address,
	start_lat,
	start_lon,
	end_address,
	end_lat,
	end_lon,
	distance_km,
	duration_minutes,
	purpose,
	category,
	is_flagged,
	flag_reason,
	status,
	reviewed_by,
	reviewed_at,
	evaluated_at,
	created_at,
	updated_at`

type TripRepository struct {
	db *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) service.TripRepository {
	return &TripRepository{db: db}
}

// Create создает новую запись о поездке в бд
func (r *TripRepository) Create(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			driver_id, vehicle_id, started_at, ended_at,
			start_address, start_lat, start_lon,
			end_address, end_lat, end_lon,
			distance_km, duration_minutes, purpose, category, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		trip.DriverID,
		trip.VehicleID,
		trip.StartedAt,
		trip.EndedAt,
		trip.Start.Address,
		trip.Start.Latitude,
		trip.Start.Longitude,
		trip.End.Address,
		trip.End.Latitude,
		trip.End.Longitude,
		trip.DistanceKm,
		trip.DurationMinutes,
		trip.Purpose,
		trip.Category,
		trip.Status,
	).Scan(&trip.ID, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetByID возвращает поездку по ее UUID
func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1;`

	trip, err := scanTrip(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("trip with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip by id: %w", err)
	}
	return trip, nil
}

// Update обновляет данные поездки, введенные водителем или администратором
func (r *TripRepository) Update(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips SET
			driver_id = $1,
			vehicle_id = $2,
			started_at = $3,
			ended_at = $4,
			start_address = $5,
			start_lat = $6,
			start_lon = $7,
			end_address = $8,
			end_lat = $9,
			end_lon = $10,
			distance_km = $11,
			duration_minutes = $12,
			purpose = $13,
			evaluated_at = NULL,
			updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		trip.DriverID,
		trip.VehicleID,
		trip.StartedAt,
		trip.EndedAt,
		trip.Start.Address,
		trip.Start.Latitude,
		trip.Start.Longitude,
		trip.End.Address,
		trip.End.Latitude,
		trip.End.Longitude,
		trip.DistanceKm,
		trip.DurationMinutes,
		trip.Purpose,
		trip.ID,
	).Scan(&trip.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("trip with id %s for update: %w", trip.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return nil
}

// SaveClassification сохраняет категорию, флаг и статус согласования поездки
// и отмечает ее оцененной
func (r *TripRepository) SaveClassification(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips SET
			category = $1,
			is_flagged = $2,
			flag_reason = $3,
			status = $4,
			reviewed_by = $5,
			reviewed_at = $6,
			evaluated_at = NOW(),
			updated_at = NOW()
		WHERE id = $7
		RETURNING evaluated_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		trip.Category,
		trip.IsFlagged,
		trip.FlagReason,
		trip.Status,
		trip.ReviewedBy,
		trip.ReviewedAt,
		trip.ID,
	).Scan(&trip.EvaluatedAt, &trip.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("trip with id %s for classification: %w", trip.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to save trip classification: %w", err)
	}
	return nil
}

// SaveReview сохраняет ручное решение. Отметка оценки не меняется
func (r *TripRepository) SaveReview(ctx context.Context, trip *models.Trip) error {
	query := `
		UPDATE trips SET
			status = $1,
			reviewed_by = $2,
			reviewed_at = $3,
			updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		trip.Status,
		trip.ReviewedBy,
		trip.ReviewedAt,
		trip.ID,
	).Scan(&trip.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("trip with id %s for review: %w", trip.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to save trip review: %w", err)
	}
	return nil
}

// MarkEvaluated снимает поездку с очереди классификатора без изменения результата.
// Нужна для записей, оценка которых завершилась ошибкой
func (r *TripRepository) MarkEvaluated(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE trips SET evaluated_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to mark trip evaluated: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip with id %s for evaluation mark: %w", id, models.ErrNotFound)
	}
	return nil
}

// Delete удаляет поездку
func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip with id %s for delete: %w", id, models.ErrNotFound)
	}
	return nil
}

// List возвращает поездки по фильтру с пагинацией
func (r *TripRepository) List(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error) {
	where, args := tripFilterClause(filter)

	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, pageSize, (page-1)*pageSize)

	query := fmt.Sprintf(`SELECT %s FROM trips %s ORDER BY started_at DESC LIMIT $%d OFFSET $%d;`,
		tripColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

// unevaluatedTripsQuery выбирает очередь классификатора. Поездку, оставшуюся
// unclassified после оценки, выборка больше не возвращает
const unevaluatedTripsQuery = `SELECT ` + tripColumns + `
		FROM trips
		WHERE evaluated_at IS NULL
		ORDER BY started_at ASC
		LIMIT $1;`

// ListUnevaluated возвращает поездки, которые еще не оценивались правилами или
// изменились после оценки, начиная со старых
func (r *TripRepository) ListUnevaluated(ctx context.Context, limit int) ([]*models.Trip, error) {
	rows, err := r.db.Query(ctx, unevaluatedTripsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unevaluated trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

// CountStats возвращает количество поездок по категориям и статусам
func (r *TripRepository) CountStats(ctx context.Context) (*models.TripStats, error) {
	query := `
		SELECT category, status, is_flagged, COUNT(*)
		FROM trips
		GROUP BY category, status, is_flagged;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count trip stats: %w", err)
	}
	defer rows.Close()

	stats := &models.TripStats{
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
	}
	for rows.Next() {
		var (
			category, status string
			flagged          bool
			count            int
		)
		if err := rows.Scan(&category, &status, &flagged, &count); err != nil {
			return nil, fmt.Errorf("failed to scan trip stats row: %w", err)
		}
		stats.ByCategory[category] += count
		stats.ByStatus[status] += count
		if flagged {
			stats.Flagged += count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

func tripFilterClause(filter models.TripFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.DriverID != "" {
		add("driver_id = $%d", filter.DriverID)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.Flagged != nil {
		add("is_flagged = $%d", *filter.Flagged)
	}
	if filter.From != nil {
		add("started_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("started_at < $%d", *filter.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func collectTrips(rows pgx.Rows) ([]*models.Trip, error) {
	trips := make([]*models.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return trips, nil
}

func scanTrip(row pgx.Row) (*models.Trip, error) {
	trip := &models.Trip{}
	err := row.Scan(
		&trip.ID,
		&trip.DriverID,
		&trip.VehicleID,
		&trip.StartedAt,
		&trip.EndedAt,
		&trip.Start.Address,
		&trip.Start.Latitude,
		&trip.Start.Longitude,
		&trip.End.Address,
		&trip.End.Latitude,
		&trip.End.Longitude,
		&trip.DistanceKm,
		&trip.DurationMinutes,
		&trip.Purpose,
		&trip.Category,
		&trip.IsFlagged,
		&trip.FlagReason,
		&trip.Status,
		&trip.ReviewedBy,
		&trip.ReviewedAt,
		&trip.EvaluatedAt,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return trip, nil
}
