package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

const policyCacheTTL = 5 * time.Minute

type PolicyRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewPolicyRepository(db *pgxpool.Pool, redisClient *redis.Client) service.PolicyRepository {
	return &PolicyRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Get возвращает сохраненную политику или models.ErrNotFound
func (r *PolicyRepository) Get(ctx context.Context) (*models.Policy, error) {
	query := `
		SELECT
			work_hours_start,
			work_hours_end,
			work_days,
			timezone,
			offices,
			auto_approve_km,
			purpose_required_km,
			updated_at
		FROM policies
		WHERE id = 1;
	`
	var (
		policy   models.Policy
		workDays []int32
		offices  []byte
	)
	err := r.db.QueryRow(ctx, query).Scan(
		&policy.WorkHoursStart,
		&policy.WorkHoursEnd,
		&workDays,
		&policy.Timezone,
		&offices,
		&policy.AutoApproveKm,
		&policy.PurposeRequiredKm,
		&policy.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("policy: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}

	for _, d := range workDays {
		policy.WorkDays = append(policy.WorkDays, int(d))
	}
	if len(offices) > 0 {
		if err := json.Unmarshal(offices, &policy.Offices); err != nil {
			return nil, fmt.Errorf("failed to unmarshal policy offices: %w", err)
		}
	}
	return &policy, nil
}

// Save сохраняет единственную строку политики
func (r *PolicyRepository) Save(ctx context.Context, policy *models.Policy) error {
	offices, err := json.Marshal(officesOrEmpty(policy.Offices))
	if err != nil {
		return fmt.Errorf("failed to marshal policy offices: %w", err)
	}

	var workDays []int32
	for _, d := range policy.WorkDays {
		workDays = append(workDays, int32(d))
	}

	query := `
		INSERT INTO policies (id, work_hours_start, work_hours_end, work_days, timezone, offices, auto_approve_km, purpose_required_km, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			work_hours_start = EXCLUDED.work_hours_start,
			work_hours_end = EXCLUDED.work_hours_end,
			work_days = EXCLUDED.work_days,
			timezone = EXCLUDED.timezone,
			offices = EXCLUDED.offices,
			auto_approve_km = EXCLUDED.auto_approve_km,
			purpose_required_km = EXCLUDED.purpose_required_km,
			updated_at = NOW()
		RETURNING updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		policy.WorkHoursStart,
		policy.WorkHoursEnd,
		workDays,
		policy.Timezone,
		offices,
		policy.AutoApproveKm,
		policy.PurposeRequiredKm,
	).Scan(&policy.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}
	return nil
}

// GetPolicyFromCache пытается получить политику из Redis. Промах кеша - (nil, nil)
func (r *PolicyRepository) GetPolicyFromCache(ctx context.Context) (*models.Policy, error) {
	val, err := r.redisClient.Get(ctx, redisKeyPolicy).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get policy from cache: %w", err)
	}

	policy := &models.Policy{}
	if err := json.Unmarshal(val, policy); err != nil {
		return nil, fmt.Errorf("failed to unmarshal policy from cache: %w", err)
	}
	return policy, nil
}

// SetPolicyCache сохраняет политику в Redis
func (r *PolicyRepository) SetPolicyCache(ctx context.Context, policy *models.Policy) error {
	val, err := json.Marshal(policy)
	if err != nil {
		return fmt.Errorf("failed to marshal policy for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, redisKeyPolicy, val, policyCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set policy in cache: %w", err)
	}
	return nil
}

// InvalidatePolicyCache удаляет политику из Redis кэша
func (r *PolicyRepository) InvalidatePolicyCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, redisKeyPolicy).Err(); err != nil {
		return fmt.Errorf("failed to invalidate policy cache: %w", err)
	}
	return nil
}

func officesOrEmpty(offices []models.Office) []models.Office {
	if offices == nil {
		return []models.Office{}
	}
	return offices
}
