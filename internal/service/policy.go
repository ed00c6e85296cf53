package service

//go:generate mockgen -source=policy.go -destination=mocks/mock_policy.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/sirupsen/logrus"
)

// PolicyRepository определяет контракт для хранения политики классификации
type PolicyRepository interface {
	Get(ctx context.Context) (*models.Policy, error)
	Save(ctx context.Context, policy *models.Policy) error
	GetPolicyFromCache(ctx context.Context) (*models.Policy, error)
	SetPolicyCache(ctx context.Context, policy *models.Policy) error
	InvalidatePolicyCache(ctx context.Context) error
}

// PolicyService определяет контракт для чтения и изменения политики
type PolicyService interface {
	GetPolicy(ctx context.Context) (*models.Policy, error)
	UpdatePolicy(ctx context.Context, policy *models.Policy) error
}

type policyService struct {
	repo     PolicyRepository
	defaults *models.Policy
	logger   *logrus.Logger
}

// NewPolicyService создает сервис политики. defaults используется, пока политика не сохранена в бд
func NewPolicyService(repo PolicyRepository, defaults *models.Policy, logger *logrus.Logger) PolicyService {
	if defaults == nil {
		defaults = &models.Policy{}
	}
	return &policyService{
		repo:     repo,
		defaults: defaults,
		logger:   logger,
	}
}

// GetPolicy возвращает политику: кеш, затем бд, затем значения по умолчанию
func (s *policyService) GetPolicy(ctx context.Context) (*models.Policy, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "policy",
		"method":  "GetPolicy",
	})

	cached, err := s.repo.GetPolicyFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read policy from cache")
	}
	if cached != nil {
		log.Debug("Policy fetched from cache")
		return cached, nil
	}

	policy, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Info("No stored policy, using defaults")
			def := *s.defaults
			return &def, nil
		}
		log.WithError(err).Error("Failed to get policy from repository")
		return nil, fmt.Errorf("service: could not get policy: %w", err)
	}

	if err := s.repo.SetPolicyCache(ctx, policy); err != nil {
		log.WithError(err).Warn("Failed to cache policy")
	}
	return policy, nil
}

// UpdatePolicy сохраняет политику и сбрасывает кеш
func (s *policyService) UpdatePolicy(ctx context.Context, policy *models.Policy) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "policy",
		"method":  "UpdatePolicy",
	})
	log.Info("Attempting to update policy")

	if err := s.repo.Save(ctx, policy); err != nil {
		log.WithError(err).Error("Failed to save policy in repository")
		return fmt.Errorf("service: could not update policy: %w", err)
	}

	if err := s.repo.InvalidatePolicyCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate policy cache")
	}

	log.Info("Policy updated successfully")
	return nil
}
