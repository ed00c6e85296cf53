package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestPolicyService(t *testing.T, defaults *models.Policy) (*policyService, *mocks.MockPolicyRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPolicyRepository(ctrl)

	service := NewPolicyService(repoMock, defaults, testLogger())
	return service.(*policyService), repoMock
}

func TestGetPolicy_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPolicyService(t, nil)
	ctx := context.Background()
	cached := &models.Policy{AutoApproveKm: floatPtr(20)}

	// Ожидания
	repoMock.EXPECT().GetPolicyFromCache(ctx).Return(cached, nil).Times(1)

	// Действие
	policy, err := service.GetPolicy(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, policy)
}

func TestGetPolicy_FromDBAndCached(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPolicyService(t, nil)
	ctx := context.Background()
	stored := &models.Policy{WorkDays: []int{1, 2, 3}}

	// Ожидания
	repoMock.EXPECT().GetPolicyFromCache(ctx).Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().Get(ctx).Return(stored, nil).Times(1)
	repoMock.EXPECT().SetPolicyCache(ctx, stored).Return(nil).Times(1)

	// Действие
	policy, err := service.GetPolicy(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stored, policy)
}

func TestGetPolicy_DefaultsWhenNotStored(t *testing.T) {
	// Подготовка
	defaults := &models.Policy{WorkHoursStart: strPtr("08:00"), WorkHoursEnd: strPtr("17:00")}
	service, repoMock := newTestPolicyService(t, defaults)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetPolicyFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().Get(ctx).Return(nil, models.ErrNotFound).Times(1)

	// Действие
	policy, err := service.GetPolicy(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, defaults, policy)
	assert.NotSame(t, defaults, policy)
}

func TestGetPolicy_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPolicyService(t, nil)
	ctx := context.Background()
	dbErr := fmt.Errorf("connection refused")

	// Ожидания
	repoMock.EXPECT().GetPolicyFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().Get(ctx).Return(nil, dbErr).Times(1)

	// Действие
	policy, err := service.GetPolicy(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, policy)
	assert.ErrorIs(t, err, dbErr)
}

func TestUpdatePolicy_InvalidatesCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPolicyService(t, nil)
	ctx := context.Background()
	policy := &models.Policy{AutoApproveKm: floatPtr(30)}

	// Ожидания
	gomock.InOrder(
		repoMock.EXPECT().Save(ctx, policy).Return(nil).Times(1),
		repoMock.EXPECT().InvalidatePolicyCache(ctx).Return(nil).Times(1),
	)

	// Действие
	err := service.UpdatePolicy(ctx, policy)

	// Проверки
	require.NoError(t, err)
}

func TestUpdatePolicy_SaveError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestPolicyService(t, nil)
	ctx := context.Background()
	policy := &models.Policy{}

	// Ожидания
	repoMock.EXPECT().Save(ctx, policy).Return(errors.New("db error")).Times(1)
	repoMock.EXPECT().InvalidatePolicyCache(gomock.Any()).Times(0)

	// Действие
	err := service.UpdatePolicy(ctx, policy)

	// Проверки
	require.Error(t, err)
}
