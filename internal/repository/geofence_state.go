package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drive_journal/internal/geofence"
)

// geofenceStateTTL продлевается при каждой записи. Состояние геозоны без
// трафика дольше этого срока забывается, следующая отметка станет первой
const geofenceStateTTL = 30 * 24 * time.Hour

// GeofenceStateStore хранит состояние пар "объект - геозона" в Redis: один хеш
// на геозону, поле - ID объекта, значение "1" (внутри) или "0" (снаружи)
type GeofenceStateStore struct {
	redisClient *redis.Client
}

func NewGeofenceStateStore(redisClient *redis.Client) geofence.StateStore {
	return &GeofenceStateStore{redisClient: redisClient}
}

func geofenceStateKey(geofenceID uuid.UUID) string {
	return redisKeyGeofenceState + ":" + geofenceID.String()
}

// keysByFence группирует пары по геозоне, сохраняя порядок первого появления
func keysByFence(keys []geofence.StateKey) ([]uuid.UUID, map[uuid.UUID][]geofence.StateKey) {
	var order []uuid.UUID
	groups := make(map[uuid.UUID][]geofence.StateKey)
	for _, k := range keys {
		if _, ok := groups[k.GeofenceID]; !ok {
			order = append(order, k.GeofenceID)
		}
		groups[k.GeofenceID] = append(groups[k.GeofenceID], k)
	}
	return order, groups
}

// Load возвращает известные состояния запрошенных пар. Отсутствующие пары в результат не попадают
func (s *GeofenceStateStore) Load(ctx context.Context, keys []geofence.StateKey) (geofence.State, error) {
	state := make(geofence.State, len(keys))
	if len(keys) == 0 {
		return state, nil
	}

	order, groups := keysByFence(keys)
	cmds := make([]*redis.SliceCmd, len(order))
	_, err := s.redisClient.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, fenceID := range order {
			fields := make([]string, len(groups[fenceID]))
			for j, k := range groups[fenceID] {
				fields[j] = k.EntityID
			}
			cmds[i] = pipe.HMGet(ctx, geofenceStateKey(fenceID), fields...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load geofence state: %w", err)
	}

	for i, fenceID := range order {
		for j, v := range cmds[i].Val() {
			str, ok := v.(string)
			if !ok {
				continue
			}
			state[groups[fenceID][j]] = str == "1"
		}
	}
	return state, nil
}

// Save записывает состояние всех переданных пар и продлевает срок жизни хешей
func (s *GeofenceStateStore) Save(ctx context.Context, state geofence.State) error {
	if len(state) == 0 {
		return nil
	}

	values := make(map[uuid.UUID]map[string]any)
	for k, inside := range state {
		if values[k.GeofenceID] == nil {
			values[k.GeofenceID] = make(map[string]any)
		}
		if inside {
			values[k.GeofenceID][k.EntityID] = "1"
		} else {
			values[k.GeofenceID][k.EntityID] = "0"
		}
	}

	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for fenceID, fields := range values {
			key := geofenceStateKey(fenceID)
			pipe.HSet(ctx, key, fields)
			pipe.Expire(ctx, key, geofenceStateTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save geofence state: %w", err)
	}
	return nil
}

// Forget удаляет состояние всех объектов для геозоны
func (s *GeofenceStateStore) Forget(ctx context.Context, geofenceID uuid.UUID) error {
	if err := s.redisClient.Del(ctx, geofenceStateKey(geofenceID)).Err(); err != nil {
		return fmt.Errorf("failed to forget geofence state: %w", err)
	}
	return nil
}
