package repository

// RedisNamespace - префикс ключей проекта в Redis
const RedisNamespace = "drive_journal"

const (
	redisKeyPolicy        = RedisNamespace + ":policy"
	redisKeyGeofenceState = RedisNamespace + ":geofence_state"
	redisKeyGPSToken      = RedisNamespace + ":gps:token"
)
