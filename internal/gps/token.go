package gps

import (
	"context"
	"sync"
	"time"
)

// tokenSkew - запас до истечения, после которого токен считается непригодным
const tokenSkew = 30 * time.Second

// Token - сессионный токен API поставщика GPS
type Token struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid сообщает, можно ли использовать токен в момент now
func (t *Token) Valid(now time.Time) bool {
	return t != nil && t.Value != "" && now.Add(tokenSkew).Before(t.ExpiresAt)
}

// TokenCache хранит токен между опросами. Отсутствие токена - (nil, nil)
type TokenCache interface {
	Get(ctx context.Context) (*Token, error)
	Set(ctx context.Context, token Token) error
	Clear(ctx context.Context) error
}

// MemoryTokenCache - кеш в памяти процесса
type MemoryTokenCache struct {
	mu    sync.Mutex
	token *Token
}

func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{}
}

func (c *MemoryTokenCache) Get(_ context.Context) (*Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return nil, nil
	}
	t := *c.token
	return &t, nil
}

func (c *MemoryTokenCache) Set(_ context.Context, token Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = &token
	return nil
}

func (c *MemoryTokenCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = nil
	return nil
}
