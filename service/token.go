package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
	"github.com/redis/go-redis/v9"
)

// tokenExpiryMargin is subtracted from the lifetime PayPal reports for a token
const tokenExpiryMargin = 30 * time.Second

// CachedToken is an OAuth access token for the PayPal REST API
type CachedToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthorizationHeader is the value of the Authorization header for the token
func (t *CachedToken) AuthorizationHeader() string {
	return fmt.Sprintf("%s %s", t.TokenType, t.AccessToken)
}

// TokenSource fetches a fresh access token from PayPal
type TokenSource interface {
	FetchToken(ctx context.Context) (*paypal.TokenResponse, error)
}

// TokenProvider hands out a valid access token
type TokenProvider interface {
	Token(ctx context.Context) (*CachedToken, error)
}

// TokenCache stores access tokens between requests. Get returns nil when no
// token is cached under the key.
type TokenCache interface {
	Get(ctx context.Context, key string) (*CachedToken, error)
	Set(ctx context.Context, key string, token *CachedToken, ttl time.Duration) error
}

// PayPalTokenSource fetches tokens using the client credentials of a PayPal client
type PayPalTokenSource struct {
	Client *paypal.Client
}

// FetchToken requests a new access token from PayPal
func (s *PayPalTokenSource) FetchToken(ctx context.Context) (*paypal.TokenResponse, error) {
	return s.Client.GetAccessToken(ctx)
}

// CachedTokenProvider returns the cached token while it is valid and fetches
// and caches a new one otherwise
type CachedTokenProvider struct {
	Source TokenSource
	Cache  TokenCache
	Key    string
	Now    func() time.Time
}

func (p *CachedTokenProvider) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Token returns a valid access token
func (p *CachedTokenProvider) Token(ctx context.Context) (*CachedToken, error) {
	cached, err := p.Cache.Get(ctx, p.Key)
	if err != nil {
		log.Error(fmt.Errorf("error reading paypal access token from cache: [%v]", err), log.Data{"key": p.Key})
	} else if cached != nil && p.now().Before(cached.ExpiresAt) {
		return cached, nil
	}

	res, err := p.Source.FetchToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}
	if res == nil || res.Token == "" {
		return nil, errors.New("error getting access token: [empty token in response]")
	}

	ttl := time.Duration(res.ExpiresIn)*time.Second - tokenExpiryMargin
	token := &CachedToken{
		AccessToken: res.Token,
		TokenType:   res.Type,
		ExpiresAt:   p.now().Add(ttl),
	}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}

	if ttl <= 0 {
		return token, nil
	}

	if err := p.Cache.Set(ctx, p.Key, token, ttl); err != nil {
		log.Error(fmt.Errorf("error caching paypal access token: [%v]", err), log.Data{"key": p.Key})
	}

	log.Debug("cached new paypal access token", log.Data{"key": p.Key, "expires_at": token.ExpiresAt})

	return token, nil
}

// RedisTokenCache keeps tokens in Redis so all instances of the service share them
type RedisTokenCache struct {
	Client redis.Cmdable
}

// Get reads a token from Redis
func (c *RedisTokenCache) Get(ctx context.Context, key string) (*CachedToken, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var token CachedToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("error reading cached token: [%v]", err)
	}
	return &token, nil
}

// Set writes a token to Redis, expiring after ttl
func (c *RedisTokenCache) Set(ctx context.Context, key string, token *CachedToken, ttl time.Duration) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, data, ttl).Err()
}

type memoryTokenEntry struct {
	token     CachedToken
	expiresAt time.Time
}

// MemoryTokenCache keeps tokens in process memory. The zero value is ready to use.
type MemoryTokenCache struct {
	mu      sync.Mutex
	entries map[string]memoryTokenEntry
	Now     func() time.Time
}

// NewMemoryTokenCache creates an empty in-memory token cache
func NewMemoryTokenCache() *MemoryTokenCache {
	return &MemoryTokenCache{entries: make(map[string]memoryTokenEntry), Now: time.Now}
}

// Get returns the token stored under key unless it has expired
func (c *MemoryTokenCache) Get(_ context.Context, key string) (*CachedToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		return nil, nil
	}
	token := entry.token
	return &token, nil
}

// Set stores a copy of the token under key
func (c *MemoryTokenCache) Set(_ context.Context, key string, token *CachedToken, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[string]memoryTokenEntry)
	}
	c.entries[key] = memoryTokenEntry{token: *token, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *MemoryTokenCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
