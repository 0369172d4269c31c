package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	l := NewLimiter(cfg)
	l.now = clock.Now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestBucket_TakeAndRefill(t *testing.T) {
	now := time.Now()
	b := newBucket(10, 1.0, now)

	for i := 0; i < 10; i++ {
		assert.True(t, b.take(now), "request %d", i+1)
	}
	assert.False(t, b.take(now))

	now = now.Add(1100 * time.Millisecond)
	assert.True(t, b.take(now))
	assert.False(t, b.take(now))
}

func TestBucket_ResetTimes(t *testing.T) {
	now := time.Now()
	b := newBucket(10, 1.0, now)
	for i := 0; i < 5; i++ {
		b.take(now)
	}

	assert.Equal(t, now.Add(5*time.Second), b.resetAt(now))
	assert.Equal(t, now, b.nextTokenAt(now))
}

func TestLimiter_Allow(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 10, info.Limit)
		assert.Equal(t, 9-i, info.Remaining)
	}

	allowed, info := l.Allow("127.0.0.1", "/test", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 6*time.Second, info.RetryAfter)
}

func TestLimiter_RefillsOverTime(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 60, DefaultWindow: time.Minute})
	l.config.EndpointConfigs = []EndpointConfig{{Path: "/render", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1}}

	allowed, _ := l.Allow("c", "/render", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("c", "/render", "POST")
	require.False(t, allowed)

	clock.Advance(time.Second)
	allowed, _ = l.Allow("c", "/render", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Whitelist(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	})

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("127.0.0.1", "/test", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"192.168.1.1": true},
	})

	allowed, _ := l.Allow("192.168.1.1", "/test", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: false})

	for i := 0; i < 100; i++ {
		allowed, info := l.Allow("127.0.0.1", "/render", "POST")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(5, 5),
	})

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("127.0.0.1", "/render", "POST")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 5, info.Limit)
	}
	allowed, info := l.Allow("127.0.0.1", "/render", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 5, info.Limit)

	allowed, info = l.Allow("127.0.0.1", "/validate", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 25, info.Limit)

	allowed, info = l.Allow("127.0.0.1", "/other", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute})

	allowed, _ := l.Allow("a", "/test", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/test", "GET")
	assert.False(t, allowed)
	allowed, _ = l.Allow("b", "/test", "GET")
	assert.True(t, allowed)
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Minute})

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := l.Allow("127.0.0.1", "/test", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowedCount)
}

func TestLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTimeout:   time.Hour,
	})

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/test", "GET")
		require.True(t, allowed)
	}

	clock.Advance(59 * time.Minute)
	for i := 0; i < 5; i++ {
		l.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/test", "GET")
	}

	clock.Advance(2 * time.Minute)
	l.cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 5)
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute, CleanupInterval: time.Millisecond})
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l, _ := newTestLimiter(t, nil)

	allowed, info := l.Allow("127.0.0.1", "/test", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs(10, 2)

	tests := []struct {
		path, method string
		wantLimit    int
		wantNil      bool
	}{
		{"/health", "GET", 0, false},
		{"/styles", "GET", 0, false},
		{"/render", "POST", 10, false},
		{"/validate", "POST", 50, false},
		{"/renders/123", "GET", 300, false},
		{"/render", "GET", 0, true},
		{"/unknown", "POST", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			cfg := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantLimit, cfg.Limit)
		})
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_RENDER_LIMIT", "7")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.Equal(t, 7, MatchEndpoint("/render", "POST", cfg.EndpointConfigs).Limit)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
