package store

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/refi/refi-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		Inputs: sampleInputs(),
		Scenarios: domain.ScenarioSet{
			CurrentMinimum: domain.Schedule{{Month: 1, BeginningBalance: 1000, Interest: 5, Payment: 505, Principal: 500}},
		},
		Summary: domain.SummaryMetrics{
			CurrentMinimumPayment: domain.Some(505),
			NewPrincipal:          1000,
		},
	}
}

func TestCacheKey(t *testing.T) {
	a, err := CacheKey(sampleInputs())
	require.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := CacheKey(sampleInputs())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	changed := sampleInputs()
	changed.NewRate = 3.125
	c, err := CacheKey(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestCacheKey_NonFiniteInputs(t *testing.T) {
	in := sampleInputs()
	in.CurrentBalance = domain.Amount(math.Inf(1))
	_, err := CacheKey(in)
	assert.ErrorIs(t, err, ErrNotCacheable)
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute, 0)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", sampleAnalysis()))
	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Some(505), got.Summary.CurrentMinimumPayment)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(20*time.Millisecond, 0)
	require.NoError(t, cache.Set(ctx, "k", sampleAnalysis()))

	assert.Eventually(t, func() bool {
		_, ok, err := cache.Get(ctx, "k")
		return err == nil && !ok
	}, time.Second, 5*time.Millisecond, "entry expired")
	assert.Eventually(t, func() bool { return cache.Len() == 0 }, time.Second, 5*time.Millisecond,
		"expired entries are swept without being read")
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(time.Minute, 2)

	for _, key := range []string{"a", "b"} {
		require.NoError(t, cache.Set(ctx, key, sampleAnalysis()))
	}
	_, ok, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, cache.Set(ctx, "c", sampleAnalysis()))
	assert.Equal(t, 2, cache.Len())

	_, ok, _ = cache.Get(ctx, "b")
	assert.False(t, ok, "least recently used entry evicted")
	for _, key := range []string{"a", "c"} {
		_, ok, _ = cache.Get(ctx, key)
		assert.True(t, ok, key)
	}
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	cache := NewRedisCache(client, time.Minute)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", sampleAnalysis()))
	assert.Equal(t, time.Minute, mr.TTL(analysisKeyPrefix+"k"))

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleAnalysis().Scenarios, got.Scenarios)
	assert.Equal(t, sampleAnalysis().Summary.CurrentMinimumPayment, got.Summary.CurrentMinimumPayment)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mr.Set(analysisKeyPrefix+"bad", "{"))
	_, _, err = cache.Get(ctx, "bad")
	assert.Error(t, err)
}

func TestRedisCache_NonFiniteFiguresKeepTheirJSON(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	cache := NewRedisCache(client, time.Minute)

	a := sampleAnalysis()
	a.Summary.RefiMinimumPayment = domain.Some(math.Inf(1))
	a.Summary.NewPrincipal = math.Inf(1)
	a.Summary.Scenarios = []domain.ScenarioSummary{{Kind: domain.RefiMinimum, StartBalance: math.Inf(1)}}
	want, err := json.Marshal(a)
	require.NoError(t, err)

	require.NoError(t, cache.Set(ctx, "inf", a))
	got, ok, err := cache.Get(ctx, "inf")
	require.NoError(t, err)
	require.True(t, ok)

	// Some(+Inf) reads back as None; both encode as null
	assert.False(t, got.Summary.RefiMinimumPayment.Valid)
	again, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(again))
}
