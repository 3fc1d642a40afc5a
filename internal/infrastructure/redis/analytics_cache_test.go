package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 10 * time.Minute

func newTestCache(t *testing.T) (*AnalyticsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAnalyticsCache(client, testTTL), mr
}

func TestKeys(t *testing.T) {
	user := uuid.MustParse("6f1c2a8e-0b7d-4c55-9a57-2f1e8d0b9c11")

	assert.Equal(t, "analytics:6f1c2a8e-0b7d-4c55-9a57-2f1e8d0b9c11:version", versionKey(user))
	assert.Equal(t,
		"analytics:6f1c2a8e-0b7d-4c55-9a57-2f1e8d0b9c11:v3:dashboard:2024-03-11",
		entryKey(user, 3, "dashboard:2024-03-11"),
	)
}

func TestEntryKey_VersionsDoNotCollide(t *testing.T) {
	user := uuid.New()
	assert.NotEqual(t, entryKey(user, 1, "streaks:2024-03-11"), entryKey(user, 2, "streaks:2024-03-11"))
	assert.NotEqual(t, entryKey(user, 1, "k"), entryKey(uuid.New(), 1, "k"))
}

func TestAnalyticsCache_MissThenHit(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	user := uuid.New()

	var got []int
	v, hit, err := cache.Get(ctx, user, "streaks:2024-03-11", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(0), v)

	require.NoError(t, cache.Set(ctx, user, v, "streaks:2024-03-11", []int{3, 1}))

	v, hit, err = cache.Get(ctx, user, "streaks:2024-03-11", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(0), v)
	assert.Equal(t, []int{3, 1}, got)

	assert.Equal(t, testTTL, mr.TTL(entryKey(user, 0, "streaks:2024-03-11")))

	// other users do not see it
	_, hit, err = cache.Get(ctx, uuid.New(), "streaks:2024-03-11", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAnalyticsCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	user := uuid.New()

	require.NoError(t, cache.Set(ctx, user, 0, "k", "value"))
	mr.FastForward(testTTL + time.Second)

	var got string
	_, hit, err := cache.Get(ctx, user, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAnalyticsCache_InvalidateHidesOlderEntries(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)
	user := uuid.New()

	require.NoError(t, cache.Set(ctx, user, 0, "k", "before"))
	require.NoError(t, cache.Invalidate(ctx, user))

	var got string
	v, hit, err := cache.Get(ctx, user, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(1), v)
}

func TestAnalyticsCache_WriteDuringComputeIsNotServed(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)
	user := uuid.New()

	var got string
	v, hit, err := cache.Get(ctx, user, "k", &got)
	require.NoError(t, err)
	require.False(t, hit)

	// the user writes while the miss is being computed
	require.NoError(t, cache.Invalidate(ctx, user))
	require.NoError(t, cache.Set(ctx, user, v, "k", "computed before the write"))

	_, hit, err = cache.Get(ctx, user, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAnalyticsCache_VersionKeyDoesNotExpire(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	user := uuid.New()

	require.NoError(t, cache.Invalidate(ctx, user))
	assert.Equal(t, time.Duration(0), mr.TTL(versionKey(user)))

	// an entry stored under v1 shortly before the old TTL would have run out
	mr.FastForward(9 * time.Minute)
	require.NoError(t, cache.Set(ctx, user, 1, "k", "stale"))
	mr.FastForward(2 * time.Minute)

	require.NoError(t, cache.Invalidate(ctx, user))

	var got string
	v, hit, err := cache.Get(ctx, user, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int64(2), v)
}

func TestAnalyticsCache_InvalidateClearsVersionTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)
	user := uuid.New()

	require.NoError(t, mr.Set(versionKey(user), "4"))
	mr.SetTTL(versionKey(user), time.Minute)

	require.NoError(t, cache.Invalidate(ctx, user))
	assert.Equal(t, time.Duration(0), mr.TTL(versionKey(user)))

	v, err := cache.version(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}
