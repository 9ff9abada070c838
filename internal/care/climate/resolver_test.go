package climate

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantly/garden-care-backend/internal/care/domain"
)

type stubStore struct {
	profile *domain.ClimateProfile
	err     error
	calls   int
}

func (s *stubStore) GetClimateProfile(ctx context.Context, county string) (*domain.ClimateProfile, error) {
	s.calls++
	return s.profile, s.err
}

func coastalFixture() domain.ClimateProfile {
	return domain.ClimateProfile{
		Region:         domain.RegionCoastal,
		LastFrostDOY:   95,
		FirstFrostDOY:  310,
		AnnualPrecipMM: 1400,
		ZoneMin:        "8a",
		ZoneMax:        "8b",
	}
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client), mr
}

func TestResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("empty county resolves to the default", func(t *testing.T) {
		store := &stubStore{}
		r := NewResolver(store, nil)

		got := r.Resolve(ctx, "")
		assert.Equal(t, DefaultProfile(), got)
		assert.Zero(t, store.calls, "store must not be hit for empty county")
	})

	t.Run("unknown county falls back to the default", func(t *testing.T) {
		store := &stubStore{err: domain.ErrClimateNotFound}
		r := NewResolver(store, nil)

		assert.Equal(t, DefaultProfile(), r.Resolve(ctx, "Atlantis"))
	})

	t.Run("store hit populates the cache", func(t *testing.T) {
		cache, mr := newTestCache(t)
		want := coastalFixture()
		store := &stubStore{profile: &want}
		r := NewResolver(store, cache)

		assert.Equal(t, want, r.Resolve(ctx, "Dare"))
		assert.Equal(t, 1, store.calls)
		assert.True(t, mr.Exists("care:climate:dare"))

		// second resolve is served from redis
		assert.Equal(t, want, r.Resolve(ctx, "Dare"))
		assert.Equal(t, 1, store.calls)
	})

	t.Run("county lookup is case-insensitive through the cache", func(t *testing.T) {
		cache, _ := newTestCache(t)
		want := coastalFixture()
		store := &stubStore{profile: &want}
		r := NewResolver(store, cache)

		r.Resolve(ctx, "DARE")
		assert.Equal(t, want, r.Resolve(ctx, "dare"))
		assert.Equal(t, 1, store.calls)
	})

	t.Run("redis outage degrades to the store", func(t *testing.T) {
		cache, mr := newTestCache(t)
		want := coastalFixture()
		store := &stubStore{profile: &want}
		r := NewResolver(store, cache)

		mr.Close()
		assert.Equal(t, want, r.Resolve(ctx, "Dare"))
	})

	t.Run("nil store and nil cache still resolve", func(t *testing.T) {
		r := NewResolver(nil, nil)
		assert.Equal(t, DefaultProfile(), r.Resolve(ctx, "Wake"))
	})
}

func TestCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		cache, _ := newTestCache(t)
		p, err := cache.Get(ctx, "nowhere")
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		cache, mr := newTestCache(t)
		want := coastalFixture()

		require.NoError(t, cache.Set(ctx, "Dare", want))
		got, err := cache.Get(ctx, "Dare")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)

		// entries expire after a day
		mr.FastForward(profileTTL)
		got, err = cache.Get(ctx, "Dare")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt entry surfaces a decode error", func(t *testing.T) {
		cache, mr := newTestCache(t)
		require.NoError(t, mr.Set("care:climate:dare", "{not json"))

		_, err := cache.Get(ctx, "Dare")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}
