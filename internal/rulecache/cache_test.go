package rulecache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicoG2023/access-control-platform-showcase-sub001/internal/domain"
	db "github.com/NicoG2023/access-control-platform-showcase-sub001/internal/repository/db"
)

func testKey() Key {
	return Key{
		OrgID:       uuid.New(),
		AreaID:      uuid.New(),
		SubjectType: domain.SubjectResident,
	}
}

func snapshot(n int) []db.AccessRule {
	rules := make([]db.AccessRule, n)
	for i := range rules {
		rules[i] = db.AccessRule{ID: pgtype.UUID{Bytes: uuid.New(), Valid: true}}
	}
	return rules
}

func TestGetLoadsOnceThenServesFromMemory(t *testing.T) {
	c := New()
	key := testKey()
	want := snapshot(2)

	var loads int32
	load := func(ctx context.Context) ([]db.AccessRule, error) {
		atomic.AddInt32(&loads, 1)
		return want, nil
	}

	got, err := c.Get(context.Background(), key, load)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = c.Get(context.Background(), key, load)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestGetDoesNotCacheLoadErrors(t *testing.T) {
	c := New()
	key := testKey()

	var loads int32
	load := func(ctx context.Context) ([]db.AccessRule, error) {
		atomic.AddInt32(&loads, 1)
		return nil, errors.New("store down")
	}

	_, err := c.Get(context.Background(), key, load)
	require.Error(t, err)
	_, err = c.Get(context.Background(), key, load)
	require.Error(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&loads))
	assert.Equal(t, 0, c.Len())
}

func TestConcurrentMissesShareOneLoad(t *testing.T) {
	c := New()
	key := testKey()
	want := snapshot(1)

	var loads int32
	gate := make(chan struct{})
	load := func(ctx context.Context) ([]db.AccessRule, error) {
		atomic.AddInt32(&loads, 1)
		<-gate
		return want, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Get(context.Background(), key, load)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}

	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&loads))
}

func TestInvalidateAreaDropsAllSubjectTypes(t *testing.T) {
	c := New()
	orgID := uuid.New()
	areaID := uuid.New()

	for _, st := range []domain.SubjectType{domain.SubjectResident, domain.SubjectPreauthorizedVisitor} {
		key := Key{OrgID: orgID, AreaID: areaID, SubjectType: st}
		_, err := c.Get(context.Background(), key, func(ctx context.Context) ([]db.AccessRule, error) {
			return snapshot(1), nil
		})
		require.NoError(t, err)
	}
	// An unrelated area must survive the invalidation.
	other := Key{OrgID: orgID, AreaID: uuid.New(), SubjectType: domain.SubjectResident}
	_, err := c.Get(context.Background(), other, func(ctx context.Context) ([]db.AccessRule, error) {
		return snapshot(1), nil
	})
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	c.InvalidateArea(orgID, areaID)

	assert.Equal(t, 1, c.Len())
}

func TestInvalidationBeatsInFlightLoad(t *testing.T) {
	c := New()
	key := testKey()

	started := make(chan struct{})
	release := make(chan struct{})
	stale := snapshot(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Get(context.Background(), key, func(ctx context.Context) ([]db.AccessRule, error) {
			close(started)
			<-release
			return stale, nil
		})
		assert.NoError(t, err)
	}()

	<-started
	// The rule changed while the snapshot was being loaded.
	c.InvalidateArea(key.OrgID, key.AreaID)
	close(release)
	wg.Wait()

	// The late snapshot must not have been cached.
	assert.Equal(t, 0, c.Len())
}

func TestInvalidateAll(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		_, err := c.Get(context.Background(), testKey(), func(ctx context.Context) ([]db.AccessRule, error) {
			return snapshot(1), nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 3, c.Len())

	c.InvalidateAll()

	assert.Equal(t, 0, c.Len())
}
