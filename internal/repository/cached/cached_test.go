package cached

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/job"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/taskitem"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapCache mimics the Redis cache's JSON round trip.
type mapCache struct {
	data map[string][]byte
	gets int
	hits int
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.gets++
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *mapCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func TestJobRepository_CachesListAll(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	repo := NewJobRepository(memory.NewJobRepository(memory.NewStore()), c, time.Minute)

	_, err := repo.Create(ctx, job.New("1", "One"))
	require.NoError(t, err)

	first, err := repo.ListAll(ctx)
	require.NoError(t, err)
	second, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.hits)

	_, err = repo.Create(ctx, job.New("2", "Two"))
	require.NoError(t, err)
	assert.NotContains(t, c.data, jobsAllKey)

	third, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func TestTaskItemRepository_InvalidatesOnWrite(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	repo := NewTaskItemRepository(memory.NewTaskItemRepository(memory.NewStore()), c, time.Minute)

	item, err := repo.Create(ctx, taskitem.TaskItem{TaskDescription: "Framing"})
	require.NoError(t, err)

	_, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, c.data, taskItemsAllKey)

	item.TaskDescription = "Drywall"
	require.NoError(t, repo.Update(ctx, item))
	assert.NotContains(t, c.data, taskItemsAllKey)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Drywall", items[0].TaskDescription)

	assert.ErrorIs(t, repo.Delete(ctx, 99), taskitem.ErrTaskItemNotFound)
	assert.Contains(t, c.data, taskItemsAllKey)
}

func TestJobRepository_InvalidatesAfterCommit(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	store := memory.NewStore()
	repo := NewJobRepository(memory.NewJobRepository(store), c, time.Minute)

	_, err := repo.Create(ctx, job.New("1", "One"))
	require.NoError(t, err)

	err = store.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, job.New("2", "Two")); err != nil {
			return err
		}

		// A reader outside the transaction fills the cache before the commit.
		_, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Contains(t, c.data, jobsAllKey)

		gets := c.gets
		_, err = repo.ListAll(txCtx)
		require.NoError(t, err)
		assert.Equal(t, gets, c.gets, "reads inside the transaction skip the cache")
		return nil
	})
	require.NoError(t, err)
	assert.NotContains(t, c.data, jobsAllKey)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestJobRepository_RollbackKeepsCache(t *testing.T) {
	ctx := context.Background()
	c := newMapCache()
	store := memory.NewStore()
	repo := NewJobRepository(memory.NewJobRepository(store), c, time.Minute)

	_, err := repo.Create(ctx, job.New("1", "One"))
	require.NoError(t, err)
	_, err = repo.ListAll(ctx)
	require.NoError(t, err)

	err = store.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repo.Create(txCtx, job.New("2", "Two")); err != nil {
			return err
		}
		return job.ErrJobNumberExists
	})
	require.ErrorIs(t, err, job.ErrJobNumberExists)
	assert.Contains(t, c.data, jobsAllKey)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
