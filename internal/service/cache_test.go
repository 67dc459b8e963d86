package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/purehouse/post-service/internal/dto"
	"github.com/purehouse/post-service/internal/notifier"
	"github.com/purehouse/post-service/internal/repository"
	"github.com/purehouse/post-service/internal/repository/mongodb"
	"github.com/purehouse/post-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockCache struct {
	store map[string]string
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string]string)}
}

func (m *mockCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = string(raw)
	return nil
}

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	value, exists := m.store[key]
	if !exists {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *mockCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var deleted int64
	for _, key := range keys {
		if _, exists := m.store[key]; exists {
			delete(m.store, key)
			deleted++
		}
	}
	return redis.NewIntResult(deleted, nil)
}

func newCachedTestService(repo *mockPostRepo, cache redisrepo.Default, dispatcher notifier.Dispatcher) Post {
	repos := &repository.Repository{
		Mongo: &mongodb.MongoRepository{Post: repo},
		Redis: &redisrepo.RedisRepository{Default: cache},
	}
	return newPostService(zap.NewNop(), repos, dispatcher)
}

func TestPostService_FindByID_ServedFromCache(t *testing.T) {
	repo := newMockPostRepo()
	cache := newMockCache()
	svc := newCachedTestService(repo, cache, newRecordingDispatcher(false))

	id, err := svc.Create(context.Background(), dto.CreatePostRequest{
		Title:   "t",
		Author:  "a",
		Content: "c",
	})
	require.NoError(t, err)

	_, err = svc.FindByID(context.Background(), id)
	require.NoError(t, err)
	callsAfterFirstRead := repo.calls

	post, err := svc.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "t", post.Title)
	assert.Equal(t, callsAfterFirstRead, repo.calls, "second read should not hit the store")
}

func TestPostService_Update_InvalidatesCache(t *testing.T) {
	repo := newMockPostRepo()
	cache := newMockCache()
	svc := newCachedTestService(repo, cache, newRecordingDispatcher(false))

	id, err := svc.Create(context.Background(), dto.CreatePostRequest{
		Title:   "before",
		Author:  "a",
		Content: "c",
	})
	require.NoError(t, err)

	_, err = svc.FindByID(context.Background(), id)
	require.NoError(t, err)

	title := "after"
	_, err = svc.Update(context.Background(), id, dto.UpdatePostRequest{Title: &title})
	require.NoError(t, err)

	post, err := svc.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "after", post.Title)
}

func TestPostService_FindAll_CachesList(t *testing.T) {
	repo := newMockPostRepo()
	cache := newMockCache()
	svc := newCachedTestService(repo, cache, newRecordingDispatcher(false))

	_, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	callsAfterFirstRead := repo.calls

	_, err = svc.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, callsAfterFirstRead, repo.calls)
}
