package service

import (
	"context"
	"time"

	"github.com/purehouse/post-service/internal/dto"
	"github.com/purehouse/post-service/internal/model"
	"github.com/purehouse/post-service/internal/notifier"
	"github.com/purehouse/post-service/internal/repository"
	"github.com/purehouse/post-service/internal/repository/mongodb"
	"github.com/purehouse/post-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	cacheTTL      = time.Hour
	notifyTimeout = time.Second * 10
)

type postService struct {
	logger     *zap.Logger
	repo       *repository.Repository
	dispatcher notifier.Dispatcher
}

func newPostService(logger *zap.Logger, repo *repository.Repository, dispatcher notifier.Dispatcher) Post {
	return &postService{
		logger:     logger,
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (s *postService) Create(ctx context.Context, req dto.CreatePostRequest) (string, error) {
	post := normalizeCreate(req, time.Now())
	if err := validateCreate(post); err != nil {
		return "", err
	}

	insertedID, err := s.repo.Mongo.Post.Insert(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to insert post: %s", err.Error())
		return "", err
	}

	s.invalidateCache(ctx, redisrepo.AllPostsKey())

	s.notify(notifier.Event{
		Level:   notifier.LevelSuccess,
		Message: "post created successfully",
		Metadata: map[string]interface{}{
			"event": notifier.EventPostCreated,
			"id":    insertedID.Hex(),
			"title": post.Title,
		},
	})

	return insertedID.Hex(), nil
}

func (s *postService) FindAll(ctx context.Context) ([]model.Post, error) {
	if s.repo.Redis != nil {
		cached, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, redisrepo.AllPostsKey())
		if err == nil {
			return cached, nil
		}
		if err != redis.Nil {
			s.logger.Sugar().Warnf("failed to get posts from redis: %s", err.Error())
		}
	}

	posts, err := s.repo.Mongo.Post.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find posts: %s", err.Error())
		return nil, err
	}

	s.fillCache(ctx, redisrepo.AllPostsKey(), posts)

	return posts, nil
}

func (s *postService) FindByID(ctx context.Context, id string) (*model.Post, error) {
	objectID, err := mongodb.ParseID(id)
	if err != nil {
		return nil, ErrInvalidPostID
	}

	if s.repo.Redis != nil {
		cached, err := redisrepo.Get[model.Post](s.repo.Redis.Default, ctx, redisrepo.PostKey(id))
		if err == nil && cached != nil {
			return cached, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Warnf("failed to get post(%s) from redis: %s", id, err.Error())
		}
	}

	post, err := s.repo.Mongo.Post.FindByID(ctx, objectID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", id, err.Error())
		return nil, err
	}

	s.fillCache(ctx, redisrepo.PostKey(id), post)

	return post, nil
}

func (s *postService) Update(ctx context.Context, id string, patch dto.UpdatePostRequest) (int64, error) {
	objectID, err := mongodb.ParseID(id)
	if err != nil {
		return 0, ErrInvalidPostID
	}

	set := buildPatch(patch)

	matched, modified, err := s.repo.Mongo.Post.Update(ctx, objectID, set)
	if err != nil {
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id, err.Error())
		return 0, err
	}
	if matched == 0 {
		return 0, ErrPostNotFound
	}

	s.invalidateCache(ctx, redisrepo.PostKey(id), redisrepo.AllPostsKey())

	s.notify(notifier.Event{
		Level:   notifier.LevelInfo,
		Message: "post updated successfully",
		Metadata: map[string]interface{}{
			"event":   notifier.EventPostUpdated,
			"id":      id,
			"changes": map[string]interface{}(set),
		},
	})

	return modified, nil
}

func (s *postService) Delete(ctx context.Context, id string) (int64, error) {
	objectID, err := mongodb.ParseID(id)
	if err != nil {
		return 0, ErrInvalidPostID
	}

	deleted, err := s.repo.Mongo.Post.Delete(ctx, objectID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id, err.Error())
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrPostNotFound
	}

	s.invalidateCache(ctx, redisrepo.PostKey(id), redisrepo.AllPostsKey())

	s.notify(notifier.Event{
		Level:   notifier.LevelWarn,
		Message: "post deleted",
		Metadata: map[string]interface{}{
			"event": notifier.EventPostDeleted,
			"id":    id,
		},
	})

	return deleted, nil
}

// notify dispatches a lifecycle event in the background. The triggering
// operation has already returned by the time delivery settles; a failed
// dispatch is logged and dropped.
func (s *postService) notify(event notifier.Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.dispatcher.Dispatch(ctx, event); err != nil {
			s.logger.Sugar().Warnf("failed to notify worker: %s", err.Error())
		}
	}()
}

func (s *postService) fillCache(ctx context.Context, key string, value interface{}) {
	if s.repo.Redis == nil {
		return
	}
	if err := s.repo.Redis.Default.SetJSON(ctx, key, value, cacheTTL); err != nil {
		s.logger.Sugar().Warnf("failed to set %s in redis: %s", key, err.Error())
	}
}

func (s *postService) invalidateCache(ctx context.Context, keys ...string) {
	if s.repo.Redis == nil {
		return
	}
	if err := s.repo.Redis.Default.Del(ctx, keys...).Err(); err != nil {
		s.logger.Sugar().Warnf("failed to invalidate redis keys %v: %s", keys, err.Error())
	}
}
