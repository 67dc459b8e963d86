package service

import (
	"context"

	"github.com/purehouse/post-service/internal/dto"
	"github.com/purehouse/post-service/internal/model"
	"github.com/purehouse/post-service/internal/notifier"
	"github.com/purehouse/post-service/internal/repository"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, req dto.CreatePostRequest) (string, error)
	FindAll(ctx context.Context) ([]model.Post, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, id string, patch dto.UpdatePostRequest) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Service struct {
	Post
}

func New(logger *zap.Logger, repo *repository.Repository, dispatcher notifier.Dispatcher) *Service {
	return &Service{
		Post: newPostService(logger, repo, dispatcher),
	}
}
