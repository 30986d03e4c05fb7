package usecase

import (
	"context"
	"time"

	"task-management-api/config"
	"task-management-api/internal/repository"
	"task-management-api/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TeamUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, auth config.AuthConfig) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, auth)
}
