package session_repository

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/session --outpkg mocks --filename SessionRepository.go
type Repository interface {
	Create(ctx context.Context, session *model.Session) (*model.Session, error)
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}
