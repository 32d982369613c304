package user_repository

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/user --outpkg mocks --filename UserRepository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
