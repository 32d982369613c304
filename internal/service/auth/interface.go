package auth_service

import (
	"context"

	"inkwell-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/auth --outpkg mocks --filename AuthService.go
type Service interface {
	Login(ctx context.Context, username, password string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	ViewerByToken(ctx context.Context, token string) (*model.Viewer, error)
}
