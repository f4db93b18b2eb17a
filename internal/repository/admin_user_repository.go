package repository

import (
	"context"

	"app/internal/domain/model"
)

type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.AdminUser, error)
}
