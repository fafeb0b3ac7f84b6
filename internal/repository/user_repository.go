package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

// emailが使用済み
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	//unique制約違反はErrDuplicateEmailに変換して返す
	Create(ctx context.Context, user *model.User) error

	//見つからなければ (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, userID int64) (*model.User, error)
}
