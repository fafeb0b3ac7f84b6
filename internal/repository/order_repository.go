package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)

	//作成日時の降順。item_count付き
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)

	//他人の注文は「存在しない扱い」
	FindByIDAndUser(ctx context.Context, orderID int64, userID int64) (model.Order, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}
