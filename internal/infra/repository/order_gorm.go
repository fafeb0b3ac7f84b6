package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return 0, err
	}
	return order.ID, nil
}

// 注文一覧（新しい順）。一覧表示用にitem_countを埋める
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	//0件でもnilではなく空スライス
	orders := make([]model.Order, 0)

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}

	for i := range orders {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.OrderItem{}).
			Where("order_id = ?", orders[i].ID).
			Count(&count).Error; err != nil {
			return []model.Order{}, err
		}
		orders[i].ItemCount = count
	}

	return orders, nil
}

// 他人の注文は「存在しない扱い」
func (r *OrderGormRepository) FindByIDAndUser(ctx context.Context, orderID int64, userID int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
