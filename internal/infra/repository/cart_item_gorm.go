package repository

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartItemGormRepository(db *gorm.DB) *CartItemGormRepository {
	return &CartItemGormRepository{db: db}
}

// 明細と現在の商品情報をJOINして返す（新しい順）
func (r *CartItemGormRepository) ListLines(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	//0件でもnilではなく空スライス
	lines := make([]repo.CartLine, 0)

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, products.name, products.price, products.image, products.stock, products.brand").
		Joins("join products on products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at desc").
		Scan(&lines).Error

	if err != nil {
		return []repo.CartLine{}, err
	}
	return lines, nil
}

// 同一商品は数量加算
func (r *CartItemGormRepository) AddOrIncrement(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, bool, error) {
	if addQty <= 0 {
		return model.CartItem{}, false, errors.New("invalid quantity")
	}

	var out model.CartItem
	created := false

	//行ロックで読んでから書く（同時追加の加算落ち防止）
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item model.CartItem

		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND product_id = ?", userID, productID).
			First(&item).Error

		if findErr == nil {
			newQty := item.Quantity + addQty

			res := tx.Model(&model.CartItem{}).
				Where("id = ?", item.ID).
				Update("quantity", newQty)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}

			item.Quantity = newQty
			out = item
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 無い場合はupsert。同時の初回追加どうしが競合しても、
		// 負けた側はDO UPDATEで加算になるだけでエラーにならない。
		newItem := model.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  addQty,
			CreatedAt: time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("cart_items.quantity + ?", addQty),
			}),
		}).Create(&newItem).Error; err != nil {
			return err
		}

		//確定後の行を読み直す。数量がaddQtyのままなら純粋な新規
		if err := tx.
			Where("user_id = ? AND product_id = ?", userID, productID).
			First(&newItem).Error; err != nil {
			return err
		}

		out = newItem
		created = newItem.Quantity == addQty
		return nil
	})

	if err != nil {
		return model.CartItem{}, false, err
	}
	return out, created, nil
}

// 本人の明細の数量を更新。他人の行は0件更新＝ErrNotFound
func (r *CartItemGormRepository) UpdateQuantityOwned(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", qty)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 本人の明細を削除
func (r *CartItemGormRepository) DeleteOwned(ctx context.Context, userID int64, cartItemID int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&model.CartItem{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ユーザーの明細を全削除（注文確定時）
func (r *CartItemGormRepository) ClearByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
