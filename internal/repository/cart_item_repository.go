package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カート明細と現在の商品情報をJOINした1行。
type CartLine struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Stock     int64   `json:"stock"`
	Brand     string  `json:"brand"`
}

type CartItemRepository interface {
	//作成日時の降順
	ListLines(ctx context.Context, userID int64) ([]CartLine, error)

	// 同一商品は数量加算。行ロックで読んでから書くので同時追加でも加算が落ちない。
	// createdは新規行を作ったかどうか。
	AddOrIncrement(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, bool, error)

	//本人の明細でなければErrNotFound
	UpdateQuantityOwned(ctx context.Context, userID int64, cartItemID int64, qty int64) error
	DeleteOwned(ctx context.Context, userID int64, cartItemID int64) error

	//注文確定時にまとめて空にする
	ClearByUserID(ctx context.Context, userID int64) error
}
