package usecase

import (
	"context"
	"net/http"

	repo "storefront/internal/repository"
)

// CartUsecase は /api/cart の業務ロジック。
// 在庫チェックはここでは行わない（確定時のみ）。カートは在庫超過を許す。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

// DI
func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartOutput struct {
	Items []repo.CartLine `json:"items"`
	Total float64         `json:"total"`
	Count int             `json:"count"`
}

type AddToCartInput struct {
	ProductID int64
	Quantity  int64
}

// Createdで201/200とレスポンス形を出し分ける
type AddToCartOutput struct {
	Created  bool
	ItemID   int64
	Quantity int64
}

// カート取得（小計は2桁丸め）
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartOutput, error) {
	lines, err := u.cartItemRepo.ListLines(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//空カートはJSONでnullではなく[]にする
	if lines == nil {
		lines = []repo.CartLine{}
	}

	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
	}

	return CartOutput{
		Items: lines,
		Total: RoundCents(total),
		Count: len(lines),
	}, nil
}

// カートに追加。同一商品は数量加算（置き換えではない）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddToCartInput) (AddToCartOutput, error) {
	if in.ProductID <= 0 {
		return AddToCartOutput{}, NewHTTPError(http.StatusBadRequest, "Product ID is required.")
	}
	if in.Quantity < 1 {
		return AddToCartOutput{}, NewHTTPError(http.StatusBadRequest, "Valid quantity is required.")
	}

	//商品の存在チェック
	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		if err == repo.ErrNotFound {
			return AddToCartOutput{}, NewHTTPError(http.StatusNotFound, "Product not found.")
		}
		return AddToCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, created, err := u.cartItemRepo.AddOrIncrement(ctx, userID, in.ProductID, in.Quantity)
	if err != nil {
		return AddToCartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return AddToCartOutput{
		Created:  created,
		ItemID:   item.ID,
		Quantity: item.Quantity,
	}, nil
}

// 数量変更。0以下は削除に変換せず400を返す（削除はDELETEで明示する）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	if qty < 1 {
		return NewHTTPError(http.StatusBadRequest, "Valid quantity is required.")
	}

	err := u.cartItemRepo.UpdateQuantityOwned(ctx, userID, cartItemID, qty)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Cart item not found.")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 明細削除
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, cartItemID int64) error {
	err := u.cartItemRepo.DeleteOwned(ctx, userID, cartItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Cart item not found.")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
