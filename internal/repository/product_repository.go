package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索の条件。未指定の数値条件は述語に含めない。
type ProductListQuery struct {
	Page         int
	Limit        int
	Search       string
	Category     string
	FeaturedOnly bool
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
}

// 商品の取得だけを約束。カタログはAPIからは読み取り専用。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	//同カテゴリの関連商品（自分自身は除く）
	FindRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error)
	//フィルタUI用。現在の絞り込みとは無関係に全カテゴリを返す
	Categories(ctx context.Context) ([]string, error)
}
