package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 関連商品の最大件数
const relatedLimit = 4

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// GET /api/productsの入力DTO
type ListProductsInput struct {
	Search       string
	Category     string
	FeaturedOnly bool
	MinPrice     *float64
	MaxPrice     *float64
	Sort         string
	Page         int
	Limit        int
}

type ProductListOutput struct {
	Products   []model.Product `json:"products"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int64           `json:"totalPages"`
	Categories []string        `json:"categories"`
}

type ProductDetailOutput struct {
	Product model.Product   `json:"product"`
	Related []model.Product `json:"related"`
}

// 一覧。最終ページを超えたpageは空リスト＋正しいtotal/categoriesを返す。
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 12
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	//未知のsortはnewest扱い
	switch in.Sort {
	case "price_asc", "price_desc", "rating", "name":
	default:
		in.Sort = "newest"
	}

	products, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:         in.Page,
		Limit:        in.Limit,
		Search:       strings.TrimSpace(in.Search),
		Category:     in.Category,
		FeaturedOnly: in.FeaturedOnly,
		MinPrice:     in.MinPrice,
		MaxPrice:     in.MaxPrice,
		Sort:         in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//最終ページ超過などの0件はJSONでnullではなく[]にする
	if products == nil {
		products = []model.Product{}
	}

	//categoriesは絞り込みと無関係に全件
	categories, err := u.productRepo.Categories(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if categories == nil {
		categories = []string{}
	}

	totalPages := total / int64(in.Limit)
	if total%int64(in.Limit) != 0 {
		totalPages++
	}

	return ProductListOutput{
		Products:   products,
		Total:      total,
		Page:       in.Page,
		TotalPages: totalPages,
		Categories: categories,
	}, nil
}

// 詳細＋同カテゴリの関連商品
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "Product not found.")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	related, err := u.productRepo.FindRelated(ctx, p.Category, p.ID, relatedLimit)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//同カテゴリ商品が無くてもnullではなく[]
	if related == nil {
		related = []model.Product{}
	}

	return ProductDetailOutput{Product: p, Related: related}, nil
}
