package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// メモリ上のフェイク。handlerとusecaseを実物のまま通す。
type fakeCartRepo struct {
	lines      []repo.CartLine
	updateErr  error
	deleteErr  error
	lastAddQty int64
	created    bool
}

func (f *fakeCartRepo) ListLines(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	return f.lines, nil
}

func (f *fakeCartRepo) AddOrIncrement(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, bool, error) {
	f.lastAddQty = addQty
	if f.created {
		return model.CartItem{ID: 10, UserID: userID, ProductID: productID, Quantity: addQty}, true, nil
	}
	return model.CartItem{ID: 10, UserID: userID, ProductID: productID, Quantity: addQty + 2}, false, nil
}

func (f *fakeCartRepo) UpdateQuantityOwned(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	return f.updateErr
}

func (f *fakeCartRepo) DeleteOwned(ctx context.Context, userID int64, cartItemID int64) error {
	return f.deleteErr
}

func (f *fakeCartRepo) ClearByUserID(ctx context.Context, userID int64) error { return nil }

type fakeProductRepo struct {
	product model.Product
	findErr error
}

func (f *fakeProductRepo) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	if f.findErr != nil {
		return model.Product{}, f.findErr
	}
	return f.product, nil
}

func (f *fakeProductRepo) FindRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Categories(ctx context.Context) ([]string, error) { return nil, nil }

func newCartContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	//認証ミドルウェア通過後の状態を作る
	c.Set(middleware.CtxUserIDKey, int64(1))
	return c, rec
}

func TestCartHandler_GetCart(t *testing.T) {
	cartRepo := &fakeCartRepo{lines: []repo.CartLine{
		{ID: 1, ProductID: 100, Quantity: 2, Name: "Mug", Price: 12.99},
	}}
	h := NewCartHandler(usecase.NewCartUsecase(cartRepo, &fakeProductRepo{}))

	c, rec := newCartContext(t, http.MethodGet, "/api/cart", "")
	assert.NoError(t, h.getCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"items":[{"id":1,"product_id":100,"quantity":2,"name":"Mug","price":12.99,"image":"","stock":0,"brand":""}],
		"total":25.98,
		"count":1
	}`, rec.Body.String())
}

func TestCartHandler_AddNewItemReturns201(t *testing.T) {
	cartRepo := &fakeCartRepo{created: true}
	h := NewCartHandler(usecase.NewCartUsecase(cartRepo, &fakeProductRepo{product: model.Product{ID: 100}}))

	//quantity省略→1
	c, rec := newCartContext(t, http.MethodPost, "/api/cart", `{"product_id":100}`)
	assert.NoError(t, h.addToCart(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Added to cart","id":10}`, rec.Body.String())
	assert.Equal(t, int64(1), cartRepo.lastAddQty)
}

func TestCartHandler_AddExistingItemReturns200(t *testing.T) {
	cartRepo := &fakeCartRepo{created: false}
	h := NewCartHandler(usecase.NewCartUsecase(cartRepo, &fakeProductRepo{product: model.Product{ID: 100}}))

	c, rec := newCartContext(t, http.MethodPost, "/api/cart", `{"product_id":100,"quantity":1}`)
	assert.NoError(t, h.addToCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Cart updated","quantity":3}`, rec.Body.String())
}

func TestCartHandler_AddUnknownProduct404(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUsecase(&fakeCartRepo{}, &fakeProductRepo{findErr: repo.ErrNotFound}))

	c, rec := newCartContext(t, http.MethodPost, "/api/cart", `{"product_id":999,"quantity":1}`)
	assert.NoError(t, h.addToCart(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found."}`, rec.Body.String())
}

func TestCartHandler_UpdateItemNotOwned404(t *testing.T) {
	cartRepo := &fakeCartRepo{updateErr: repo.ErrNotFound}
	h := NewCartHandler(usecase.NewCartUsecase(cartRepo, &fakeProductRepo{}))

	c, rec := newCartContext(t, http.MethodPut, "/api/cart/10", `{"quantity":3}`)
	c.SetParamNames("id")
	c.SetParamValues("10")
	assert.NoError(t, h.updateItem(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Cart item not found."}`, rec.Body.String())
}

func TestCartHandler_DeleteItem(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUsecase(&fakeCartRepo{}, &fakeProductRepo{}))

	c, rec := newCartContext(t, http.MethodDelete, "/api/cart/10", "")
	c.SetParamNames("id")
	c.SetParamValues("10")
	assert.NoError(t, h.deleteItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Item removed from cart"}`, rec.Body.String())
}

func TestCartHandler_NoUserInContext401(t *testing.T) {
	h := NewCartHandler(usecase.NewCartUsecase(&fakeCartRepo{}, &fakeProductRepo{}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.getCart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
