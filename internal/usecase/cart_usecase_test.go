package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListLines(ctx context.Context, userID int64) ([]repo.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]repo.CartLine)
	return lines, args.Error(1)
}

func (m *CartItemRepoMock) AddOrIncrement(ctx context.Context, userID int64, productID int64, addQty int64) (model.CartItem, bool, error) {
	args := m.Called(ctx, userID, productID, addQty)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Bool(1), args.Error(2)
}

func (m *CartItemRepoMock) UpdateQuantityOwned(ctx context.Context, userID int64, cartItemID int64, qty int64) error {
	args := m.Called(ctx, userID, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteOwned(ctx context.Context, userID int64, cartItemID int64) error {
	args := m.Called(ctx, userID, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) ClearByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartProductRepoMock) FindRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Categories(ctx context.Context) ([]string, error) {
	panic("not used in CartUsecase tests")
}

func newCartFixture() (*CartUsecase, *CartItemRepoMock, *CartProductRepoMock) {
	cartRepo := new(CartItemRepoMock)
	productRepo := new(CartProductRepoMock)
	return NewCartUsecase(cartRepo, productRepo), cartRepo, productRepo
}

func TestGetCart_TotalIsRounded(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	// 0.1×3 は二進浮動小数では 0.30000000000000004
	cartRepo.On("ListLines", mock.Anything, int64(1)).Return([]repo.CartLine{
		{ID: 1, ProductID: 100, Quantity: 3, Name: "Sticker", Price: 0.1},
		{ID: 2, ProductID: 101, Quantity: 1, Name: "Mug", Price: 12.99},
	}, nil)

	out, err := uc.GetCart(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 13.29, out.Total)
	assert.Equal(t, 2, out.Count)
	assert.Len(t, out.Items, 2)
}

func TestGetCart_Empty(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	cartRepo.On("ListLines", mock.Anything, int64(1)).Return([]repo.CartLine{}, nil)

	out, err := uc.GetCart(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 0.0, out.Total)
	assert.Equal(t, 0, out.Count)
}

func TestGetCart_EmptyMarshalsItemsAsArray(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	//0件時のScanはnilスライスを残す。それでもJSONは[]であること
	cartRepo.On("ListLines", mock.Anything, int64(1)).Return([]repo.CartLine(nil), nil)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)

	body, err := json.Marshal(out)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0,"count":0}`, string(body))
}

func TestAddToCart_NewItem(t *testing.T) {
	uc, cartRepo, productRepo := newCartFixture()

	productRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Name: "Mug", Stock: 5}, nil)
	cartRepo.On("AddOrIncrement", mock.Anything, int64(1), int64(100), int64(2)).
		Return(model.CartItem{ID: 10, UserID: 1, ProductID: 100, Quantity: 2}, true, nil)

	out, err := uc.AddToCart(context.Background(), 1, AddToCartInput{ProductID: 100, Quantity: 2})

	assert.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, int64(10), out.ItemID)
	assert.Equal(t, int64(2), out.Quantity)
}

func TestAddToCart_IncrementsExistingRow(t *testing.T) {
	uc, cartRepo, productRepo := newCartFixture()

	//既存2個に1個追加→3個の同一行
	productRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100}, nil)
	cartRepo.On("AddOrIncrement", mock.Anything, int64(1), int64(100), int64(1)).
		Return(model.CartItem{ID: 10, UserID: 1, ProductID: 100, Quantity: 3}, false, nil)

	out, err := uc.AddToCart(context.Background(), 1, AddToCartInput{ProductID: 100, Quantity: 1})

	assert.NoError(t, err)
	assert.False(t, out.Created)
	assert.Equal(t, int64(3), out.Quantity)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	uc, cartRepo, productRepo := newCartFixture()

	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 1, AddToCartInput{ProductID: 999, Quantity: 1})

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	cartRepo.AssertNotCalled(t, "AddOrIncrement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddToCart_InvalidInput(t *testing.T) {
	uc, _, _ := newCartFixture()

	_, err := uc.AddToCart(context.Background(), 1, AddToCartInput{ProductID: 0, Quantity: 1})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	_, err = uc.AddToCart(context.Background(), 1, AddToCartInput{ProductID: 100, Quantity: 0})
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestUpdateQuantity_ZeroIsRejectedNotDelete(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	err := uc.UpdateQuantity(context.Background(), 1, 10, 0)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	//repoには届かない
	cartRepo.AssertNotCalled(t, "UpdateQuantityOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateQuantity_NotOwned(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	cartRepo.On("UpdateQuantityOwned", mock.Anything, int64(2), int64(10), int64(3)).Return(repo.ErrNotFound)

	err := uc.UpdateQuantity(context.Background(), 2, 10, 3)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestRemoveItem_NotFound(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	cartRepo.On("DeleteOwned", mock.Anything, int64(1), int64(99)).Return(repo.ErrNotFound)

	err := uc.RemoveItem(context.Background(), 1, 99)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestRemoveItem_Success(t *testing.T) {
	uc, cartRepo, _ := newCartFixture()

	cartRepo.On("DeleteOwned", mock.Anything, int64(1), int64(10)).Return(nil)

	assert.NoError(t, uc.RemoveItem(context.Background(), 1, 10))
	cartRepo.AssertExpectations(t)
}
