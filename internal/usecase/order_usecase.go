package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/metrics"
	repo "storefront/internal/repository"
)

// 注文失敗メトリクスのreasonラベル
const (
	failReasonEmptyCart  = "empty_cart"
	failReasonOutOfStock = "out_of_stock"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderInput struct {
	ShippingName    string
	ShippingAddress string
	ShippingCity    string
	ShippingZip     string
	PaymentMethod   string
}

type PlaceOrderOutput struct {
	OrderID int64   `json:"order_id"`
	Total   float64 `json:"total"`
}

// 注文詳細は注文＋明細
type OrderDetail struct {
	model.Order
	Items []model.OrderItem `json:"items"`
}

// PlaceOrder はカートを注文に変換する。全工程が1トランザクション。
// 在庫減算・カート削除・注文作成はすべて成功するか、すべて無かったことになる。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if strings.TrimSpace(in.ShippingName) == "" ||
		strings.TrimSpace(in.ShippingAddress) == "" ||
		strings.TrimSpace(in.ShippingCity) == "" ||
		strings.TrimSpace(in.ShippingZip) == "" {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Complete shipping information is required.")
	}

	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = "card"
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//カートを取り直す（価格はこの時点のスナップショット）
		lines, err := r.CartItems().ListLines(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(lines) == 0 {
			return NewHTTPErrorWithReason(http.StatusBadRequest, failReasonEmptyCart,
				"Cart is empty. Add items before checkout.")
		}

		//書き込み前に全明細の在庫を検証
		for _, l := range lines {
			if l.Quantity > l.Stock {
				return NewHTTPErrorWithReason(http.StatusBadRequest, failReasonOutOfStock,
					fmt.Sprintf("Insufficient stock for %q. Available: %d", l.Name, l.Stock))
			}
		}

		var total float64
		for _, l := range lines {
			total += l.Price * float64(l.Quantity)
		}
		total = RoundCents(total)

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			Total:           total,
			Status:          model.OrderStatusConfirmed,
			ShippingName:    in.ShippingName,
			ShippingAddress: in.ShippingAddress,
			ShippingCity:    in.ShippingCity,
			ShippingZip:     in.ShippingZip,
			PaymentMethod:   payment,
			CreatedAt:       time.Now(),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//明細スナップショット＋在庫減算
		items := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			productID := l.ProductID
			items = append(items, model.OrderItem{
				ProductID:    &productID,
				ProductName:  l.Name,
				ProductImage: l.Image,
				Price:        l.Price,
				Quantity:     l.Quantity,
			})

			// 条件付きUPDATE。0件更新なら同時注文に先を越されたのでロールバック
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, l.ProductID, l.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPErrorWithReason(http.StatusBadRequest, failReasonOutOfStock,
					fmt.Sprintf("Insufficient stock for %q. Available: %d", l.Name, currentStock(ctx, r, l.ProductID)))
			}
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートを空にする
		if err := r.CartItems().ClearByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = PlaceOrderOutput{OrderID: orderID, Total: total}
		return nil
	})

	if err != nil {
		metrics.OrdersFailedTotal.WithLabelValues(failReason(err)).Inc()
		return PlaceOrderOutput{}, err
	}

	metrics.OrdersPlacedTotal.Inc()
	return out, nil
}

// 注文一覧（item_count付き）
func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	var orders []model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var err error
		orders, err = r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return []model.Order{}, err
	}
	//注文0件はJSONでnullではなく[]にする
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// 注文詳細。他人の注文は404。
func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID int64) (OrderDetail, error) {
	var detail OrderDetail

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDAndUser(ctx, orderID, userID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "Order not found.")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if items == nil {
			items = []model.OrderItem{}
		}

		detail = OrderDetail{Order: o, Items: items}
		return nil
	})

	if err != nil {
		return OrderDetail{}, err
	}
	return detail, nil
}

// エラーメッセージ用に現在在庫を読み直す。読めなければ0扱い
func currentStock(ctx context.Context, r repo.TxRepos, productID int64) int64 {
	p, err := r.Products().FindByID(ctx, productID)
	if err != nil {
		return 0
	}
	return p.Stock
}

// 文言ではなくReasonで分類する。Reason無しの4xxはvalidation
func failReason(err error) string {
	he, ok := AsHTTPError(err)
	if !ok || he.Status >= http.StatusInternalServerError {
		return "storage"
	}
	if he.Reason != "" {
		return he.Reason
	}
	return "validation"
}
