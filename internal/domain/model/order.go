package model

import "time"

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// 購入のスナップショット。作成後は変更しない。
type Order struct {
	ID     int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64       `gorm:"not null;index" json:"user_id"`
	Total  float64     `gorm:"not null" json:"total"`
	Status OrderStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`

	//配送先は住所マスタを持たず注文に直接持つ
	ShippingName    string `gorm:"type:varchar(255)" json:"shipping_name"`
	ShippingAddress string `gorm:"type:varchar(500)" json:"shipping_address"`
	ShippingCity    string `gorm:"type:varchar(255)" json:"shipping_city"`
	ShippingZip     string `gorm:"type:varchar(20)" json:"shipping_zip"`

	PaymentMethod string    `gorm:"type:varchar(50);not null;default:'card'" json:"payment_method"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`

	//一覧表示用の明細数（DBには持たない）
	ItemCount int64 `gorm:"-" json:"item_count,omitempty"`
}
