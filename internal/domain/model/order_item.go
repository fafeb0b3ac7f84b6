package model

// 注文明細。商品名・画像・価格は注文時点のスナップショット。
// 商品が後から削除されても明細は残る（product_idはnullになる）。
type OrderItem struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      int64   `gorm:"not null;index" json:"order_id"`
	ProductID    *int64  `gorm:"index" json:"product_id"`
	ProductName  string  `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductImage string  `gorm:"type:varchar(500)" json:"product_image"`
	Price        float64 `gorm:"not null" json:"price"`
	Quantity     int64   `gorm:"not null" json:"quantity"`
}
