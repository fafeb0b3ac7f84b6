package model

import "time"

// 商品カタログの1行。
// APIからは読み取り専用（在庫だけは注文確定で減る）。
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`

	//割引表示用の元値（無ければnull）
	OriginalPrice *float64 `gorm:"column:original_price" json:"original_price"`

	Image        string    `gorm:"type:varchar(500);not null" json:"image"`
	Category     string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Brand        string    `gorm:"type:varchar(100);not null;default:''" json:"brand"`
	Rating       float64   `gorm:"not null;default:0" json:"rating"`
	ReviewsCount int64     `gorm:"not null;default:0" json:"reviews_count"`
	Stock        int64     `gorm:"not null;default:100" json:"stock"`
	Featured     bool      `gorm:"not null;default:false" json:"featured"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
