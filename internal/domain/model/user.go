package model

import "time"

type User struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	//bcryptハッシュのみ保存（平文もJSONも出さない）
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	Avatar    string    `gorm:"type:varchar(500);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
