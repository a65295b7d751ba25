package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"type:varchar(255);not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description"`
	ShortDescription string         `gorm:"type:varchar(500)" json:"short_description"`
	Price            int64          `gorm:"not null" json:"price"`
	CategoryID       int64          `gorm:"not null;index" json:"category_id"`
	Images           ImageList      `gorm:"type:text" json:"images"`
	Stock            int64          `gorm:"not null;default:0" json:"stock"`
	Featured         bool           `gorm:"not null;default:false" json:"featured"`
	IsOnSale         bool           `gorm:"not null;default:false" json:"is_on_sale"`
	DiscountPercent  int64          `gorm:"not null;default:0" json:"discount_percent"`
	SalePrice        int64          `json:"sale_price"`
	SaleStart        *time.Time     `json:"sale_start"`
	SaleEnd          *time.Time     `json:"sale_end"`
	CreatedAt        time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// FirstImage は通知などで使う代表画像を返す。
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
