package model

import "time"

// 注文明細。商品名と単価は注文時点のスナップショット。
// ProductIDは弱い参照（0なら商品と紐付かない）。
type OrderItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     int64     `gorm:"not null;index" json:"order_id"`
	ProductID   int64     `gorm:"index" json:"product_id"`
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
