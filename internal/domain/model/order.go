package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// 注文。金額はすべてコボ（最小通貨単位）のint64で持つ。
type Order struct {
	ID               int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber      string        `gorm:"type:varchar(64);not null;uniqueIndex" json:"order_number"`
	CustomerName     string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail    string        `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone    string        `gorm:"type:varchar(64)" json:"customer_phone"`
	ShippingAddress  string        `gorm:"type:text" json:"shipping_address"`
	Items            []OrderItem   `gorm:"foreignKey:OrderID" json:"items"`
	ShippingMethod   string        `gorm:"type:varchar(255)" json:"shipping_method"`
	ShippingCost     int64         `gorm:"not null" json:"shipping_cost"`
	Subtotal         int64         `gorm:"not null" json:"subtotal"`
	Total            int64         `gorm:"not null" json:"total"`
	Status           OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(20);not null;index" json:"payment_status"`
	PaymentReference string        `gorm:"type:varchar(255)" json:"payment_reference"`
	CreatedAt        time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
