package model

import "time"

type ShippingMethod struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Price         int64     `gorm:"not null" json:"price"`
	Description   string    `gorm:"type:text" json:"description"`
	EstimatedDays int64     `json:"estimated_days"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
