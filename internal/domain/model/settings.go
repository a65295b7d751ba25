package model

import "time"

// 管理者設定。1行だけ持つ。
// PINはbcryptハッシュのみ保存する（平文・プロセス変数には置かない）。
type Settings struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AdminEmail string    `gorm:"type:varchar(255);not null" json:"admin_email"`
	PinHash    string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
