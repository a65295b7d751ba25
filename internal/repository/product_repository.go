package repository

import (
	"context"

	"metahair/internal/domain/model"
)

// 一覧検索
type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	Featured   *bool
}

// 商品の永続化（保存・取得）と在庫減算の約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error

	//在庫減算。決済確定後に呼ぶので在庫不足でも減らす（負在庫は棚卸しで調整）。
	DecrementStock(ctx context.Context, productID int64, qty int64) error
}
