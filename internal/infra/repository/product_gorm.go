package repository

import (
	"context"
	"errors"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	db := r.db.WithContext(ctx).Model(&model.Product{})

	if q.Q != "" {
		db = db.Where("name ILIKE ?", "%"+q.Q+"%")
	}
	if q.CategoryID != nil {
		db = db.Where("category_id = ?", *q.CategoryID)
	}
	if q.Featured != nil {
		db = db.Where("featured = ?", *q.Featured)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	var items []model.Product
	offset := (q.Page - 1) * q.Limit
	if err := db.Order("id desc").Limit(q.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return items, total, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 構造体のUpdatesはゼロ値カラムを落とすので、更新対象を明示したmapで書く。
// featured=falseやstock=0への更新もここを通る。
func productUpdateColumns(p model.Product) map[string]any {
	return map[string]any{
		"name":              p.Name,
		"description":       p.Description,
		"short_description": p.ShortDescription,
		"price":             p.Price,
		"category_id":       p.CategoryID,
		"images":            p.Images,
		"stock":             p.Stock,
		"featured":          p.Featured,
		"is_on_sale":        p.IsOnSale,
		"discount_percent":  p.DiscountPercent,
		"sale_price":        p.SalePrice,
		"sale_start":        p.SaleStart,
		"sale_end":          p.SaleEnd,
	}
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(productUpdateColumns(p))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫減算。決済確定後の呼び出しなので在庫チェックはしない（負在庫は許容）。
func (r *ProductGormRepository) DecrementStock(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
