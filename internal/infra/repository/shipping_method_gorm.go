package repository

import (
	"context"
	"errors"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"gorm.io/gorm"
)

type ShippingMethodGormRepository struct {
	db *gorm.DB
}

func NewShippingMethodGormRepository(db *gorm.DB) *ShippingMethodGormRepository {
	return &ShippingMethodGormRepository{db: db}
}

func (r *ShippingMethodGormRepository) List(ctx context.Context) ([]model.ShippingMethod, error) {
	var items []model.ShippingMethod
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return []model.ShippingMethod{}, err
	}
	return items, nil
}

func (r *ShippingMethodGormRepository) FindByID(ctx context.Context, id int64) (model.ShippingMethod, error) {
	var m model.ShippingMethod
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingMethod{}, err
	}
	return m, nil
}

func (r *ShippingMethodGormRepository) FindByName(ctx context.Context, name string) (model.ShippingMethod, error) {
	var m model.ShippingMethod
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ShippingMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ShippingMethod{}, err
	}
	return m, nil
}

func (r *ShippingMethodGormRepository) Create(ctx context.Context, m model.ShippingMethod) (model.ShippingMethod, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.ShippingMethod{}, err
	}
	return m, nil
}

// 送料0への更新も落ちないようmapで書く（構造体だとゼロ値カラムが消える）。
func shippingMethodUpdateColumns(m model.ShippingMethod) map[string]any {
	return map[string]any{
		"name":           m.Name,
		"price":          m.Price,
		"description":    m.Description,
		"estimated_days": m.EstimatedDays,
	}
}

func (r *ShippingMethodGormRepository) Update(ctx context.Context, m model.ShippingMethod) error {
	res := r.db.WithContext(ctx).Model(&model.ShippingMethod{}).
		Where("id = ?", m.ID).
		Updates(shippingMethodUpdateColumns(m))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShippingMethodGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShippingMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
