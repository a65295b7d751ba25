package repository

import (
	"context"
	"errors"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"gorm.io/gorm"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context) (model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).Order("id asc").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Settings{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Settings{}, err
	}
	return s, nil
}

// 起動時に1回だけ呼ぶ。既にあれば既存行をそのまま返す。
func (r *SettingsGormRepository) EnsureDefault(ctx context.Context, s model.Settings) (model.Settings, error) {
	existing, err := r.Get(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Settings{}, err
	}

	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Settings{}, err
	}
	return s, nil
}

func (r *SettingsGormRepository) UpdateEmail(ctx context.Context, email string) error {
	return r.updateColumn(ctx, "admin_email", email)
}

func (r *SettingsGormRepository) UpdatePinHash(ctx context.Context, pinHash string) error {
	return r.updateColumn(ctx, "pin_hash", pinHash)
}

func (r *SettingsGormRepository) updateColumn(ctx context.Context, col string, val string) error {
	s, err := r.Get(ctx)
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&model.Settings{}).
		Where("id = ?", s.ID).
		Update(col, val)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
