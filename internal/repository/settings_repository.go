package repository

import (
	"context"

	"metahair/internal/domain/model"
)

// 管理者設定（1行）の約束。
type SettingsRepository interface {
	//設定行を取得。無ければErrNotFound。
	Get(ctx context.Context) (model.Settings, error)

	//無ければ作る（起動時のブートストラップ用）。
	EnsureDefault(ctx context.Context, s model.Settings) (model.Settings, error)

	UpdateEmail(ctx context.Context, email string) error
	UpdatePinHash(ctx context.Context, pinHash string) error
}
