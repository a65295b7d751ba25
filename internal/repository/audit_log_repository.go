package repository

import (
	"context"

	"metahair/internal/domain/model"
)

// 監査ログの保存・一覧取得の約束。
type AuditLogRepository interface {
	//監査ログを1件保存
	Create(ctx context.Context, log model.AuditLog) error

	//対象ごとの履歴（新しい順）。
	ListByResource(ctx context.Context, rt model.AuditResourceType, resourceID int64, limit int) ([]model.AuditLog, error)
}
