package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"go.uber.org/zap"
)

// 通常運用で許す遷移。delivered/cancelledは終端。
var allowedTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusShipped:    {model.OrderStatusDelivered, model.OrderStatusCancelled},
	model.OrderStatusDelivered:  {},
	model.OrderStatusCancelled:  {},
}

func transitionAllowed(from, to model.OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type AdminOrderUsecase struct {
	orders repo.OrderRepository
	audit  repo.AuditLogRepository
	log    *zap.Logger
}

func NewAdminOrderUsecase(orders repo.OrderRepository, audit repo.AuditLogRepository, logger *zap.Logger) *AdminOrderUsecase {
	return &AdminOrderUsecase{orders: orders, audit: audit, log: logger}
}

type AdminUpdateOrderStatusInput struct {
	Status string
	//遷移表に無い移動を許す管理者補正フラグ
	Force bool
}

// UpdateStatus は注文ステータスだけを書き換える。
// 遷移表に無い移動はForce無しでは409。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, in AdminUpdateOrderStatusInput) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	if !newStatus.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//すでに同じなら何もしない
	if o.Status == newStatus {
		return o, nil
	}

	if !transitionAllowed(o.Status, newStatus) && !in.Force {
		return model.Order{}, NewHTTPError(http.StatusConflict, "illegal status transition")
	}

	if err := u.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//監査ログはbest-effort
	if err := u.audit.Create(ctx, model.AuditLog{
		Actor:        "admin",
		Action:       model.AuditActionUpdateOrderStatus,
		ResourceType: model.AuditResourceOrder,
		ResourceID:   orderID,
		BeforeJSON:   `{"status":"` + string(o.Status) + `"}`,
		AfterJSON:    `{"status":"` + string(newStatus) + `"}`,
		CreatedAt:    time.Now(),
	}); err != nil {
		u.log.Warn("audit log write failed", zap.Int64("order_id", orderID), zap.Error(err))
	}

	o.Status = newStatus
	return o, nil
}
