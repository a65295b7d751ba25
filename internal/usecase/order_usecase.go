package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderUsecase struct {
	orders   repo.OrderRepository
	shipping repo.ShippingMethodRepository
	log      *zap.Logger
}

func NewOrderUsecase(orders repo.OrderRepository, shipping repo.ShippingMethodRepository, logger *zap.Logger) *OrderUsecase {
	return &OrderUsecase{orders: orders, shipping: shipping, log: logger}
}

type CreateOrderItemInput struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

type CreateOrderInput struct {
	CustomerName    string                 `json:"customer_name"`
	CustomerEmail   string                 `json:"customer_email"`
	CustomerPhone   string                 `json:"customer_phone"`
	ShippingAddress string                 `json:"shipping_address"`
	Items           []CreateOrderItemInput `json:"items"`
	ShippingMethod  string                 `json:"shipping_method"`
	ShippingCost    int64                  `json:"shipping_cost"`
	Subtotal        int64                  `json:"subtotal"`
	Total           int64                  `json:"total"`
}

// CreateOrder はカートのスナップショットから未決済の注文を作る。
// 在庫も決済もここでは触らない（決済検証が通ってから）。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (model.Order, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer name is required")
	}
	if strings.TrimSpace(in.CustomerEmail) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "customer email is required")
	}
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	//明細チェック＋小計をサーバー側で再計算する
	var subtotal int64
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
		}
		if it.UnitPrice < 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid price")
		}
		if strings.TrimSpace(it.ProductName) == "" {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "product name is required")
		}
		subtotal += it.UnitPrice * it.Quantity
		items = append(items, model.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	if subtotal != in.Subtotal {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "subtotal mismatch")
	}

	//配送方法がカタログにあればそちらの価格を正とする
	shippingCost := in.ShippingCost
	if name := strings.TrimSpace(in.ShippingMethod); name != "" {
		m, err := u.shipping.FindByName(ctx, name)
		if err == nil {
			shippingCost = m.Price
		} else if !errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}
	if in.Total != subtotal+shippingCost {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "total mismatch")
	}

	order := model.Order{
		OrderNumber:     newOrderNumber(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
		ShippingMethod:  in.ShippingMethod,
		ShippingCost:    shippingCost,
		Subtotal:        subtotal,
		Total:           subtotal + shippingCost,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
	}

	if err := u.orders.Create(ctx, &order); err != nil {
		u.log.Error("order create failed", zap.Error(err))
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "failed to create order")
	}

	return order, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

type OrderListOutput struct {
	Orders      []model.Order `json:"orders"`
	Total       int64         `json:"total"`
	Pages       int64         `json:"pages"`
	CurrentPage int           `json:"currentPage"`
}

// List は管理画面向けの一覧。
func (u *OrderUsecase) List(ctx context.Context, f repo.OrderListFilter) (OrderListOutput, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}
	if f.Status != "" && !model.OrderStatus(f.Status).Valid() {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	orders, total, err := u.orders.List(ctx, f)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pages := (total + int64(f.Limit) - 1) / int64(f.Limit)
	return OrderListOutput{
		Orders:      orders,
		Total:       total,
		Pages:       pages,
		CurrentPage: f.Page,
	}, nil
}

// 注文番号。タイムスタンプでほぼ単調、同ミリ秒の衝突はサフィックスで回避する。
// それでも被ったらuniqueIndexが弾く。
func newOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("MH-%d-%s", time.Now().UnixMilli(), suffix)
}
