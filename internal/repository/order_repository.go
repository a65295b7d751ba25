package repository

import (
	"context"
	"errors"

	"metahair/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type OrderListFilter struct {
	Page   int
	Limit  int
	Status string
}

// 注文の永続化の約束。
type OrderRepository interface {
	//明細ごと保存する。order.IDに採番結果が入る。
	Create(ctx context.Context, order *model.Order) error

	//明細込みで1件取得。
	FindByID(ctx context.Context, orderID int64) (model.Order, error)

	//管理画面用の一覧（新しい順）。
	List(ctx context.Context, f OrderListFilter) ([]model.Order, int64, error)

	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//決済確定。payment_statusがpendingのときだけ
	//(processing, completed, reference) に更新する。
	//falseは「すでに確定済みか失敗済み」の意味。
	SettlePayment(ctx context.Context, orderID int64, reference string) (bool, error)

	//決済失敗。payment_statusがpendingのときだけ
	//(cancelled, failed) に更新する。
	MarkPaymentFailed(ctx context.Context, orderID int64) (bool, error)
}
