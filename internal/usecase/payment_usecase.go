package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"metahair/internal/domain/model"
	"metahair/internal/infra/paystack"
	"metahair/internal/notify"
	repo "metahair/internal/repository"

	"go.uber.org/zap"
)

// 決済ゲートウェイへの問い合わせの約束。
type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (paystack.VerifyResult, error)
}

// commit後に通知を積むキューの約束。
type NotificationQueue interface {
	Enqueue(customerEmail, adminEmail string, data notify.OrderEmail)
}

// 決済を受け付ける通貨。注文金額はコボ建てなのでナイラ以外は突き合わせ不能。
const settlementCurrency = "NGN"

type PaymentUsecase struct {
	tx       repo.TransactionManager
	orders   repo.OrderRepository
	products repo.ProductRepository
	settings repo.SettingsRepository
	verifier PaymentVerifier
	queue    NotificationQueue

	//設定行にもENVにも無いときの通知先
	fallbackAdminEmail string
	log                *zap.Logger
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	products repo.ProductRepository,
	settings repo.SettingsRepository,
	verifier PaymentVerifier,
	queue NotificationQueue,
	fallbackAdminEmail string,
	logger *zap.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		tx:                 tx,
		orders:             orders,
		products:           products,
		settings:           settings,
		verifier:           verifier,
		queue:              queue,
		fallbackAdminEmail: fallbackAdminEmail,
		log:                logger,
	}
}

type VerifyPaymentInput struct {
	Reference     string `json:"reference"`
	OrderID       int64  `json:"orderId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

// VerifyAndSettle は決済コールバックの本体。
//
// ゲートウェイが成功を報告しNGN建ての金額が注文合計を満たすときだけ
// (processing, completed) へ進め、同じトランザクションで在庫を減らす。
// ゲートの実体はpayment_status=pending条件付きUPDATE1回なので、
// 同じコールバックの再送やゲートウェイのリトライが重なっても
// 在庫が二重に減ることはない。
func (u *PaymentUsecase) VerifyAndSettle(ctx context.Context, in VerifyPaymentInput) (model.Order, error) {
	if strings.TrimSpace(in.Reference) == "" || in.OrderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "missing reference or orderId")
	}

	order, err := u.orders.FindByID(ctx, in.OrderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	result, err := u.verifier.Verify(ctx, in.Reference)
	if errors.Is(err, paystack.ErrMissingSecret) {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "payment verification is not configured")
	}
	if err != nil {
		u.log.Error("paystack verify failed", zap.Int64("order_id", in.OrderID), zap.Error(err))
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "verification error")
	}

	//金額不足・通貨違いも不成立扱い
	if !result.Succeeded() ||
		!strings.EqualFold(result.Currency, settlementCurrency) ||
		result.Amount < order.Total {
		if _, err := u.orders.MarkPaymentFailed(ctx, in.OrderID); err != nil {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "verification failed")
	}

	var settled bool
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		ok, err := r.Orders().SettlePayment(ctx, in.OrderID, in.Reference)
		if err != nil {
			return err
		}
		settled = ok
		if !ok {
			//すでに確定済み（リプレイ）。在庫には触らない。
			return nil
		}

		//在庫減算。決済は確定しているので明細単位の失敗はログに残して続行。
		for _, it := range order.Items {
			if it.ProductID == 0 {
				continue
			}
			qty := it.Quantity
			if qty < 0 {
				qty = -qty
			}
			if err := r.Products().DecrementStock(ctx, it.ProductID, qty); err != nil {
				u.log.Warn("stock decrement failed",
					zap.Int64("order_id", in.OrderID),
					zap.Int64("product_id", it.ProductID),
					zap.Int64("quantity", qty),
					zap.Error(err))
			}
		}
		return nil
	})
	if err != nil {
		u.log.Error("settlement failed", zap.Int64("order_id", in.OrderID), zap.Error(err))
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	order, err = u.orders.FindByID(ctx, in.OrderID)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//リプレイでも決済済みなら成功で返す。pendingのまま確定できなかったのは異常。
	if order.PaymentStatus != model.PaymentStatusCompleted {
		return model.Order{}, NewHTTPError(http.StatusConflict, "order is not payable")
	}

	//通知は初回確定のときだけ。レスポンスは送信を待たない。
	if settled {
		u.enqueueNotifications(ctx, order, in)
	}

	return order, nil
}

func (u *PaymentUsecase) enqueueNotifications(ctx context.Context, order model.Order, in VerifyPaymentInput) {
	customerEmail := order.CustomerEmail
	if customerEmail == "" {
		customerEmail = in.CustomerEmail
	}
	customerName := order.CustomerName
	if customerName == "" {
		customerName = in.CustomerName
	}
	if customerName == "" {
		customerName = "Customer"
	}

	items := make([]notify.OrderEmailItem, 0, len(order.Items))
	for _, it := range order.Items {
		item := notify.OrderEmailItem{
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.UnitPrice,
		}
		//代表画像はbest-effortで引く
		if it.ProductID > 0 {
			if p, err := u.products.FindByID(ctx, it.ProductID); err == nil {
				item.Image = p.FirstImage()
			}
		}
		items = append(items, item)
	}

	u.queue.Enqueue(customerEmail, u.adminEmail(ctx), notify.OrderEmail{
		OrderNumber:     order.OrderNumber,
		CustomerName:    customerName,
		CustomerEmail:   customerEmail,
		Items:           items,
		Subtotal:        order.Subtotal,
		ShippingCost:    order.ShippingCost,
		Total:           order.Total,
		ShippingMethod:  order.ShippingMethod,
		ShippingAddress: order.ShippingAddress,
	})
}

// 通知先：設定行 → ENV/デフォルト の順で解決。
func (u *PaymentUsecase) adminEmail(ctx context.Context) string {
	s, err := u.settings.Get(ctx)
	if err == nil && s.AdminEmail != "" {
		return s.AdminEmail
	}
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		u.log.Warn("settings lookup failed", zap.Error(err))
	}
	return u.fallbackAdminEmail
}
