package usecase

import (
	"context"

	"metahair/internal/domain/model"
	"metahair/internal/infra/paystack"
	"metahair/internal/notify"
	repo "metahair/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Order)
	total, _ := args.Get(1).(int64)
	return items, total, args.Error(2)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) SettlePayment(ctx context.Context, orderID int64, reference string) (bool, error) {
	args := m.Called(ctx, orderID, reference)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) MarkPaymentFailed(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	total, _ := args.Get(1).(int64)
	return items, total, args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(model.Product)
	return out, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) DecrementStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type ShippingRepoMock struct{ mock.Mock }

func (m *ShippingRepoMock) List(ctx context.Context) ([]model.ShippingMethod, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.ShippingMethod)
	return items, args.Error(1)
}

func (m *ShippingRepoMock) FindByID(ctx context.Context, id int64) (model.ShippingMethod, error) {
	args := m.Called(ctx, id)
	sm, _ := args.Get(0).(model.ShippingMethod)
	return sm, args.Error(1)
}

func (m *ShippingRepoMock) FindByName(ctx context.Context, name string) (model.ShippingMethod, error) {
	args := m.Called(ctx, name)
	sm, _ := args.Get(0).(model.ShippingMethod)
	return sm, args.Error(1)
}

func (m *ShippingRepoMock) Create(ctx context.Context, sm model.ShippingMethod) (model.ShippingMethod, error) {
	args := m.Called(ctx, sm)
	out, _ := args.Get(0).(model.ShippingMethod)
	return out, args.Error(1)
}

func (m *ShippingRepoMock) Update(ctx context.Context, sm model.ShippingMethod) error {
	args := m.Called(ctx, sm)
	return args.Error(0)
}

func (m *ShippingRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SettingsRepoMock struct{ mock.Mock }

func (m *SettingsRepoMock) Get(ctx context.Context) (model.Settings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.Settings)
	return s, args.Error(1)
}

func (m *SettingsRepoMock) EnsureDefault(ctx context.Context, s model.Settings) (model.Settings, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(model.Settings)
	return out, args.Error(1)
}

func (m *SettingsRepoMock) UpdateEmail(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *SettingsRepoMock) UpdatePinHash(ctx context.Context, pinHash string) error {
	args := m.Called(ctx, pinHash)
	return args.Error(0)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *AuditRepoMock) ListByResource(ctx context.Context, rt model.AuditResourceType, resourceID int64, limit int) ([]model.AuditLog, error) {
	args := m.Called(ctx, rt, resourceID, limit)
	items, _ := args.Get(0).([]model.AuditLog)
	return items, args.Error(1)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository     { return r.orders }
func (r *TxReposMock) Products() repo.ProductRepository { return r.products }

// =====================
// Gateway / notification mocks
// =====================

type VerifierMock struct{ mock.Mock }

func (m *VerifierMock) Verify(ctx context.Context, reference string) (paystack.VerifyResult, error) {
	args := m.Called(ctx, reference)
	res, _ := args.Get(0).(paystack.VerifyResult)
	return res, args.Error(1)
}

type QueueMock struct{ mock.Mock }

func (m *QueueMock) Enqueue(customerEmail, adminEmail string, data notify.OrderEmail) {
	m.Called(customerEmail, adminEmail, data)
}
