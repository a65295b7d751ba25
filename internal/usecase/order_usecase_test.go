package usecase

import (
	"context"
	"net/http"
	"testing"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func validCreateInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:    "Ada Obi",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "+2348000000000",
		ShippingAddress: "12 Allen Avenue, Ikeja, Lagos",
		Items: []CreateOrderItemInput{
			{ProductID: 1, ProductName: "Silk Wig", Quantity: 2, UnitPrice: 2000},
		},
		ShippingMethod: "Lagos",
		ShippingCost:   500,
		Subtotal:       4000,
		Total:          4500,
	}
}

func TestCreateOrder_Success(t *testing.T) {
	orders := new(OrderRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewOrderUsecase(orders, shipping, zap.NewNop())

	shipping.On("FindByName", mock.Anything, "Lagos").
		Return(model.ShippingMethod{ID: 1, Name: "Lagos", Price: 500}, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.CreateOrder(context.Background(), validCreateInput())

	assert.NoError(t, err)
	//作成直後は未決済・未処理
	assert.Equal(t, model.OrderStatusPending, out.Status)
	assert.Equal(t, model.PaymentStatusPending, out.PaymentStatus)
	assert.Equal(t, int64(4000), out.Subtotal)
	assert.Equal(t, int64(500), out.ShippingCost)
	assert.Equal(t, out.Subtotal+out.ShippingCost, out.Total)
	assert.NotEmpty(t, out.OrderNumber)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	orders.AssertExpectations(t)
}

func TestCreateOrder_OrderNumbersAreDistinct(t *testing.T) {
	orders := new(OrderRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewOrderUsecase(orders, shipping, zap.NewNop())

	shipping.On("FindByName", mock.Anything, "Lagos").
		Return(model.ShippingMethod{Name: "Lagos", Price: 500}, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		out, err := uc.CreateOrder(context.Background(), validCreateInput())
		assert.NoError(t, err)
		assert.False(t, seen[out.OrderNumber], "duplicate order number %s", out.OrderNumber)
		seen[out.OrderNumber] = true
	}
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	uc := NewOrderUsecase(new(OrderRepoMock), new(ShippingRepoMock), zap.NewNop())

	in := validCreateInput()
	in.Items = nil

	_, err := uc.CreateOrder(context.Background(), in)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	uc := NewOrderUsecase(new(OrderRepoMock), new(ShippingRepoMock), zap.NewNop())

	in := validCreateInput()
	in.Items[0].Quantity = 0

	_, err := uc.CreateOrder(context.Background(), in)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCreateOrder_SubtotalMismatch(t *testing.T) {
	uc := NewOrderUsecase(new(OrderRepoMock), new(ShippingRepoMock), zap.NewNop())

	in := validCreateInput()
	in.Subtotal = 9999

	_, err := uc.CreateOrder(context.Background(), in)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "subtotal mismatch", he.Message)
}

func TestCreateOrder_TotalMismatch(t *testing.T) {
	shipping := new(ShippingRepoMock)
	uc := NewOrderUsecase(new(OrderRepoMock), shipping, zap.NewNop())

	shipping.On("FindByName", mock.Anything, "Lagos").
		Return(model.ShippingMethod{}, repo.ErrNotFound)

	in := validCreateInput()
	in.Total = 4000 // 送料が乗っていない

	_, err := uc.CreateOrder(context.Background(), in)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "total mismatch", he.Message)
}

func TestCreateOrder_ServerRepricesKnownShippingMethod(t *testing.T) {
	orders := new(OrderRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewOrderUsecase(orders, shipping, zap.NewNop())

	//カタログ上の価格800がクライアント申告の500を上書きする
	shipping.On("FindByName", mock.Anything, "Lagos").
		Return(model.ShippingMethod{Name: "Lagos", Price: 800}, nil)

	in := validCreateInput()
	_, err := uc.CreateOrder(context.Background(), in)

	//クライアント合計は4500のままなので不一致で弾く
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "total mismatch", he.Message)

	//正しい合計なら通る
	in.Total = 4800
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	out, err := uc.CreateOrder(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, int64(800), out.ShippingCost)
	assert.Equal(t, int64(4800), out.Total)
}

func TestCreateOrder_PersistenceFailure(t *testing.T) {
	orders := new(OrderRepoMock)
	shipping := new(ShippingRepoMock)
	uc := NewOrderUsecase(orders, shipping, zap.NewNop())

	shipping.On("FindByName", mock.Anything, "Lagos").
		Return(model.ShippingMethod{Name: "Lagos", Price: 500}, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewOrderUsecase(orders, new(ShippingRepoMock), zap.NewNop())

	orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetOrder(context.Background(), 42)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestList_Pagination(t *testing.T) {
	orders := new(OrderRepoMock)
	uc := NewOrderUsecase(orders, new(ShippingRepoMock), zap.NewNop())

	orders.On("List", mock.Anything, repo.OrderListFilter{Page: 2, Limit: 10}).
		Return([]model.Order{{ID: 11}}, int64(25), nil)

	out, err := uc.List(context.Background(), repo.OrderListFilter{Page: 2, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, int64(25), out.Total)
	assert.Equal(t, int64(3), out.Pages)
	assert.Equal(t, 2, out.CurrentPage)
}
