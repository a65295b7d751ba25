package handler

import (
	"net/http"

	"metahair/internal/domain/model"
	"metahair/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/paystack/verify", h.verify)
}

// 決済コールバック側が期待するレスポンス形。
type VerifyResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Order   *model.Order `json:"order,omitempty"`
}

func (h *PaymentHandler) verify(c echo.Context) error {
	var req usecase.VerifyPaymentInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, VerifyResponse{Success: false, Message: "invalid body"})
	}

	order, err := h.uc.VerifyAndSettle(c.Request().Context(), req)
	if err != nil {
		if he, ok := usecase.AsHTTPError(err); ok {
			return c.JSON(he.Status, VerifyResponse{Success: false, Message: he.Message})
		}
		return c.JSON(http.StatusInternalServerError, VerifyResponse{Success: false, Message: "verification error"})
	}

	return c.JSON(http.StatusOK, VerifyResponse{Success: true, Order: &order})
}
