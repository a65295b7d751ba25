package server

import (
	"net/http"

	"metahair/internal/config"
	"metahair/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Orders        *handler.OrderHandler
	Payments      *handler.PaymentHandler
	AdminOrders   *handler.AdminOrderHandler
	Products      *handler.ProductHandler
	AdminProducts *handler.AdminProductHandler
	Shipping      *handler.ShippingHandler
	AdminAuth     *handler.AdminAuthHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Orders.RegisterRoutes(e)
	h.Payments.RegisterRoutes(e)
	h.AdminOrders.RegisterRoutes(e, cfg)
	h.Products.RegisterRoutes(e)
	h.AdminProducts.RegisterRoutes(e, cfg)
	h.Shipping.RegisterRoutes(e, cfg)
	h.AdminAuth.RegisterRoutes(e)
}
