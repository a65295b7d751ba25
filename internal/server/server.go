package server

import (
	"metahair/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func Start(addr string, cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	if cfg.AppURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.AppURL},
			AllowCredentials: true,
		}))
	}

	RegisterRoutes(e, cfg, h)
	return e.Start(addr)
}
