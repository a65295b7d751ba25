package handler

import (
	"net/http"
	"time"

	"metahair/internal/config"
	"metahair/internal/middleware"
	"metahair/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminAuthHandler struct {
	uc  *usecase.AdminAuthUsecase
	cfg config.Config
}

func NewAdminAuthHandler(uc *usecase.AdminAuthUsecase, cfg config.Config) *AdminAuthHandler {
	return &AdminAuthHandler{uc: uc, cfg: cfg}
}

func (h *AdminAuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/admin/login", h.login)
	e.GET("/api/admin/session", h.session)
	e.POST("/api/admin/logout", h.logout)

	g := e.Group("/api/admin")
	g.Use(middleware.AdminSession(h.cfg))
	g.POST("/change-pin", h.changePin)
	g.POST("/update-email", h.updateEmail)
}

type AdminLoginRequest struct {
	Pin string `json:"pin"`
}

func (h *AdminAuthHandler) login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	session, err := h.uc.Login(c.Request().Context(), req.Pin)
	if err != nil {
		return writeError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cfg.GoEnv == "prod",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged in"})
}

type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (h *AdminAuthHandler) session(c echo.Context) error {
	cookie, err := c.Cookie(middleware.AdminCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
	}

	ok := middleware.ValidAdminToken(cookie.Value, h.cfg.JWTSecret)
	return c.JSON(http.StatusOK, SessionResponse{Authenticated: ok})
}

func (h *AdminAuthHandler) logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

type ChangePinRequest struct {
	CurrentPin string `json:"current_pin"`
	NewPin     string `json:"new_pin"`
}

func (h *AdminAuthHandler) changePin(c echo.Context) error {
	var req ChangePinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.ChangePin(c.Request().Context(), req.CurrentPin, req.NewPin); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "pin updated"})
}

type UpdateEmailRequest struct {
	Email string `json:"email"`
}

func (h *AdminAuthHandler) updateEmail(c echo.Context) error {
	var req UpdateEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateEmail(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "email updated"})
}
