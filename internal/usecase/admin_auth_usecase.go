package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"metahair/internal/domain/model"
	repo "metahair/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminSessionTTL = 24 * time.Hour
	bcryptCost      = 12
)

// PIN認証で管理者セッションを発行する。
// PINハッシュは設定行だけに置く（プロセス変数には持たない）。
type AdminAuthUsecase struct {
	settings repo.SettingsRepository
	secret   []byte
}

func NewAdminAuthUsecase(settings repo.SettingsRepository, jwtSecret string) *AdminAuthUsecase {
	return &AdminAuthUsecase{settings: settings, secret: []byte(jwtSecret)}
}

// EnsureBootstrap は設定行が無いときだけ初期PINとメールで作る。
func (u *AdminAuthUsecase) EnsureBootstrap(ctx context.Context, adminEmail, defaultPin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPin), bcryptCost)
	if err != nil {
		return err
	}
	_, err = u.settings.EnsureDefault(ctx, model.Settings{
		AdminEmail: adminEmail,
		PinHash:    string(hash),
	})
	return err
}

type AdminSession struct {
	Token     string
	ExpiresAt time.Time
}

func (u *AdminAuthUsecase) Login(ctx context.Context, pin string) (AdminSession, error) {
	if strings.TrimSpace(pin) == "" {
		return AdminSession{}, NewHTTPError(http.StatusBadRequest, "pin is required")
	}

	s, err := u.settings.Get(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return AdminSession{}, NewHTTPError(http.StatusInternalServerError, "admin settings not initialized")
	}
	if err != nil {
		return AdminSession{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if bcrypt.CompareHashAndPassword([]byte(s.PinHash), []byte(pin)) != nil {
		return AdminSession{}, NewHTTPError(http.StatusUnauthorized, "invalid pin")
	}

	now := time.Now()
	expiresAt := now.Add(adminSessionTTL)
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.secret)
	if err != nil {
		return AdminSession{}, NewHTTPError(http.StatusInternalServerError, "failed to issue session")
	}

	return AdminSession{Token: signed, ExpiresAt: expiresAt}, nil
}

func (u *AdminAuthUsecase) ChangePin(ctx context.Context, currentPin, newPin string) error {
	if !validPin(newPin) {
		return NewHTTPError(http.StatusBadRequest, "pin must be 4-8 digits")
	}

	s, err := u.settings.Get(ctx)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if bcrypt.CompareHashAndPassword([]byte(s.PinHash), []byte(currentPin)) != nil {
		return NewHTTPError(http.StatusUnauthorized, "invalid pin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPin), bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to hash pin")
	}
	if err := u.settings.UpdatePinHash(ctx, string(hash)); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AdminAuthUsecase) UpdateEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if err := u.settings.UpdateEmail(ctx, email); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func validPin(pin string) bool {
	if len(pin) < 4 || len(pin) > 8 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
