package usecase

import (
	"context"
	"net/http"
	"testing"

	"metahair/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func settingsWithPin(t *testing.T, pin string) model.Settings {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	assert.NoError(t, err)
	return model.Settings{ID: 1, AdminEmail: "owner@metahair.com", PinHash: string(hash)}
}

func TestAdminLogin_Success(t *testing.T) {
	settings := new(SettingsRepoMock)
	uc := NewAdminAuthUsecase(settings, "test-secret")

	settings.On("Get", mock.Anything).Return(settingsWithPin(t, "1234"), nil)

	session, err := uc.Login(context.Background(), "1234")

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.False(t, session.ExpiresAt.IsZero())

	//発行されたトークンはrole=adminのHS256
	token, err := jwt.Parse(session.Token, func(tok *jwt.Token) (interface{}, error) {
		assert.Equal(t, jwt.SigningMethodHS256, tok.Method)
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["role"])
}

func TestAdminLogin_WrongPin(t *testing.T) {
	settings := new(SettingsRepoMock)
	uc := NewAdminAuthUsecase(settings, "test-secret")

	settings.On("Get", mock.Anything).Return(settingsWithPin(t, "1234"), nil)

	_, err := uc.Login(context.Background(), "9999")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestChangePin_ValidatesFormat(t *testing.T) {
	settings := new(SettingsRepoMock)
	uc := NewAdminAuthUsecase(settings, "test-secret")

	for _, bad := range []string{"", "12", "123456789", "12ab"} {
		err := uc.ChangePin(context.Background(), "1234", bad)
		he, ok := AsHTTPError(err)
		assert.True(t, ok, "pin %q should be rejected", bad)
		assert.Equal(t, http.StatusBadRequest, he.Status)
	}
	settings.AssertNotCalled(t, "UpdatePinHash", mock.Anything, mock.Anything)
}

func TestChangePin_RequiresCurrentPin(t *testing.T) {
	settings := new(SettingsRepoMock)
	uc := NewAdminAuthUsecase(settings, "test-secret")

	settings.On("Get", mock.Anything).Return(settingsWithPin(t, "1234"), nil)

	err := uc.ChangePin(context.Background(), "0000", "5678")

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
	settings.AssertNotCalled(t, "UpdatePinHash", mock.Anything, mock.Anything)
}

func TestChangePin_Success(t *testing.T) {
	settings := new(SettingsRepoMock)
	uc := NewAdminAuthUsecase(settings, "test-secret")

	settings.On("Get", mock.Anything).Return(settingsWithPin(t, "1234"), nil)
	settings.On("UpdatePinHash", mock.Anything, mock.Anything).Return(nil)

	err := uc.ChangePin(context.Background(), "1234", "5678")

	assert.NoError(t, err)
	settings.AssertNumberOfCalls(t, "UpdatePinHash", 1)
}

func TestUpdateEmail_Validation(t *testing.T) {
	settings := new(SettingsRepoMock)
	uc := NewAdminAuthUsecase(settings, "test-secret")

	err := uc.UpdateEmail(context.Background(), "not-an-email")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	settings.On("UpdateEmail", mock.Anything, "new@metahair.com").Return(nil)
	assert.NoError(t, uc.UpdateEmail(context.Background(), "new@metahair.com"))
}
