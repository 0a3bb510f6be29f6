package utils

import (
	"time"

	"github.com/Ferrr1/Tani-sub000/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const authTokenTTL = 30 * 24 * time.Hour

// AuthTokenWrapper is the claims payload of the auth cookie.
type AuthTokenWrapper struct {
	UserID uuid.UUID `json:"user_id"`
	Secret string    `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	wrapper.ExpiresAt = time.Now().Add(authTokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)

	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

func ParseAuthToken(tokenStr string) (*AuthTokenWrapper, error) {
	wrapper := &AuthTokenWrapper{}

	token, err := jwt.ParseWithClaims(tokenStr, wrapper, func(*jwt.Token) (interface{}, error) {
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil || !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
