package utils

import (
	"github.com/golang-jwt/jwt"
	"github.com/ptcharoen/agrirot/internal/pkg/constants"
	"github.com/spf13/viper"
)

type AuthTokenWrapper struct {
	Secret string `json:"secret"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	return token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
}

func ParseAuthToken(raw string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	_, err := jwt.ParseWithClaims(raw, wrapper, func(token *jwt.Token) (interface{}, error) {
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
