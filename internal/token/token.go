package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/churchweb/mockapi/domain"
	internal_errors "github.com/churchweb/mockapi/internal/errors"
)

// Service mints the access tokens the sign-in handler hands to the browser.
// The mock never gates anything on them, but the client stores and echoes
// them, so they have to look like real tokens.
type Service struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Service {
	return &Service{secretKey, ttl}
}

func (s *Service) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["role"] = string(user.Role)
	claims["exp"] = time.Now().Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (s *Service) DecodeToken(jwtStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return claims, nil
}
