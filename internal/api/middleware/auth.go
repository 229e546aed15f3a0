package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/QuickServe-BookingService/internal/api/handlers"
	"github.com/m04kA/QuickServe-BookingService/internal/domain"
)

const (
	msgMissingToken  = "требуется авторизация"
	msgInvalidToken  = "недействительный токен"
	msgForbiddenRole = "недостаточно прав"

	bearerPrefix = "Bearer "
)

var errInvalidClaims = errors.New("invalid token claims")

// Claims содержимое JWT, выпущенного сервисом пользователей
type Claims struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет Bearer токен (HS256) и кладет пользователя в контекст
func Auth(secret []byte, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			actor, err := ParseToken(strings.TrimPrefix(header, bearerPrefix), secret)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// ParseToken проверяет подпись и срок действия токена и возвращает пользователя
func ParseToken(tokenStr string, secret []byte) (domain.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Actor{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Actor{}, errInvalidClaims
	}

	if claims.ID <= 0 {
		return domain.Actor{}, fmt.Errorf("%w: id must be positive", errInvalidClaims)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", errInvalidClaims, err)
	}

	return domain.Actor{UserID: claims.ID, Role: role}, nil
}

// RequireRoles пропускает только пользователей с одной из указанных ролей
// Должен стоять после Auth
func RequireRoles(logger Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := GetActor(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("%s %s - Role %s is not allowed, user_id=%d", r.Method, r.URL.Path, actor.Role, actor.UserID)
			handlers.RespondForbidden(w, msgForbiddenRole)
		})
	}
}
