package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type userKey struct{}

// UserID возвращает id пользователя из контекста запроса.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userKey{}).(string)
	return id, ok && id != ""
}

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

var errNoUserID = errors.New("token has no user id")

// Authenticate кладёт в контекст id пользователя из Bearer токена.
// Запрос без токена проходит анонимно, с невалидным токеном получает 401.
// С пустым секретом все запросы анонимные.
func Authenticate(logger *slog.Logger, secret string) func(next http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := parseUserID(parser, token, secret)
			if err != nil {
				logger.DebugContext(r.Context(), "invalid token", slog.Any("error", err))
				utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}

// RequireUser пропускает только запросы с пользователем в контексте.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			utils.WriteError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	return token, ok && token != ""
}

func parseUserID(parser *jwt.Parser, token, secret string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	switch id := claims["id"].(type) {
	case float64:
		return strconv.FormatInt(int64(id), 10), nil
	case string:
		if id != "" {
			return id, nil
		}
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("invalid subject: %w", err)
	}
	if sub == "" {
		return "", errNoUserID
	}
	return sub, nil
}
