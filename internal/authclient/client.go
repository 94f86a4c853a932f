package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResponse    = errors.New("invalid response from server")
)

// StatusError - ответ провайдера с кодом ошибки.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Session struct {
	JWT  string `json:"jwt"`
	User User   `json:"user"`
}

type Client struct {
	logger  *slog.Logger
	baseURL string
	http    *http.Client
	retry   utils.RetryConfig
}

// New создаёт клиент провайдера аутентификации.
// Вход повторяется один раз через cfg.RetryDelay при сетевой ошибке, 5xx или таймауте.
func New(logger *slog.Logger, cfg config.Auth) *Client {
	return &Client{
		logger:  logger.With(slog.String("client", "auth")),
		baseURL: cfg.ProviderURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		retry: utils.RetryConfig{
			MaxAttempts:  2,
			InitialDelay: cfg.RetryDelay,
			Multiplier:   1,
			Retryable:    retryable,
		},
	}
}

func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	body, err := json.Marshal(map[string]string{
		"identifier": email,
		"password":   password,
	})
	if err != nil {
		return Session{}, err
	}

	var session Session
	err = utils.Retry(ctx, c.retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/local", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		session, err = c.do(req)
		if err != nil && retryable(err) {
			c.logger.WarnContext(ctx, "sign in attempt failed", slog.Any("error", err))
		}
		return err
	})
	return session, err
}

func (c *Client) SignInWithProvider(ctx context.Context, provider, accessToken string) (Session, error) {
	u := fmt.Sprintf("%s/auth/%s/callback?access_token=%s",
		c.baseURL, url.PathEscape(provider), url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Session{}, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (Session, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Session{}, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := errorMessage(data)
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			if msg == "" {
				return Session{}, ErrInvalidCredentials
			}
			return Session{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, msg)
		}
		return Session{}, &StatusError{Status: resp.StatusCode, Message: msg}
	}

	var raw struct {
		JWT  string `json:"jwt"`
		User struct {
			ID       json.RawMessage `json:"id"`
			Email    string          `json:"email"`
			Name     string          `json:"name"`
			Username string          `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if raw.JWT == "" || len(raw.User.ID) == 0 {
		return Session{}, ErrInvalidResponse
	}

	user := User{
		ID:       userID(raw.User.ID),
		Email:    raw.User.Email,
		Name:     raw.User.Name,
		Username: raw.User.Username,
	}
	if user.Name == "" {
		user.Name = user.Username
	}
	if user.Name == "" {
		user.Name = user.Email
	}
	return Session{JWT: raw.JWT, User: user}, nil
}

// id пользователя может прийти и числом, и строкой.
func userID(raw json.RawMessage) string {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(n, 10)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func errorMessage(data []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error.Message
}

func retryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status >= http.StatusInternalServerError
	}
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidResponse) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded)
}
