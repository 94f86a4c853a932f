package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/sneaker-store/internal/authclient"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (authclient.Session, error)
	SignInWithProvider(ctx context.Context, provider, accessToken string) (authclient.Session, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     Authenticator
}

func NewAuthHandler(logger *slog.Logger, auth Authenticator) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: newValidator(),
		auth:     auth,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Post("/auth/local", h.SignIn)
	r.Get("/auth/{provider}/callback", h.ProviderCallback)
}

// SignIn выполняет вход по email и паролю.
// @Summary      Вход по паролю
// @Description  Проксирует вход к провайдеру аутентификации, при сетевой ошибке или 5xx повторяет запрос один раз
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignInRequest  true  "Email и пароль"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверный email или пароль"
// @Failure      502  {object}  utils.ErrorResponse "Провайдер недоступен"
// @Router       /auth/local [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	session, err := h.auth.SignIn(r.Context(), req.Identifier, req.Password)
	h.writeSession(w, r, session, err)
}

// ProviderCallback завершает вход через внешнего провайдера.
// @Summary      Вход через провайдера
// @Tags         auth
// @Produce      json
// @Param        provider      path      string  true  "Провайдер, например google"
// @Param        access_token  query     string  true  "Токен провайдера"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ErrorResponse "Нет токена или вход отклонён"
// @Failure      502  {object}  utils.ErrorResponse "Провайдер недоступен"
// @Router       /auth/{provider}/callback [get]
func (h *AuthHandler) ProviderCallback(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("access_token")
	if token == "" {
		utils.WriteError(w, "access_token is required", http.StatusBadRequest)
		return
	}

	session, err := h.auth.SignInWithProvider(r.Context(), chi.URLParam(r, "provider"), token)
	h.writeSession(w, r, session, err)
}

func (h *AuthHandler) writeSession(w http.ResponseWriter, r *http.Request, session authclient.Session, err error) {
	var statusErr *authclient.StatusError
	switch {
	case errors.Is(err, authclient.ErrInvalidCredentials):
		utils.WriteError(w, "Invalid identifier or password", http.StatusBadRequest)
		return
	case errors.As(err, &statusErr) && statusErr.Status < http.StatusInternalServerError:
		utils.WriteError(w, statusErr.Message, statusErr.Status)
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "sign in failed", slog.Any("error", err))
		utils.WriteError(w, "Authentication service unavailable", http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, AuthResponse{
		JWT: session.JWT,
		User: AuthUser{
			ID:       session.User.ID,
			Email:    session.User.Email,
			Name:     session.User.Name,
			Username: session.User.Username,
		},
	}, http.StatusOK)
}
