package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/go-chi/chi/v5"
)

const maxWebhookBody = 64 << 10

type EventVerifier interface {
	Verify(payload []byte, signature string) (entities.PaymentEvent, error)
}

type PaymentEventHandler interface {
	HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (entities.Order, error)
}

type WebhookHandler struct {
	logger          *slog.Logger
	verifier        EventVerifier
	svc             PaymentEventHandler
	signatureHeader string
}

func NewWebhookHandler(logger *slog.Logger, verifier EventVerifier, svc PaymentEventHandler, signatureHeader string) *WebhookHandler {
	return &WebhookHandler{
		logger:          logger.With(slog.String("handler", "webhook")),
		verifier:        verifier,
		svc:             svc,
		signatureHeader: signatureHeader,
	}
}

func (h *WebhookHandler) Init(r chi.Router) {
	r.Post("/orders/checkout/webhook-stripe", h.PaymentWebhook)
}

// PaymentWebhook принимает события платёжного провайдера.
// @Summary      Вебхук Stripe
// @Description  Проверяет подпись, обновляет статус оплаты и покупает этикетку после успешной оплаты.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "Подпись события"
// @Success      200  {boolean}  bool
// @Failure      400  {object}  utils.ErrorResponse "Неверная подпись или статус не обрабатывается"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Этикетку покупает другой обработчик, провайдер повторит доставку"
// @Failure      500  {object}  utils.ErrorResponse "Ошибка обработки, провайдер повторит доставку"
// @Router       /orders/checkout/webhook-stripe [post]
func (h *WebhookHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		webhookRequests.WithLabelValues("bad_body").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	event, err := h.verifier.Verify(payload, r.Header.Get(h.signatureHeader))
	if errors.Is(err, entities.ErrInvalidSignature) {
		webhookRequests.WithLabelValues("bad_signature").Inc()
		h.logger.WarnContext(ctx, "webhook signature rejected", slog.Any("error", err))
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
		return
	}
	if err != nil {
		webhookRequests.WithLabelValues("bad_body").Inc()
		utils.WriteError(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	_, err = h.svc.HandlePaymentEvent(ctx, event)
	switch {
	case errors.Is(err, entities.ErrStatusNotHandled):
		webhookRequests.WithLabelValues("not_handled").Inc()
		utils.WriteError(w, "status not handled", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrEventOrderID):
		webhookRequests.WithLabelValues("no_order_id").Inc()
		utils.WriteError(w, "order_id is missing in event metadata", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrOrderNotFound):
		webhookRequests.WithLabelValues("not_found").Inc()
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrLabelInProgress):
		webhookRequests.WithLabelValues("in_progress").Inc()
		utils.WriteError(w, "label purchase in progress", http.StatusConflict)
		return
	case err != nil:
		webhookRequests.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to handle payment event",
			slog.Any("error", err), slog.String("event_id", event.ID), slog.String("order_id", event.OrderID))
		utils.WriteError(w, "Failed to process webhook", http.StatusInternalServerError)
		return
	}

	webhookRequests.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, true, http.StatusOK)
}
