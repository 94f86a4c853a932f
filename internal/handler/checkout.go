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
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	ValidateAddress(ctx context.Context, addr entities.Address) entities.AddressVerification
	ShippingRates(ctx context.Context, to *entities.Address, parcel *entities.Parcel) (entities.ShipmentQuote, error)
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewCheckoutHandler(logger *slog.Logger, svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Post("/orders/checkout/validate-address", h.ValidateAddress)
	r.Post("/orders/checkout/shipping-rate", h.ShippingRate)
}

// ValidateAddress проверяет адрес доставки.
// @Summary      Проверить адрес
// @Description  Проверяет адрес у перевозчика. Если перевозчик недоступен, адрес считается верным.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      AddressRequest  true  "Адрес, можно обернуть в data"
// @Success      200  {object}  AddressVerificationResponse
// @Failure      400  {object}  utils.ErrorResponse "Нет адреса"
// @Router       /orders/checkout/validate-address [post]
func (h *CheckoutHandler) ValidateAddress(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	err := utils.DecodeData(r, &req)
	if errors.Is(err, io.EOF) || (err == nil && req == AddressRequest{}) {
		utils.WriteError(w, "Address data is missing", http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res := h.svc.ValidateAddress(r.Context(), req.ToEntity())
	utils.WriteJSON(w, AddressVerificationToJSON(res), http.StatusOK)
}

// ShippingRate возвращает тарифы доставки.
// @Summary      Рассчитать доставку
// @Description  Создаёт отправление у перевозчика и возвращает тарифы. Если перевозчик недоступен, возвращается тариф-заглушка.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body      ShippingRateRequest  true  "Адрес и посылка"
// @Success      200  {object}  ShipmentResponse
// @Failure      400  {object}  utils.ErrorResponse "Нет адреса или посылки"
// @Router       /orders/checkout/shipping-rate [post]
func (h *CheckoutHandler) ShippingRate(w http.ResponseWriter, r *http.Request) {
	var req ShippingRateRequest
	if err := utils.DecodeData(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	addr, parcel := req.ToEntity()
	quote, err := h.svc.ShippingRates(r.Context(), addr, parcel)
	if errors.Is(err, entities.ErrQuoteInput) {
		utils.WriteError(w, "Address and parcel data are required", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to get shipping rates", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ShipmentQuoteToJSON(quote), http.StatusOK)
}
