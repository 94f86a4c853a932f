package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/middleware"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, req entities.CheckoutRequest) (string, error)
}

type PriceCounter interface {
	CountPrice(ctx context.Context, queries []entities.PriceQuery) ([]entities.PricedItem, error)
}

type OrderQuerier interface {
	GetOrderWithSecret(ctx context.Context, orderID, secret string) (entities.Order, error)
	GetMyOrder(ctx context.Context, orderID, userID string) (entities.Order, error)
	ListMyOrders(ctx context.Context, f entities.OrderFilter) (entities.OrderPage, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	creator  OrderCreator
	pricer   PriceCounter
	querier  OrderQuerier
}

func NewOrderHandler(logger *slog.Logger, creator OrderCreator, pricer PriceCounter, querier OrderQuerier) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: newValidator(),
		creator:  creator,
		pricer:   pricer,
		querier:  querier,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.With(middleware.RequireUser).Post("/orders/checkout/count-price", h.CountPrice)
	r.Get("/orders/transaction/{code}", h.GetOrderWithSecret)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/orders/me/transaction", h.ListMyOrders)
		r.Get("/orders/me/transaction/{code}", h.GetMyOrder)
	})
}

// CreateOrder оформляет заказ.
// @Summary      Оформить заказ
// @Description  Пересчитывает корзину по каталогу, создаёт платёжную сессию и сохраняет заказ. Тело может быть обёрнуто в data.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Корзина, доставка и покупатель"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Не хватает данных или товар недоступен"
// @Failure      500  {object}  utils.ErrorResponse "Не удалось создать заказ"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ordersInProgress.Inc()
	defer ordersInProgress.Dec()
	start := time.Now()

	var req CreateOrderRequest
	if err := utils.DecodeData(r, &req); err != nil && !errors.Is(err, io.EOF) {
		orderRequestTotal.WithLabelValues("create", "bad_request").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		orderRequestTotal.WithLabelValues("create", "bad_request").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	userID, _ := middleware.UserID(ctx)
	url, err := h.creator.CreateOrder(ctx, req.ToEntity(userID))
	orderCreateDuration.Observe(time.Since(start).Seconds())

	var unavailable *entities.ItemUnavailableError
	switch {
	case errors.Is(err, entities.ErrItemsMissing),
		errors.Is(err, entities.ErrShippingMissing),
		errors.Is(err, entities.ErrCustomerMissing),
		errors.As(err, &unavailable):
		orderRequestTotal.WithLabelValues("create", "bad_request").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		orderRequestTotal.WithLabelValues("create", "error").Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	orderRequestTotal.WithLabelValues("create", "ok").Inc()
	utils.WriteJSON(w, CreateOrderResponse{URL: url}, http.StatusOK)
}

// CountPrice пересчитывает корзину по каталогу.
// @Summary      Пересчитать корзину
// @Description  Возвращает цены и размеры вариантов из каталога. Ненайденные позиции возвращаются пустыми.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CountPriceRequest  true  "Позиции корзины"
// @Success      200  {array}   PricedItem
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нужна авторизация"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/checkout/count-price [post]
func (h *OrderHandler) CountPrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CountPriceRequest
	if err := utils.DecodeData(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	queries := lo.Map(req.Items, func(it CartItem, _ int) entities.PriceQuery {
		return entities.PriceQuery{ProductID: it.ProductID, VariantID: it.VariantID}
	})

	items, err := h.pricer.CountPrice(ctx, queries)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count price", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, lo.Map(items, func(it entities.PricedItem, _ int) PricedItem { return PricedItemToJSON(it) }), http.StatusOK)
}

// GetOrderWithSecret возвращает заказ по ID и секрету.
// @Summary      Получить заказ по коду и секрету
// @Description  Анонимный доступ к заказу по паре order_id и secret
// @Tags         orders
// @Produce      json
// @Param        code    path      string  true  "ID заказа"
// @Param        secret  query     string  true  "Секрет заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Нет ID или секрета"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/transaction/{code} [get]
func (h *OrderHandler) GetOrderWithSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "code")
	secret := r.URL.Query().Get("secret")

	if code == "" || secret == "" {
		orderRequestTotal.WithLabelValues("get_with_secret", "bad_request").Inc()
		utils.WriteError(w, "Order ID and secret are required", http.StatusBadRequest)
		return
	}

	order, err := h.querier.GetOrderWithSecret(ctx, code, secret)
	h.writeOrder(w, r, "get_with_secret", order, err)
}

// GetMyOrder возвращает заказ текущего пользователя.
// @Summary      Получить свой заказ
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      401  {object}  utils.ErrorResponse "Нужна авторизация"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/me/transaction/{code} [get]
func (h *OrderHandler) GetMyOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	order, err := h.querier.GetMyOrder(ctx, chi.URLParam(r, "code"), userID)
	h.writeOrder(w, r, "get_mine", order, err)
}

func (h *OrderHandler) writeOrder(w http.ResponseWriter, r *http.Request, op string, order entities.Order, err error) {
	if errors.Is(err, entities.ErrOrderNotFound) {
		orderRequestTotal.WithLabelValues(op, "not_found").Inc()
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		orderRequestTotal.WithLabelValues(op, "error").Inc()
		h.logger.ErrorContext(r.Context(), "failed to get order", slog.Any("error", err), slog.String("op", op))
		utils.WriteError(w, "Failed to get order", http.StatusInternalServerError)
		return
	}

	orderRequestTotal.WithLabelValues(op, "ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListMyOrders возвращает заказы текущего пользователя.
// @Summary      Список своих заказов
// @Description  Заказы отсортированы от новых к старым
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status    query     string  false  "Статус оплаты"  Enums(UNPAID, EXPIRED, SUCCEEDED, ON_PROCESS, CANCELED, FAILED)
// @Param        page      query     int     false  "Номер страницы"  default(1)
// @Param        pageSize  query     int     false  "Размер страницы"  default(25)  maximum(100)
// @Success      200  {object}  OrderListResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Нужна авторизация"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/me/transaction [get]
func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.UserID(ctx)

	q, err := parseListQuery(r)
	if err != nil {
		utils.WriteError(w, "invalid pagination parameters", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(q); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	page, err := h.querier.ListMyOrders(ctx, entities.OrderFilter{
		UserID:   userID,
		Status:   entities.PaymentStatus(q.Status),
		Page:     q.Page,
		PageSize: q.PageSize,
	})
	if err != nil {
		orderRequestTotal.WithLabelValues("list_mine", "error").Inc()
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "Failed to get orders", http.StatusInternalServerError)
		return
	}

	orderRequestTotal.WithLabelValues("list_mine", "ok").Inc()
	utils.WriteJSON(w, OrderPageToJSON(page), http.StatusOK)
}

func parseListQuery(r *http.Request) (ListOrdersQuery, error) {
	values := r.URL.Query()
	q := ListOrdersQuery{Status: values.Get("status")}

	var err error
	if v := values.Get("page"); v != "" {
		if q.Page, err = strconv.Atoi(v); err != nil {
			return q, err
		}
	}
	if v := values.Get("pageSize"); v != "" {
		if q.PageSize, err = strconv.Atoi(v); err != nil {
			return q, err
		}
	}
	return q, nil
}
