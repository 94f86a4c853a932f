package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"
)

type PaymentOrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ClaimLabel(ctx context.Context, orderID string) (bool, error)
	ReleaseLabelClaim(ctx context.Context, orderID string) error
	ApplyPaymentUpdate(ctx context.Context, u entities.LabelUpdate) (entities.Order, error)
}

type LabelBuyer interface {
	BuyLabel(ctx context.Context, req entities.LabelRequest) (entities.Label, error)
}

// EventDeduplicator хранит id уже обработанных событий.
type EventDeduplicator interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	MarkSeen(ctx context.Context, eventID string) error
}

type webhookService struct {
	logger    *slog.Logger
	repo      PaymentOrderRepo
	labels    LabelBuyer
	dedup     EventDeduplicator
	publisher EventPublisher
	retry     utils.RetryConfig
}

func NewWebhookService(
	logger *slog.Logger,
	repo PaymentOrderRepo,
	labels LabelBuyer,
	dedup EventDeduplicator,
	publisher EventPublisher,
) *webhookService {
	return &webhookService{
		logger:    logger.With(slog.String("service", "webhook")),
		repo:      repo,
		labels:    labels,
		dedup:     dedup,
		publisher: publisher,
		retry: utils.RetryConfig{
			InitialDelay: 50 * time.Millisecond,
			MaxDelay:     time.Second,
			MaxAttempts:  5,
			Multiplier:   2,
			Retryable: func(err error) bool {
				return !errors.Is(err, entities.ErrOrderNotFound)
			},
		},
	}
}

// HandlePaymentEvent применяет событие оплаты к заказу.
// Этикетка покупается не больше одного раза: право на покупку берётся
// через ClaimLabel, а запись полей этикетки защищена отсутствием tracking_code.
// Пока этикетку покупает другой обработчик, возвращается ErrLabelInProgress
// и статус заказа не меняется, чтобы провайдер повторил доставку.
func (s *webhookService) HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (_ entities.Order, err error) {
	ctx, span := startSpan(ctx, "webhookService.HandlePaymentEvent")
	defer func() { finishSpan(span, err) }()

	status := entities.PaymentStatusFromEvent(event.Type)
	if !status.Handled() {
		webhookEvents.WithLabelValues(status.String(), "ignored").Inc()
		return entities.Order{}, entities.ErrStatusNotHandled
	}
	if event.OrderID == "" {
		webhookEvents.WithLabelValues(status.String(), "rejected").Inc()
		return entities.Order{}, entities.ErrEventOrderID
	}

	logger := s.logger.With(
		slog.String("event_id", event.ID),
		slog.String("order_id", event.OrderID),
		slog.String("status", status.String()),
	)

	if s.seen(ctx, event.ID) {
		logger.InfoContext(ctx, "event already processed")
		webhookEvents.WithLabelValues(status.String(), "duplicate").Inc()
		return s.repo.GetOrderByID(ctx, event.OrderID)
	}

	order, err := s.repo.GetOrderByID(ctx, event.OrderID)
	if err != nil {
		return entities.Order{}, err
	}

	update := entities.LabelUpdate{
		OrderID:       order.OrderID,
		PaymentStatus: status,
		Event:         event.Payload,
	}

	if needsLabel(order, status) {
		label, err := s.buyLabel(ctx, order)
		if errors.Is(err, entities.ErrLabelInProgress) {
			logger.InfoContext(ctx, "label is being purchased by another delivery")
			webhookEvents.WithLabelValues(status.String(), "in_progress").Inc()
			return entities.Order{}, err
		}
		if err != nil {
			webhookEvents.WithLabelValues(status.String(), "failed").Inc()
			return entities.Order{}, err
		}
		update.Label = &label
	}

	updated, err := s.applyUpdate(ctx, update)
	if err != nil {
		if update.Label != nil {
			// Заявка остаётся за этим заказом и освобождается по LabelClaimTTL
			logger.ErrorContext(ctx, "label purchased but order update failed",
				slog.String("tracking_code", update.Label.TrackingCode), slog.Any("error", err))
		}
		webhookEvents.WithLabelValues(status.String(), "failed").Inc()
		return entities.Order{}, fmt.Errorf("failed to apply payment update: %w", err)
	}

	if updated.PaymentStatus != status {
		logger.WarnContext(ctx, "late payment event ignored, order already shipped",
			slog.String("current_status", updated.PaymentStatus.String()))
	}

	s.markSeen(ctx, event.ID)
	webhookEvents.WithLabelValues(status.String(), "applied").Inc()
	logger.InfoContext(ctx, "payment event applied", slog.Bool("label", update.Label != nil))

	s.publish(ctx, entities.OrderEvent{
		Type:          entities.EventPaymentStatusChanged,
		OrderID:       updated.OrderID,
		UserID:        updated.UserID,
		PaymentStatus: updated.PaymentStatus,
		TrackingCode:  updated.TrackingCode,
		Total:         updated.Total.StringFixed(2),
		OccurredAt:    time.Now().UTC(),
	})
	if update.Label != nil {
		s.publish(ctx, entities.OrderEvent{
			Type:          entities.EventLabelPurchased,
			OrderID:       updated.OrderID,
			UserID:        updated.UserID,
			PaymentStatus: updated.PaymentStatus,
			TrackingCode:  updated.TrackingCode,
			Total:         updated.Total.StringFixed(2),
			OccurredAt:    time.Now().UTC(),
		})
	}

	return updated, nil
}

// Оплаченный заказ без этикетки получает её при любой доставке SUCCEEDED,
// даже если статус уже был записан раньше.
func needsLabel(order entities.Order, status entities.PaymentStatus) bool {
	return status == entities.PaymentSucceeded && !order.HasLabel()
}

// applyUpdate повторяет запись купленной этикетки, даже если запрос уже отменён:
// иначе оплаченная этикетка потеряется.
func (s *webhookService) applyUpdate(ctx context.Context, update entities.LabelUpdate) (entities.Order, error) {
	if update.Label == nil {
		return s.repo.ApplyPaymentUpdate(ctx, update)
	}

	var updated entities.Order
	err := utils.Retry(context.WithoutCancel(ctx), s.retry, func(ctx context.Context) error {
		var err error
		updated, err = s.repo.ApplyPaymentUpdate(ctx, update)
		return err
	})
	return updated, err
}

func (s *webhookService) buyLabel(ctx context.Context, order entities.Order) (entities.Label, error) {
	claimed, err := s.repo.ClaimLabel(ctx, order.OrderID)
	if err != nil {
		return entities.Label{}, err
	}
	if !claimed {
		labelsPurchased.WithLabelValues("skipped").Inc()
		return entities.Label{}, entities.ErrLabelInProgress
	}

	label, err := s.labels.BuyLabel(ctx, entities.LabelRequest{
		OrderID:    order.OrderID,
		ShipmentID: order.ShippingID,
		RateID:     order.RateID,
	})
	if err != nil {
		labelsPurchased.WithLabelValues("failed").Inc()
		if rerr := s.repo.ReleaseLabelClaim(context.WithoutCancel(ctx), order.OrderID); rerr != nil {
			s.logger.ErrorContext(ctx, "failed to release label claim",
				slog.String("order_id", order.OrderID), slog.Any("error", rerr))
		}
		return entities.Label{}, fmt.Errorf("failed to buy label: %w", err)
	}

	labelsPurchased.WithLabelValues("bought").Inc()
	return label, nil
}

// Ошибки хранилища дедупликации не блокируют обработку.
func (s *webhookService) seen(ctx context.Context, eventID string) bool {
	if s.dedup == nil || eventID == "" {
		return false
	}
	seen, err := s.dedup.Seen(ctx, eventID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to check event id", slog.String("event_id", eventID), slog.Any("error", err))
		return false
	}
	return seen
}

func (s *webhookService) markSeen(ctx context.Context, eventID string) {
	if s.dedup == nil || eventID == "" {
		return
	}
	if err := s.dedup.MarkSeen(ctx, eventID); err != nil {
		s.logger.WarnContext(ctx, "failed to mark event id", slog.String("event_id", eventID), slog.Any("error", err))
	}
}

func (s *webhookService) publish(ctx context.Context, event entities.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.Any("error", err), slog.String("type", string(event.Type)), slog.String("order_id", event.OrderID))
	}
}
