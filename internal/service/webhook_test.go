package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/sneaker-store/internal/entities"
	"github.com/SergeyBogomolovv/sneaker-store/internal/service"
	mocks "github.com/SergeyBogomolovv/sneaker-store/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookDeps struct {
	repo      *mocks.MockPaymentOrderRepo
	labels    *mocks.MockLabelBuyer
	dedup     *mocks.MockEventDeduplicator
	publisher *mocks.MockEventPublisher
}

func newWebhookDeps(t *testing.T) webhookDeps {
	return webhookDeps{
		repo:      mocks.NewMockPaymentOrderRepo(t),
		labels:    mocks.NewMockLabelBuyer(t),
		dedup:     mocks.NewMockEventDeduplicator(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
}

type paymentEventHandler interface {
	HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (entities.Order, error)
}

func (d webhookDeps) service() paymentEventHandler {
	return service.NewWebhookService(discardLogger(), d.repo, d.labels, d.dedup, d.publisher)
}

func unpaidOrder() entities.Order {
	return entities.Order{
		OrderID:       "order-1",
		PaymentStatus: entities.PaymentUnpaid,
		ShippingID:    "shp_1",
		RateID:        "rate_1",
	}
}

func succeededEvent() entities.PaymentEvent {
	return entities.PaymentEvent{
		ID:      "evt_1",
		Type:    "payment_intent.succeeded",
		OrderID: "order-1",
		Payload: []byte(`{"id":"evt_1"}`),
	}
}

func TestWebhookService_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		event   entities.PaymentEvent
		wantErr error
	}{
		{
			name:    "status not handled",
			event:   entities.PaymentEvent{ID: "evt_1", Type: "customer.created", OrderID: "order-1"},
			wantErr: entities.ErrStatusNotHandled,
		},
		{
			name:    "no order id",
			event:   entities.PaymentEvent{ID: "evt_1", Type: "payment_intent.succeeded"},
			wantErr: entities.ErrEventOrderID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newWebhookDeps(t)

			_, err := d.service().HandlePaymentEvent(context.Background(), tc.event)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestWebhookService_SucceededBuysLabel(t *testing.T) {
	d := newWebhookDeps(t)
	label := entities.Label{TrackingCode: "TRK1", TrackingURL: "https://track.test/TRK1", LabelURL: "https://label.test/1.png"}

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().
		BuyLabel(mock.Anything, entities.LabelRequest{OrderID: "order-1", ShipmentID: "shp_1", RateID: "rate_1"}).
		Return(label, nil).Once()
	d.repo.EXPECT().
		ApplyPaymentUpdate(mock.Anything, mock.MatchedBy(func(u entities.LabelUpdate) bool {
			return u.PaymentStatus == entities.PaymentSucceeded && u.Label != nil && u.Label.TrackingCode == "TRK1"
		})).
		Return(entities.Order{OrderID: "order-1", PaymentStatus: entities.PaymentSucceeded, TrackingCode: "TRK1"}, nil).Once()
	d.dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(nil).Once()
	d.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool { return e.Type == entities.EventPaymentStatusChanged })).
		Return(nil).Once()
	d.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e entities.OrderEvent) bool { return e.Type == entities.EventLabelPurchased })).
		Return(nil).Once()

	order, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentSucceeded, order.PaymentStatus)
	assert.Equal(t, "TRK1", order.TrackingCode)
}

func TestWebhookService_RepeatedDeliveryBuysOneLabel(t *testing.T) {
	d := newWebhookDeps(t)
	label := entities.Label{TrackingCode: "TRK1"}
	paid := entities.Order{OrderID: "order-1", PaymentStatus: entities.PaymentSucceeded, TrackingCode: "TRK1", ShippingID: "shp_1", RateID: "rate_1"}

	// дедупликация недоступна, защищает только состояние заказа
	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, errors.New("redis is down")).Twice()
	d.dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(errors.New("redis is down")).Twice()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(label, nil).Once()
	d.repo.EXPECT().ApplyPaymentUpdate(mock.Anything, mock.Anything).Return(paid, nil).Once()

	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil).Once()
	d.repo.EXPECT().
		ApplyPaymentUpdate(mock.Anything, mock.MatchedBy(func(u entities.LabelUpdate) bool { return u.Label == nil })).
		Return(paid, nil).Once()

	svc := d.service()

	first, err := svc.HandlePaymentEvent(context.Background(), succeededEvent())
	require.NoError(t, err)
	second, err := svc.HandlePaymentEvent(context.Background(), succeededEvent())
	require.NoError(t, err)

	assert.Equal(t, first.TrackingCode, second.TrackingCode)
}

func TestWebhookService_DuplicateEvent(t *testing.T) {
	d := newWebhookDeps(t)
	paid := entities.Order{OrderID: "order-1", PaymentStatus: entities.PaymentSucceeded, TrackingCode: "TRK1"}

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(true, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paid, nil).Once()

	order, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	require.NoError(t, err)
	assert.Equal(t, paid, order)
}

func TestWebhookService_ClaimLost(t *testing.T) {
	d := newWebhookDeps(t)

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(false, nil).Once()

	_, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	assert.ErrorIs(t, err, entities.ErrLabelInProgress)
}

// Проигравшая доставка не пишет статус, поэтому после сбоя покупки у победителя
// следующая доставка снова покупает этикетку.
func TestWebhookService_ClaimLostThenWinnerFails(t *testing.T) {
	d := newWebhookDeps(t)
	label := entities.Label{TrackingCode: "TRK1"}

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Times(3)
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Times(3)

	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(false, nil).Once()

	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(entities.Label{}, errors.New("carrier unavailable")).Once()
	d.repo.EXPECT().ReleaseLabelClaim(mock.Anything, "order-1").Return(nil).Once()

	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(label, nil).Once()
	d.repo.EXPECT().
		ApplyPaymentUpdate(mock.Anything, mock.MatchedBy(func(u entities.LabelUpdate) bool {
			return u.Label != nil && u.Label.TrackingCode == "TRK1"
		})).
		Return(entities.Order{OrderID: "order-1", PaymentStatus: entities.PaymentSucceeded, TrackingCode: "TRK1"}, nil).Once()
	d.dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()

	svc := d.service()

	_, err := svc.HandlePaymentEvent(context.Background(), succeededEvent())
	require.ErrorIs(t, err, entities.ErrLabelInProgress)

	_, err = svc.HandlePaymentEvent(context.Background(), succeededEvent())
	require.Error(t, err)

	order, err := svc.HandlePaymentEvent(context.Background(), succeededEvent())
	require.NoError(t, err)
	assert.Equal(t, "TRK1", order.TrackingCode)
}

func TestWebhookService_PaidOrderWithoutLabelGetsLabel(t *testing.T) {
	d := newWebhookDeps(t)
	paidNoLabel := unpaidOrder()
	paidNoLabel.PaymentStatus = entities.PaymentSucceeded

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(paidNoLabel, nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(entities.Label{TrackingCode: "TRK1"}, nil).Once()
	d.repo.EXPECT().ApplyPaymentUpdate(mock.Anything, mock.Anything).
		Return(entities.Order{OrderID: "order-1", PaymentStatus: entities.PaymentSucceeded, TrackingCode: "TRK1"}, nil).Once()
	d.dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()

	order, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	require.NoError(t, err)
	assert.Equal(t, "TRK1", order.TrackingCode)
}

func TestWebhookService_LabelUpdateRetried(t *testing.T) {
	d := newWebhookDeps(t)
	dbErr := errors.New("connection reset")

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(entities.Label{TrackingCode: "TRK1"}, nil).Once()
	d.repo.EXPECT().ApplyPaymentUpdate(mock.Anything, mock.Anything).Return(entities.Order{}, dbErr).Twice()
	d.repo.EXPECT().ApplyPaymentUpdate(mock.Anything, mock.Anything).
		Return(entities.Order{OrderID: "order-1", PaymentStatus: entities.PaymentSucceeded, TrackingCode: "TRK1"}, nil).Once()
	d.dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(nil).Once()
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Twice()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order, err := d.service().HandlePaymentEvent(ctx, succeededEvent())
	require.NoError(t, err)
	assert.Equal(t, "TRK1", order.TrackingCode)
}

func TestWebhookService_LabelUpdateFailsKeepsClaim(t *testing.T) {
	d := newWebhookDeps(t)
	dbErr := errors.New("connection reset")

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(entities.Label{TrackingCode: "TRK1"}, nil).Once()
	d.repo.EXPECT().ApplyPaymentUpdate(mock.Anything, mock.Anything).Return(entities.Order{}, dbErr).Times(5)

	_, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	assert.ErrorIs(t, err, dbErr)
}

func TestWebhookService_LabelFailureReleasesClaim(t *testing.T) {
	d := newWebhookDeps(t)
	carrierErr := errors.New("invalid shipment")

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
	d.repo.EXPECT().ClaimLabel(mock.Anything, "order-1").Return(true, nil).Once()
	d.labels.EXPECT().BuyLabel(mock.Anything, mock.Anything).Return(entities.Label{}, carrierErr).Once()
	d.repo.EXPECT().ReleaseLabelClaim(mock.Anything, "order-1").Return(nil).Once()

	_, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	assert.ErrorIs(t, err, carrierErr)
}

func TestWebhookService_NonSucceededStatus(t *testing.T) {
	testCases := []struct {
		name      string
		eventType string
		want      entities.PaymentStatus
	}{
		{name: "failed", eventType: "payment_intent.payment_failed", want: entities.PaymentFailed},
		{name: "processing", eventType: "payment_intent.processing", want: entities.PaymentOnProcess},
		{name: "expired", eventType: "checkout.session.expired", want: entities.PaymentExpired},
		{name: "canceled", eventType: "payment_intent.canceled", want: entities.PaymentCanceled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newWebhookDeps(t)
			event := succeededEvent()
			event.Type = tc.eventType

			d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
			d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(unpaidOrder(), nil).Once()
			d.repo.EXPECT().
				ApplyPaymentUpdate(mock.Anything, entities.LabelUpdate{
					OrderID:       "order-1",
					PaymentStatus: tc.want,
					Event:         event.Payload,
				}).
				Return(entities.Order{OrderID: "order-1", PaymentStatus: tc.want}, nil).Once()
			d.dedup.EXPECT().MarkSeen(mock.Anything, "evt_1").Return(nil).Once()
			d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

			order, err := d.service().HandlePaymentEvent(context.Background(), event)
			require.NoError(t, err)
			assert.Equal(t, tc.want, order.PaymentStatus)
		})
	}
}

func TestWebhookService_UnknownOrder(t *testing.T) {
	d := newWebhookDeps(t)

	d.dedup.EXPECT().Seen(mock.Anything, "evt_1").Return(false, nil).Once()
	d.repo.EXPECT().GetOrderByID(mock.Anything, "order-1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	_, err := d.service().HandlePaymentEvent(context.Background(), succeededEvent())
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
