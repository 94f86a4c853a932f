package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sneaker_store",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of created orders by payment url kind.",
	}, []string{"payment"})

	paymentSessionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sneaker_store",
		Subsystem: "orders",
		Name:      "payment_session_failures_total",
		Help:      "Total number of failed payment session creations.",
	})

	webhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sneaker_store",
		Subsystem: "webhook",
		Name:      "events_total",
		Help:      "Total number of payment webhook events by status and outcome.",
	}, []string{"status", "outcome"})

	labelsPurchased = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sneaker_store",
		Subsystem: "webhook",
		Name:      "labels_total",
		Help:      "Total number of shipping label purchase attempts by result.",
	}, []string{"result"})

	carrierFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sneaker_store",
		Subsystem: "checkout",
		Name:      "carrier_fallbacks_total",
		Help:      "Total number of carrier calls answered by the mock carrier.",
	}, []string{"operation"})
)
