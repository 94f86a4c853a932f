package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sneaker_store",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of order requests by operation and result",
		},
		[]string{"op", "result"},
	)

	orderCreateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sneaker_store",
			Subsystem: "http",
			Name:      "order_create_duration_seconds",
			Help:      "Histogram of order creation durations including payment session",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sneaker_store",
			Subsystem: "http",
			Name:      "orders_in_progress",
			Help:      "Number of orders currently being created",
		},
	)

	webhookRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sneaker_store",
			Subsystem: "http",
			Name:      "webhook_requests_total",
			Help:      "Total number of payment webhook requests by result",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		orderRequestTotal,
		orderCreateDuration,
		ordersInProgress,
		webhookRequests,
	)
}
