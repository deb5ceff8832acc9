package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by operation",
		},
		[]string{"operation"},
	)

	ordersComposed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_composed_total",
			Help: "Order submissions by result",
		},
		[]string{"result"},
	)
)
