package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics counts order activity on the storefront.
type StoreMetrics struct {
	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
}

func NewStoreMetrics() *StoreMetrics {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "burgerhouse",
		Name:      "orders_created_total",
		Help:      "Total number of orders accepted at checkout.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burgerhouse",
		Name:      "order_status_transitions_total",
		Help:      "Total number of order status updates, by target status.",
	}, []string{"status"})

	prometheus.MustRegister(created, transitions)
	return &StoreMetrics{OrdersCreated: created, StatusTransitions: transitions}
}

// NewTestMetrics registers against a private registry so tests can construct
// metrics repeatedly without collision panics.
func NewTestMetrics() *StoreMetrics {
	reg := prometheus.NewRegistry()
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "burgerhouse",
		Name:      "orders_created_total",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "burgerhouse",
		Name:      "order_status_transitions_total",
	}, []string{"status"})
	reg.MustRegister(created, transitions)
	return &StoreMetrics{OrdersCreated: created, StatusTransitions: transitions}
}

// Handler serves the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
