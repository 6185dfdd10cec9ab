package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registry *prometheus.Registry

	CardsIssued          prometheus.Counter
	CardsUpdated         prometheus.Counter
	CardsDeleted         prometheus.Counter
	CardNumberCollisions prometheus.Counter
	CardNumberExhausted  prometheus.Counter
	HTTPRequests         *prometheus.CounterVec
}

// NewMetrics registers the application collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		CardsIssued: f.NewCounter(prometheus.CounterOpts{
			Name: "healthcard_cards_issued_total",
			Help: "Cards created.",
		}),
		CardsUpdated: f.NewCounter(prometheus.CounterOpts{
			Name: "healthcard_cards_updated_total",
			Help: "Cards updated.",
		}),
		CardsDeleted: f.NewCounter(prometheus.CounterOpts{
			Name: "healthcard_cards_deleted_total",
			Help: "Cards deleted.",
		}),
		CardNumberCollisions: f.NewCounter(prometheus.CounterOpts{
			Name: "healthcard_card_number_collisions_total",
			Help: "Generated card numbers that were already taken.",
		}),
		CardNumberExhausted: f.NewCounter(prometheus.CounterOpts{
			Name: "healthcard_card_number_exhausted_total",
			Help: "Card creations that ran out of card number attempts.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "healthcard_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
	}
}
