package metrics

import "github.com/prometheus/client_golang/prometheus"

type Collectors struct {
	// Request volume by route and status
	RequestsTotal *prometheus.CounterVec

	// Concurrency (in flight)
	ActiveRequests prometheus.Gauge

	// Handler duration by route
	RequestDurationSeconds *prometheus.HistogramVec

	// Successful create/update/delete by record kind
	RecordMutationsTotal *prometheus.CounterVec

	// Completed snapshot backups by outcome
	BackupsTotal *prometheus.CounterVec
}

// New builds the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_requests_total",
			Help: "Total number of API requests received.",
		}, []string{"method", "route", "status"}),
		ActiveRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "hub_active_requests",
			Help: "Current number of in-flight requests.",
		}),
		RequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hub_request_duration_seconds",
			Help:    "Handler duration for API requests.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		RecordMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_record_mutations_total",
			Help: "Records created, updated or deleted.",
		}, []string{"kind", "op"}),
		BackupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hub_backups_total",
			Help: "Snapshot backups by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		c.RequestsTotal,
		c.ActiveRequests,
		c.RequestDurationSeconds,
		c.RecordMutationsTotal,
		c.BackupsTotal,
	)
	return c
}

// RecordMutation counts a successful write. Safe to call on a nil receiver.
func (c *Collectors) RecordMutation(kind, op string) {
	if c == nil {
		return
	}
	c.RecordMutationsTotal.WithLabelValues(kind, op).Inc()
}

// RecordBackup counts a finished backup. Safe to call on a nil receiver.
func (c *Collectors) RecordBackup(err error) {
	if c == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	c.BackupsTotal.WithLabelValues(result).Inc()
}
