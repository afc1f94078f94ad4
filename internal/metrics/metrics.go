// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's collectors. The zero value is not usable; use New.
type Metrics struct {
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec

	TransactionsCreated *prometheus.CounterVec
	Payouts             prometheus.Counter
	Verifications       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitledger",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splitledger",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		TransactionsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitledger",
			Name:      "transactions_created_total",
			Help:      "Transactions recorded, by kind (plain, payment, refund, payout).",
		}, []string{"kind"}),
		Payouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "splitledger",
			Name:      "payouts_total",
			Help:      "Projects paid out.",
		}),
		Verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitledger",
			Name:      "ledger_verifications_total",
			Help:      "Ledger balance verifications by result (ok, mismatch).",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.RPCRequests,
		m.RPCDuration,
		m.TransactionsCreated,
		m.Payouts,
		m.Verifications,
	)
	return m
}

// Discard returns collectors registered nowhere, for tests and tools.
func Discard() *Metrics {
	return New(prometheus.NewRegistry())
}
