// Package metrics registers the Prometheus collectors for the ledger core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LedgerApplies counts every ApplyDebt call by its outcome on the
	// stored pair: created, incremented, reduced, cleared or flipped.
	LedgerApplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_ledger_applies_total",
		Help: "Balance ledger mutations by outcome.",
	}, []string{"outcome"})

	// ExpensesCreated counts created expenses by split type.
	ExpensesCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "splitledger_expenses_created_total",
		Help: "Expenses created by split type.",
	}, []string{"split_type"})

	// ExpensesDeleted counts reversed (deleted) expenses.
	ExpensesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_expenses_deleted_total",
		Help: "Expenses deleted and reversed out of the ledger.",
	})

	// SettlementsRecorded counts recorded settlement payments.
	SettlementsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_settlements_recorded_total",
		Help: "Settlement payments recorded.",
	})

	// BalanceCacheHits counts balance reads served from cache.
	BalanceCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "splitledger_balance_cache_hits_total",
		Help: "Project balance reads served from the cache.",
	})
)
