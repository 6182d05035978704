package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MenuMetrics covers the daily sheet lifecycle and the window decisions.
type MenuMetrics struct {
	SheetsCreatedTotal   prometheus.CounterVec
	SheetsReusedTotal    prometheus.CounterVec
	SheetConflictsTotal  prometheus.CounterVec

	TemplateHitsTotal     prometheus.CounterVec
	TemplateMissesTotal   prometheus.CounterVec
	TemplateLookbackDepth prometheus.HistogramVec

	OrderingDecisionsTotal prometheus.CounterVec

	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	SlotDecodeFailuresTotal prometheus.CounterVec
}

func NewMenuMetrics() *MenuMetrics {
	return &MenuMetrics{
		SheetsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daily_sheets_created_total",
				Help: "Daily order sheets created, by store",
			},
			[]string{"store_id"},
		),
		SheetsReusedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daily_sheets_reused_total",
				Help: "Get-or-create calls that found an existing sheet",
			},
			[]string{"store_id"},
		),
		SheetConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "daily_sheet_create_conflicts_total",
				Help: "Create races resolved by re-fetching the winning row",
			},
			[]string{"store_id"},
		),
		TemplateHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_template_hits_total",
				Help: "Template searches that found a prior sheet with items",
			},
			[]string{"store_id"},
		),
		TemplateMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menu_template_misses_total",
				Help: "Template searches that exhausted the lookback horizon",
			},
			[]string{"store_id"},
		),
		TemplateLookbackDepth: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "menu_template_lookback_days",
				Help:    "How many days back the template search had to walk",
				Buckets: prometheus.LinearBuckets(1, 1, 7),
			},
			[]string{"store_id"},
		),
		OrderingDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ordering_window_decisions_total",
				Help: "Accept/reject decisions by the window evaluator",
			},
			[]string{"store_id", "decision"},
		),
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttl_cache_hits_total",
				Help: "TTL cache hits by collection",
			},
			[]string{"collection"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ttl_cache_misses_total",
				Help: "TTL cache misses by collection",
			},
			[]string{"collection"},
		),
		SlotDecodeFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "time_slot_decode_failures_total",
				Help: "Stored time-slot fields that fell back to defaults",
			},
			[]string{"field"},
		),
	}
}

// Record methods tolerate a nil receiver so usecases can run without metrics
// in tests (promauto registers globally and cannot be constructed twice).

func (m *MenuMetrics) RecordSheetCreated(storeID string) {
	if m == nil {
		return
	}
	m.SheetsCreatedTotal.WithLabelValues(storeID).Inc()
}

func (m *MenuMetrics) RecordSheetReused(storeID string) {
	if m == nil {
		return
	}
	m.SheetsReusedTotal.WithLabelValues(storeID).Inc()
}

func (m *MenuMetrics) RecordSheetConflict(storeID string) {
	if m == nil {
		return
	}
	m.SheetConflictsTotal.WithLabelValues(storeID).Inc()
}

func (m *MenuMetrics) RecordTemplateHit(storeID string, lookbackDays int) {
	if m == nil {
		return
	}
	m.TemplateHitsTotal.WithLabelValues(storeID).Inc()
	m.TemplateLookbackDepth.WithLabelValues(storeID).Observe(float64(lookbackDays))
}

func (m *MenuMetrics) RecordTemplateMiss(storeID string) {
	if m == nil {
		return
	}
	m.TemplateMissesTotal.WithLabelValues(storeID).Inc()
}

func (m *MenuMetrics) RecordOrderingDecision(storeID string, closed bool) {
	if m == nil {
		return
	}
	decision := "open"
	if closed {
		decision = "closed"
	}
	m.OrderingDecisionsTotal.WithLabelValues(storeID, decision).Inc()
}

func (m *MenuMetrics) RecordCacheHit(collection string) {
	if m == nil {
		return
	}
	m.CacheHitsTotal.WithLabelValues(collection).Inc()
}

func (m *MenuMetrics) RecordCacheMiss(collection string) {
	if m == nil {
		return
	}
	m.CacheMissesTotal.WithLabelValues(collection).Inc()
}

func (m *MenuMetrics) RecordSlotDecodeFailure(field string) {
	if m == nil {
		return
	}
	m.SlotDecodeFailuresTotal.WithLabelValues(field).Inc()
}
