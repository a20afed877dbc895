package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for a squads run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Classification metrics
	responsesClassified prometheus.Counter
	responsesDuplicate  prometheus.Counter
	unknownTokens       *prometheus.CounterVec
	membersByRole       *prometheus.CounterVec

	// Assignment metrics
	leadersExtracted  *prometheus.CounterVec
	groupsBuilt       *prometheus.CounterVec
	membersAssigned   *prometheus.CounterVec
	groupMembers      *prometheus.HistogramVec
	assignmentLatency *prometheus.HistogramVec
	strategyFallbacks *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "squads",
		subsystem:        "assignment",
		histogramBuckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.responsesClassified = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "responses_classified_total",
		Help:        "Survey responses turned into members",
		ConstLabels: labels,
	})

	m.responsesDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "responses_duplicate_total",
		Help:        "Survey responses skipped because their key was already seen",
		ConstLabels: labels,
	})

	m.unknownTokens = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "unknown_tokens_total",
			Help:        "Survey tokens that fell back to a sentinel, by token kind",
			ConstLabels: labels,
		},
		[]string{"kind"},
	)

	m.membersByRole = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "members_by_role_total",
			Help:        "Members carrying each role",
			ConstLabels: labels,
		},
		[]string{"role"},
	)

	m.leadersExtracted = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "leaders_extracted_total",
			Help:        "Leaders removed from the assignable pool",
			ConstLabels: labels,
		},
		[]string{"heuristic"},
	)

	m.groupsBuilt = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "groups_built_total",
			Help:        "Groups created by an assignment",
			ConstLabels: labels,
		},
		[]string{"heuristic"},
	)

	m.membersAssigned = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "members_assigned_total",
			Help:        "Members placed into a group",
			ConstLabels: labels,
		},
		[]string{"heuristic"},
	)

	m.groupMembers = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "group_members",
			Help:        "Members per built group",
			Buckets:     prometheus.LinearBuckets(1, 1, 10),
			ConstLabels: labels,
		},
		[]string{"heuristic"},
	)

	m.assignmentLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "latency_milliseconds",
			Help:        "Time spent building groups in milliseconds",
			Buckets:     m.histogramBuckets,
			ConstLabels: labels,
		},
		[]string{"heuristic"},
	)

	m.strategyFallbacks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        "strategy_fallbacks_total",
			Help:        "Strategies that delegated to another strategy",
			ConstLabels: labels,
		},
		[]string{"from", "to"},
	)
}

// RecordResponseClassified increments the classified responses counter.
func (m *Manager) RecordResponseClassified() {
	if m.enabled {
		m.responsesClassified.Inc()
	}
}

// RecordResponseDuplicate increments the duplicate responses counter.
func (m *Manager) RecordResponseDuplicate() {
	if m.enabled {
		m.responsesDuplicate.Inc()
	}
}

// RecordUnknownToken counts a token of the given kind that resolved to a sentinel.
func (m *Manager) RecordUnknownToken(kind string) {
	if m.enabled {
		m.unknownTokens.WithLabelValues(kind).Inc()
	}
}

// RecordMemberRole counts a member carrying role.
func (m *Manager) RecordMemberRole(role string) {
	if m.enabled {
		m.membersByRole.WithLabelValues(role).Inc()
	}
}

// RecordAssignment records the outcome of one assignment run.
func (m *Manager) RecordAssignment(heuristic string, leaders int, groupSizes []int, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.leadersExtracted.WithLabelValues(heuristic).Add(float64(leaders))
	m.groupsBuilt.WithLabelValues(heuristic).Add(float64(len(groupSizes)))
	assigned := 0
	for _, n := range groupSizes {
		assigned += n
		m.groupMembers.WithLabelValues(heuristic).Observe(float64(n))
	}
	m.membersAssigned.WithLabelValues(heuristic).Add(float64(assigned))
	m.assignmentLatency.WithLabelValues(heuristic).Observe(latencyMs)
}

// RecordStrategyFallback counts a strategy delegating to another.
func (m *Manager) RecordStrategyFallback(from, to string) {
	if m.enabled {
		m.strategyFallbacks.WithLabelValues(from, to).Inc()
	}
}

// RecordResponseClassified increments the classified responses counter.
func RecordResponseClassified() { globalManager.RecordResponseClassified() }

// RecordResponseDuplicate increments the duplicate responses counter.
func RecordResponseDuplicate() { globalManager.RecordResponseDuplicate() }

// RecordUnknownToken counts a token that resolved to a sentinel.
func RecordUnknownToken(kind string) { globalManager.RecordUnknownToken(kind) }

// RecordMemberRole counts a member carrying role.
func RecordMemberRole(role string) { globalManager.RecordMemberRole(role) }

// RecordAssignment records the outcome of one assignment run.
func RecordAssignment(heuristic string, leaders int, groupSizes []int, latencyMs float64) {
	globalManager.RecordAssignment(heuristic, leaders, groupSizes, latencyMs)
}

// RecordStrategyFallback counts a strategy delegating to another.
func RecordStrategyFallback(from, to string) { globalManager.RecordStrategyFallback(from, to) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile dumps the gathered metrics in the node-exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return nil
}
