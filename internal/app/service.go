// Package service wires the survey classifier to an assignment strategy.
package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/squads/internal/domain/heuristic"
	"github.com/okian/squads/internal/domain/taxonomy"
	"github.com/okian/squads/internal/domain/volunteer"
	"github.com/okian/squads/pkg/logger"
	"github.com/okian/squads/pkg/metrics"
)

const nanosecondsPerMillisecond = 1e6

// Service classifies a survey and partitions its respondents into groups.
type Service struct {
	mu sync.RWMutex

	// Configuration
	taxonomy  *taxonomy.Taxonomy
	kind      heuristic.Kind
	groupSize int
	key       string

	// State of the last run
	runs        int
	lastRunID   string
	lastMembers int
	lastLeaders int
	lastGroups  int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTaxonomy sets the taxonomy survey answers are resolved through.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(s *Service) {
		s.taxonomy = t
	}
}

// WithHeuristic selects the assignment strategy by name.
func WithHeuristic(name string) Option {
	return func(s *Service) {
		s.kind = heuristic.ParseKind(name)
	}
}

// WithGroupSize sets the maximum group size.
func WithGroupSize(size int) Option {
	return func(s *Service) {
		s.groupSize = size
	}
}

// WithKey selects the member identifier: email or id.
func WithKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.key = strings.ToLower(key)
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		kind:      heuristic.KindNaive,
		groupSize: 3,
		key:       volunteer.KeyEmail,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run classifies the survey read from r and assigns its members to groups.
func (s *Service) Run(ctx context.Context, r io.Reader) (*heuristic.Result, error) {
	if s.taxonomy == nil {
		return nil, ErrNoTaxonomy
	}

	runID := uuid.NewString()
	log := s.logger.Named("service").With(logger.String("run_id", runID))

	strategy, err := heuristic.New(s.kind, s.groupSize, heuristic.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStrategy, err)
	}

	classifier := volunteer.NewClassifier(s.taxonomy,
		volunteer.WithKey(s.key),
		volunteer.WithLogger(log))
	members, err := classifier.Classify(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassify, err)
	}

	start := time.Now()
	res := strategy.BuildGroups(ctx, members)
	latency := float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond

	metrics.RecordAssignment(strategy.Kind().String(), len(res.Leaders), res.Assigned(), latency)
	log.Info(ctx, "assignment complete",
		logger.String("heuristic", strategy.Kind().String()),
		logger.Int("members", len(members)),
		logger.Int("leaders", len(res.Leaders)),
		logger.Int("groups", len(res.Groups)),
		logger.Float64("latency_ms", latency))

	s.mu.Lock()
	s.runs++
	s.lastRunID = runID
	s.lastMembers = len(members)
	s.lastLeaders = len(res.Leaders)
	s.lastGroups = len(res.Groups)
	s.mu.Unlock()

	return res, nil
}

// GetStats returns the configuration and the counts of the last run.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]any{
		"heuristic":    s.kind.String(),
		"group_size":   s.groupSize,
		"key":          s.key,
		"runs":         s.runs,
		"last_run_id":  s.lastRunID,
		"last_members": s.lastMembers,
		"last_leaders": s.lastLeaders,
		"last_groups":  s.lastGroups,
	}
}
