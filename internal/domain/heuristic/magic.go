package heuristic

import (
	"context"

	"github.com/okian/squads/internal/domain/member"
	"github.com/okian/squads/pkg/logger"
	"github.com/okian/squads/pkg/metrics"
)

// magicStrategy is reserved for a smarter assignment. Until then it hands
// everything to a fresh naive strategy of the same size.
type magicStrategy struct {
	base
}

func (s *magicStrategy) Preprocess(members []*member.Member) Pool {
	return splitLeaders(members)
}

func (s *magicStrategy) BuildGroups(ctx context.Context, members []*member.Member) *Result {
	s.log.Warn(ctx, "magic heuristic is not implemented, falling back",
		logger.String("fallback", KindNaive.String()))
	metrics.RecordStrategyFallback(KindMagic.String(), KindNaive.String())

	naive := &naiveStrategy{base: base{kind: KindNaive, size: s.size, log: s.log}}
	return naive.BuildGroups(ctx, members)
}
