package heuristic

import (
	"context"

	"github.com/okian/squads/internal/domain/member"
)

// naiveStrategy fills group 0 to capacity, then group 1, and so on, in
// input order.
type naiveStrategy struct {
	base
}

func (s *naiveStrategy) Preprocess(members []*member.Member) Pool {
	return splitLeaders(members)
}

func (s *naiveStrategy) BuildGroups(ctx context.Context, members []*member.Member) *Result {
	pool := s.Preprocess(members)
	s.announce(ctx, len(pool.Members))

	groups := groupSet{}
	x := 0
	for _, m := range pool.Members {
		_, x = groups.fill(x, s.size, m.Key)
	}
	return newResult(pool.Leaders, groups)
}
