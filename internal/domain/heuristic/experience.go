package heuristic

import (
	"cmp"
	"context"
	"slices"

	"github.com/okian/squads/internal/domain/member"
)

// experienceStrategy balances groups by pairing the least and the most
// experienced members still unassigned. Each group's expertise is the sum
// of its members' experience.
//
// Pairs are added while a group holds fewer than size members, so an odd
// size lets a group reach size+1. With an odd pool the middle member is
// left unpaired and joins the last group, which may then exceed size too.
type experienceStrategy struct {
	base
}

func (s *experienceStrategy) Preprocess(members []*member.Member) Pool {
	return splitLeaders(members)
}

func (s *experienceStrategy) BuildGroups(ctx context.Context, members []*member.Member) *Result {
	pool := s.Preprocess(members)
	s.announce(ctx, len(pool.Members))

	sorted := slices.Clone(pool.Members)
	slices.SortStableFunc(sorted, func(a, b *member.Member) int {
		return cmp.Compare(a.Experience, b.Experience)
	})

	groups := groupSet{}
	forward, backward := 0, len(sorted)-1
	x, total := 0, 0
	for forward < backward {
		g := groups.at(x)
		if len(g.Members) < s.size {
			g.Members = append(g.Members, sorted[forward].Key, sorted[backward].Key)
			total += sorted[forward].Experience + sorted[backward].Experience
			forward++
			backward--
			continue
		}
		g.Expertise.SetScore(total)
		total = 0
		x++
	}

	if forward == backward {
		g := groups.at(x)
		g.Members = append(g.Members, sorted[backward].Key)
		total += sorted[backward].Experience
		g.Expertise.SetScore(total)
	} else if g, ok := groups[x]; ok {
		g.Expertise.SetScore(total)
	}

	return newResult(pool.Leaders, groups)
}
