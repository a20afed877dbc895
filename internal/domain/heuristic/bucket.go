package heuristic

import (
	"context"
	"slices"

	"github.com/okian/squads/internal/domain/member"
	"github.com/okian/squads/pkg/logger"
)

// bucketStrategy clusters members that share a skill. The language and
// framework strategies differ only in which skills they read.
type bucketStrategy struct {
	base
	// skills returns a member's skill labels in a stable order.
	skills func(member.Ranking) []string
}

func newLanguage(b base) *bucketStrategy {
	return &bucketStrategy{base: b, skills: func(r member.Ranking) []string {
		langs := r.Languages()
		out := make([]string, len(langs))
		for i, l := range langs {
			out[i] = l.String()
		}
		return out
	}}
}

func newFramework(b base) *bucketStrategy {
	return &bucketStrategy{base: b, skills: member.Ranking.Frameworks}
}

// Preprocess builds one bucket per skill. Buckets appear in the order their
// skill is first seen; keys inside a bucket keep input order.
func (s *bucketStrategy) Preprocess(members []*member.Member) Pool {
	pool := splitLeaders(members)
	index := make(map[string]int)
	for _, m := range pool.Members {
		for _, skill := range s.skills(m.Ranking) {
			i, ok := index[skill]
			if !ok {
				i = len(pool.Buckets)
				index[skill] = i
				pool.Buckets = append(pool.Buckets, Bucket{Label: skill})
			}
			pool.Buckets[i].Keys = append(pool.Buckets[i].Keys, m.Key)
		}
	}
	return pool
}

// BuildGroups walks the buckets and places each unassigned member into the
// current group. A group that fills up is labelled with the bucket that
// filled it. Members never reached through a bucket are appended afterwards
// in fill order and add no label.
func (s *bucketStrategy) BuildGroups(ctx context.Context, members []*member.Member) *Result {
	pool := s.Preprocess(members)
	s.announce(ctx, len(pool.Members))

	byKey := make(map[string]*member.Member, len(pool.Members))
	unassigned := newOrderedSet(len(pool.Members))
	for _, m := range pool.Members {
		byKey[m.Key] = m
		unassigned.add(m.Key)
	}

	groups := groupSet{}
	x := 0
	for _, b := range pool.Buckets {
		for _, key := range b.Keys {
			if !unassigned.has(key) || !slices.Contains(s.skills(byKey[key].Ranking), b.Label) {
				continue
			}
			g, next := groups.fill(x, s.size, key)
			unassigned.remove(key)
			if next != x {
				g.Expertise.AddLabel(b.Label)
				x = next
			}
		}
	}

	leftover := unassigned.keys()
	if len(leftover) > 0 {
		s.log.Debug(ctx, "assigning members without a shared skill",
			logger.String("heuristic", s.kind.String()),
			logger.Int("members", len(leftover)))
	}
	for _, key := range leftover {
		_, x = groups.fill(x, s.size, key)
	}

	return newResult(pool.Leaders, groups)
}

// orderedSet is a string set that remembers insertion order.
type orderedSet struct {
	order   []string
	present map[string]bool
}

func newOrderedSet(n int) *orderedSet {
	return &orderedSet{order: make([]string, 0, n), present: make(map[string]bool, n)}
}

func (o *orderedSet) add(k string) {
	if _, ok := o.present[k]; !ok {
		o.order = append(o.order, k)
	}
	o.present[k] = true
}

func (o *orderedSet) has(k string) bool { return o.present[k] }

func (o *orderedSet) remove(k string) {
	if _, ok := o.present[k]; ok {
		o.present[k] = false
	}
}

func (o *orderedSet) keys() []string {
	out := make([]string, 0, len(o.order))
	for _, k := range o.order {
		if o.present[k] {
			out = append(out, k)
		}
	}
	return out
}
