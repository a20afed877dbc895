// Package heuristic partitions members into bounded-size groups. Every
// strategy pulls leaders out of the pool first, then assigns the rest with
// its own objective: fill order, shared skills, or balanced experience.
package heuristic

import (
	"context"
	"fmt"

	"github.com/okian/squads/internal/domain/member"
	"github.com/okian/squads/pkg/logger"
)

// Strategy assigns members to groups. Strategies hold only their
// configuration, so BuildGroups is a pure function of its input and an
// instance may be reused.
type Strategy interface {
	Kind() Kind
	// Size is the configured group capacity.
	Size() int
	// Preprocess separates leaders from the assignable pool and builds any
	// strategy-specific buckets.
	Preprocess(members []*member.Member) Pool
	// BuildGroups runs Preprocess and the assignment.
	BuildGroups(ctx context.Context, members []*member.Member) *Result
}

// Pool is the preprocessed input of an assignment.
type Pool struct {
	// Leaders holds leader keys in input order.
	Leaders []string
	// Members holds the assignable members in input order.
	Members []*member.Member
	// Buckets is populated by the language and framework strategies.
	Buckets []Bucket
}

// Bucket groups the member keys that share one skill label.
type Bucket struct {
	Label string
	Keys  []string
}

// Option configures a Strategy.
type Option func(*base)

// WithLogger sets the logger strategies report through.
func WithLogger(l logger.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.log = l
		}
	}
}

// New is the single construction point for strategies. Unknown kinds
// construct the naive strategy.
func New(kind Kind, size int, opts ...Option) (Strategy, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGroupSize, size)
	}
	b := base{size: size, log: logger.Nop()}
	for _, opt := range opts {
		opt(&b)
	}

	switch kind {
	case KindLanguage:
		b.kind = kind
		return newLanguage(b), nil
	case KindFramework:
		b.kind = kind
		return newFramework(b), nil
	case KindExperience:
		b.kind = kind
		return &experienceStrategy{base: b}, nil
	case KindMagic:
		b.kind = kind
		return &magicStrategy{base: b}, nil
	default:
		b.kind = KindNaive
		return &naiveStrategy{base: b}, nil
	}
}

// base carries what every strategy shares.
type base struct {
	kind Kind
	size int
	log  logger.Logger
}

func (b *base) Kind() Kind { return b.kind }
func (b *base) Size() int  { return b.size }

func (b *base) announce(ctx context.Context, members int) {
	b.log.Info(ctx, "building groups",
		logger.String("heuristic", b.kind.String()),
		logger.Int("group_size", b.size),
		logger.Int("members", members))
}

// splitLeaders moves leader-flagged members out of the assignable pool.
func splitLeaders(members []*member.Member) Pool {
	p := Pool{
		Leaders: []string{},
		Members: make([]*member.Member, 0, len(members)),
	}
	for _, m := range members {
		if m.IsLeader() {
			p.Leaders = append(p.Leaders, m.Key)
			continue
		}
		p.Members = append(p.Members, m)
	}
	return p
}

// groupSet materializes groups on first reference.
type groupSet map[int]*Group

func (gs groupSet) at(x int) *Group {
	g, ok := gs[x]
	if !ok {
		g = &Group{Members: []string{}}
		gs[x] = g
	}
	return g
}

// fill appends key to group x and returns the index the next member goes
// to: x itself while it has room, x+1 once it is full.
func (gs groupSet) fill(x, size int, key string) (*Group, int) {
	g := gs.at(x)
	g.Members = append(g.Members, key)
	if len(g.Members) >= size {
		return g, x + 1
	}
	return g, x
}
