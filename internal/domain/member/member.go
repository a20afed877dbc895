// Package member models survey respondents and their derived skill ranking.
package member

import "fmt"

// Member is one survey respondent.
type Member struct {
	// ID is the 1-based row ordinal in the survey.
	ID int
	// Key uniquely identifies the member in groups and leader lists.
	Key   string
	Email string
	// Experience sums the designer and developer experience buckets.
	Experience  int
	Roles       Role
	Professions []Profession
	Portfolio   []string
	Ranking     Ranking
}

// New builds a Member whose role set is the union of its professions.
func New(id int, key, email string, experience int, professions []Profession, portfolio []string, ranking Ranking) *Member {
	m := &Member{
		ID:          id,
		Key:         key,
		Email:       email,
		Experience:  experience,
		Professions: professions,
		Portfolio:   portfolio,
		Ranking:     ranking,
	}
	for _, p := range professions {
		m.Roles |= p.Role()
	}
	return m
}

// IsLeader reports whether the member volunteered to lead.
func (m *Member) IsLeader() bool { return m.Roles.Has(RoleLeader) }

func (m *Member) String() string {
	return fmt.Sprintf("%d (%s) -- %s", m.ID, m.Key, m.Roles)
}
