package member

import "github.com/okian/squads/internal/domain/taxonomy"

// Profession is one role record of a respondent.
type Profession interface {
	Role() Role
	// Years is the lower bound of the self-reported experience bucket.
	Years() int
}

// Designer captures the designer section of the survey.
type Designer struct {
	Confidence    int
	JSProficiency int
	Experience    int
	Frameworks    []string
	DesignSkills  []string
}

func (Designer) Role() Role { return RoleDesigner }
func (d Designer) Years() int { return d.Experience }

// Developer captures the developer section of the survey.
type Developer struct {
	BackendConfidence  int
	FrontendConfidence int
	OSS                bool
	Linter             bool
	TDD                bool
	CodeReview         bool
	CI                 bool
	CIPlatforms        []taxonomy.CI
	Languages          []taxonomy.Language
	Frameworks         []string
	DBMS               bool
	DataAnalytics      bool
	Experience         int
}

func (Developer) Role() Role { return RoleDeveloper }
func (d Developer) Years() int { return d.Experience }

// Leader marks a respondent who asked to lead a team.
type Leader struct {
	Experience int
}

func (Leader) Role() Role { return RoleLeader }
func (l Leader) Years() int { return l.Experience }
