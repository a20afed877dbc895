// Package volunteer turns survey responses into members.
package volunteer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/squads/internal/domain/dedupe"
	"github.com/okian/squads/internal/domain/member"
	"github.com/okian/squads/internal/domain/taxonomy"
	"github.com/okian/squads/pkg/logger"
	"github.com/okian/squads/pkg/metrics"
)

// Classifier reads the volunteer survey CSV and builds one member per
// response.
type Classifier struct {
	parse      parser
	key        string
	log        logger.Logger
	newDeduper func() dedupe.Deduper
}

// NewClassifier creates a classifier resolving tokens through tax.
func NewClassifier(tax *taxonomy.Taxonomy, opts ...Option) *Classifier {
	c := &Classifier{
		parse: parser{tax: tax},
		key:   KeyEmail,
		log:   logger.Nop(),
		newDeduper: func() dedupe.Deduper {
			return dedupe.NewInMemoryDeduper(dedupe.WithNormalizer(strings.ToLower))
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// row gives named access to one CSV record.
type row struct {
	index  map[string]int
	record []string
}

func (r row) get(col string) string {
	i := r.index[col]
	if i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

// Classify parses every response in r. Responses whose key was already seen
// are skipped; the first one wins.
func (c *Classifier) Classify(ctx context.Context, r io.Reader) ([]*member.Member, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColUsername)
		}
		return nil, fmt.Errorf("%w: header: %w", ErrReadSurvey, err)
	}
	index, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	seen := c.newDeduper()
	members := make([]*member.Member, 0)
	duplicates := 0
	for uid := 1; ; uid++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrReadSurvey, uid, err)
		}

		m := c.member(uid, row{index: index, record: record})
		if seen.SeenAndRecord(ctx, m.Key) {
			c.log.Warn(ctx, "skipping duplicate response",
				logger.String("key", m.Key),
				logger.Int("row", uid))
			metrics.RecordResponseDuplicate()
			duplicates++
			continue
		}

		metrics.RecordResponseClassified()
		for _, role := range []member.Role{member.RoleDesigner, member.RoleDeveloper, member.RoleLeader} {
			if m.Roles.Has(role) {
				metrics.RecordMemberRole(role.String())
			}
		}
		c.log.Debug(ctx, "classified response", logger.String("member", m.String()))
		members = append(members, m)
	}

	c.log.Info(ctx, "survey classified",
		logger.Int("members", len(members)),
		logger.Int("duplicates", duplicates))
	return members, nil
}

func indexHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	var missing []string
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			missing = append(missing, strconv.Quote(col))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return index, nil
}

func (c *Classifier) member(uid int, r row) *member.Member {
	var (
		professions []member.Profession
		portfolio   []string
		languages   []taxonomy.Language
		experience  int
		roles       member.Role
	)
	frameworks := newSet()

	if affirmative(r.get(ColDesignerCapable)) {
		if url := r.get(ColPortfolioURL); url != "" {
			portfolio = append(portfolio, url)
		}
		d := c.designer(r)
		experience += d.Experience
		frameworks.merge(d.Frameworks)
		roles |= d.Role()
		professions = append(professions, d)
	}

	if affirmative(r.get(ColDeveloperCapable)) {
		if url := r.get(ColGithubURL); url != "" {
			portfolio = append(portfolio, url)
		}
		d := c.developer(r)
		experience += d.Experience
		frameworks.merge(d.Frameworks)
		languages = d.Languages
		roles |= d.Role()
		professions = append(professions, d)
	}

	if affirmative(r.get(ColLeadCapable)) {
		professions = append(professions, member.Leader{Experience: parseExperience(r.get(ColManagingFor))})
	}

	email := r.get(ColUsername)
	key := email
	if c.key == KeyID {
		key = strconv.Itoa(uid)
	}
	ranking := member.BuildRanking(c.parse.tax, languages, frameworks.items(), roles)
	return member.New(uid, key, email, experience, professions, portfolio, ranking)
}

// designer reads the designer section. Its skills include the framework it
// is most confident in.
func (c *Classifier) designer(r row) member.Designer {
	frameworks := c.parse.frameworks(r.get(ColJSFramework))
	skills := newSet()
	skills.merge(c.parse.designSkills(r.get(ColDesignSkills)))
	skills.merge(frameworks)
	return member.Designer{
		Confidence:    confidence(r.get(ColDesignConfidence)),
		JSProficiency: confidence(r.get(ColJSProficiency)),
		Experience:    parseExperience(r.get(ColDesignerFor)),
		Frameworks:    frameworks,
		DesignSkills:  skills.items(),
	}
}

func (c *Classifier) developer(r row) member.Developer {
	return member.Developer{
		BackendConfidence:  confidence(r.get(ColBackendConfident)),
		FrontendConfidence: confidence(r.get(ColFrontendConfident)),
		OSS:                affirmative(r.get(ColOSS)),
		Linter:             affirmative(r.get(ColLinter)),
		TDD:                affirmative(r.get(ColTDD)),
		CodeReview:         affirmative(r.get(ColCodeReview)),
		CI:                 affirmative(r.get(ColCI)),
		CIPlatforms:        c.parse.ci(r.get(ColCIPlatforms)),
		Languages:          c.parse.languages(r.get(ColLanguages)),
		Frameworks:         c.parse.frameworks(r.get(ColFrameworks)),
		DBMS:               affirmative(r.get(ColDBMS)),
		DataAnalytics:      affirmative(r.get(ColDataAnalytics)),
		Experience:         parseExperience(r.get(ColProgrammerFor)),
	}
}
