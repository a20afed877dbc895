package volunteer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/okian/squads/internal/domain/member"
	"github.com/okian/squads/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func survey(columns []string, rows ...map[string]string) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(columns)
	for _, r := range rows {
		record := make([]string, len(columns))
		for i, c := range columns {
			record[i] = r[c]
		}
		_ = w.Write(record)
	}
	w.Flush()
	return &buf
}

func responses() []map[string]string {
	return []map[string]string{
		{
			ColUsername:          "ada@example.com",
			ColDesignerCapable:   "Yes",
			ColPortfolioURL:      "https://ada.design",
			ColDesignConfidence:  "4",
			ColDesignSkills:      "UX Research;Calligraphy",
			ColJSProficiency:     "3",
			ColJSFramework:       "Vue",
			ColDesignerFor:       "2-4 years",
			ColDeveloperCapable:  "Yes",
			ColGithubURL:         "https://github.com/ada",
			ColBackendConfident:  "2",
			ColFrontendConfident: "5",
			ColOSS:               "Yes",
			ColLinter:            "Yes",
			ColCI:                "Yes",
			ColCIPlatforms:       "GitHub (Actions)",
			ColTDD:               "4",
			ColCodeReview:        "No",
			ColLanguages:         "JavaScript;Python",
			ColFrameworks:        "React, Django",
			ColProgrammerFor:     "5-7 years",
			ColLeadCapable:       "Yes",
			ColManagingFor:       "8-10 years",
		},
		{
			ColUsername:          "bob@example.com",
			ColDeveloperCapable:  "Yes",
			ColBackendConfident:  "5",
			ColFrontendConfident: "n/a",
			ColLanguages:         "Python",
			ColFrameworks:        "django",
			ColProgrammerFor:     "10+ years",
			ColLeadCapable:       "No",
		},
		{
			ColUsername:        "ADA@example.com",
			ColDesignerCapable: "Yes",
		},
		{
			ColUsername:        "cyd@example.com",
			ColDesignerCapable: "Yes",
			ColJSFramework:     "reactjs",
			ColDesignerFor:     "0-1 year",
		},
	}
}

func TestClassify(t *testing.T) {
	ctx := context.Background()

	Convey("Given a classifier", t, func() {
		c := NewClassifier(testTaxonomy())

		Convey("When a required column is missing", func() {
			columns := make([]string, 0, len(Columns))
			for _, col := range Columns {
				if col != ColGithubURL {
					columns = append(columns, col)
				}
			}
			members, err := c.Classify(ctx, survey(columns, responses()...))

			Convey("Then it fails before reading rows", func() {
				So(members, ShouldBeNil)
				So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, ColGithubURL)
			})
		})

		Convey("When the input is empty", func() {
			_, err := c.Classify(ctx, strings.NewReader(""))

			So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
		})

		Convey("When the survey has only a header", func() {
			members, err := c.Classify(ctx, survey(Columns))

			So(err, ShouldBeNil)
			So(members, ShouldBeEmpty)
		})

		Convey("When the survey is complete", func() {
			members, err := c.Classify(ctx, survey(Columns, responses()...))
			So(err, ShouldBeNil)

			Convey("Then duplicate keys are dropped, first response winning", func() {
				So(len(members), ShouldEqual, 3)
				So(members[0].Key, ShouldEqual, "ada@example.com")
				So(members[1].Key, ShouldEqual, "bob@example.com")
				So(members[2].Key, ShouldEqual, "cyd@example.com")
				So(members[2].ID, ShouldEqual, 4)
			})

			Convey("Then roles, experience and portfolio are derived", func() {
				ada := members[0]
				So(ada.Roles, ShouldEqual, member.RoleDesigner|member.RoleDeveloper|member.RoleLeader)
				So(ada.IsLeader(), ShouldBeTrue)
				So(ada.Experience, ShouldEqual, 7)
				So(ada.Portfolio, ShouldResemble, []string{"https://ada.design", "https://github.com/ada"})
				So(len(ada.Professions), ShouldEqual, 3)
				So(ada.Professions[2], ShouldResemble, member.Leader{Experience: 8})
			})

			Convey("Then the designer section is parsed", func() {
				d, ok := members[0].Professions[0].(member.Designer)
				So(ok, ShouldBeTrue)
				So(d.Confidence, ShouldEqual, 4)
				So(d.JSProficiency, ShouldEqual, 3)
				So(d.Experience, ShouldEqual, 2)
				So(d.Frameworks, ShouldResemble, []string{"vue"})
				So(d.DesignSkills, ShouldResemble, []string{"UX Research", taxonomy.GeneralFrontend, "vue"})
			})

			Convey("Then the developer section is parsed", func() {
				d, ok := members[0].Professions[1].(member.Developer)
				So(ok, ShouldBeTrue)
				So(d.BackendConfidence, ShouldEqual, 2)
				So(d.FrontendConfidence, ShouldEqual, 5)
				So(d.OSS, ShouldBeTrue)
				So(d.TDD, ShouldBeTrue)
				So(d.CodeReview, ShouldBeFalse)
				So(d.CIPlatforms, ShouldResemble, []taxonomy.CI{taxonomy.CIGitHub})
				So(d.Languages, ShouldResemble, []taxonomy.Language{taxonomy.LanguageJavaScript, taxonomy.LanguagePython})
				So(d.Frameworks, ShouldResemble, []string{"react", "django"})
				So(d.Experience, ShouldEqual, 5)

				bob := members[1].Professions[0].(member.Developer)
				So(bob.FrontendConfidence, ShouldEqual, -1)
			})

			Convey("Then the ranking merges designer and developer skills", func() {
				r := members[0].Ranking
				So(r.Frameworks(), ShouldResemble, []string{"django", "react", "vue"})
				So(r.Frontend, ShouldEqual, 2)
				So(r.Backend, ShouldEqual, 1)
				So(r.Roles, ShouldEqual, member.RoleDesigner|member.RoleDeveloper)

				cyd := members[2].Ranking
				So(cyd.Frameworks(), ShouldResemble, []string{"react"})
				So(cyd.Languages(), ShouldResemble, []taxonomy.Language{taxonomy.LanguageJavaScript})
			})

			Convey("Then members outside the leader track are not leaders", func() {
				So(members[1].IsLeader(), ShouldBeFalse)
				So(members[1].Portfolio, ShouldBeEmpty)
				So(members[1].Experience, ShouldEqual, 10)
			})
		})
	})

	Convey("Given a classifier keyed by row ordinal", t, func() {
		c := NewClassifier(testTaxonomy(), WithKey(KeyID))
		members, err := c.Classify(ctx, survey(Columns, responses()...))

		Convey("Then every response is kept under its row number", func() {
			So(err, ShouldBeNil)
			keys := make([]string, 0, len(members))
			for _, m := range members {
				keys = append(keys, m.Key)
			}
			So(keys, ShouldResemble, []string{"1", "2", "3", "4"})
			So(members[2].Email, ShouldEqual, "ADA@example.com")
		})
	})

	Convey("Given an unknown key option", t, func() {
		c := NewClassifier(testTaxonomy(), WithKey("phone"))

		Convey("Then the e-mail key is kept", func() {
			So(c.key, ShouldEqual, KeyEmail)
		})
	})
}

func TestClassifyDesignerRanking(t *testing.T) {
	Convey("Given a taxonomy that lists General Frontend as a framework", t, func() {
		tax, err := taxonomy.New(taxonomy.Document{
			Frameworks: map[string]taxonomy.FrameworkInfo{
				"vue":                    {Classification: taxonomy.Frontend, Language: "javascript"},
				taxonomy.GeneralFrontend: {Classification: taxonomy.Frontend},
			},
			Languages:             map[string]int{"javascript": int(taxonomy.LanguageJavaScript)},
			ContinuousIntegration: map[string]int{},
			FrameworkSynonyms:     map[string]string{},
			DesignSkills:          []string{"Prototyping"},
		})
		So(err, ShouldBeNil)

		Convey("When a designer lists only unrecognized design skills", func() {
			members, err := NewClassifier(tax).Classify(context.Background(), survey(Columns, map[string]string{
				ColUsername:        "ida@example.com",
				ColDesignerCapable: "Yes",
				ColDesignSkills:    "Calligraphy;Pottery",
				ColJSFramework:     "vue",
			}))
			So(err, ShouldBeNil)
			So(len(members), ShouldEqual, 1)

			Convey("Then the ranking holds only the designer's frameworks", func() {
				r := members[0].Ranking
				So(r.Frameworks(), ShouldResemble, []string{"vue"})
				So(r.Frontend, ShouldEqual, 1)
				So(r.Backend, ShouldEqual, 0)
			})

			Convey("Then the design skills still carry the sentinel", func() {
				d := members[0].Professions[0].(member.Designer)
				So(d.DesignSkills, ShouldResemble, []string{taxonomy.GeneralFrontend, "vue"})
			})
		})
	})
}
