package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	service "github.com/okian/squads/internal/app"
	"github.com/okian/squads/internal/domain/taxonomy"
	"github.com/okian/squads/internal/domain/volunteer"
	"github.com/okian/squads/pkg/logger"
	"github.com/okian/squads/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testTaxonomy() *taxonomy.Taxonomy {
	tax, err := taxonomy.New(taxonomy.Document{
		Frameworks: map[string]taxonomy.FrameworkInfo{
			"react":  {Classification: taxonomy.Frontend, Language: "javascript"},
			"django": {Classification: taxonomy.Backend, Language: "python"},
		},
		Languages: map[string]int{
			"javascript": int(taxonomy.LanguageJavaScript),
			"python":     int(taxonomy.LanguagePython),
		},
		ContinuousIntegration: map[string]int{},
		FrameworkSynonyms:     map[string]string{},
		DesignSkills:          []string{},
	})
	if err != nil {
		panic(err)
	}
	return tax
}

type response struct {
	email, languages, years string
	lead                    bool
}

func survey(rs ...response) *bytes.Buffer {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(volunteer.Columns)
	for _, r := range rs {
		cells := map[string]string{
			volunteer.ColUsername:         r.email,
			volunteer.ColDeveloperCapable: "Yes",
			volunteer.ColLanguages:        r.languages,
			volunteer.ColProgrammerFor:    r.years,
		}
		if r.lead {
			cells[volunteer.ColLeadCapable] = "Yes"
		}
		record := make([]string, len(volunteer.Columns))
		for i, c := range volunteer.Columns {
			record[i] = cells[c]
		}
		_ = w.Write(record)
	}
	w.Flush()
	return &buf
}

func sample() *bytes.Buffer {
	return survey(
		response{email: "ada@example.com", languages: "JavaScript", years: "0-1 year"},
		response{email: "bob@example.com", languages: "Python", years: "10+ years", lead: true},
		response{email: "cyd@example.com", languages: "Python", years: "5-7 years"},
		response{email: "dee@example.com", languages: "JavaScript", years: "2-4 years"},
		response{email: "eve@example.com", languages: "Python", years: "8-10 years"},
	)
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			stats := svc.GetStats()
			So(stats["heuristic"], ShouldEqual, "naive")
			So(stats["group_size"], ShouldEqual, 3)
			So(stats["key"], ShouldEqual, "email")
			So(stats["runs"], ShouldEqual, 0)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithHeuristic("Experience"),
			service.WithGroupSize(5),
			service.WithKey("ID"),
			service.WithLogger(logger.Get()),
		)

		Convey("Then the options should be applied", func() {
			stats := svc.GetStats()
			So(stats["heuristic"], ShouldEqual, "experience")
			So(stats["group_size"], ShouldEqual, 5)
			So(stats["key"], ShouldEqual, "id")
		})
	})
}

func TestService_Run(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service without a taxonomy", t, func() {
		_, err := service.New().Run(ctx, sample())

		Convey("Then it should refuse to run", func() {
			So(errors.Is(err, service.ErrNoTaxonomy), ShouldBeTrue)
		})
	})

	Convey("Given a service with an invalid group size", t, func() {
		svc := service.New(service.WithTaxonomy(testTaxonomy()), service.WithGroupSize(0))
		_, err := svc.Run(ctx, sample())

		Convey("Then it should fail to build the strategy", func() {
			So(errors.Is(err, service.ErrStrategy), ShouldBeTrue)
		})
	})

	Convey("Given a survey missing its columns", t, func() {
		svc := service.New(service.WithTaxonomy(testTaxonomy()))
		_, err := svc.Run(ctx, strings.NewReader("Username\nada@example.com\n"))

		Convey("Then classification should fail", func() {
			So(errors.Is(err, service.ErrClassify), ShouldBeTrue)
			So(errors.Is(err, volunteer.ErrMissingColumn), ShouldBeTrue)
		})
	})

	Convey("Given a naive service with groups of two", t, func() {
		svc := service.New(
			service.WithTaxonomy(testTaxonomy()),
			service.WithLogger(logger.Get()),
			service.WithGroupSize(2),
		)

		Convey("When running a survey", func() {
			res, err := svc.Run(ctx, sample())
			So(err, ShouldBeNil)

			Convey("Then leaders are extracted and the rest grouped in order", func() {
				So(res.Leaders, ShouldResemble, []string{"bob@example.com"})
				So(res.Groups[0].Members, ShouldResemble, []string{"ada@example.com", "cyd@example.com"})
				So(res.Groups[1].Members, ShouldResemble, []string{"dee@example.com", "eve@example.com"})
			})

			Convey("Then the run is recorded", func() {
				stats := svc.GetStats()
				So(stats["runs"], ShouldEqual, 1)
				So(stats["last_members"], ShouldEqual, 5)
				So(stats["last_leaders"], ShouldEqual, 1)
				So(stats["last_groups"], ShouldEqual, 2)

				_, err := uuid.Parse(stats["last_run_id"].(string))
				So(err, ShouldBeNil)
			})

			Convey("Then assignment metrics are exported", func() {
				families, err := metrics.GetRegistry().Gather()
				So(err, ShouldBeNil)

				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "squads_assignment_groups_built_total")
				So(names, ShouldContain, "squads_assignment_latency_milliseconds")
			})
		})
	})

	Convey("Given a language service keyed by row", t, func() {
		svc := service.New(
			service.WithTaxonomy(testTaxonomy()),
			service.WithHeuristic("language"),
			service.WithGroupSize(2),
			service.WithKey("id"),
		)
		res, err := svc.Run(ctx, sample())
		So(err, ShouldBeNil)

		Convey("Then members cluster by language under their row keys", func() {
			So(res.Leaders, ShouldResemble, []string{"2"})
			So(res.Groups[0].Members, ShouldResemble, []string{"1", "4"})
			So(res.Groups[0].Expertise.Labels(), ShouldResemble, []string{"JAVASCRIPT"})
			So(res.Groups[1].Members, ShouldResemble, []string{"3", "5"})
			So(res.Groups[1].Expertise.Labels(), ShouldResemble, []string{"PYTHON"})
		})
	})

	Convey("Given an experience service", t, func() {
		svc := service.New(
			service.WithTaxonomy(testTaxonomy()),
			service.WithHeuristic("experience"),
			service.WithGroupSize(2),
		)
		res, err := svc.Run(ctx, sample())
		So(err, ShouldBeNil)

		Convey("Then the least and most experienced are paired", func() {
			So(res.Groups[0].Members, ShouldResemble, []string{"ada@example.com", "eve@example.com"})
			score, ok := res.Groups[0].Expertise.Score()
			So(ok, ShouldBeTrue)
			So(score, ShouldEqual, 9)
		})
	})
}
