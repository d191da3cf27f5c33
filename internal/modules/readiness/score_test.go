package readiness

import (
	"testing"

	"github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
)

var (
	allInfrastructures = []string{profile.InfraCloud, profile.InfraHybrid, profile.InfraOnPremises, "", "mainframe"}
	allExperiences     = []string{profile.ExperienceExtensive, profile.ExperienceModerate, profile.ExperienceLimited, profile.ExperienceNone, "", "expert"}
	allSizes           = []string{profile.Size1To10, profile.Size11To50, profile.Size51To200, profile.Size201To500, profile.Size500Plus, "", "10000"}
)

func TestScoreAlwaysInRange(t *testing.T) {
	t.Parallel()
	for _, infra := range allInfrastructures {
		for _, exp := range allExperiences {
			for _, size := range allSizes {
				p := profile.BusinessProfile{CurrentInfrastructure: infra, CloudExperience: exp, CompanySize: size}
				got := Score(p)
				if got < MinScore || got > MaxScore {
					t.Fatalf("Score(%q,%q,%q)=%d outside [%d,%d]", infra, exp, size, got, MinScore, MaxScore)
				}
			}
		}
	}
}

func TestScoreExtremes(t *testing.T) {
	t.Parallel()
	best := profile.BusinessProfile{CurrentInfrastructure: profile.InfraCloud, CloudExperience: profile.ExperienceExtensive, CompanySize: profile.Size1To10}
	if got := Score(best); got != MaxScore {
		t.Fatalf("best profile: got=%d want=%d", got, MaxScore)
	}
	if got := Score(profile.BusinessProfile{}); got != MinScore {
		t.Fatalf("empty profile: got=%d want=%d", got, MinScore)
	}
}

func TestScoreMonotonicPerTerm(t *testing.T) {
	t.Parallel()

	// Each ordering lists values from highest to lowest term; the final
	// value stands in for "anything else".
	infraOrder := []string{profile.InfraCloud, profile.InfraHybrid, profile.InfraOnPremises}
	expOrder := []string{profile.ExperienceExtensive, profile.ExperienceModerate, profile.ExperienceLimited, profile.ExperienceNone}
	sizeOrder := []string{profile.Size1To10, profile.Size11To50, profile.Size51To200, profile.Size500Plus}

	for _, exp := range allExperiences {
		for _, size := range allSizes {
			assertDescending(t, "infrastructure", infraOrder, func(v string) int {
				return Score(profile.BusinessProfile{CurrentInfrastructure: v, CloudExperience: exp, CompanySize: size})
			})
		}
	}
	for _, infra := range allInfrastructures {
		for _, size := range allSizes {
			assertDescending(t, "experience", expOrder, func(v string) int {
				return Score(profile.BusinessProfile{CurrentInfrastructure: infra, CloudExperience: v, CompanySize: size})
			})
		}
	}
	for _, infra := range allInfrastructures {
		for _, exp := range allExperiences {
			assertDescending(t, "size", sizeOrder, func(v string) int {
				return Score(profile.BusinessProfile{CurrentInfrastructure: infra, CloudExperience: exp, CompanySize: v})
			})
		}
	}
}

func assertDescending(t *testing.T, term string, order []string, score func(string) int) {
	t.Helper()
	for i := 1; i < len(order); i++ {
		hi, lo := score(order[i-1]), score(order[i])
		if hi <= lo {
			t.Fatalf("%s: %q (%d) should outscore %q (%d)", term, order[i-1], hi, order[i], lo)
		}
	}
}

func TestUnknownValuesScoreAsDefaults(t *testing.T) {
	t.Parallel()
	b := Breakdown(profile.BusinessProfile{CurrentInfrastructure: "Cloud", CloudExperience: "EXTENSIVE", CompanySize: "201-500"})
	want := ScoreBreakdown{Infrastructure: 10, Experience: 10, CompanySize: 5}
	if b != want {
		t.Fatalf("Breakdown: got=%+v want=%+v", b, want)
	}
}

func TestBandBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		score int
		want  Band
	}{
		{100, BandWellPrepared},
		{80, BandWellPrepared},
		{79, BandGoodPotential},
		{60, BandGoodPotential},
		{59, BandModeratePreparation},
		{40, BandModeratePreparation},
		{39, BandSignificantPreparation},
		{25, BandSignificantPreparation},
	}
	for _, tc := range cases {
		if got := BandFor(tc.score); got != tc.want {
			t.Fatalf("BandFor(%d): got=%q want=%q", tc.score, got, tc.want)
		}
	}
}

func TestBandMessages(t *testing.T) {
	t.Parallel()
	for _, b := range []Band{BandWellPrepared, BandGoodPotential, BandModeratePreparation, BandSignificantPreparation} {
		if b.Message() == "" {
			t.Fatalf("band %q has no message", b)
		}
	}
	if Band("bogus").Message() != "" {
		t.Fatalf("unknown band should have no message")
	}
}
