package readiness

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
)

func TestEvaluateSmallFinanceCloudNative(t *testing.T) {
	t.Parallel()
	a := Evaluate(profile.BusinessProfile{
		CompanyName:           "Ledgerly",
		CompanySize:           profile.Size1To10,
		Industry:              profile.IndustryFinance,
		CurrentInfrastructure: profile.InfraCloud,
		CloudExperience:       profile.ExperienceExtensive,
		PrimaryGoal:           profile.GoalSecurity,
	})
	if a.Score != 100 {
		t.Fatalf("Score: got=%d want=100", a.Score)
	}
	if a.Band != BandWellPrepared || !strings.Contains(a.BandMessage, "well-prepared") {
		t.Fatalf("Band: got=%q message=%q", a.Band, a.BandMessage)
	}
	wantStrengths := []string{
		"Already using cloud infrastructure",
		"Good level of cloud expertise",
		"Small team size enables agile adoption",
	}
	if diff := cmp.Diff(wantStrengths, a.Insights.Strengths); diff != "" {
		t.Fatalf("strengths mismatch (-want +got):\n%s", diff)
	}
	if len(a.Insights.AreasToAddress) != 0 {
		t.Fatalf("AreasToAddress: expected none, got %v", a.Insights.AreasToAddress)
	}
	if got := providerNames(a.Providers); len(got) != 3 {
		t.Fatalf("Providers: unexpected %v", got)
	}
	if a.IndustryGuidance.TailoredFor != "the finance industry" {
		t.Fatalf("IndustryGuidance: unexpected %+v", a.IndustryGuidance)
	}
}

func TestEvaluateEmptyProfileNeverFails(t *testing.T) {
	t.Parallel()
	a := Evaluate(profile.BusinessProfile{})
	if a.Score != MinScore || a.Band != BandSignificantPreparation {
		t.Fatalf("empty profile: score=%d band=%q", a.Score, a.Band)
	}
	if a.Insights.Strengths == nil || a.Insights.AreasToAddress == nil {
		t.Fatalf("insight lists must be non-nil for JSON rendering")
	}
	if len(a.MigrationPlan) != 4 {
		t.Fatalf("MigrationPlan: expected 4 phases, got %d", len(a.MigrationPlan))
	}
}

func TestInsightsLargeOnPremNovice(t *testing.T) {
	t.Parallel()
	got := InsightsFor(profile.BusinessProfile{
		CompanySize:           profile.Size500Plus,
		CurrentInfrastructure: profile.InfraOnPremises,
		CloudExperience:       profile.ExperienceLimited,
	})
	want := Insights{
		Strengths: []string{},
		AreasToAddress: []string{
			"Fully on-premises infrastructure requires migration planning",
			"Limited cloud expertise may require training or external support",
			"Larger organization size may complicate migration",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("insights mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedCatalogShape(t *testing.T) {
	t.Parallel()
	if len(content.Providers) != 5 {
		t.Fatalf("expected 5 providers, got %d", len(content.Providers))
	}
	if len(content.Industries) != 5 {
		t.Fatalf("expected 5 industry blocks, got %d", len(content.Industries))
	}
	if len(content.Bands) != 4 {
		t.Fatalf("expected 4 bands, got %d", len(content.Bands))
	}
}

func TestLoadCatalogRejectsBrokenContent(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"not yaml":          "bands: [",
		"no bands":          "version: 1\n",
		"unordered bands":   "bands:\n  - {key: a, min: 10}\n  - {key: b, min: 40}\n",
		"missing providers": "bands:\n  - {key: a, min: 0}\n",
	}
	for name, doc := range cases {
		if _, err := loadCatalog([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
