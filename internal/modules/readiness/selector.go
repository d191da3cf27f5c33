package readiness

import (
	"slices"

	"github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
)

type predicate func(p profile.BusinessProfile) bool

type providerRule struct {
	when     predicate
	provider string
}

func always(profile.BusinessProfile) bool { return true }

// Rules are evaluated in order and each match appends one block.
// A provider is never deduplicated across rules.
var providerRules = []providerRule{
	{
		when: func(p profile.BusinessProfile) bool {
			return p.CompanySize == profile.Size1To10 || p.CompanySize == profile.Size11To50
		},
		provider: providerSmallBusiness,
	},
	{
		when:     func(p profile.BusinessProfile) bool { return p.PrimaryGoal == profile.GoalCostReduction },
		provider: providerCostOptimized,
	},
	{
		when:     func(p profile.BusinessProfile) bool { return p.PrimaryGoal == profile.GoalScalability },
		provider: providerAutoScaling,
	},
	{
		when: func(p profile.BusinessProfile) bool {
			return p.PrimaryGoal == profile.GoalSecurity ||
				p.Industry == profile.IndustryHealthcare ||
				p.Industry == profile.IndustryFinance
		},
		provider: providerCompliance,
	},
	{when: always, provider: providerGeneralPurpose},
}

// Providers returns the recommended providers for p. The general-purpose
// platform is always the last entry.
func Providers(p profile.BusinessProfile) []Provider {
	out := make([]Provider, 0, len(providerRules))
	for _, r := range providerRules {
		if r.when(p) {
			out = append(out, content.provider(r.provider))
		}
	}
	return out
}

type taskAddition struct {
	phase    string
	addition string
}

type planRule struct {
	when    predicate
	appends []taskAddition
}

func lowExperience(p profile.BusinessProfile) bool {
	return p.CloudExperience == profile.ExperienceNone || p.CloudExperience == profile.ExperienceLimited
}

var planRules = []planRule{
	{
		when: func(p profile.BusinessProfile) bool { return p.CurrentInfrastructure == profile.InfraOnPremises },
		appends: []taskAddition{
			{phase: phasePreparation, addition: additionHybridConnectivity},
			{phase: phaseMigration, addition: additionDataTransfer},
		},
	},
	{
		when: lowExperience,
		appends: []taskAddition{
			{phase: phaseAssessment, addition: additionExternalExpertise},
			{phase: phasePreparation, addition: additionStaffTraining},
		},
	},
}

// MigrationPlan returns the four-phase roadmap with profile-specific tasks
// appended after each phase's static tasks.
func MigrationPlan(p profile.BusinessProfile) []Phase {
	phases := content.phases()
	for _, r := range planRules {
		if !r.when(p) {
			continue
		}
		for _, a := range r.appends {
			i := slices.IndexFunc(phases, func(ph Phase) bool { return ph.Key == a.phase })
			if i < 0 {
				continue
			}
			phases[i].Tasks = append(phases[i].Tasks, content.PlanAdditions[a.addition])
		}
	}
	return phases
}

var guidedIndustries = []string{
	profile.IndustryHealthcare,
	profile.IndustryFinance,
	profile.IndustryRetail,
	profile.IndustryManufacturing,
	profile.IndustryTechnology,
}

// Industry returns the guidance block for p.Industry, or the general block
// for "other" and anything unrecognized.
func Industry(p profile.BusinessProfile) IndustryGuidance {
	g, known := content.industry(p.Industry)
	if known {
		g.TailoredFor = "the " + p.Industry + " industry"
	} else {
		g.TailoredFor = "your industry"
	}
	return g
}
