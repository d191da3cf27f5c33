package readiness

import "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"

// Insights are the short strengths / gaps lists shown next to the score.
type Insights struct {
	Strengths      []string `json:"strengths"`
	AreasToAddress []string `json:"areasToAddress"`
}

type insightRule struct {
	when predicate
	key  string
}

var strengthRules = []insightRule{
	{when: func(p profile.BusinessProfile) bool { return p.CurrentInfrastructure == profile.InfraCloud }, key: strengthCloudInfra},
	{when: func(p profile.BusinessProfile) bool { return p.CurrentInfrastructure == profile.InfraHybrid }, key: strengthHybridInfra},
	{
		when: func(p profile.BusinessProfile) bool {
			return p.CloudExperience == profile.ExperienceExtensive || p.CloudExperience == profile.ExperienceModerate
		},
		key: strengthExpertise,
	},
	{when: func(p profile.BusinessProfile) bool { return p.CompanySize == profile.Size1To10 }, key: strengthSmallTeam},
}

var areaRules = []insightRule{
	{when: func(p profile.BusinessProfile) bool { return p.CurrentInfrastructure == profile.InfraOnPremises }, key: areaOnPremises},
	{when: lowExperience, key: areaLimitedExpertise},
	{
		when: func(p profile.BusinessProfile) bool {
			return p.CompanySize == profile.Size201To500 || p.CompanySize == profile.Size500Plus
		},
		key: areaLargeOrg,
	},
}

// InsightsFor returns the strengths and areas to address for p.
// Either list may be empty; neither is nil.
func InsightsFor(p profile.BusinessProfile) Insights {
	return Insights{
		Strengths:      collect(strengthRules, content.Insights.Strengths, p),
		AreasToAddress: collect(areaRules, content.Insights.Areas, p),
	}
}

func collect(rules []insightRule, copyByKey map[string]string, p profile.BusinessProfile) []string {
	out := []string{}
	for _, r := range rules {
		if r.when(p) {
			out = append(out, copyByKey[r.key])
		}
	}
	return out
}
