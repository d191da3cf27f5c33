// Package readiness scores a business profile for cloud adoption and selects
// the static recommendation content shown on the cloud journey page.
//
// Everything here is a pure, total function of the profile: unknown or empty
// field values fall through to the default branches and never produce an error.
package readiness

import "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"

// Assessment is everything the cloud journey page renders for one profile.
type Assessment struct {
	Profile          profile.BusinessProfile `json:"profile"`
	Score            int                     `json:"score"`
	Breakdown        ScoreBreakdown          `json:"breakdown"`
	Band             Band                    `json:"band"`
	BandMessage      string                  `json:"bandMessage"`
	Insights         Insights                `json:"insights"`
	Providers        []Provider              `json:"providers"`
	MigrationPlan    []Phase                 `json:"migrationPlan"`
	IndustryGuidance IndustryGuidance        `json:"industryGuidance"`
}

// Evaluate computes the full assessment for p.
func Evaluate(p profile.BusinessProfile) Assessment {
	breakdown := Breakdown(p)
	score := breakdown.Total()
	band := BandFor(score)
	return Assessment{
		Profile:          p,
		Score:            score,
		Breakdown:        breakdown,
		Band:             band,
		BandMessage:      band.Message(),
		Insights:         InsightsFor(p),
		Providers:        Providers(p),
		MigrationPlan:    MigrationPlan(p),
		IndustryGuidance: Industry(p),
	}
}
