package readiness

import "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"

const (
	MinScore = 25
	MaxScore = 100
)

// Fallback points for any value not listed in the term tables.
const (
	defaultInfrastructurePoints = 10
	defaultExperiencePoints     = 10
	defaultSizePoints           = 5
)

var infrastructurePoints = map[string]int{
	profile.InfraCloud:  40,
	profile.InfraHybrid: 25,
}

var experiencePoints = map[string]int{
	profile.ExperienceExtensive: 40,
	profile.ExperienceModerate:  30,
	profile.ExperienceLimited:   20,
}

// Smaller companies can move faster.
var sizePoints = map[string]int{
	profile.Size1To10:   20,
	profile.Size11To50:  15,
	profile.Size51To200: 10,
}

// ScoreBreakdown is the readiness score split into its three additive terms.
type ScoreBreakdown struct {
	Infrastructure int `json:"infrastructure"`
	Experience     int `json:"experience"`
	CompanySize    int `json:"companySize"`
}

func (b ScoreBreakdown) Total() int {
	return b.Infrastructure + b.Experience + b.CompanySize
}

func lookup(table map[string]int, key string, fallback int) int {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// Breakdown computes the per-term points for p. Only infrastructure,
// experience and company size are read.
func Breakdown(p profile.BusinessProfile) ScoreBreakdown {
	return ScoreBreakdown{
		Infrastructure: lookup(infrastructurePoints, p.CurrentInfrastructure, defaultInfrastructurePoints),
		Experience:     lookup(experiencePoints, p.CloudExperience, defaultExperiencePoints),
		CompanySize:    lookup(sizePoints, p.CompanySize, defaultSizePoints),
	}
}

// Score returns the readiness score for p, always within [MinScore, MaxScore].
func Score(p profile.BusinessProfile) int {
	return Breakdown(p).Total()
}

// Band is the qualitative label derived from a score.
type Band string

const (
	BandWellPrepared           Band = "well-prepared"
	BandGoodPotential          Band = "good-potential"
	BandModeratePreparation    Band = "needs-moderate-preparation"
	BandSignificantPreparation Band = "requires-significant-preparation"
)

// BandFor classifies score. Thresholds are inclusive lower bounds.
func BandFor(score int) Band {
	for _, b := range content.Bands {
		if score >= b.Min {
			return b.Key
		}
	}
	return content.Bands[len(content.Bands)-1].Key
}

// Message returns the user-facing explanation for the band.
func (b Band) Message() string {
	for _, bc := range content.Bands {
		if bc.Key == b {
			return bc.Message
		}
	}
	return ""
}
