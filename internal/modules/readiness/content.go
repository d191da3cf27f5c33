package readiness

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Provider is one recommended cloud platform card.
type Provider struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

// Phase is one step of the migration roadmap.
type Phase struct {
	Key         string   `yaml:"key" json:"key"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tasks       []string `yaml:"tasks" json:"tasks"`
}

// IndustryGuidance is the single industry-specific advice block.
type IndustryGuidance struct {
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
	TailoredFor     string   `yaml:"-" json:"tailoredFor"`
}

type bandCopy struct {
	Key     Band   `yaml:"key"`
	Min     int    `yaml:"min"`
	Message string `yaml:"message"`
}

type catalog struct {
	Version         int                         `yaml:"version"`
	Bands           []bandCopy                  `yaml:"bands"`
	Providers       map[string]Provider         `yaml:"providers"`
	Phases          []Phase                     `yaml:"phases"`
	PlanAdditions   map[string]string           `yaml:"plan_additions"`
	Industries      map[string]IndustryGuidance `yaml:"industries"`
	DefaultIndustry IndustryGuidance            `yaml:"default_industry"`
	Insights        struct {
		Strengths map[string]string `yaml:"strengths"`
		Areas     map[string]string `yaml:"areas"`
	} `yaml:"insights"`
}

// Catalog keys referenced by the selection rules.
const (
	providerSmallBusiness  = "small_business"
	providerCostOptimized  = "cost_optimized"
	providerAutoScaling    = "auto_scaling"
	providerCompliance     = "compliance"
	providerGeneralPurpose = "general_purpose"

	phaseAssessment   = "assessment"
	phasePreparation  = "preparation"
	phaseMigration    = "migration"
	phaseOptimization = "optimization"

	additionHybridConnectivity = "hybrid_connectivity"
	additionDataTransfer       = "data_transfer"
	additionExternalExpertise  = "external_expertise"
	additionStaffTraining      = "staff_training"

	strengthCloudInfra   = "cloud_infrastructure"
	strengthHybridInfra  = "hybrid_infrastructure"
	strengthExpertise    = "cloud_expertise"
	strengthSmallTeam    = "small_team"
	areaOnPremises       = "on_premises"
	areaLimitedExpertise = "limited_expertise"
	areaLargeOrg         = "large_organization"
)

var content = mustLoadCatalog(contentYAML)

func mustLoadCatalog(data []byte) *catalog {
	c, err := loadCatalog(data)
	if err != nil {
		panic(fmt.Sprintf("readiness: invalid content catalog: %v", err))
	}
	return c
}

func loadCatalog(data []byte) (*catalog, error) {
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *catalog) validate() error {
	if len(c.Bands) == 0 {
		return errors.New("no bands")
	}
	for i := 1; i < len(c.Bands); i++ {
		if c.Bands[i].Min >= c.Bands[i-1].Min {
			return fmt.Errorf("bands must be ordered by descending min (band %q)", c.Bands[i].Key)
		}
	}
	if last := c.Bands[len(c.Bands)-1]; last.Min > MinScore {
		return fmt.Errorf("lowest band %q starts above %d", last.Key, MinScore)
	}

	for _, key := range []string{providerSmallBusiness, providerCostOptimized, providerAutoScaling, providerCompliance, providerGeneralPurpose} {
		if p, ok := c.Providers[key]; !ok || p.Name == "" {
			return fmt.Errorf("missing provider %q", key)
		}
	}

	wantPhases := []string{phaseAssessment, phasePreparation, phaseMigration, phaseOptimization}
	if len(c.Phases) != len(wantPhases) {
		return fmt.Errorf("expected %d phases, got %d", len(wantPhases), len(c.Phases))
	}
	for i, key := range wantPhases {
		if c.Phases[i].Key != key {
			return fmt.Errorf("phase %d: expected key %q, got %q", i, key, c.Phases[i].Key)
		}
	}

	for _, key := range []string{additionHybridConnectivity, additionDataTransfer, additionExternalExpertise, additionStaffTraining} {
		if c.PlanAdditions[key] == "" {
			return fmt.Errorf("missing plan addition %q", key)
		}
	}

	for _, key := range guidedIndustries {
		if g, ok := c.Industries[key]; !ok || g.Title == "" {
			return fmt.Errorf("missing industry %q", key)
		}
	}
	if c.DefaultIndustry.Title == "" {
		return errors.New("missing default industry")
	}

	for _, key := range []string{strengthCloudInfra, strengthHybridInfra, strengthExpertise, strengthSmallTeam} {
		if c.Insights.Strengths[key] == "" {
			return fmt.Errorf("missing strength %q", key)
		}
	}
	for _, key := range []string{areaOnPremises, areaLimitedExpertise, areaLargeOrg} {
		if c.Insights.Areas[key] == "" {
			return fmt.Errorf("missing area %q", key)
		}
	}
	return nil
}

func (c *catalog) provider(key string) Provider {
	p := c.Providers[key]
	p.Features = slices.Clone(p.Features)
	return p
}

func (c *catalog) phases() []Phase {
	out := make([]Phase, len(c.Phases))
	for i, ph := range c.Phases {
		ph.Tasks = slices.Clone(ph.Tasks)
		out[i] = ph
	}
	return out
}

func (c *catalog) industry(key string) (IndustryGuidance, bool) {
	g, ok := c.Industries[key]
	if !ok {
		g = c.DefaultIndustry
	}
	g.Recommendations = slices.Clone(g.Recommendations)
	return g, ok
}
