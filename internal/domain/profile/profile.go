package profile

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company sizes offered by the onboarding form.
const (
	Size1To10    = "1-10"
	Size11To50   = "11-50"
	Size51To200  = "51-200"
	Size201To500 = "201-500"
	Size500Plus  = "500+"
)

const (
	IndustryTechnology    = "technology"
	IndustryHealthcare    = "healthcare"
	IndustryFinance       = "finance"
	IndustryRetail        = "retail"
	IndustryManufacturing = "manufacturing"
	IndustryOther         = "other"
)

const (
	InfraOnPremises = "on-premises"
	InfraHybrid     = "hybrid"
	InfraCloud      = "cloud"
)

const (
	ExperienceNone      = "none"
	ExperienceLimited   = "limited"
	ExperienceModerate  = "moderate"
	ExperienceExtensive = "extensive"
)

const (
	GoalCostReduction = "cost-reduction"
	GoalScalability   = "scalability"
	GoalSecurity      = "security"
	GoalInnovation    = "innovation"
	GoalRemoteWork    = "remote-work"
)

// BusinessProfile is the onboarding answer set submitted by a prospective adopter.
// Enumerated fields are stored as given; unknown values are not rejected here.
type BusinessProfile struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName           string    `gorm:"not null;column:company_name" json:"companyName"`
	CompanySize           string    `gorm:"not null;column:company_size" json:"companySize"`
	Industry              string    `gorm:"not null;column:industry;index" json:"industry"`
	CurrentInfrastructure string    `gorm:"not null;column:current_infrastructure" json:"currentInfrastructure"`
	CloudExperience       string    `gorm:"not null;column:cloud_experience" json:"cloudExperience"`
	PrimaryGoal           string    `gorm:"not null;column:primary_goal" json:"primaryGoal"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (BusinessProfile) TableName() string { return "business_profile" }

func (p *BusinessProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Normalize trims surrounding whitespace from every field.
func (p *BusinessProfile) Normalize() {
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	p.CompanySize = strings.TrimSpace(p.CompanySize)
	p.Industry = strings.TrimSpace(p.Industry)
	p.CurrentInfrastructure = strings.TrimSpace(p.CurrentInfrastructure)
	p.CloudExperience = strings.TrimSpace(p.CloudExperience)
	p.PrimaryGoal = strings.TrimSpace(p.PrimaryGoal)
}

// MissingFields lists the JSON names of required fields that are blank, in form order.
func (p BusinessProfile) MissingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"companyName", p.CompanyName},
		{"companySize", p.CompanySize},
		{"industry", p.Industry},
		{"currentInfrastructure", p.CurrentInfrastructure},
		{"cloudExperience", p.CloudExperience},
		{"primaryGoal", p.PrimaryGoal},
	}
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Complete reports whether all six fields are present.
func (p BusinessProfile) Complete() bool {
	return len(p.MissingFields()) == 0
}
