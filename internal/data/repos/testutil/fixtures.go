package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
)

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, companyName string) *types.BusinessProfile {
	tb.Helper()
	p := &types.BusinessProfile{
		ID:                    uuid.New(),
		CompanyName:           companyName,
		CompanySize:           types.Size11To50,
		Industry:              types.IndustryRetail,
		CurrentInfrastructure: types.InfraHybrid,
		CloudExperience:       types.ExperienceModerate,
		PrimaryGoal:           types.GoalScalability,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}
