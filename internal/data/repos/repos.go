package repos

import (
	"gorm.io/gorm"

	"github.com/cloudadopt/cloudadopt-backend/internal/data/repos/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

type ProfileRepo = profile.ProfileRepo

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	return profile.NewProfileRepo(db, baseLog)
}
