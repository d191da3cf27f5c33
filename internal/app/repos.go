package app

import (
	"gorm.io/gorm"

	"github.com/cloudadopt/cloudadopt-backend/internal/data/repos"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

type Repos struct {
	Profile repos.ProfileRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Profile: repos.NewProfileRepo(db, log),
	}
}
