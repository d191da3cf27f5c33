package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&profile.BusinessProfile{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("running auto migration")
	return AutoMigrateAll(s.db)
}
