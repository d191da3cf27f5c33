package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	types "github.com/cloudadopt/cloudadopt-backend/internal/domain/profile"
	"github.com/cloudadopt/cloudadopt-backend/internal/platform/logger"
)

type ProfileRepo interface {
	Create(ctx context.Context, tx *gorm.DB, profiles []*types.BusinessProfile) ([]*types.BusinessProfile, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BusinessProfile, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.BusinessProfile, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

func (r *profileRepo) Create(ctx context.Context, tx *gorm.DB, profiles []*types.BusinessProfile) ([]*types.BusinessProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(profiles) == 0 {
		return []*types.BusinessProfile{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&profiles).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			r.log.Error("insert business_profile failed", "sql_state", pgErr.Code, "constraint", pgErr.ConstraintName, "error", pgErr.Message)
		}
		return nil, fmt.Errorf("create business profiles: %w", err)
	}

	return profiles, nil
}

func (r *profileRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.BusinessProfile, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BusinessProfile
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID returns nil, nil when no profile has the given id.
func (r *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.BusinessProfile, error) {
	rows, err := r.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
