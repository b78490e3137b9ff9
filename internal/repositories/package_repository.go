package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"raahi/internal/models/agent_models"
	"raahi/internal/models/db_models"
)

type PackageRepository interface {
	FetchCandidates(ctx context.Context, filters agent_models.CandidateFilters) ([]db_models.Package, error)
	GetByID(ctx context.Context, id string) (*db_models.Package, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

// FetchCandidates applies the coarse pre-filters; fine-grained matching is
// the ranker's job. Destination is a case-insensitive contains, price is a
// ceiling, duration an exact day count when set.
func (r *packageRepository) FetchCandidates(ctx context.Context, filters agent_models.CandidateFilters) ([]db_models.Package, error) {
	query := r.db.WithContext(ctx).
		Model(&db_models.Package{}).
		Where("is_active = ?", true)

	if filters.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filters.Destination+"%")
	}
	if filters.MaxPrice > 0 {
		query = query.Where("price <= ?", filters.MaxPrice)
	}
	if filters.Duration > 0 {
		query = query.Where("duration = ?", filters.Duration)
	}

	var packages []db_models.Package
	if err := query.Order("created_at DESC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) GetByID(ctx context.Context, id string) (*db_models.Package, error) {
	var pkg db_models.Package
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}
