package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"raahi/internal/models/db_models"
	"raahi/internal/models/response_models"
	"raahi/internal/repositories"
	"raahi/pkg/utils"
)

type PackageServiceInterface interface {
	GetByID(ctx context.Context, id string) (*response_models.PackageDetail, error)
}

// PackageService serves the package detail view on top of the repository,
// translating storage outcomes into the sentinel errors the controller
// layer switches on.
type PackageService struct {
	packages repositories.PackageRepository
}

func NewPackageService(packages repositories.PackageRepository) PackageServiceInterface {
	return &PackageService{packages: packages}
}

func (s *PackageService) GetByID(ctx context.Context, id string) (*response_models.PackageDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: malformed package id %q", utils.ErrInvalidInput, id)
	}

	pkg, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: %s", utils.ErrPackageNotFound, id)
	}

	detail := buildPackageDetail(*pkg)
	return &detail, nil
}

func buildPackageDetail(pkg db_models.Package) response_models.PackageDetail {
	return response_models.PackageDetail{
		PackageID:    pkg.ID.String(),
		Title:        pkg.Title,
		Destination:  pkg.Destination,
		Description:  pkg.Description,
		Duration:     pkg.Duration,
		Price:        pkg.Price,
		Rating:       pkg.Rating,
		MaxTravelers: pkg.MaxTravelers,
		BookingCount: pkg.BookingCount,
		AgencyName:   pkg.AgencyName,
		Images:       []string(pkg.Images),
		Includes:     []string(pkg.Includes),
	}
}
