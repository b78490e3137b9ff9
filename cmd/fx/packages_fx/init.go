package packages_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"raahi/internal/api/controllers"
	"raahi/internal/repositories"
	"raahi/internal/services"
)

var Module = fx.Provide(
	ProvidePackageRepository,
	ProvidePackageService,
	ProvidePackageController,
)

func ProvidePackageRepository(db *gorm.DB) repositories.PackageRepository {
	return repositories.NewPackageRepository(db)
}

func ProvidePackageService(packages repositories.PackageRepository) services.PackageServiceInterface {
	return services.NewPackageService(packages)
}

func ProvidePackageController(packageService services.PackageServiceInterface) *controllers.PackageController {
	return controllers.NewPackageController(packageService)
}
