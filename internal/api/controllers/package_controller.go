package controllers

import (
	"github.com/gin-gonic/gin"

	"raahi/internal/services"
	"raahi/pkg/utils"
)

type PackageController struct {
	packageService services.PackageServiceInterface
}

func NewPackageController(packageService services.PackageServiceInterface) *PackageController {
	return &PackageController{packageService: packageService}
}

// GetPackageHandler serves the detail view for one package.
func (pc *PackageController) GetPackageHandler(c *gin.Context) {
	detail, err := pc.packageService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "Package retrieved")
}
