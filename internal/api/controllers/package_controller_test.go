package controllers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raahi/internal/models/response_models"
	"raahi/pkg/utils"
)

type stubPackageService struct {
	detail *response_models.PackageDetail
	err    error
}

func (s *stubPackageService) GetByID(_ context.Context, _ string) (*response_models.PackageDetail, error) {
	return s.detail, s.err
}

func newPackageRouter(service *stubPackageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewPackageController(service)

	r := gin.New()
	r.GET("/ai/packages/:id", controller.GetPackageHandler)
	return r
}

func TestGetPackageHandler(t *testing.T) {
	router := newPackageRouter(&stubPackageService{
		detail: &response_models.PackageDetail{PackageID: "pkg-1", Title: "Hunza Explorer", Price: 45000},
	})

	w := performJSON(router, http.MethodGet, "/ai/packages/pkg-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Hunza Explorer"`)
}

func TestGetPackageHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid id", fmt.Errorf("%w: malformed package id", utils.ErrInvalidInput), http.StatusBadRequest, "Invalid input"},
		{"not found", fmt.Errorf("%w: pkg-404", utils.ErrPackageNotFound), http.StatusNotFound, "Package not found"},
		{"database failure", fmt.Errorf("%w: connection refused", utils.ErrDatabaseError), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPackageRouter(&stubPackageService{err: tt.err})

			w := performJSON(router, http.MethodGet, "/ai/packages/pkg-1", nil)

			require.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}
