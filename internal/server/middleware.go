package server

import (
	"errors"
	"net/http"

	"github.com/nguyentranbao-ct/catalog-console/internal/models"
	pkgmdw "github.com/nguyentranbao-ct/catalog-console/internal/server/middleware"
)

// translateConsoleError maps console and catalog errors to API responses.
func translateConsoleError(err error) *pkgmdw.ResponseError {
	var re *models.RequestError
	switch {
	case models.IsValidationError(err):
		return pkgmdw.NewResponseError(http.StatusBadRequest, pkgmdw.CodeValidationFailed, err)
	case errors.As(err, &re):
		resp := pkgmdw.NewResponseError(http.StatusBadGateway, pkgmdw.CodeUpstreamFailed, err)
		resp.ErrorMessage = re.Message()
		if re.Status != 0 {
			resp.ErrorData = map[string]int{"upstream_status": re.Status}
		}
		return resp
	case errors.Is(err, models.ErrProductNotFound):
		return pkgmdw.NewResponseError(http.StatusNotFound, pkgmdw.CodeNotFound, err)
	case errors.Is(err, models.ErrUnknownSortColumn), errors.Is(err, models.ErrInvalidPageSize):
		return pkgmdw.NewResponseError(http.StatusBadRequest, pkgmdw.CodeBadRequest, err)
	case errors.Is(err, models.ErrNoProductSelected):
		return pkgmdw.NewResponseError(http.StatusConflict, pkgmdw.CodeConflict, err)
	}
	return nil
}
