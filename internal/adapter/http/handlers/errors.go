package handlers

import (
	"fieldservice/internal/infrastructure/logger"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const kindInternal = "Internal"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("ValidationError", "Invalid request payload", http.StatusBadRequest)
)

var kindStatus = map[string]int{
	"NotFound":           http.StatusNotFound,
	"ClientNotFound":     http.StatusNotFound,
	"OriginNotFound":     http.StatusNotFound,
	"InvoiceNotFound":    http.StatusNotFound,
	"AlreadyInvoiced":    http.StatusConflict,
	"UsernameTaken":      http.StatusConflict,
	"EmailTaken":         http.StatusConflict,
	"ValidationError":    http.StatusBadRequest,
	"MissingCredentials": http.StatusBadRequest,
	"InvalidCredentials": http.StatusUnauthorized,
	"UserInactive":       http.StatusForbidden,
}

// mapError turns an engine error into the {kind, message} body. Engine
// messages are passed through verbatim; anything outside the taxonomy is
// reported as Internal without detail.
func mapError(err error) *pkg.AppError {
	kind := usecase.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		return pkg.NewDomainError(kindInternal, "An internal error occurred", err, http.StatusInternalServerError)
	}
	return pkg.NewDomainError(kind, err.Error(), err, status)
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromGin(c).Error("[http][handler] request failed", zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalidPayload(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}
