package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/pkg/gla"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	var apiErr *gla.APIError
	switch {
	case errors.Is(err, errs.ErrInvalidParam),
		errors.Is(err, errs.ErrDuplicateCountry),
		errors.Is(err, errs.ErrUnknownSettingKind):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrStaleBaseline):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrOperatorNotFound):
		status, msg = http.StatusUnauthorized, errs.ErrUnauthorized.Error()
	case errors.As(err, &apiErr):
		// 后端（WooCommerce 商店）返回错误
		status, msg = http.StatusBadGateway, err.Error()
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error(
			"[shipsync] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": msg}})
}

func invalidParam(msg string) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidParam, msg)
}
