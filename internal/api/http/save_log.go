package http

import (
	"strconv"
	"strings"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListSaveLogs(c *gin.Context) {
	kind := domain.SettingKind(strings.TrimSpace(c.Query("kind")))

	var limit int
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			s.abortWithError(c, invalidParam("limit must be an integer"))
			return
		}
		limit = val
	}

	logs, err := s.saveLogSvc.Find(c.Request.Context(), kind, limit)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ok(c, logs)
}
