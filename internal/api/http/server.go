package http

import (
	"net/http"

	"github.com/JrMarcco/shipsync/internal/service/shipping"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server 管理后台使用的运费配置接口
type Server struct {
	rateSvc    shipping.RateService
	timeSvc    shipping.TimeService
	saveLogSvc shipping.SaveLogService

	logger *zap.Logger
}

func (s *Server) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/shipping")

	g.GET("/rates", s.GetRates)
	g.PUT("/rates", s.SaveRates)
	g.POST("/rates/draft/add", s.AddRateGroup)
	g.POST("/rates/draft/change", s.ChangeRateGroup)
	g.POST("/rates/draft/delete", s.DeleteRateCountries)

	g.GET("/times", s.GetTimes)
	g.PUT("/times", s.SaveTimes)
	g.POST("/times/draft/add", s.AddTimeGroup)
	g.POST("/times/draft/change", s.ChangeTimeGroup)
	g.POST("/times/draft/delete", s.DeleteTimeCountries)

	g.GET("/save-logs", s.ListSaveLogs)
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func NewServer(
	rateSvc shipping.RateService,
	timeSvc shipping.TimeService,
	saveLogSvc shipping.SaveLogService,
	logger *zap.Logger,
) *Server {
	return &Server{
		rateSvc:    rateSvc,
		timeSvc:    timeSvc,
		saveLogSvc: saveLogSvc,
		logger:     logger,
	}
}
