package http

import (
	"fmt"
	"strings"

	"github.com/JrMarcco/easy-kit/slice"
	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/service/shipping"
	"github.com/gin-gonic/gin"
)

type saveTimesReq struct {
	Times   []domain.ShippingTime `json:"times"`
	Version string                `json:"version"`
}

type timeGroupReq struct {
	Countries []string `json:"countries"`
	Time      *int32   `json:"time"`
	MaxTime   *int32   `json:"max_time"`
}

type timeDraftReq struct {
	Times            []domain.ShippingTime `json:"times"`
	Group            timeGroupReq          `json:"group"`
	DeletedCountries []string              `json:"deleted_countries"`
}

type timeDraftDeleteReq struct {
	Times     []domain.ShippingTime `json:"times"`
	Countries []string              `json:"countries"`
}

type timeDraftResp struct {
	Times  []domain.ShippingTime   `json:"times"`
	Groups []domain.AggregatedTime `json:"groups"`
}

func (s *Server) GetTimes(c *gin.Context) {
	view, err := s.timeSvc.View(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ok(c, view)
}

func (s *Server) SaveTimes(c *gin.Context) {
	var req saveTimesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, invalidParam(err.Error()))
		return
	}

	times, err := normalizeTimes(req.Times)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	view, err := s.timeSvc.Save(c.Request.Context(), times, strings.TrimSpace(req.Version))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ok(c, view)
}

func (s *Server) AddTimeGroup(c *gin.Context) {
	s.editTimes(c, func(req timeDraftReq, times []domain.ShippingTime, v domain.TimeValue) []domain.ShippingTime {
		return shipping.AddTimes(times, req.Group.Countries, v)
	})
}

func (s *Server) ChangeTimeGroup(c *gin.Context) {
	s.editTimes(c, func(req timeDraftReq, times []domain.ShippingTime, v domain.TimeValue) []domain.ShippingTime {
		return shipping.ChangeTimes(times, req.Group.Countries, v, normalizeCountries(req.DeletedCountries))
	})
}

func (s *Server) editTimes(
	c *gin.Context, edit func(req timeDraftReq, times []domain.ShippingTime, v domain.TimeValue) []domain.ShippingTime,
) {
	var req timeDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, invalidParam(err.Error()))
		return
	}

	times, err := normalizeTimes(req.Times)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	v, err := validateTimeGroup(&req.Group)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	times = edit(req, times, v)
	ok(c, timeDraftResp{Times: times, Groups: shipping.AggregateTimes(times)})
}

func (s *Server) DeleteTimeCountries(c *gin.Context) {
	var req timeDraftDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, invalidParam(err.Error()))
		return
	}

	times, err := normalizeTimes(req.Times)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	countries := normalizeCountries(req.Countries)
	if len(countries) == 0 {
		s.abortWithError(c, invalidParam("countries is required"))
		return
	}

	times = shipping.DeleteTimes(times, countries)
	ok(c, timeDraftResp{Times: times, Groups: shipping.AggregateTimes(times)})
}

func normalizeTimes(times []domain.ShippingTime) ([]domain.ShippingTime, error) {
	res := slice.Map(times, func(_ int, src domain.ShippingTime) domain.ShippingTime {
		src.CountryCode = normalizeCountry(src.CountryCode)
		return src
	})

	for _, t := range res {
		if t.CountryCode == "" {
			return nil, invalidParam("country_code is required")
		}
		if err := checkTimeRange(t.Time, t.MaxTime); err != nil {
			return nil, invalidParam(fmt.Sprintf("%s: %s", t.CountryCode, err.Error()))
		}
	}
	if err := checkDuplicate[domain.ShippingTime, domain.TimeValue](res); err != nil {
		return nil, err
	}
	return res, nil
}

func validateTimeGroup(g *timeGroupReq) (domain.TimeValue, error) {
	countries, err := validateGroupCountries(g.Countries)
	if err != nil {
		return domain.TimeValue{}, err
	}
	g.Countries = countries

	if g.Time == nil || g.MaxTime == nil {
		return domain.TimeValue{}, invalidParam("time and max_time are required")
	}
	if err = checkTimeRange(*g.Time, *g.MaxTime); err != nil {
		return domain.TimeValue{}, invalidParam(err.Error())
	}
	return domain.TimeValue{Time: *g.Time, MaxTime: *g.MaxTime}, nil
}

func checkTimeRange(t, maxTime int32) error {
	if t < 0 {
		return fmt.Errorf("time must not be negative")
	}
	if maxTime < t {
		return fmt.Errorf("max_time must not be less than time")
	}
	return nil
}
