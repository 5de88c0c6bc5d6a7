package http

import (
	"fmt"
	"strings"

	"github.com/JrMarcco/easy-kit/slice"
	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/service/shipping"
	"github.com/gin-gonic/gin"
)

type saveRatesReq struct {
	Rates   []domain.ShippingRate `json:"rates"`
	Version string                `json:"version"`
}

type rateGroupReq struct {
	Countries []string `json:"countries"`
	Currency  string   `json:"currency"`
	Price     *float64 `json:"price"`
}

// rateDraftReq 对当前编辑中的运费（rates）应用一次分组编辑
type rateDraftReq struct {
	Rates            []domain.ShippingRate `json:"rates"`
	Group            rateGroupReq          `json:"group"`
	DeletedCountries []string              `json:"deleted_countries"`
}

type rateDraftDeleteReq struct {
	Rates     []domain.ShippingRate `json:"rates"`
	Countries []string              `json:"countries"`
}

type rateDraftResp struct {
	Rates  []domain.ShippingRate  `json:"rates"`
	Groups []domain.AggregatedRate `json:"groups"`
}

func (s *Server) GetRates(c *gin.Context) {
	view, err := s.rateSvc.View(c.Request.Context())
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ok(c, view)
}

func (s *Server) SaveRates(c *gin.Context) {
	var req saveRatesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, invalidParam(err.Error()))
		return
	}

	rates, err := normalizeRates(req.Rates)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	view, err := s.rateSvc.Save(c.Request.Context(), rates, strings.TrimSpace(req.Version))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	ok(c, view)
}

func (s *Server) AddRateGroup(c *gin.Context) {
	s.editRates(c, func(req rateDraftReq, rates []domain.ShippingRate, v domain.RateValue) []domain.ShippingRate {
		return shipping.AddRates(rates, req.Group.Countries, v)
	})
}

func (s *Server) ChangeRateGroup(c *gin.Context) {
	s.editRates(c, func(req rateDraftReq, rates []domain.ShippingRate, v domain.RateValue) []domain.ShippingRate {
		return shipping.ChangeRates(rates, req.Group.Countries, v, normalizeCountries(req.DeletedCountries))
	})
}

func (s *Server) editRates(
	c *gin.Context, edit func(req rateDraftReq, rates []domain.ShippingRate, v domain.RateValue) []domain.ShippingRate,
) {
	var req rateDraftReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, invalidParam(err.Error()))
		return
	}

	rates, err := normalizeRates(req.Rates)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	v, err := validateRateGroup(&req.Group)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	rates = edit(req, rates, v)
	ok(c, rateDraftResp{Rates: rates, Groups: shipping.AggregateRates(rates)})
}

func (s *Server) DeleteRateCountries(c *gin.Context) {
	var req rateDraftDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, invalidParam(err.Error()))
		return
	}

	rates, err := normalizeRates(req.Rates)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	countries := normalizeCountries(req.Countries)
	if len(countries) == 0 {
		s.abortWithError(c, invalidParam("countries is required"))
		return
	}

	rates = shipping.DeleteRates(rates, countries)
	ok(c, rateDraftResp{Rates: rates, Groups: shipping.AggregateRates(rates)})
}

// normalizeRates 校验并规范化提交的按国家运费
func normalizeRates(rates []domain.ShippingRate) ([]domain.ShippingRate, error) {
	res := slice.Map(rates, func(_ int, src domain.ShippingRate) domain.ShippingRate {
		src.CountryCode = normalizeCountry(src.CountryCode)
		src.Currency = strings.ToUpper(strings.TrimSpace(src.Currency))
		return src
	})

	for _, r := range res {
		if r.CountryCode == "" {
			return nil, invalidParam("country_code is required")
		}
		if r.Currency == "" {
			return nil, invalidParam(fmt.Sprintf("currency of %s is required", r.CountryCode))
		}
		if r.Rate < 0 {
			return nil, invalidParam(fmt.Sprintf("rate of %s must not be negative", r.CountryCode))
		}
	}
	if err := checkDuplicate[domain.ShippingRate, domain.RateValue](res); err != nil {
		return nil, err
	}
	return res, nil
}

func validateRateGroup(g *rateGroupReq) (domain.RateValue, error) {
	countries, err := validateGroupCountries(g.Countries)
	if err != nil {
		return domain.RateValue{}, err
	}
	g.Countries = countries

	currency := strings.ToUpper(strings.TrimSpace(g.Currency))
	if currency == "" {
		return domain.RateValue{}, invalidParam("currency is required")
	}
	if g.Price == nil {
		return domain.RateValue{}, invalidParam("price is required")
	}
	if *g.Price < 0 {
		return domain.RateValue{}, invalidParam("price must not be negative")
	}
	return domain.RateValue{Currency: currency, Rate: *g.Price}, nil
}
