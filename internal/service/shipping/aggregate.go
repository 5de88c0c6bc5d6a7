package shipping

import (
	"github.com/JrMarcco/easy-kit/slice"
	"github.com/JrMarcco/shipsync/internal/domain"
)

// Group 取值相同的一组国家
type Group[V comparable] struct {
	Countries []string
	Value     V
}

// Aggregate 按取值对配置进行分组。
//
// 分组顺序为取值首次出现的顺序，组内国家保持输入中的相对顺序。
// 输入中同一国家只能出现一次。
func Aggregate[S domain.Setting[V], V comparable](settings []S) []Group[V] {
	groups := make([]Group[V], 0, len(settings))
	idx := make(map[V]int, len(settings))
	for _, s := range settings {
		v := s.Value()
		i, ok := idx[v]
		if !ok {
			i = len(groups)
			idx[v] = i
			groups = append(groups, Group[V]{Value: v})
		}
		groups[i].Countries = append(groups[i].Countries, s.Country())
	}
	return groups
}

// Flatten 把分组展开为按国家的配置，Aggregate 的逆操作
func Flatten[S domain.Setting[V], V comparable](groups []Group[V], build func(countryCode string, v V) S) []S {
	res := make([]S, 0, len(groups))
	for _, g := range groups {
		for _, c := range g.Countries {
			res = append(res, build(c, g.Value))
		}
	}
	return res
}

func AggregateRates(rates []domain.ShippingRate) []domain.AggregatedRate {
	groups := Aggregate[domain.ShippingRate, domain.RateValue](rates)
	return slice.Map(groups, func(_ int, src Group[domain.RateValue]) domain.AggregatedRate {
		price := src.Value.Rate
		return domain.AggregatedRate{
			Countries: src.Countries,
			Currency:  src.Value.Currency,
			Price:     &price,
		}
	})
}

func AggregateTimes(times []domain.ShippingTime) []domain.AggregatedTime {
	groups := Aggregate[domain.ShippingTime, domain.TimeValue](times)
	return slice.Map(groups, func(_ int, src Group[domain.TimeValue]) domain.AggregatedTime {
		t, maxTime := src.Value.Time, src.Value.MaxTime
		return domain.AggregatedTime{
			Countries: src.Countries,
			Time:      &t,
			MaxTime:   &maxTime,
		}
	})
}

// GroupTimes 把运输时长聚合为后端写入所需的 TimeGroup
func GroupTimes(times []domain.ShippingTime) []domain.TimeGroup {
	groups := Aggregate[domain.ShippingTime, domain.TimeValue](times)
	return slice.Map(groups, func(_ int, src Group[domain.TimeValue]) domain.TimeGroup {
		return domain.TimeGroup{
			CountryCodes: src.Countries,
			Time:         src.Value.Time,
			MaxTime:      src.Value.MaxTime,
		}
	})
}

// RemainingCountries 返回 audience 中尚未配置的国家，保持 audience 顺序
func RemainingCountries[S domain.Setting[V], V comparable](audience []string, settings []S) []string {
	covered := make(map[string]struct{}, len(settings))
	for _, s := range settings {
		covered[s.Country()] = struct{}{}
	}

	res := make([]string, 0, len(audience))
	for _, c := range audience {
		if _, ok := covered[c]; !ok {
			res = append(res, c)
		}
	}
	return res
}

func newRate(countryCode string, v domain.RateValue) domain.ShippingRate {
	return v.For(countryCode)
}

func newTime(countryCode string, v domain.TimeValue) domain.ShippingTime {
	return v.For(countryCode)
}
