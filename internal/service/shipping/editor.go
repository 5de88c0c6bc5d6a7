package shipping

import "github.com/JrMarcco/shipsync/internal/domain"

// 分组编辑后的展开与合并。
//
// 所有操作都返回完整的按国家配置，不修改入参。
// 已存在的国家原位替换，新增国家追加到末尾。

func merge[S domain.Setting[V], V comparable](
	flat []S, removed []string, countries []string, v V, build func(string, V) S,
) []S {
	drop := make(map[string]struct{}, len(removed))
	for _, c := range removed {
		drop[c] = struct{}{}
	}

	res := make([]S, 0, len(flat)+len(countries))
	pos := make(map[string]int, len(flat)+len(countries))
	for _, s := range flat {
		if _, ok := drop[s.Country()]; ok {
			continue
		}
		pos[s.Country()] = len(res)
		res = append(res, s)
	}

	for _, c := range countries {
		s := build(c, v)
		if i, ok := pos[c]; ok {
			res[i] = s
			continue
		}
		pos[c] = len(res)
		res = append(res, s)
	}
	return res
}

func remove[S domain.Setting[V], V comparable](flat []S, countries []string) []S {
	var zero V
	return merge(flat, countries, nil, zero, func(string, V) S {
		var s S
		return s
	})
}

// AddRates 新增一个运费分组
func AddRates(flat []domain.ShippingRate, countries []string, v domain.RateValue) []domain.ShippingRate {
	return merge(flat, nil, countries, v, newRate)
}

// ChangeRates 修改一个运费分组，deleted 为移出该分组的国家
func ChangeRates(
	flat []domain.ShippingRate, countries []string, v domain.RateValue, deleted []string,
) []domain.ShippingRate {
	return merge(flat, deleted, countries, v, newRate)
}

// DeleteRates 删除国家的运费
func DeleteRates(flat []domain.ShippingRate, countries []string) []domain.ShippingRate {
	return remove[domain.ShippingRate, domain.RateValue](flat, countries)
}

// AddTimes 新增一个运输时长分组
func AddTimes(flat []domain.ShippingTime, countries []string, v domain.TimeValue) []domain.ShippingTime {
	return merge(flat, nil, countries, v, newTime)
}

// ChangeTimes 修改一个运输时长分组，deleted 为移出该分组的国家
func ChangeTimes(
	flat []domain.ShippingTime, countries []string, v domain.TimeValue, deleted []string,
) []domain.ShippingTime {
	return merge(flat, deleted, countries, v, newTime)
}

// DeleteTimes 删除国家的运输时长
func DeleteTimes(flat []domain.ShippingTime, countries []string) []domain.ShippingTime {
	return remove[domain.ShippingTime, domain.TimeValue](flat, countries)
}
