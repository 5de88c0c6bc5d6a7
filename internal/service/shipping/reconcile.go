package shipping

import "github.com/JrMarcco/shipsync/internal/domain"

// Deletions 返回 baseline 中存在但 settings 中已不存在的国家，保持 baseline 顺序。
//
// 只比较国家代码，不关心取值。
func Deletions[S domain.Setting[V], V comparable](settings, baseline []S) []string {
	current := make(map[string]struct{}, len(settings))
	for _, s := range settings {
		current[s.Country()] = struct{}{}
	}

	res := make([]string, 0)
	for _, s := range baseline {
		if _, ok := current[s.Country()]; !ok {
			res = append(res, s.Country())
		}
	}
	return res
}

// Upserts 返回 settings 中新增或取值发生变化的配置，保持 settings 顺序。
//
// 国家代码是关联 key，取值按字段逐一比较。
func Upserts[S domain.Setting[V], V comparable](settings, baseline []S) []S {
	old := make(map[string]V, len(baseline))
	for _, s := range baseline {
		old[s.Country()] = s.Value()
	}

	res := make([]S, 0)
	for _, s := range settings {
		if v, ok := old[s.Country()]; ok && v == s.Value() {
			continue
		}
		res = append(res, s)
	}
	return res
}

// Diff 计算把 baseline 同步到 settings 所需的最小变更
func Diff[S domain.Setting[V], V comparable](settings, baseline []S) domain.ChangeSet[S] {
	return domain.ChangeSet[S]{
		DeletedCountryCodes: Deletions[S, V](settings, baseline),
		Upserted:            Upserts[S, V](settings, baseline),
	}
}

func RateDeletions(rates, baseline []domain.ShippingRate) []string {
	return Deletions[domain.ShippingRate, domain.RateValue](rates, baseline)
}

func RateUpserts(rates, baseline []domain.ShippingRate) []domain.ShippingRate {
	return Upserts[domain.ShippingRate, domain.RateValue](rates, baseline)
}

func TimeDeletions(times, baseline []domain.ShippingTime) []string {
	return Deletions[domain.ShippingTime, domain.TimeValue](times, baseline)
}

func TimeUpserts(times, baseline []domain.ShippingTime) []domain.ShippingTime {
	return Upserts[domain.ShippingTime, domain.TimeValue](times, baseline)
}

// DuplicateCountry 返回第一个重复出现的国家代码
func DuplicateCountry[S domain.Setting[V], V comparable](settings []S) (string, bool) {
	seen := make(map[string]struct{}, len(settings))
	for _, s := range settings {
		if _, ok := seen[s.Country()]; ok {
			return s.Country(), true
		}
		seen[s.Country()] = struct{}{}
	}
	return "", false
}
