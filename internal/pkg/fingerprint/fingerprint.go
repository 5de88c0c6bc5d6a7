// Package fingerprint 计算按国家配置集合的版本指纹。
//
// 指纹与集合顺序无关，同一份配置无论以何种顺序返回都得到相同结果。
package fingerprint

import (
	"slices"
	"strconv"
	"strings"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/cespare/xxhash/v2"
)

func Rates(rates []domain.ShippingRate) string {
	sorted := slices.Clone(rates)
	slices.SortFunc(sorted, func(a, b domain.ShippingRate) int {
		return strings.Compare(a.CountryCode, b.CountryCode)
	})

	d := xxhash.New()
	for _, r := range sorted {
		_, _ = d.WriteString(r.CountryCode)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(r.Currency)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.FormatFloat(r.Rate, 'g', -1, 64))
		_, _ = d.WriteString("\n")
	}
	return format(d.Sum64())
}

func Times(times []domain.ShippingTime) string {
	sorted := slices.Clone(times)
	slices.SortFunc(sorted, func(a, b domain.ShippingTime) int {
		return strings.Compare(a.CountryCode, b.CountryCode)
	})

	d := xxhash.New()
	for _, t := range sorted {
		_, _ = d.WriteString(t.CountryCode)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.FormatInt(int64(t.Time), 10))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.FormatInt(int64(t.MaxTime), 10))
		_, _ = d.WriteString("\n")
	}
	return format(d.Sum64())
}

func format(sum uint64) string {
	return strconv.FormatUint(sum, 16)
}
