package http

import (
	"fmt"
	"strings"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/service/shipping"
)

func normalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func normalizeCountries(codes []string) []string {
	res := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = normalizeCountry(c); c != "" {
			res = append(res, c)
		}
	}
	return res
}

// validateGroupCountries 分组的国家必须非空且不重复
func validateGroupCountries(codes []string) ([]string, error) {
	countries := normalizeCountries(codes)
	if len(countries) == 0 {
		return nil, invalidParam("group countries is required")
	}

	seen := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateCountry, c)
		}
		seen[c] = struct{}{}
	}
	return countries, nil
}

func checkDuplicate[S domain.Setting[V], V comparable](settings []S) error {
	if c, ok := shipping.DuplicateCountry[S, V](settings); ok {
		return fmt.Errorf("%w: %s", errs.ErrDuplicateCountry, c)
	}
	return nil
}
