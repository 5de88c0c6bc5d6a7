package domain

var _ Setting[RateValue] = ShippingRate{}

// ShippingRate 单个国家的运费
type ShippingRate struct {
	CountryCode string  `json:"country_code"`
	Currency    string  `json:"currency"`
	Rate        float64 `json:"rate"`
}

func (r ShippingRate) Country() string {
	return r.CountryCode
}

func (r ShippingRate) Value() RateValue {
	return RateValue{Currency: r.Currency, Rate: r.Rate}
}

// RateValue 运费取值，同时也是聚合分组 key
type RateValue struct {
	Currency string
	Rate     float64
}

func (v RateValue) For(countryCode string) ShippingRate {
	return ShippingRate{CountryCode: countryCode, Currency: v.Currency, Rate: v.Rate}
}

// AggregatedRate 取值相同的一组国家的运费。
//
// Price 为 nil 表示尚未填写的占位分组。
type AggregatedRate struct {
	Countries []string `json:"countries"`
	Currency  string   `json:"currency"`
	Price     *float64 `json:"price"`
}

// RateView 运费配置视图
type RateView struct {
	Version            string           `json:"version"`
	Rates              []ShippingRate   `json:"rates"`
	Groups             []AggregatedRate `json:"groups"`
	RemainingCountries []string         `json:"remaining_countries"`
}
