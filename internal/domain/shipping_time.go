package domain

var _ Setting[TimeValue] = ShippingTime{}

// ShippingTime 单个国家的运输时长（天）
type ShippingTime struct {
	CountryCode string `json:"country_code"`
	Time        int32  `json:"time"`
	MaxTime     int32  `json:"max_time"`
}

func (t ShippingTime) Country() string {
	return t.CountryCode
}

func (t ShippingTime) Value() TimeValue {
	return TimeValue{Time: t.Time, MaxTime: t.MaxTime}
}

// TimeValue 运输时长取值，同时也是聚合分组 key
type TimeValue struct {
	Time    int32
	MaxTime int32
}

func (v TimeValue) For(countryCode string) ShippingTime {
	return ShippingTime{CountryCode: countryCode, Time: v.Time, MaxTime: v.MaxTime}
}

// AggregatedTime 取值相同的一组国家的运输时长
type AggregatedTime struct {
	Countries []string `json:"countries"`
	Time      *int32   `json:"time"`
	MaxTime   *int32   `json:"max_time"`
}

// TimeGroup 运输时长的批量写入单位。
//
// 后端的运输时长接口按 "国家列表 + 取值" 写入，而不是按国家逐条写入。
type TimeGroup struct {
	CountryCodes []string
	Time         int32
	MaxTime      int32
}

// TimeView 运输时长配置视图
type TimeView struct {
	Version            string           `json:"version"`
	Times              []ShippingTime   `json:"times"`
	Groups             []AggregatedTime `json:"groups"`
	RemainingCountries []string         `json:"remaining_countries"`
}
