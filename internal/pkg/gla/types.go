package gla

import (
	"errors"
	"fmt"
	"net/http"
)

// ShippingRate mc/shipping/rates 接口中的单条运费
type ShippingRate struct {
	CountryCode string  `json:"country_code"`
	Currency    string  `json:"currency"`
	Rate        float64 `json:"rate"`
}

// ShippingTime mc/shipping/times 接口中的单条运输时长
type ShippingTime struct {
	CountryCode string `json:"country_code"`
	Time        int32  `json:"time"`
	MaxTime     int32  `json:"max_time"`
}

// TimeBatch 运输时长批量写入，所有国家使用同一个取值
type TimeBatch struct {
	CountryCodes []string `json:"country_codes"`
	Time         int32    `json:"time"`
	MaxTime      int32    `json:"max_time"`
}

// TargetAudience 商家的目标受众
type TargetAudience struct {
	Location  string   `json:"location"`
	Countries []string `json:"countries"`
}

type rateBatch struct {
	Rates []ShippingRate `json:"rates"`
}

type countryCodes struct {
	CountryCodes []string `json:"country_codes"`
}

// APIError WordPress REST 错误响应
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[shipsync] gla api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// IsRetryable 判断请求是否可以重试。
//
// 只有网络错误和 5xx / 429 可以重试，其余 4xx 重试没有意义。
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError || apiErr.StatusCode == http.StatusTooManyRequests
	}
	return true
}
