package gla

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const apiPath = "/wp-json/wc/gla"

// Client GLA 扩展 REST 接口客户端
type Client interface {
	ShippingRates(ctx context.Context) ([]ShippingRate, error)
	UpsertShippingRates(ctx context.Context, rates []ShippingRate) error
	DeleteShippingRates(ctx context.Context, countryCodes []string) error

	ShippingTimes(ctx context.Context) ([]ShippingTime, error)
	UpsertShippingTimes(ctx context.Context, batch TimeBatch) error
	DeleteShippingTimes(ctx context.Context, countryCodes []string) error

	TargetAudience(ctx context.Context) (TargetAudience, error)
}

var _ Client = (*RestClient)(nil)

// RestClient 基于 WooCommerce REST API（consumer key / secret 认证）的实现
type RestClient struct {
	httpClient *http.Client

	baseURL        string
	consumerKey    string
	consumerSecret string
}

func (c *RestClient) ShippingRates(ctx context.Context) ([]ShippingRate, error) {
	var rates []ShippingRate
	if err := c.do(ctx, http.MethodGet, "mc/shipping/rates", nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

func (c *RestClient) UpsertShippingRates(ctx context.Context, rates []ShippingRate) error {
	return c.do(ctx, http.MethodPost, "mc/shipping/rates/batch", rateBatch{Rates: rates}, nil)
}

func (c *RestClient) DeleteShippingRates(ctx context.Context, codes []string) error {
	return c.do(ctx, http.MethodDelete, "mc/shipping/rates/batch", countryCodes{CountryCodes: codes}, nil)
}

func (c *RestClient) ShippingTimes(ctx context.Context) ([]ShippingTime, error) {
	var times []ShippingTime
	if err := c.do(ctx, http.MethodGet, "mc/shipping/times", nil, &times); err != nil {
		return nil, err
	}
	return times, nil
}

func (c *RestClient) UpsertShippingTimes(ctx context.Context, batch TimeBatch) error {
	return c.do(ctx, http.MethodPost, "mc/shipping/times/batch", batch, nil)
}

func (c *RestClient) DeleteShippingTimes(ctx context.Context, codes []string) error {
	return c.do(ctx, http.MethodDelete, "mc/shipping/times/batch", countryCodes{CountryCodes: codes}, nil)
}

func (c *RestClient) TargetAudience(ctx context.Context) (TargetAudience, error) {
	var audience TargetAudience
	if err := c.do(ctx, http.MethodGet, "mc/target_audience", nil, &audience); err != nil {
		return TargetAudience{}, err
	}
	return audience, nil
}

func (c *RestClient) do(ctx context.Context, method, path string, reqBody any, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("[shipsync] failed to marshal gla request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, body)
	if err != nil {
		return fmt.Errorf("[shipsync] failed to create gla request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("[shipsync] gla request %s %s failed: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("[shipsync] failed to read gla response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// 非 json 的错误响应（例如网关返回的 html）只保留状态码
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if respBody == nil || len(data) == 0 {
		return nil
	}
	if err = json.Unmarshal(data, respBody); err != nil {
		return fmt.Errorf("[shipsync] failed to unmarshal gla response: %w", err)
	}
	return nil
}

func NewRestClient(storeURL, consumerKey, consumerSecret string, timeout time.Duration) *RestClient {
	return &RestClient{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        strings.TrimSuffix(storeURL, "/") + apiPath,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
	}
}
