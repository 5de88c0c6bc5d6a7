package repository

import (
	"context"
	"sync"

	"github.com/JrMarcco/shipsync/internal/pkg/gla"
)

var _ gla.Client = (*fakeClient)(nil)

type fakeClient struct {
	mu sync.Mutex

	rates    []gla.ShippingRate
	times    []gla.ShippingTime
	audience gla.TargetAudience

	// 依次返回的读取错误，用完后读取成功
	readErrs []error

	reads         int
	rateDeletes   [][]string
	rateUpserts   [][]gla.ShippingRate
	timeDeletes   [][]string
	timeBatches   []gla.TimeBatch
	audienceReads int
}

func (f *fakeClient) nextReadErr() error {
	f.reads++
	if len(f.readErrs) == 0 {
		return nil
	}
	err := f.readErrs[0]
	f.readErrs = f.readErrs[1:]
	return err
}

func (f *fakeClient) ShippingRates(_ context.Context) ([]gla.ShippingRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.nextReadErr(); err != nil {
		return nil, err
	}
	return f.rates, nil
}

func (f *fakeClient) UpsertShippingRates(_ context.Context, rates []gla.ShippingRate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateUpserts = append(f.rateUpserts, rates)
	return nil
}

func (f *fakeClient) DeleteShippingRates(_ context.Context, countryCodes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateDeletes = append(f.rateDeletes, countryCodes)
	return nil
}

func (f *fakeClient) ShippingTimes(_ context.Context) ([]gla.ShippingTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.nextReadErr(); err != nil {
		return nil, err
	}
	return f.times, nil
}

func (f *fakeClient) UpsertShippingTimes(_ context.Context, batch gla.TimeBatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeBatches = append(f.timeBatches, batch)
	return nil
}

func (f *fakeClient) DeleteShippingTimes(_ context.Context, countryCodes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.timeDeletes = append(f.timeDeletes, countryCodes)
	return nil
}

func (f *fakeClient) TargetAudience(_ context.Context) (gla.TargetAudience, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audienceReads++
	if err := f.nextReadErr(); err != nil {
		return gla.TargetAudience{}, err
	}
	return f.audience, nil
}
