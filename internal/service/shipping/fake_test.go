package shipping

import (
	"context"
	"slices"
	"sync"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/repository"
)

var _ repository.ShippingRateRepo = (*fakeRateRepo)(nil)

type fakeRateRepo struct {
	mu sync.Mutex

	baseline    []domain.ShippingRate
	findErr     error
	deleteErr   error
	upsertErr   error
	calls       []string
	deleted     [][]string
	upserted    [][]domain.ShippingRate
	invalidated int
}

func (f *fakeRateRepo) Find(_ context.Context) ([]domain.ShippingRate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return slices.Clone(f.baseline), nil
}

func (f *fakeRateRepo) Load(ctx context.Context) ([]domain.ShippingRate, error) {
	return f.Find(ctx)
}

func (f *fakeRateRepo) Delete(_ context.Context, countryCodes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete")
	f.deleted = append(f.deleted, countryCodes)
	return f.deleteErr
}

func (f *fakeRateRepo) Upsert(_ context.Context, rates []domain.ShippingRate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "upsert")
	f.upserted = append(f.upserted, rates)
	return f.upsertErr
}

func (f *fakeRateRepo) Invalidate(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	return nil
}

var _ repository.ShippingTimeRepo = (*fakeTimeRepo)(nil)

type fakeTimeRepo struct {
	mu sync.Mutex

	baseline    []domain.ShippingTime
	deleteErr   error
	groupErr    map[int32]error
	calls       []string
	deleted     [][]string
	groups      []domain.TimeGroup
	invalidated int
}

func (f *fakeTimeRepo) Find(_ context.Context) ([]domain.ShippingTime, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.baseline), nil
}

func (f *fakeTimeRepo) Load(ctx context.Context) ([]domain.ShippingTime, error) {
	return f.Find(ctx)
}

func (f *fakeTimeRepo) Delete(_ context.Context, countryCodes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete")
	f.deleted = append(f.deleted, countryCodes)
	return f.deleteErr
}

func (f *fakeTimeRepo) UpsertGroup(_ context.Context, group domain.TimeGroup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "upsert")
	f.groups = append(f.groups, group)
	// 按 max_time 注入分组失败
	return f.groupErr[group.MaxTime]
}

func (f *fakeTimeRepo) Invalidate(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated++
	return nil
}

var _ repository.AudienceRepo = (*fakeAudienceRepo)(nil)

type fakeAudienceRepo struct {
	countries []string
	err       error
}

func (f *fakeAudienceRepo) Countries(_ context.Context) ([]string, error) {
	return slices.Clone(f.countries), f.err
}

var _ repository.SaveLogRepo = (*fakeSaveLogRepo)(nil)

type fakeSaveLogRepo struct {
	mu sync.Mutex

	logs  []domain.SaveLog
	limit int
	kind  domain.SettingKind
}

func (f *fakeSaveLogRepo) Create(_ context.Context, log domain.SaveLog) (domain.SaveLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.Id = uint64(len(f.logs) + 1)
	f.logs = append(f.logs, log)
	return log, nil
}

func (f *fakeSaveLogRepo) Find(_ context.Context, kind domain.SettingKind, limit int) ([]domain.SaveLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kind, f.limit = kind, limit
	return slices.Clone(f.logs), nil
}
