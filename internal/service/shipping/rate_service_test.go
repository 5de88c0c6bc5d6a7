package shipping

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/JrMarcco/shipsync/internal/errs"
	"github.com/JrMarcco/shipsync/internal/pkg/fingerprint"
	"github.com/JrMarcco/shipsync/internal/pkg/metrics"
	"github.com/JrMarcco/shipsync/internal/pkg/operator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRateService(repo *fakeRateRepo, audience []string, logRepo *fakeSaveLogRepo) *DefaultRateService {
	return NewDefaultRateService(
		"USD",
		repo,
		&fakeAudienceRepo{countries: audience},
		NewRateSaver(repo, zap.NewNop()),
		logRepo,
		metrics.NewShippingMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func TestDefaultRateService_View(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name          string
		baseline      []domain.ShippingRate
		audience      []string
		wantGroups    []domain.AggregatedRate
		wantRemaining []string
	}{
		{
			name:     "placeholder group when nothing configured",
			audience: []string{"US", "CA"},
			wantGroups: []domain.AggregatedRate{
				{Countries: []string{"US", "CA"}, Currency: "USD"},
			},
			wantRemaining: []string{"US", "CA"},
		}, {
			name:          "no audience no groups",
			wantGroups:    []domain.AggregatedRate{},
			wantRemaining: []string{},
		}, {
			name: "configured",
			baseline: []domain.ShippingRate{
				{CountryCode: "US", Currency: "USD", Rate: 5},
				{CountryCode: "CA", Currency: "USD", Rate: 5},
			},
			audience: []string{"US", "CA", "GB"},
			wantGroups: []domain.AggregatedRate{
				{Countries: []string{"US", "CA"}, Currency: "USD", Price: ptr(5.0)},
			},
			wantRemaining: []string{"GB"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRateRepo{baseline: tc.baseline}
			svc := newTestRateService(repo, tc.audience, &fakeSaveLogRepo{})

			view, err := svc.View(t.Context())
			require.NoError(t, err)

			assert.Equal(t, fingerprint.Rates(tc.baseline), view.Version)
			assert.Equal(t, tc.wantRemaining, view.RemainingCountries)
			if len(tc.wantGroups) == 0 {
				assert.Empty(t, view.Groups)
				return
			}
			assert.Equal(t, tc.wantGroups, view.Groups)
		})
	}
}

func TestDefaultRateService_Save(t *testing.T) {
	t.Parallel()

	baseline := []domain.ShippingRate{
		{CountryCode: "US", Currency: "USD", Rate: 5},
		{CountryCode: "CA", Currency: "USD", Rate: 5},
		{CountryCode: "GB", Currency: "USD", Rate: 8},
	}
	edited := []domain.ShippingRate{
		{CountryCode: "US", Currency: "USD", Rate: 5},
		{CountryCode: "CA", Currency: "USD", Rate: 5},
	}

	t.Run("save records log and invalidates baseline", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRateRepo{baseline: baseline}
		logRepo := &fakeSaveLogRepo{}
		svc := newTestRateService(repo, []string{"US", "CA", "GB"}, logRepo)

		ctx := operator.WithOperator(t.Context(), "alice")
		_, err := svc.Save(ctx, edited, fingerprint.Rates(baseline))
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"GB"}}, repo.deleted)
		assert.Empty(t, repo.upserted)
		assert.Equal(t, 1, repo.invalidated)

		require.Len(t, logRepo.logs, 1)
		log := logRepo.logs[0]
		assert.Equal(t, domain.SettingKindRate, log.Kind)
		assert.Equal(t, "alice", log.Operator)
		assert.Equal(t, []string{"GB"}, log.DeletedCountryCodes)
		assert.Equal(t, domain.SaveStatusSuccess, log.Status)
	})

	t.Run("nothing changed", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRateRepo{baseline: baseline}
		logRepo := &fakeSaveLogRepo{}
		svc := newTestRateService(repo, nil, logRepo)

		_, err := svc.Save(t.Context(), baseline, "")
		require.NoError(t, err)

		assert.Empty(t, repo.calls)
		assert.Zero(t, repo.invalidated)
		assert.Empty(t, logRepo.logs)
	})

	t.Run("stale version", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRateRepo{baseline: baseline}
		svc := newTestRateService(repo, nil, &fakeSaveLogRepo{})

		_, err := svc.Save(t.Context(), edited, fingerprint.Rates(edited))
		assert.ErrorIs(t, err, errs.ErrStaleBaseline)
		assert.Empty(t, repo.calls)
	})

	t.Run("duplicate country", func(t *testing.T) {
		t.Parallel()

		repo := &fakeRateRepo{baseline: baseline}
		svc := newTestRateService(repo, nil, &fakeSaveLogRepo{})

		_, err := svc.Save(t.Context(), append(edited, domain.ShippingRate{
			CountryCode: "US", Currency: "USD", Rate: 1,
		}), "")
		assert.ErrorIs(t, err, errs.ErrDuplicateCountry)
		assert.Empty(t, repo.calls)
	})

	t.Run("failure still invalidates baseline", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("backend down")
		repo := &fakeRateRepo{baseline: baseline, deleteErr: cause}
		logRepo := &fakeSaveLogRepo{}
		svc := newTestRateService(repo, nil, logRepo)

		_, err := svc.Save(t.Context(), edited, "")
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, repo.invalidated)

		require.Len(t, logRepo.logs, 1)
		assert.Equal(t, domain.SaveStatusFailure, logRepo.logs[0].Status)
		assert.Contains(t, logRepo.logs[0].Error, "backend down")
	})

	t.Run("delete failure logs pending upserts", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("backend down")
		repo := &fakeRateRepo{baseline: baseline, deleteErr: cause}
		logRepo := &fakeSaveLogRepo{}
		svc := newTestRateService(repo, nil, logRepo)

		_, err := svc.Save(t.Context(), []domain.ShippingRate{
			{CountryCode: "US", Currency: "USD", Rate: 7},
			{CountryCode: "CA", Currency: "USD", Rate: 5},
		}, "")
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, repo.upserted)

		require.Len(t, logRepo.logs, 1)
		log := logRepo.logs[0]
		assert.Equal(t, domain.SaveStatusFailure, log.Status)
		assert.Equal(t, []string{"GB"}, log.DeletedCountryCodes)
		var upserted []domain.ShippingRate
		require.NoError(t, json.Unmarshal([]byte(log.Upserted), &upserted))
		assert.Equal(t, []domain.ShippingRate{{CountryCode: "US", Currency: "USD", Rate: 7}}, upserted)
	})

	t.Run("baseline load failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("load failed")
		repo := &fakeRateRepo{findErr: cause}
		svc := newTestRateService(repo, nil, &fakeSaveLogRepo{})

		_, err := svc.Save(t.Context(), edited, "")
		assert.ErrorIs(t, err, cause)
		assert.Empty(t, repo.calls)
	})
}
