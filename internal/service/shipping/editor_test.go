package shipping

import (
	"testing"

	"github.com/JrMarcco/shipsync/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEditRates(t *testing.T) {
	t.Parallel()

	flat := []domain.ShippingRate{
		{CountryCode: "US", Currency: "USD", Rate: 5},
		{CountryCode: "CA", Currency: "USD", Rate: 5},
		{CountryCode: "GB", Currency: "USD", Rate: 8},
	}

	tcs := []struct {
		name string
		edit func() []domain.ShippingRate
		want []domain.ShippingRate
	}{
		{
			name: "add new group",
			edit: func() []domain.ShippingRate {
				return AddRates(flat, []string{"DE", "FR"}, domain.RateValue{Currency: "USD", Rate: 10})
			},
			want: []domain.ShippingRate{
				{CountryCode: "US", Currency: "USD", Rate: 5},
				{CountryCode: "CA", Currency: "USD", Rate: 5},
				{CountryCode: "GB", Currency: "USD", Rate: 8},
				{CountryCode: "DE", Currency: "USD", Rate: 10},
				{CountryCode: "FR", Currency: "USD", Rate: 10},
			},
		}, {
			name: "add existing country replaces in place",
			edit: func() []domain.ShippingRate {
				return AddRates(flat, []string{"CA"}, domain.RateValue{Currency: "USD", Rate: 3})
			},
			want: []domain.ShippingRate{
				{CountryCode: "US", Currency: "USD", Rate: 5},
				{CountryCode: "CA", Currency: "USD", Rate: 3},
				{CountryCode: "GB", Currency: "USD", Rate: 8},
			},
		}, {
			name: "change group value",
			edit: func() []domain.ShippingRate {
				return ChangeRates(flat, []string{"US", "CA"}, domain.RateValue{Currency: "USD", Rate: 6}, nil)
			},
			want: []domain.ShippingRate{
				{CountryCode: "US", Currency: "USD", Rate: 6},
				{CountryCode: "CA", Currency: "USD", Rate: 6},
				{CountryCode: "GB", Currency: "USD", Rate: 8},
			},
		}, {
			name: "change group drops removed countries",
			edit: func() []domain.ShippingRate {
				return ChangeRates(
					flat, []string{"US"}, domain.RateValue{Currency: "USD", Rate: 5}, []string{"CA"},
				)
			},
			want: []domain.ShippingRate{
				{CountryCode: "US", Currency: "USD", Rate: 5},
				{CountryCode: "GB", Currency: "USD", Rate: 8},
			},
		}, {
			name: "delete countries",
			edit: func() []domain.ShippingRate {
				return DeleteRates(flat, []string{"GB", "XX"})
			},
			want: []domain.ShippingRate{
				{CountryCode: "US", Currency: "USD", Rate: 5},
				{CountryCode: "CA", Currency: "USD", Rate: 5},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.edit())
		})
	}

	// 入参不被修改
	assert.Equal(t, []domain.ShippingRate{
		{CountryCode: "US", Currency: "USD", Rate: 5},
		{CountryCode: "CA", Currency: "USD", Rate: 5},
		{CountryCode: "GB", Currency: "USD", Rate: 8},
	}, flat)
}

func TestEditTimes_SplitGroup(t *testing.T) {
	t.Parallel()

	old := []domain.ShippingTime{
		{CountryCode: "US", Time: 1, MaxTime: 5},
		{CountryCode: "CA", Time: 1, MaxTime: 5},
	}

	// 把 US 移出原分组，单独设为 1-7 天
	edited := ChangeTimes(old, []string{"CA"}, domain.TimeValue{Time: 1, MaxTime: 5}, []string{"US"})
	edited = AddTimes(edited, []string{"US"}, domain.TimeValue{Time: 1, MaxTime: 7})

	assert.ElementsMatch(t, []domain.ShippingTime{
		{CountryCode: "US", Time: 1, MaxTime: 7},
		{CountryCode: "CA", Time: 1, MaxTime: 5},
	}, edited)
	assert.Equal(t, []domain.ShippingTime{{CountryCode: "US", Time: 1, MaxTime: 7}}, TimeUpserts(edited, old))
	assert.Empty(t, TimeDeletions(edited, old))

	edited = DeleteTimes(edited, []string{"US", "CA"})
	assert.Empty(t, edited)
}
