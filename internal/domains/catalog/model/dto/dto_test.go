package dto_test

import (
	"net/http/httptest"
	"testing"

	"charter/internal/domains/catalog/model"
	"charter/internal/domains/catalog/model/dto"
	"charter/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRequestFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/v1/yachts?size_min=20&size_max=200&budget_max=1000&duration=6&day_type=Weekend&location=Marina+del+Rey&brand=Azimut&brand=Sunseeker&date=2025-01-11",
		nil)

	req := dto.FilterRequest{}
	req.FromRequest(r)

	assert.Equal(t, 20.0, req.SizeMin)
	assert.Equal(t, 200.0, req.SizeMax)
	assert.Equal(t, 0.0, req.BudgetMin)
	assert.Equal(t, 1000.0, req.BudgetMax)
	assert.Equal(t, 6, req.Duration)
	assert.Equal(t, "Weekend", req.DayType)
	assert.Equal(t, "Marina del Rey", req.Location)
	assert.Equal(t, []string{"Azimut", "Sunseeker"}, req.Brands)
	assert.Equal(t, "2025-01-11", req.Date)

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestFilterRequestDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/yachts", nil)

	req := dto.FilterRequest{}
	req.FromRequest(r)

	assert.Equal(t, 4, req.Duration, "duration defaults to the 4h tier")
	assert.Zero(t, req.SizeMax, "zero max means unbounded")
	assert.Empty(t, req.Brands)
	assert.Equal(t, "Weekday", req.EffectiveDayType())

	ref, err := req.ReferenceDate()
	require.NoError(t, err)
	assert.Nil(t, ref, "no date selected")
}

func TestFilterRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.FilterRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(f *dto.FilterRequest) {}, wantErr: false},
		{name: "bad duration", mutate: func(f *dto.FilterRequest) { f.Duration = 5 }, wantErr: true},
		{name: "bad day type", mutate: func(f *dto.FilterRequest) { f.DayType = "Holiday" }, wantErr: true},
		{name: "bad date", mutate: func(f *dto.FilterRequest) { f.Date = "11/01/2025" }, wantErr: true},
		{name: "negative size", mutate: func(f *dto.FilterRequest) { f.SizeMin = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.FilterRequest{Duration: 4}
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEffectiveDayTypeFollowsDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		dayType  string
		expected string
	}{
		{name: "saturday infers weekend", date: "2025-01-11", expected: "Weekend"},
		{name: "sunday infers weekend", date: "2025-01-12", expected: "Weekend"},
		{name: "monday infers weekday", date: "2025-01-13", expected: "Weekday"},
		{name: "explicit selector wins", date: "2025-01-11", dayType: "Weekday", expected: "Weekday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.FilterRequest{Duration: 4, Date: tt.date, DayType: tt.dayType}
			assert.Equal(t, tt.expected, req.EffectiveDayType())
		})
	}
}

func TestCacheKeyDistinguishesCriteria(t *testing.T) {
	base := dto.FilterRequest{Duration: 4, BudgetMax: 1000}
	other := dto.FilterRequest{Duration: 6, BudgetMax: 1000}
	brands := dto.FilterRequest{Duration: 4, BudgetMax: 1000, Brands: []string{"Azimut"}}

	assert.NotEqual(t, base.CacheKey(), other.CacheKey())
	assert.NotEqual(t, base.CacheKey(), brands.CacheKey())
	assert.Equal(t, base.CacheKey(), (&dto.FilterRequest{Duration: 4, BudgetMax: 1000}).CacheKey())
}

func TestYachtResponseCell(t *testing.T) {
	yacht := model.Yacht{
		ID:       "Y-001",
		Name:     "Sea Breeze",
		Size:     58,
		Location: "Marina del Rey",
		Brand:    "Azimut",
		Prices:   map[string]string{"Broker_Weekday_4hr": "$500"},
		Extra:    map[string]string{"Cabins": "3"},
	}

	res := dto.YachtResponse{}
	res.FromModel(yacht, "Broker_Weekday_4hr", model.StatusAvailable, "", "")

	assert.Equal(t, "Y-001", res.Cell(model.FieldID))
	assert.Equal(t, "58", res.Cell(model.FieldSize))
	assert.Equal(t, "$500", res.Cell("Broker_Weekday_4hr"))
	assert.Equal(t, "Available", res.Cell("Status"))
	assert.Equal(t, "3", res.Cell("Cabins"))
	assert.Equal(t, "", res.Cell("Broker_Weekend_4hr"), "unselected price columns stay hidden")
}
