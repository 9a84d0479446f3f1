package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"charter/infras/otel/mocks"
	"charter/internal/domains/catalog/model"
	"charter/internal/domains/catalog/model/dto"
	catalogMocks "charter/internal/domains/catalog/service/mocks"
	"charter/internal/domains/export/service"
	"charter/shared/failure"
)

func fixtureResponse() dto.FilterResponse {
	return dto.FilterResponse{
		Results: []dto.YachtResponse{
			{
				ID: "Y-001", Name: "Sea Breeze", Size: 40,
				Location: "Marina del Rey", Brand: "Azimut",
				Price: "$500", PriceColumn: "Broker_Weekday_4hr",
				Status: model.StatusAvailable,
				Extra:  map[string]string{"Cabins": "3"},
			},
			{
				ID: "Y-002", Name: "Ocean Star", Size: 58,
				Location: "Newport Beach", Brand: "Sunseeker",
				Price: "$900", PriceColumn: "Broker_Weekday_4hr",
				Status:           model.StatusBooked,
				ReservationStart: "Jan 10, 2025 10:00 AM",
				ReservationEnd:   "Jan 12, 2025 6:00 PM",
				Extra:            map[string]string{"Cabins": "4"},
			},
		},
		Total:    2,
		Duration: 4,
		DayType:  "Weekday",
		Date:     "2025-01-11",
	}
}

func newExport(t *testing.T, res dto.FilterResponse, searchErr error) service.Export {
	t.Helper()

	ctrl := gomock.NewController(t)
	catalog := catalogMocks.NewMockCatalog(ctrl)
	catalog.EXPECT().Search(gomock.Any(), gomock.Any()).Return(res, searchErr)

	return service.New(catalog, mocks.NewOtel())
}

func TestExportService_Table(t *testing.T) {
	res := fixtureResponse()
	svc := newExport(t, res, nil)

	table, err := svc.Table(context.Background(), dto.FilterRequest{Duration: 4})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, one line per result")

	assert.Equal(t,
		"| Broker Weekday 4hr | Yacht Id | Yacht Name | Yacht Size | Boarding Location | Brand | Cabins | Reservation Start Date And Time | Reservation End Date And Time | Status |",
		lines[0])
	assert.Equal(t,
		"| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |",
		lines[1])
	assert.NotContains(t, table, "Broker_Weekend", "other price columns stay out of the export")
}

func TestExportService_TableRoundTrip(t *testing.T) {
	res := fixtureResponse()
	svc := newExport(t, res, nil)

	table, err := svc.Table(context.Background(), dto.FilterRequest{Duration: 4})
	require.NoError(t, err)

	columns := []string{
		"Broker_Weekday_4hr",
		model.FieldID, model.FieldName, model.FieldSize,
		model.FieldLocation, model.FieldBrand,
		"Cabins",
		model.FieldReservationStart, model.FieldReservationEnd,
		"Status",
	}

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	for i, line := range lines[2:] {
		cells := strings.Split(strings.TrimSuffix(strings.TrimPrefix(line, "| "), " |"), " | ")
		require.Len(t, cells, len(columns))

		for j, column := range columns {
			assert.Equal(t, res.Results[i].Cell(column), cells[j],
				"re-parsing column %s recovers the exposed value", column)
		}
	}
}

func TestExportService_TableNoResults(t *testing.T) {
	svc := newExport(t, dto.FilterResponse{Duration: 4, DayType: "Weekday"}, nil)

	table, err := svc.Table(context.Background(), dto.FilterRequest{Duration: 4})

	require.NoError(t, err)
	assert.Equal(t, "No results.", table)
}

func TestExportService_Draft(t *testing.T) {
	svc := newExport(t, fixtureResponse(), nil)

	draft, err := svc.Draft(context.Background(), dto.FilterRequest{Duration: 4})
	require.NoError(t, err)

	lines := strings.Split(draft, "\n")
	require.Len(t, lines, 3, "header, blank line, one bullet")

	assert.Equal(t, "Request for Sat, Jan 11, 2025 — 4h — Weekday", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "• 40' Sea Breeze – $500 – Marina: Marina del Rey", lines[2])
	assert.NotContains(t, draft, "Ocean Star", "booked yachts stay out of the draft")
}

func TestExportService_DraftWithoutDate(t *testing.T) {
	res := dto.FilterResponse{
		Results: []dto.YachtResponse{
			{
				ID: "Y-001", Name: "Sea Breeze", Size: 40,
				Location: "Marina del Rey",
				Status:   model.StatusNone,
			},
		},
		Total:    1,
		Duration: 6,
		DayType:  "Weekend",
	}

	svc := newExport(t, res, nil)

	draft, err := svc.Draft(context.Background(), dto.FilterRequest{Duration: 6})
	require.NoError(t, err)

	lines := strings.Split(draft, "\n")
	assert.Equal(t, "Request — 6h — Weekend", lines[0])
	assert.Equal(t, "• 40' Sea Breeze – N/A – Marina: Marina del Rey",
		lines[2], "date-less rows are listed with a price placeholder when no price matched")
}

func TestExportService_DraftAllBooked(t *testing.T) {
	res := fixtureResponse()
	res.Results = res.Results[1:]
	res.Total = 1

	svc := newExport(t, res, nil)

	_, err := svc.Draft(context.Background(), dto.FilterRequest{Duration: 4})

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestExportService_SearchErrorPropagates(t *testing.T) {
	svc := newExport(t, dto.FilterResponse{}, failure.Unavailable("catalog not loaded yet"))

	_, err := svc.Table(context.Background(), dto.FilterRequest{Duration: 4})

	require.Error(t, err)
	assert.Equal(t, 503, failure.GetCode(err))
}
