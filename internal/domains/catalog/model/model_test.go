package model_test

import (
	"testing"

	"charter/internal/domains/catalog/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRow(t *testing.T) {
	row := map[string]string{
		model.FieldID:        " Y-001 ",
		model.FieldName:      "Sea Breeze",
		model.FieldSize:      "58",
		model.FieldLocation:  "Marina del Rey",
		model.FieldBrand:     "Azimut",
		"Broker_Weekday_4hr": "1,250",
		"Broker_Weekend_4hr": "$1500",
		"Broker_Weekday_6hr": "",
		"Cabins":             "3",
	}

	yacht := model.FromRow(row)

	assert.Equal(t, "Y-001", yacht.ID)
	assert.Equal(t, "Sea Breeze", yacht.Name)
	assert.Equal(t, 58.0, yacht.Size)
	assert.Equal(t, "Marina del Rey", yacht.Location)
	assert.Equal(t, "Azimut", yacht.Brand)

	assert.Equal(t, "$1,250", yacht.Prices["Broker_Weekday_4hr"], "prices re-formatted to display shape")
	assert.Equal(t, "$1,500", yacht.Prices["Broker_Weekend_4hr"])
	assert.Equal(t, "", yacht.Prices["Broker_Weekday_6hr"], "missing price stays blank")

	assert.Equal(t, "3", yacht.Extra["Cabins"], "unknown columns ride along")
	assert.NotContains(t, yacht.Extra, model.FieldID)
	assert.NotContains(t, yacht.Extra, "Broker_Weekday_4hr")
}

func TestPricePairForDayType(t *testing.T) {
	pair := model.PriceColumns[6]

	assert.Equal(t, "Broker_Weekday_6hr", pair.ForDayType("Weekday"))
	assert.Equal(t, "Broker_Weekend_6hr", pair.ForDayType("Weekend"))
	assert.Equal(t, "Broker_Weekday_6hr", pair.ForDayType(""), "weekday is the fallback")
}

func TestBuildBookingIndex(t *testing.T) {
	rows := []map[string]string{
		{
			model.FieldID:               "Y-001",
			model.FieldReservationStart: "Jan 10, 2025 10:00 AM",
			model.FieldReservationEnd:   "Jan 12, 2025 6:00 PM",
		},
		{
			model.FieldID:               "Y-001",
			model.FieldReservationStart: "Feb 1, 2025 9:00 AM",
			model.FieldReservationEnd:   "Feb 1, 2025 5:00 PM",
		},
		{
			model.FieldID:               "Y-002",
			model.FieldReservationStart: "Mar 10, 2025, 7:00 PM",
			model.FieldReservationEnd:   "Mar 11, 2025 7:00 PM",
		},
	}

	index, skipped := model.BuildBookingIndex(rows)

	assert.Zero(t, skipped)
	require.Len(t, index.For("Y-001"), 2)
	require.Len(t, index.For("Y-002"), 1)

	first := index.For("Y-001")[0]
	assert.Equal(t, "Y-001", first.YachtID)
	assert.True(t, first.Start.Before(first.End))
	assert.True(t, first.Start.Before(index.For("Y-001")[1].Start), "encounter order preserved")
}

func TestBuildBookingIndexSkipsMalformedRows(t *testing.T) {
	rows := []map[string]string{
		{
			// no yacht ID
			model.FieldReservationStart: "Jan 10, 2025 10:00 AM",
			model.FieldReservationEnd:   "Jan 12, 2025 6:00 PM",
		},
		{
			model.FieldID:               "Y-003",
			model.FieldReservationStart: "Jan 10, 2025 10:00 AM",
			// missing end
		},
		{
			model.FieldID:               "Y-003",
			model.FieldReservationStart: "whenever works",
			model.FieldReservationEnd:   "Jan 12, 2025 6:00 PM",
		},
		{
			model.FieldID:               "Y-003",
			model.FieldReservationStart: "Jan 20, 2025 10:00 AM",
			model.FieldReservationEnd:   "Jan 21, 2025 6:00 PM",
		},
	}

	index, skipped := model.BuildBookingIndex(rows)

	assert.Equal(t, 3, skipped)
	assert.Len(t, index.For("Y-003"), 1, "the valid row survives the skips around it")
	assert.Nil(t, index.For("Y-999"), "absent yacht has zero bookings")
}
