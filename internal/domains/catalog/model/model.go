package model

import (
	"strings"
	"time"

	"charter/shared/normalize"

	"github.com/rs/zerolog/log"
)

const (
	EntityName = "yacht"

	// Column headers of the catalog tab.
	FieldID       = "Yacht_ID"
	FieldName     = "Yacht_Name"
	FieldSize     = "Yacht_Size"
	FieldLocation = "Boarding_Location"
	FieldBrand    = "Brand"

	// Column headers of the availability tab.
	FieldReservationStart = "Reservation Start Date and time"
	FieldReservationEnd   = "Reservation End Date and time"

	// PricePrefix marks the broker price columns in the catalog tab.
	PricePrefix = "Broker_"
)

// PricePair holds the two price column names of one duration tier.
type PricePair struct {
	Weekday string
	Weekend string
}

func (p PricePair) ForDayType(dayType string) string {
	if dayType == "Weekend" {
		return p.Weekend
	}

	return p.Weekday
}

// PriceColumns is the fixed (duration tier -> price columns) lookup. The
// closed set of tiers is part of the sheet contract.
var PriceColumns = map[int]PricePair{
	4: {Weekday: "Broker_Weekday_4hr", Weekend: "Broker_Weekend_4hr"},
	6: {Weekday: "Broker_Weekday_6hr", Weekend: "Broker_Weekend_6hr"},
	8: {Weekday: "Broker_Weekday_8hr", Weekend: "Broker_Weekend_8hr"},
}

// Status classifies one yacht against the reference date.
type Status string

const (
	// StatusNone is the no-reference-date marker; the row then carries the
	// next upcoming reservation instead of a yes/no answer.
	StatusNone            Status = "—"
	StatusAvailable       Status = "Available"
	StatusBooked          Status = "Booked"
	StatusPartiallyBooked Status = "Partially Booked"
)

// Yacht is one catalog listing. Known columns are extracted into typed
// fields; whatever else the sheet carries rides along in Extra for display.
type Yacht struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Size     float64           `json:"size"`
	Location string            `json:"location"`
	Brand    string            `json:"brand"`
	Prices   map[string]string `json:"prices"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// FromRow builds a Yacht from one raw catalog row. Price cells are
// normalized once here and stored in display form ("$#,###"), matching the
// one-time cleanup the load cycle performs.
func FromRow(row map[string]string) Yacht {
	yacht := Yacht{
		ID:       strings.TrimSpace(row[FieldID]),
		Name:     strings.TrimSpace(row[FieldName]),
		Size:     normalize.Amount(row[FieldSize]),
		Location: strings.TrimSpace(row[FieldLocation]),
		Brand:    strings.TrimSpace(row[FieldBrand]),
		Prices:   map[string]string{},
	}

	for key, value := range row {
		switch key {
		case FieldID, FieldName, FieldSize, FieldLocation, FieldBrand:
			continue
		}

		if strings.HasPrefix(key, PricePrefix) {
			yacht.Prices[key] = normalize.FormatAmount(normalize.Amount(value))

			continue
		}

		if yacht.Extra == nil {
			yacht.Extra = map[string]string{}
		}
		yacht.Extra[key] = value
	}

	return yacht
}

// Booking is one reservation interval of one yacht.
type Booking struct {
	YachtID string    `json:"yacht_id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// BookingIndex maps a yacht ID to its reservations in sheet encounter order.
// A yacht absent from the index has zero bookings.
type BookingIndex map[string][]Booking

// For returns the reservations of one yacht, nil when it has none.
func (idx BookingIndex) For(yachtID string) []Booking {
	return idx[yachtID]
}

// BuildBookingIndex groups raw availability rows by yacht ID. Rows without an
// ID, without both raw date cells, or with a cell that stays unparseable
// after repair are skipped with a warning; a skip never aborts the build.
// Accepted rows keep their encounter order, no sorting happens here.
func BuildBookingIndex(rows []map[string]string) (BookingIndex, int) {
	index := BookingIndex{}
	skipped := 0

	for _, row := range rows {
		id := strings.TrimSpace(row[FieldID])
		if id == "" {
			skipped++
			log.Warn().Msg("skipping booking row without yacht ID")

			continue
		}

		startRaw := row[FieldReservationStart]
		endRaw := row[FieldReservationEnd]
		if strings.TrimSpace(startRaw) == "" || strings.TrimSpace(endRaw) == "" {
			skipped++
			log.Warn().Str("yacht_id", id).Msg("skipping booking row with missing start/end")

			continue
		}

		start, err := normalize.Instant(startRaw)
		if err != nil {
			skipped++
			log.Warn().Err(err).Str("yacht_id", id).Str("start", startRaw).Msg("skipping booking row with invalid start")

			continue
		}

		end, err := normalize.Instant(endRaw)
		if err != nil {
			skipped++
			log.Warn().Err(err).Str("yacht_id", id).Str("end", endRaw).Msg("skipping booking row with invalid end")

			continue
		}

		index[id] = append(index[id], Booking{YachtID: id, Start: start, End: end})
	}

	return index, skipped
}
