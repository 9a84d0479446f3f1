package dto

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"charter/internal/domains/catalog/model"
	"charter/shared"
	"charter/shared/constant"
	"charter/shared/timezone"
)

// FilterRequest is the user-selected criteria of one filter pass. Zero
// values on SizeMax and BudgetMax mean unbounded; a zero BudgetMin means no
// lower bound. Criteria are ephemeral, nothing here is persisted.
type FilterRequest struct {
	SizeMin   float64  `json:"size_min"   validate:"omitempty,gte=0"`
	SizeMax   float64  `json:"size_max"   validate:"omitempty,gte=0"`
	BudgetMin float64  `json:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax float64  `json:"budget_max" validate:"omitempty,gte=0"`
	Duration  int      `json:"duration"   validate:"required,oneof=4 6 8"`
	DayType   string   `json:"day_type"   validate:"omitempty,oneof=Weekday Weekend"`
	Location  string   `json:"location"   validate:"omitempty"`
	Brands    []string `json:"brands"     validate:"omitempty"`
	Date      string   `json:"date"       validate:"omitempty,datetime=2006-01-02"`
}

// FromRequest populates the criteria from query parameters, applying the
// defaults of the filter form (duration 4h, no bounds).
func (f *FilterRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	if v := shared.ConvertStringToFloat(query.Get(constant.RequestParamSizeMin)); v != nil {
		f.SizeMin = *v
	}

	if v := shared.ConvertStringToFloat(query.Get(constant.RequestParamSizeMax)); v != nil {
		f.SizeMax = *v
	}

	if v := shared.ConvertStringToFloat(query.Get(constant.RequestParamBudgetMin)); v != nil {
		f.BudgetMin = *v
	}

	if v := shared.ConvertStringToFloat(query.Get(constant.RequestParamBudgetMax)); v != nil {
		f.BudgetMax = *v
	}

	f.Duration = constant.DefaultValueDuration
	if raw := query.Get(constant.RequestParamDuration); raw != constant.Empty {
		if duration, err := shared.ConvertStringToInt(raw); err == nil {
			f.Duration = duration
		}
	}

	f.DayType = query.Get(constant.RequestParamDayType)
	f.Location = query.Get(constant.RequestParamLocation)
	f.Date = query.Get(constant.RequestParamDate)

	for _, brand := range query[constant.RequestParamBrand] {
		if brand != constant.Empty {
			f.Brands = append(f.Brands, brand)
		}
	}
}

// ReferenceDate parses the optional reference date at day granularity in the
// application timezone. Nil means "no date selected".
func (f *FilterRequest) ReferenceDate() (*time.Time, error) {
	if f.Date == constant.Empty {
		return nil, nil
	}

	t, err := timezone.Parse(constant.DateParamFormat, f.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid reference date %q: %w", f.Date, err)
	}

	return &t, nil
}

// EffectiveDayType resolves the day-type axis of the price lookup. When the
// selector is unset it follows the reference date (Sat/Sun -> Weekend), the
// same auto-toggle the filter form performs, and falls back to Weekday.
func (f *FilterRequest) EffectiveDayType() string {
	if f.DayType != constant.Empty {
		return f.DayType
	}

	if ref, err := f.ReferenceDate(); err == nil && ref != nil {
		if wd := ref.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return constant.DayTypeWeekend
		}

		return constant.DayTypeWeekday
	}

	return constant.DefaultValueDayType
}

// CacheKey folds every criterion into a stable cache key fragment.
func (f *FilterRequest) CacheKey() string {
	return fmt.Sprintf("%g:%g:%g:%g:%d:%s:%s:%s:%s",
		f.SizeMin, f.SizeMax, f.BudgetMin, f.BudgetMax,
		f.Duration, f.EffectiveDayType(), f.Location,
		strings.Join(f.Brands, ","), f.Date,
	)
}

// YachtResponse is one annotated result row: the original listing fields
// plus the availability classification and the single price column that
// satisfied the budget criterion. Other price columns never leak into the
// response.
type YachtResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Size             float64           `json:"size"`
	Location         string            `json:"location"`
	Brand            string            `json:"brand"`
	Price            string            `json:"price"`
	PriceColumn      string            `json:"price_column"`
	Status           model.Status      `json:"status"`
	ReservationStart string            `json:"reservation_start"`
	ReservationEnd   string            `json:"reservation_end"`
	Extra            map[string]string `json:"extra,omitempty"`
}

func (y *YachtResponse) FromModel(m model.Yacht, priceColumn string, status model.Status, reservationStart, reservationEnd string) {
	y.ID = m.ID
	y.Name = m.Name
	y.Size = m.Size
	y.Location = m.Location
	y.Brand = m.Brand
	y.Price = m.Prices[priceColumn]
	y.PriceColumn = priceColumn
	y.Status = status
	y.ReservationStart = reservationStart
	y.ReservationEnd = reservationEnd
	y.Extra = m.Extra
}

// Cell returns the display value of one export column, keyed by the sheet
// field name. Exports re-parsed by column must recover exactly these values.
func (y *YachtResponse) Cell(column string) string {
	switch column {
	case model.FieldID:
		return y.ID
	case model.FieldName:
		return y.Name
	case model.FieldSize:
		return strconv.FormatFloat(y.Size, 'f', -1, 64)
	case model.FieldLocation:
		return y.Location
	case model.FieldBrand:
		return y.Brand
	case model.FieldReservationStart:
		return y.ReservationStart
	case model.FieldReservationEnd:
		return y.ReservationEnd
	case "Status":
		return string(y.Status)
	case y.PriceColumn:
		return y.Price
	default:
		return y.Extra[column]
	}
}

// FilterResponse is the outcome of one filter pass, echoing the effective
// criteria so exports can name them.
type FilterResponse struct {
	Results  []YachtResponse `json:"results"`
	Total    int             `json:"total"`
	Duration int             `json:"duration"`
	DayType  string          `json:"day_type"`
	Date     string          `json:"date,omitempty"`
}
