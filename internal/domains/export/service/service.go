package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"charter/infras/otel"
	"charter/internal/domains/catalog/model"
	"charter/internal/domains/catalog/model/dto"
	catalogService "charter/internal/domains/catalog/service"
	"charter/shared/constant"
	"charter/shared/failure"
	"charter/shared/timezone"
)

// DraftDateFormat is the header date of the outreach draft,
// e.g. "Sat, Jan 11, 2025".
const DraftDateFormat = "Mon, Jan 02, 2006"

const noResults = "No results."

type Export interface {
	Table(ctx context.Context, req dto.FilterRequest) (string, error)
	Draft(ctx context.Context, req dto.FilterRequest) (string, error)
}

type serviceImpl struct {
	catalog catalogService.Catalog
	otel    otel.Otel
}

func New(catalog catalogService.Catalog, otel otel.Otel) Export {
	return &serviceImpl{
		catalog: catalog,
		otel:    otel,
	}
}

// Table renders the current filter result as a markdown pipe table. The
// selected price column leads, the other broker price columns are dropped,
// and every cell holds exactly the value the result rows expose, so the
// table re-parses back into the same values.
func (s *serviceImpl) Table(ctx context.Context, req dto.FilterRequest) (out string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Table")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.catalog.Search(ctx, req)
	if err != nil {
		return "", err
	}

	if res.Total == 0 {
		return noResults, nil
	}

	columns := exportColumns(res.Results[0])

	var b strings.Builder

	b.WriteString("| ")
	for i, column := range columns {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(prettifyHeader(column))
	}
	b.WriteString(" |\n")

	b.WriteString("| ")
	b.WriteString(strings.TrimSuffix(strings.Repeat("--- | ", len(columns)), " "))
	b.WriteString("\n")

	for i := range res.Results {
		b.WriteString("| ")
		for j, column := range columns {
			if j > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(res.Results[i].Cell(column))
		}
		b.WriteString(" |\n")
	}

	return b.String(), nil
}

// Draft composes the broker outreach message: a header naming the effective
// criteria, then one bullet per yacht that is not booked on the reference
// date. Without a date nothing is booked, so every result is listed.
func (s *serviceImpl) Draft(ctx context.Context, req dto.FilterRequest) (out string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Draft")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err := s.catalog.Search(ctx, req)
	if err != nil {
		return "", err
	}

	lines := []string{}
	for _, row := range res.Results {
		if row.Status == model.StatusBooked || row.Status == model.StatusPartiallyBooked {
			continue
		}

		price := row.Price
		if price == constant.Empty {
			price = "N/A"
		}

		size := strconv.FormatFloat(row.Size, 'f', -1, 64)
		lines = append(lines, fmt.Sprintf("• %s' %s – %s – Marina: %s", size, row.Name, price, row.Location))
	}

	if len(lines) == 0 {
		return "", failure.NotFound("no available yachts to include in the draft") // nolint:wrapcheck
	}

	header := fmt.Sprintf("Request — %dh — %s", res.Duration, res.DayType)
	if res.Date != constant.Empty {
		if day, parseErr := timezone.Parse(constant.DateParamFormat, res.Date); parseErr == nil {
			header = fmt.Sprintf("Request for %s — %dh — %s", day.Format(DraftDateFormat), res.Duration, res.DayType)
		}
	}

	return header + "\n\n" + strings.Join(lines, "\n"), nil
}

// exportColumns fixes the column order of the table: selected price first,
// then the catalog identity fields, the passthrough columns in name order,
// and finally the availability annotations.
func exportColumns(first dto.YachtResponse) []string {
	columns := []string{
		first.PriceColumn,
		model.FieldID,
		model.FieldName,
		model.FieldSize,
		model.FieldLocation,
		model.FieldBrand,
	}

	extras := make([]string, 0, len(first.Extra))
	for key := range first.Extra {
		extras = append(extras, key)
	}
	sort.Strings(extras)

	columns = append(columns, extras...)
	columns = append(columns, model.FieldReservationStart, model.FieldReservationEnd, "Status")

	return columns
}

// prettifyHeader turns a sheet column name into a title-cased display header,
// "Yacht_Name" -> "Yacht Name".
func prettifyHeader(column string) string {
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(column, "_", " ")))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}
