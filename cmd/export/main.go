package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"charter/config"
	"charter/infras/opensheet"
	"charter/infras/otel"
	"charter/internal/domains/catalog/model/dto"
	"charter/internal/domains/catalog/repository"
	catalogService "charter/internal/domains/catalog/service"
	exportService "charter/internal/domains/export/service"
	"charter/shared/cache"
	"charter/shared/logger"
	"charter/shared/validator"

	"github.com/rs/zerolog/log"
)

// One-shot exporter: loads the sheet once, runs the filter, prints the
// markdown table or the outreach draft to stdout.
func main() {
	var (
		format    = flag.String("format", "table", "output format: table or draft")
		sizeMin   = flag.Float64("size-min", 0, "minimum yacht size in feet")
		sizeMax   = flag.Float64("size-max", 0, "maximum yacht size in feet, 0 means unbounded")
		budgetMin = flag.Float64("budget-min", 0, "minimum price for the selected tier")
		budgetMax = flag.Float64("budget-max", 0, "maximum price for the selected tier, 0 means unbounded")
		duration  = flag.Int("duration", 4, "charter duration in hours: 4, 6 or 8")
		dayType   = flag.String("day-type", "", "Weekday or Weekend, inferred from date when omitted")
		location  = flag.String("location", "", "boarding location, exact match")
		brands    = flag.String("brands", "", "comma-separated brand names")
		date      = flag.String("date", "", "reference date, YYYY-MM-DD")
	)

	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	req := dto.FilterRequest{
		SizeMin:   *sizeMin,
		SizeMax:   *sizeMax,
		BudgetMin: *budgetMin,
		BudgetMax: *budgetMax,
		Duration:  *duration,
		DayType:   *dayType,
		Location:  *location,
		Date:      *date,
	}

	if *brands != "" {
		for _, brand := range strings.Split(*brands, ",") {
			if brand = strings.TrimSpace(brand); brand != "" {
				req.Brands = append(req.Brands, brand)
			}
		}
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Error().Err(err).Msg("invalid filter criteria")
		os.Exit(1)
	}

	ctx := context.Background()

	tracer := otel.NewNoop()
	repo := repository.New(opensheet.New(cfg), cfg, tracer)
	catalog := catalogService.New(repo, cfg, cache.NewNoop(), tracer)
	export := exportService.New(catalog, tracer)

	if err := repo.Load(ctx); err != nil {
		log.Error().Err(err).Msg("failed to load sheet data")
		os.Exit(1)
	}

	var (
		out string
		err error
	)

	switch *format {
	case "table":
		out, err = export.Table(ctx, req)
	case "draft":
		out, err = export.Draft(ctx, req)
	default:
		log.Error().Str("format", *format).Msg("unknown format, use table or draft")
		os.Exit(1)
	}

	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}

	fmt.Println(out)
}
