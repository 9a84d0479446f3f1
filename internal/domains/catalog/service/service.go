package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"charter/config"
	"charter/infras/otel"
	"charter/internal/domains/catalog/model"
	"charter/internal/domains/catalog/model/dto"
	"charter/internal/domains/catalog/repository"
	"charter/shared"
	"charter/shared/cache"
	"charter/shared/constant"
	"charter/shared/failure"
	"charter/shared/normalize"
	"charter/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheSearchYachts   = "yacht:search"
	cacheYachtLocations = "yacht:locations"
)

type Catalog interface {
	Search(ctx context.Context, req dto.FilterRequest) (dto.FilterResponse, error)
	Locations(ctx context.Context) ([]string, error)
	Reload(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	now   func() time.Time
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return NewWithClock(repo, cfg, cache, otel, timezone.Now)
}

// NewWithClock builds the service with an explicit clock source. The clock
// only feeds the "next upcoming reservation" resolution of date-less
// searches.
func NewWithClock(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, now func() time.Time) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		now:   now,
	}
}

// Search runs one filter pass over the current snapshot. Criteria are
// conjunctive and applied per yacht in a fixed order: size floor, size
// ceiling, price, location, brand. Surviving yachts keep their catalog order
// and each one carries exactly one availability classification.
func (s *serviceImpl) Search(ctx context.Context, req dto.FilterRequest) (res dto.FilterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheSearchYachts, req.CacheKey())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for yacht search")

		return res, nil
	}

	ref, err := req.ReferenceDate()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	pair, ok := model.PriceColumns[req.Duration]
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("unsupported duration: %d", req.Duration)) // nolint:wrapcheck
	}

	yachts, index, err := s.repo.Snapshot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get catalog snapshot")

		return res, err
	}

	dayType := req.EffectiveDayType()
	results := []dto.YachtResponse{}

	for _, yacht := range yachts {
		if req.SizeMin > 0 && yacht.Size < req.SizeMin {
			continue
		}

		if req.SizeMax > 0 && yacht.Size > req.SizeMax {
			continue
		}

		column, price := s.selectPrice(yacht, pair, dayType)
		if !s.withinBudget(req, price) {
			continue
		}

		if req.Location != constant.Empty && yacht.Location != req.Location {
			continue
		}

		if len(req.Brands) > 0 && !containsBrand(req.Brands, yacht.Brand) {
			continue
		}

		status := model.StatusNone
		bookings := index.For(yacht.ID)

		var reservation *model.Booking
		if ref != nil {
			status, reservation = classify(bookings, *ref)
		} else {
			reservation = upcoming(bookings, s.now())
		}

		var reservationStart, reservationEnd string
		if reservation != nil {
			reservationStart = normalize.FormatInstant(reservation.Start)
			reservationEnd = normalize.FormatInstant(reservation.End)
		}

		row := dto.YachtResponse{}
		row.FromModel(yacht, column, status, reservationStart, reservationEnd)
		results = append(results, row)
	}

	res = dto.FilterResponse{
		Results:  results,
		Total:    len(results),
		Duration: req.Duration,
		DayType:  dayType,
		Date:     req.Date,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save yacht search to cache")
		}
	}()

	return res, nil
}

// Locations returns the distinct boarding locations of the catalog.
func (s *serviceImpl) Locations(ctx context.Context) (locations []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Locations")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheYachtLocations, &locations)
	if err == nil {
		log.Info().Str("cacheKey", cacheYachtLocations).Msg("cache hit for yacht locations")

		return locations, nil
	}

	locations, err = s.repo.Locations(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get yacht locations")

		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheYachtLocations, locations, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save yacht locations to cache")
		}
	}()

	return locations, nil
}

// Reload re-fetches both sheet tabs and drops every derived cache entry. A
// failed reload keeps the previous snapshot and the caches serving it.
func (s *serviceImpl) Reload(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reload")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Load(ctx); err != nil {
		log.Error().Err(err).Msg("failed to reload catalog")

		return fmt.Errorf("failed to reload catalog: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheSearchYachts)
		shared.InvalidateCaches(c, s.cache, cacheYachtLocations)
	}()

	return nil
}

// selectPrice resolves the price column and numeric price of one yacht for
// the requested tier. Under the tiered policy the day type picks the column;
// under the max policy the pricier of the two columns wins regardless of day
// type.
func (s *serviceImpl) selectPrice(yacht model.Yacht, pair model.PricePair, dayType string) (string, float64) {
	if s.cfg.App.BudgetPolicy == config.BudgetPolicyMax {
		weekday := normalize.Amount(yacht.Prices[pair.Weekday])
		weekend := normalize.Amount(yacht.Prices[pair.Weekend])

		if weekend > weekday {
			return pair.Weekend, weekend
		}

		return pair.Weekday, weekday
	}

	column := pair.ForDayType(dayType)

	return column, normalize.Amount(yacht.Prices[column])
}

// withinBudget applies the budget bounds to the selected price. The max
// policy only honors the upper bound. A zero price can mean missing sheet
// data, so it passes unless a lower bound is set.
func (s *serviceImpl) withinBudget(req dto.FilterRequest, price float64) bool {
	if req.BudgetMax > 0 && price > req.BudgetMax {
		return false
	}

	if s.cfg.App.BudgetPolicy == config.BudgetPolicyMax {
		return true
	}

	if req.BudgetMin > 0 && price < req.BudgetMin {
		return false
	}

	return true
}

// classify resolves one yacht against the reference day. Containment is
// inclusive of both boundary days, so a day anywhere inside a reservation
// means Booked, first match wins. A boundary touch without containment only
// occurs on intervals whose end-day precedes their start-day; those demote to
// PartiallyBooked instead of Available. The two states never overlap.
func classify(bookings []model.Booking, ref time.Time) (model.Status, *model.Booking) {
	day := normalize.Midnight(ref)

	var partial *model.Booking

	for i := range bookings {
		start := normalize.Midnight(bookings[i].Start)
		end := normalize.Midnight(bookings[i].End)

		if !day.Before(start) && !day.After(end) {
			return model.StatusBooked, &bookings[i]
		}

		if partial == nil && (day.Equal(start) || day.Equal(end)) {
			partial = &bookings[i]
		}
	}

	if partial != nil {
		return model.StatusPartiallyBooked, partial
	}

	return model.StatusAvailable, nil
}

// upcoming picks the reservation with the smallest start at or after now,
// nil when the yacht has no future reservation.
func upcoming(bookings []model.Booking, now time.Time) *model.Booking {
	var next *model.Booking

	for i := range bookings {
		if bookings[i].Start.Before(now) {
			continue
		}

		if next == nil || bookings[i].Start.Before(next.Start) {
			next = &bookings[i]
		}
	}

	return next
}

func containsBrand(brands []string, brand string) bool {
	for _, b := range brands {
		if b == brand {
			return true
		}
	}

	return false
}
