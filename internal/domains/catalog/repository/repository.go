package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"charter/config"
	"charter/infras/opensheet"
	"charter/infras/otel"
	"charter/internal/domains/catalog/model"
	"charter/shared/constant"
	"charter/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Catalog interface {
	Load(ctx context.Context) error
	Snapshot(ctx context.Context) ([]model.Yacht, model.BookingIndex, error)
	Locations(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	client opensheet.Client
	cfg    *config.Config
	otel   otel.Otel

	mu     sync.RWMutex
	yachts []model.Yacht
	index  model.BookingIndex
	loaded bool
}

func New(client opensheet.Client, cfg *config.Config, ot otel.Otel) Catalog {
	return &repositoryImpl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

// Load fetches the catalog and availability tabs together and swaps in a
// fresh snapshot. The two fetches run concurrently and fail jointly: there is
// no partial-data mode, a failure on either tab leaves the previous snapshot
// untouched.
func (r *repositoryImpl) Load(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		catalogRows      []map[string]string
		availabilityRows []map[string]string
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		rows, fetchErr := r.client.Rows(groupCtx, r.cfg.Sheets.CatalogTab)
		if fetchErr != nil {
			return fetchErr
		}
		catalogRows = rows

		return nil
	})

	group.Go(func() error {
		rows, fetchErr := r.client.Rows(groupCtx, r.cfg.Sheets.AvailabilityTab)
		if fetchErr != nil {
			return fetchErr
		}
		availabilityRows = rows

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load sheet data")

		return fmt.Errorf("failed to load sheet data: %w", err)
	}

	yachts := make([]model.Yacht, 0, len(catalogRows))
	for _, row := range catalogRows {
		yachts = append(yachts, model.FromRow(row))
	}

	index, skipped := model.BuildBookingIndex(availabilityRows)

	r.mu.Lock()
	r.yachts = yachts
	r.index = index
	r.loaded = true
	r.mu.Unlock()

	log.Info().
		Int("yachts", len(yachts)).
		Int("bookings", len(availabilityRows)-skipped).
		Int("skipped_bookings", skipped).
		Msg("catalog snapshot loaded")

	return nil
}

// Snapshot returns the current catalog and booking index. The returned
// slices are read-only by convention; a reload replaces them wholesale
// instead of mutating them.
func (r *repositoryImpl) Snapshot(ctx context.Context) ([]model.Yacht, model.BookingIndex, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Snapshot")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded {
		return nil, nil, failure.Unavailable("catalog not loaded yet") // nolint:wrapcheck
	}

	return r.yachts, r.index, nil
}

// Locations returns the distinct boarding locations of the catalog, sorted.
func (r *repositoryImpl) Locations(ctx context.Context) ([]string, error) {
	yachts, _, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	locations := []string{}
	for _, yacht := range yachts {
		if yacht.Location == constant.Empty || seen[yacht.Location] {
			continue
		}
		seen[yacht.Location] = true
		locations = append(locations, yacht.Location)
	}

	sort.Strings(locations)

	return locations, nil
}
