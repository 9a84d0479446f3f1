package catalog

import (
	"net/http"

	"charter/infras/otel"
	"charter/internal/domains/catalog/model/dto"
	"charter/internal/domains/catalog/service"
	"charter/shared/constant"
	"charter/shared/validator"
	"charter/transport/http/middleware"
	"charter/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Catalog
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Catalog, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/yachts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.SearchYachts)
		routerGroup.Get("/locations", handler.GetLocations)
		routerGroup.With(handler.middleware.APIKey).Post("/reload", handler.ReloadCatalog)
	})
}

// SearchYachts runs one filter pass over the catalog.
// @Summary Filter the yacht catalog
// @Description Apply size, budget, duration, location, brand and date criteria and annotate each surviving yacht with its availability.
// @Tags Catalog
// @Produce json
// @Param size_min query number false "Minimum yacht size in feet"
// @Param size_max query number false "Maximum yacht size in feet, 0 means unbounded"
// @Param budget_min query number false "Minimum price for the selected tier"
// @Param budget_max query number false "Maximum price for the selected tier, 0 means unbounded"
// @Param duration query int false "Charter duration in hours (4, 6 or 8)" default(4)
// @Param day_type query string false "Weekday or Weekend, inferred from date when omitted"
// @Param location query string false "Boarding location, exact match"
// @Param brand query []string false "Brand names, repeatable"
// @Param date query string false "Reference date, YYYY-MM-DD"
// @Success 200 {object} dto.FilterResponse "Annotated results"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/yachts [get]
func (handler *Handler) SearchYachts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchYachts")
	defer scope.End()

	req := dto.FilterRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate filter criteria")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search yachts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Yachts searched successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetLocations lists the boarding locations of the catalog.
// @Summary List boarding locations
// @Description Distinct, sorted boarding locations of the loaded catalog, used to populate the location filter.
// @Tags Catalog
// @Produce json
// @Success 200 {array} string "Boarding locations"
// @Failure 503 {object} response.Error
// @Router /v1/yachts/locations [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	locations, err := handler.service.Locations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}

// ReloadCatalog re-fetches both spreadsheet tabs.
// @Summary Reload the catalog snapshot
// @Description Fetch the catalog and availability tabs again and replace the in-memory snapshot. A failure keeps the previous snapshot.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Message "Catalog reloaded successfully"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/yachts/reload [post]
// @Security ApiKeyAuth
func (handler *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReloadCatalog")
	defer scope.End()

	if err := handler.service.Reload(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reload catalog")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Catalog reloaded successfully")

	response.WithMessage(w, http.StatusOK, "Catalog reloaded successfully")
}
