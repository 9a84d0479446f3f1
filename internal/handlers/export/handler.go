package export

import (
	"net/http"

	"charter/infras/otel"
	"charter/internal/domains/catalog/model/dto"
	"charter/internal/domains/export/service"
	"charter/shared/constant"
	"charter/shared/validator"
	"charter/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Export
	otel    otel.Otel
}

func New(service service.Export, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/exports", func(routerGroup chi.Router) {
		routerGroup.Get("/table", handler.GetTable)
		routerGroup.Get("/draft", handler.GetDraft)
	})
}

// GetTable renders the current filter result as a markdown table.
// @Summary Export the filter result as markdown
// @Description Run the filter with the given criteria and render the result as a markdown pipe table, selected price column first.
// @Tags Export
// @Produce plain
// @Param duration query int false "Charter duration in hours (4, 6 or 8)" default(4)
// @Param date query string false "Reference date, YYYY-MM-DD"
// @Success 200 {string} string "Markdown table"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/exports/table [get]
func (handler *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTable")
	defer scope.End()

	req := dto.FilterRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate filter criteria")

		response.WithError(w, err)

		return
	}

	table, err := handler.service.Table(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export table")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Table exported successfully")

	response.WithText(w, http.StatusOK, constant.ContentTypeMarkdown, table)
}

// GetDraft composes the broker outreach message.
// @Summary Export the filter result as an outreach draft
// @Description Run the filter with the given criteria and compose the broker outreach message, listing the yachts not booked on the reference date.
// @Tags Export
// @Produce plain
// @Param duration query int false "Charter duration in hours (4, 6 or 8)" default(4)
// @Param date query string false "Reference date, YYYY-MM-DD"
// @Success 200 {string} string "Outreach draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/exports/draft [get]
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	req := dto.FilterRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate filter criteria")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.Draft(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft exported successfully")

	response.WithText(w, http.StatusOK, constant.ContentTypeText, draft)
}
