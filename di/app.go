package di

import (
	catalogService "charter/internal/domains/catalog/service"
	"charter/transport/http"
)

// App bundles the HTTP server with the catalog service so main can run the
// initial sheet load before serving.
type App struct {
	HTTP    *http.HTTP
	Catalog catalogService.Catalog
}
