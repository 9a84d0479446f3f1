package middleware

import (
	"net/http"

	"charter/shared/constant"
	"charter/shared/failure"
	"charter/transport/http/response"
)

// APIKey guards the mutating routes. The key is a single shared secret from
// configuration; there are no per-user accounts behind it.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := a.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			err := failure.Unauthorized("Missing API key header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		if apiKey != a.config.App.APIKey {
			err := failure.Forbidden("Invalid API key")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
