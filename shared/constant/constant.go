package constant

const (
	RequestParamSizeMin   = "size_min"
	RequestParamSizeMax   = "size_max"
	RequestParamBudgetMin = "budget_min"
	RequestParamBudgetMax = "budget_max"
	RequestParamDuration  = "duration"
	RequestParamDayType   = "day_type"
	RequestParamLocation  = "location"
	RequestParamBrand     = "brand"
	RequestParamDate      = "date"
)

const (
	DayTypeWeekday = "Weekday"
	DayTypeWeekend = "Weekend"
)

const (
	DefaultValueDuration = 4
	DefaultValueDayType  = DayTypeWeekday
)

const (
	// DateParamFormat is the wire format of the reference-date query param.
	DateParamFormat = "2006-01-02"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeText     = "text/plain; charset=utf-8"
	ContentTypeMarkdown = "text/markdown; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Empty = ""
)
