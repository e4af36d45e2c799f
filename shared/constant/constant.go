package constant

import (
	"time"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

// RuleIdentifier validates the HOT00001 style ids taken from paths.
const RuleIdentifier = "required,max=20"

const (
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	PqErrorCodeUniqueViolation    = "23505"
	PqErrorCodeFkViolation        = "23503"
	PqErrorCodeCheckViolation     = "23514"
	PqErrorCodeInvalidText        = "22P02"
	PqErrorCodeInvalidDatetime    = "22007"
	PqErrorCodeDatetimeOutOfRange = "22008"
	PqErrorCodeNumericOutOfRange  = "22003"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelSequenceScopeName   = "sequence"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderTraceID            = "X-Trace-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInvalidAPIKey        = "Invalid or missing API key"
	ResponseErrorInternal             = "Internal server error"
	ResponseErrorUnavailable          = "Database unavailable, please try again later"
	ResponseErrorDuplicate            = "Duplicate entry"
	ResponseErrorInvalidValue         = "Invalid value supplied"
	ResponseErrorReference            = "Referenced record does not exist"
	ResponseErrorNotFound             = "Route not found"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// Cache key prefixes; invalidation clears every key under a prefix.
const (
	CachePrefixHotels      = "hotels:"
	CachePrefixCustomers   = "customers:"
	CachePrefixBooking     = "booking:"
	CachePrefixReviews     = "reviews:"
	CachePrefixMaintenance = "maintenance:"
)

const (
	Asterix = "*"
	Empty   = ""
)
