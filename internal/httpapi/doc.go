// Package httpapi exposes the day calculator as a small JSON API.
//
// Routes:
//
//	GET  /health                  liveness probe
//	GET  /v1/days?from=D/M/Y&to=D/M/Y
//	POST /v1/days                 {"dates": ["D/M/Y", "D/M/Y"]}
//
// Middleware chain (outermost first): recoverPanic, requestID, rateLimit.
package httpapi
