package httpapi

import (
	"expvar"
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/group-order/status", app.groupOrderStatusHandler)
	mux.HandleFunc("/group-order/recommendations", app.groupOrderRecommendationsHandler)
	mux.HandleFunc("/ai/vendor-alerts", app.vendorAlertsHandler)
	mux.HandleFunc("/ai/trust-score", app.trustScoreHandler)
	mux.HandleFunc("/ai/wishlist", app.wishlistHandler)
	mux.HandleFunc("/ai/recommend-suppliers", app.recommendSuppliersHandler)
	mux.HandleFunc("/healthz", app.healthHandler)
	mux.HandleFunc("/debug/metrics", app.metricsHandler)
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/openapi.yaml", app.openapiHandler)
	mux.HandleFunc("/docs", app.docsHandler)
	return WithRequestID(WithLogging(WithRecover(mux)))
}
