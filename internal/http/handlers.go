package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/vendor-supply-hub/internal/alerts"
	"github.com/fairyhunter13/vendor-supply-hub/internal/assistant"
	"github.com/fairyhunter13/vendor-supply-hub/internal/config"
	"github.com/fairyhunter13/vendor-supply-hub/internal/grouporder"
	httpopenapi "github.com/fairyhunter13/vendor-supply-hub/internal/http/openapi"
	"github.com/fairyhunter13/vendor-supply-hub/internal/obs"
)

const maxBodyBytes = 1 << 20

// App carries the services behind the HTTP routes.
type App struct {
	Cfg       config.Config
	Orders    *grouporder.Service
	Alerts    *alerts.Feed
	Assistant *assistant.Assistant // nil when no model is configured
	closing   atomic.Bool
	started   time.Time
	stats     requestStats
}

type requestStats struct {
	statusReads         atomic.Uint64
	statusUpdates       atomic.Uint64
	recommendationReads atomic.Uint64
	alertReads          atomic.Uint64
	assistantCalls      atomic.Uint64
	assistantFailures   atomic.Uint64
}

// NewApp wires the services. asst may be nil.
func NewApp(cfg config.Config, orders *grouporder.Service, feed *alerts.Feed, asst *assistant.Assistant) *App {
	return &App{Cfg: cfg, Orders: orders, Alerts: feed, Assistant: asst, started: time.Now()}
}

// StartShutdown makes the app refuse state updates.
func (a *App) StartShutdown() { a.closing.Store(true) }

func methodNotAllowed(w http.ResponseWriter, allow ...string) {
	w.Header().Set("Allow", strings.Join(allow, ", "))
	WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
}

func (a *App) groupOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.stats.statusReads.Add(1)
		writeJSON(w, http.StatusOK, a.Orders.Status())
	case http.MethodPost:
		a.updateGroupOrder(w, r)
	default:
		methodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (a *App) updateGroupOrder(w http.ResponseWriter, r *http.Request) {
	if a.closing.Load() {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	patch, err := grouporder.ParsePatch(body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	res := a.Orders.Update(patch)
	a.stats.statusUpdates.Add(1)
	writeJSON(w, http.StatusOK, res)
	obs.Logger.Info("group_order_updated",
		"request_id", RequestIDFromContext(r.Context()),
		"revision", a.Orders.Revision(),
		"vendor_count", res.VendorCount,
		"order_total", res.OrderTotal,
		"vendors", len(res.Vendors),
		"fields_applied", !patch.Empty(),
	)
}

func (a *App) groupOrderRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	a.stats.recommendationReads.Add(1)
	writeJSON(w, http.StatusOK, a.Orders.Recommendations())
}

func (a *App) vendorAlertsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	a.stats.alertReads.Add(1)
	writeJSON(w, http.StatusOK, a.Alerts.List())
}

func (a *App) trustScoreHandler(w http.ResponseWriter, r *http.Request) {
	if a.assistantReady(w, r) {
		serveAssistant(a, w, r, a.Assistant.TrustScore)
	}
}

func (a *App) wishlistHandler(w http.ResponseWriter, r *http.Request) {
	if a.assistantReady(w, r) {
		serveAssistant(a, w, r, a.Assistant.Wishlist)
	}
}

func (a *App) recommendSuppliersHandler(w http.ResponseWriter, r *http.Request) {
	if a.assistantReady(w, r) {
		serveAssistant(a, w, r, a.Assistant.RecommendSuppliers)
	}
}

// assistantReady checks method, configuration and media type, writing the error response if any fails.
func (a *App) assistantReady(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return false
	}
	if a.Assistant == nil {
		WriteJSONError(w, http.StatusServiceUnavailable, "assistant_unavailable", "no generative model configured")
		return false
	}
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	return true
}

func serveAssistant[In, Out any](a *App, w http.ResponseWriter, r *http.Request, call func(context.Context, In) (Out, error)) {
	var in In
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	a.stats.assistantCalls.Add(1)
	out, err := call(r.Context(), in)
	if err != nil {
		a.stats.assistantFailures.Add(1)
		status, code := assistantErrorStatus(err)
		obs.Logger.Warn("assistant_call_failed",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
		WriteJSONError(w, status, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func assistantErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, assistant.ErrInvalidInput):
		return http.StatusBadRequest, "validation_error"
	case errors.Is(err, assistant.ErrInvalidOutput):
		return http.StatusBadGateway, "invalid_model_output"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "assistant_timeout"
	default:
		return http.StatusBadGateway, "assistant_error"
	}
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"status_reads":         a.stats.statusReads.Load(),
		"status_updates":       a.stats.statusUpdates.Load(),
		"recommendation_reads": a.stats.recommendationReads.Load(),
		"alert_reads":          a.stats.alertReads.Load(),
		"assistant_calls":      a.stats.assistantCalls.Load(),
		"assistant_failures":   a.stats.assistantFailures.Load(),
		"assistant_enabled":    a.Assistant != nil,
		"state_revision":       a.Orders.Revision(),
		"uptime_sec":           time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Vendor Supply Hub API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
