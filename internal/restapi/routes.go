package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/weather/current.json", validateAPIKey(api, api.currentObservationHandler))
	router.Handler(http.MethodGet, "/api/weather/observations.json", validateAPIKey(api, api.observationsHandler))
	router.Handler(http.MethodGet, "/api/weather/observation/:id", validateAPIKey(api, api.observationHandler))
	router.Handler(http.MethodGet, "/api/weather/summary.json", validateAPIKey(api, api.summaryHandler))
	router.Handler(http.MethodGet, "/api/weather/current-time.json", validateAPIKey(api, api.currentTimeHandler))
	router.Handler(http.MethodPost, "/api/weather/export.json", validateAPIKey(api, api.exportHandler))
}

// Routes assembles the router with the full middleware chain
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = api.rateLimiter(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = securityHeaders(handler)
	handler = CompressionMiddleware(handler)
	return handler
}
