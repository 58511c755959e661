package restapi

import (
	"net/http"

	"meteolog.dev/internal/models"
)

func (api *RestAPI) currentObservationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	if obs, ok := api.WeatherManager.LatestObservation(); ok {
		api.sendResponse(w, r, models.NewEntryResponse(models.NewObservationModel(obs)))
		return
	}

	// Cache is cold; fall back to the newest stored observation.
	observations, err := api.WeatherManager.WeatherDB.LatestObservations(ctx, 1)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if len(observations) == 0 {
		api.notFoundResponse(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewObservationModel(observations[0])))
}
