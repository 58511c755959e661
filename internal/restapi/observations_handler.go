package restapi

import (
	"net/http"

	"meteolog.dev/internal/models"
	"meteolog.dev/internal/utils"
)

const (
	defaultObservationsLimit = 10
	maxObservationsLimit     = 500
)

func (api *RestAPI) observationsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := utils.ParseIntParam(r, "limit", defaultObservationsLimit, maxObservationsLimit)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"limit": {err.Error()},
		})
		return
	}

	observations, err := api.WeatherManager.WeatherDB.LatestObservations(ctx, limit)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	limitExceeded := len(observations) == limit
	api.sendResponse(w, r, models.NewListResponse(models.NewObservationListModel(observations), limitExceeded))
}
