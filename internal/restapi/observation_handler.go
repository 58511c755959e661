package restapi

import (
	"errors"
	"net/http"

	"meteolog.dev/internal/models"
	"meteolog.dev/internal/utils"
	"meteolog.dev/weatherdb"
)

func (api *RestAPI) observationHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rawID := utils.ExtractIDFromParams(r, "id")
	id, err := utils.ParseID(rawID)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"id": {err.Error()},
		})
		return
	}

	obs, err := api.WeatherManager.WeatherDB.GetObservation(ctx, id)
	if errors.Is(err, weatherdb.ErrObservationNotFound) {
		api.notFoundResponse(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewObservationModel(obs)))
}
