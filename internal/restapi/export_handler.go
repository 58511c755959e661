package restapi

import (
	"net/http"

	"meteolog.dev/internal/models"
	"meteolog.dev/internal/utils"
)

const maxExportLimit = 10000

func (api *RestAPI) exportHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := utils.ParseIntParam(r, "limit", defaultObservationsLimit, maxExportLimit)
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

	path, rows, err := api.Exporter.Export(observations)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.ExportModel{Path: path, Rows: rows}))
}
