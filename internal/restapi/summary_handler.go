package restapi

import (
	"net/http"
	"time"

	"meteolog.dev/internal/models"
	"meteolog.dev/internal/utils"
)

const (
	defaultSummaryHours = 24
	maxSummaryHours     = 24 * 30
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hours, err := utils.ParseIntParam(r, "hours", defaultSummaryHours, maxSummaryHours)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"hours": {err.Error()},
		})
		return
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	summary, err := api.WeatherManager.WeatherDB.Summarize(ctx, since)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewSummaryModel(summary, hours)))
}
