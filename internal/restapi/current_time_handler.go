package restapi

import (
	"net/http"
	"time"

	"meteolog.dev/internal/models"
)

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now().In(api.WeatherManager.Location())
	response := models.NewEntryResponse(models.NewCurrentTimeModel(now))
	api.sendResponse(w, r, response)
}
