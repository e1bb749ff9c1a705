package api

import (
	"net/http"
	"strconv"

	"github.com/samandr77/microservices/mro/internal/entity"
)

// CurrentWeather godoc
// @Summary      Current weather
// @Tags         weather
// @Produce      json
// @Param        lat query number true "Latitude"
// @Param        lon query number true "Longitude"
// @Success      200 {object} Response{payload=entity.Weather}
// @Failure      400 {object} Response
// @Security     BearerAuth
// @Router       /weather [get]
func (h *Handler) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		h.fail(ctx, w, entity.NewValidationError("lat", "must be a number"), "")
		return
	}

	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		h.fail(ctx, w, entity.NewValidationError("lon", "must be a number"), "")
		return
	}

	wx, err := h.s.CurrentWeather(ctx, entity.WeatherQuery{Latitude: lat, Longitude: lon})
	if err != nil {
		h.fail(ctx, w, err, "current weather")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300")
	SendJSON(ctx, w, http.StatusOK, wx)
}
