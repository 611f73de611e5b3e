package post

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/metrics"
	"Windsign/internal/respond"
)

type Handler struct {
	Log     zerolog.Logger
	Metrics *metrics.Metrics
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	if err := input.Validate(); err != nil {
		h.Metrics.Failed(SignType)
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		h.Metrics.Failed(SignType)
		h.Log.Warn().Err(err).Msg("post calculation rejected")
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	h.Metrics.Observe(SignType, res.OverallStatus, len(res.Warnings))
	h.Log.Debug().
		Float64("M_total", res.MTotal).
		Str("status", res.OverallStatus).
		Msg("post calculation")
	respond.JSON(w, http.StatusOK, res)
}
