package wall

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/metrics"
	"Windsign/internal/respond"
)

const SignType = "wall_mounted"

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
		h.Log.Warn().Err(err).Msg("wall calculation rejected")
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	h.Metrics.Observe(SignType, string(res.Assessment.Overall), len(res.Warnings))
	h.Log.Debug().
		Float64("q_p", res.QP).
		Float64("force_kN", res.ForceKN).
		Int("warnings", len(res.Warnings)).
		Msg("wall calculation")
	respond.JSON(w, http.StatusOK, res)
}
