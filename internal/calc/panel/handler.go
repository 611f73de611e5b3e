package panel

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/metrics"
	"Windsign/internal/respond"
)

const signType = "panel"

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
		h.Metrics.Failed(signType)
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		h.Metrics.Failed(signType)
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	h.Metrics.Observe(signType, res.OverallStatus, len(res.Warnings))
	respond.JSON(w, http.StatusOK, res)
}
