package batch

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/auth"
	"Windsign/internal/respond"
)

type Handler struct {
	Log zerolog.Logger
}

func (h *Handler) Loads(w http.ResponseWriter, r *http.Request) {
	var input LoadsBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	res, err := CalculateLoads(input)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	h.Log.Info().Str("subject", auth.Subject(r.Context())).Int("succeeded", res.Succeeded).Int("failed", res.Failed).Msg("batch calculated")
	respond.JSON(w, http.StatusOK, res)
}
