package autodesign

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/auth"
	"Windsign/internal/respond"
)

type Handler struct {
	Log zerolog.Logger
}

func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	var input PostAutoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	if err := input.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	res, err := Post(input)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, ErrNoSection) {
			code = http.StatusUnprocessableEntity
		}
		respond.Error(w, code, err)
		return
	}
	h.Log.Info().
		Str("subject", auth.Subject(r.Context())).
		Str("section", res.Designation).
		Int("sections_tried", res.Tried).
		Msg("post auto-designed")
	respond.JSON(w, http.StatusOK, res)
}
