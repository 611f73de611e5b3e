package recommend

import (
	"encoding/json"
	"net/http"

	"Windsign/internal/respond"
)

type Handler struct{}

func (h *Handler) Spacing(w http.ResponseWriter, r *http.Request) {
	var input SpacingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.BadPayload(w)
		return
	}
	res, err := Spacing(input)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, res)
}
