// Package respond writes JSON bodies for the calculation handlers.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v with the given status. The header is already sent when
// encoding fails, so the error is only logged.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Int("status", code).Msg("encode response")
	}
}

func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, errorBody{Error: err.Error()})
}

// BadPayload is the answer to a body that does not decode.
func BadPayload(w http.ResponseWriter) {
	http.Error(w, "Invalid request payload", http.StatusBadRequest)
}
