package importer

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/auth"
	"Windsign/internal/respond"
)

const maxUpload = 10 << 20

type Handler struct {
	Log zerolog.Logger
}

// Wall accepts a multipart upload with the workbook in the "file" field.
func (h *Handler) Wall(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := ImportWall(file)
	if err != nil {
		if errors.Is(err, ErrEmptySheet) {
			http.Error(w, "Empty sheet", http.StatusBadRequest)
			return
		}
		h.Log.Warn().Err(err).Msg("workbook import failed")
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	h.Log.Info().Str("subject", auth.Subject(r.Context())).Int("count", res.Count).Int("skipped", len(res.Skipped)).Msg("wall schedule imported")
	respond.JSON(w, http.StatusOK, res)
}
