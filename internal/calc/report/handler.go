package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Windsign/internal/calc/wall"
	"Windsign/internal/respond"
)

type Handler struct {
	Gen *Generator
	Log zerolog.Logger
}

// workbookRequest adds an opt-out for the Sheffield audit sheet.
type workbookRequest struct {
	Request
	SkipValidation bool `json:"skip_validation"`
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		respond.BadPayload(w)
		return false
	}
	return true
}

func (h *Handler) run(w http.ResponseWriter, in wall.Input) (wall.Result, bool) {
	if err := in.Validate(); err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return wall.Result{}, false
	}
	res, err := wall.Calculate(in)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err)
		return wall.Result{}, false
	}
	return res, true
}

// Generate serves POST /api/tools/report/pdf.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if !h.decode(w, r, &req) {
		return
	}
	res, ok := h.run(w, req.Input)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := h.Gen.PDF(&buf, req.Project, req.Input, res); err != nil {
		h.Log.Error().Err(err).Msg("pdf report")
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"wind-loading-report.pdf\"")
	buf.WriteTo(w)
}

// Workbook serves POST /api/tools/report/xlsx.
func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	var req workbookRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, ok := h.run(w, req.Input)
	if !ok {
		return
	}
	exp := Sheffield
	if req.SkipValidation {
		exp = nil
	}
	var buf bytes.Buffer
	if err := h.Gen.Workbook(&buf, req.Project, req.Input, res, exp); err != nil {
		h.Log.Error().Err(err).Msg("xlsx workbook")
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"wind-loading-calculation.xlsx\"")
	buf.WriteTo(w)
}
