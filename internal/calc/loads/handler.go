package loads

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"Windsign/internal/calc/post"
	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/projecting"
	"Windsign/internal/calc/validate"
	"Windsign/internal/metrics"
	"Windsign/internal/respond"
)

type Handler struct {
	Log     zerolog.Logger
	Metrics *metrics.Metrics
}

// Calc serves POST /api/calculate-wind-loading.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadPayload(w)
		return
	}
	signType := metricLabel(req.SignType)
	if err := req.Validate(); err != nil {
		h.Metrics.Failed(signType)
		respond.Error(w, http.StatusBadRequest, err)
		return
	}
	res, err := Calculate(req)
	if err != nil {
		h.Metrics.Failed(signType)
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			h.Log.Error().Err(err).Str("sign_type", req.SignType).Msg("wind loading calculation failed")
		}
		respond.Error(w, code, err)
		return
	}
	status := res.OverallStatus
	if res.Assessment != nil {
		status = string(res.Assessment.Overall)
	}
	h.Metrics.Observe(res.SignType, status, len(res.Warnings))
	h.Log.Info().
		Str("sign_type", res.SignType).
		Float64("peak_pressure", res.PeakPressure).
		Float64("wind_force", res.WindForce).
		Msg("wind loading calculated")
	respond.JSON(w, http.StatusOK, res)
}

// metricLabel keeps the sign_type label to the known types so that request
// bodies cannot grow the number of series.
func metricLabel(signType string) string {
	switch st := orString(signType, WallMounted); st {
	case WallMounted, Projecting, PostMounted:
		return st
	}
	return "unknown"
}

// statusFor maps input problems to 400 and anything else to 500.
func statusFor(err error) int {
	for _, target := range []error{
		ErrUnknownSignType,
		ErrMissingField,
		validate.ErrOutOfRange,
		pressure.ErrUnknownTerrain,
		projecting.ErrUnknownTerrain,
		post.ErrUnknownMaterial,
		post.ErrUnknownSection,
		post.ErrUnknownFoundation,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

type postcodeBody struct {
	Postcode string `json:"postcode"`
}

type postcodeError struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// Postcode serves POST /api/validate-postcode.
func (h *Handler) Postcode(w http.ResponseWriter, r *http.Request) {
	var body postcodeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.BadPayload(w)
		return
	}
	res, err := CheckPostcode(strings.TrimSpace(body.Postcode))
	if err != nil {
		respond.JSON(w, http.StatusBadRequest, postcodeError{Error: err.Error()})
		return
	}
	respond.JSON(w, http.StatusOK, res)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, ServiceHealth())
}

func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, ServiceInfo())
}
