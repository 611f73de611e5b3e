package panel

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}
	rec := httptest.NewRecorder()
	body := `{"panel_material":"acm_3mm","channel_spacing":600,"wind_pressure":828}`
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/panel/calc", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overall_status":"ADEQUATE"`)
}

func TestHandlerUnknownMaterial(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}
	rec := httptest.NewRecorder()
	body := `{"panel_material":"cardboard","channel_spacing":600,"wind_pressure":828}`
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"unknown material: cardboard"}`, rec.Body.String())
}
