package loads

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Windsign/internal/metrics"
)

func serve(h http.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, "/", strings.NewReader(body)))
	return rec
}

func TestCalcHandler(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}

	rec := serve(h.Calc, http.MethodPost, sheffieldBody)
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	for _, key := range []string{"peak_pressure", "wind_force", "design_wind_speed", "overturning_moment", "calculation_summary", "assessment", "warnings"} {
		assert.Contains(t, got, key)
	}
	assert.NotContains(t, got, "post_check")

	rec = serve(h.Calc, http.MethodPost, `{"sign_width": 2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"missing required field: sign_height"}`, rec.Body.String())

	rec = serve(h.Calc, http.MethodPost, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownSignTypesShareOneSeries(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := &Handler{Log: zerolog.Nop(), Metrics: m}

	for _, st := range []string{"billboard", "banner", "totem", "a-flag"} {
		body := strings.Replace(sheffieldBody, "{", `{"sign_type":"`+st+`",`, 1)
		rec := serve(h.Calc, http.MethodPost, body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	}
	rec := serve(h.Calc, http.MethodPost, `{"sign_type":"post_mounted","sign_width":2}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 2, testutil.CollectAndCount(m.CalculationErrors))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.CalculationErrors.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CalculationErrors.WithLabelValues(PostMounted)))
}

func TestMetricLabel(t *testing.T) {
	assert.Equal(t, WallMounted, metricLabel(""))
	assert.Equal(t, Projecting, metricLabel(Projecting))
	assert.Equal(t, "unknown", metricLabel("Wall_Mounted"))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(ErrUnknownSignType))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

func TestPostcodeHandler(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}

	rec := serve(h.Postcode, http.MethodPost, `{"postcode":" ZE2 9AA "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"area":"ZE"`)

	rec = serve(h.Postcode, http.MethodPost, `{"postcode":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"valid":false,"error":"invalid UK postcode format"}`, rec.Body.String())
}

func TestHealthAndInfo(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}

	rec := serve(h.Health, http.MethodGet, "")
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = serve(h.Info, http.MethodGet, "")
	var info Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, []string{"wall_mounted", "projecting", "post_mounted"}, info.SignTypes)
	assert.Len(t, info.Limitations, 4)
}
