package post

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"Windsign/internal/metrics"
)

const body = `{"sign_width":3,"sign_height":2,"sign_depth":0.3,"sign_base_height":2.5,"post_height":4.5,
	"site_altitude":50,"v_map":22.5,"distance_to_shore":20,"terrain_type":"country",
	"post_diameter":150,"post_thickness":8,"embedment_depth":1.5}`

func TestHandlerCalc(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := &Handler{Log: zerolog.Nop(), Metrics: m}
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/tools/post/calc", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"overall_status":"ADEQUATE"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues(SignType, "ADEQUATE")))
}

func TestHandlerRejects(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := &Handler{Log: zerolog.Nop(), Metrics: m}

	tests := []struct {
		name string
		body string
		code int
		want string
	}{
		{"bad json", `{`, http.StatusBadRequest, "Invalid request payload"},
		{"thickness over radius", `{"sign_width":3,"sign_height":2,"sign_depth":0.3,"post_diameter":100,"post_thickness":60}`,
			http.StatusBadRequest, "post thickness"},
		{"unknown material", `{"sign_width":3,"sign_height":2,"sign_depth":0.3,"post_material":"bamboo"}`,
			http.StatusBadRequest, "bamboo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Calc(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalculationErrors.WithLabelValues(SignType)))
}
