package batch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Windsign/internal/auth"
	"Windsign/internal/calc/loads"
)

const body = `{"items": [
	{"sign_width": 2, "sign_height": 1, "sign_depth": 0.1, "building_height": 5, "altitude": 0, "v_map": 22},
	{"sign_width": 2, "sign_height": 1, "sign_depth": 0.1, "building_height": 5},
	{"sign_type": "billboard", "sign_width": 2, "sign_height": 1, "sign_depth": 0.1, "building_height": 5, "altitude": 0, "v_map": 22}
]}`

func TestCalculateLoads(t *testing.T) {
	var in LoadsBatchInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	res, err := CalculateLoads(in)
	require.NoError(t, err)
	require.Len(t, res.Results, 3)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 2, res.Failed)

	first := res.Results[0]
	require.NotNil(t, first.Response)
	assert.Equal(t, loads.WallMounted, first.Response.SignType)
	assert.Empty(t, first.Error)

	assert.Equal(t, 1, res.Results[1].Index)
	assert.Equal(t, "missing required field: altitude", res.Results[1].Error)
	assert.Contains(t, res.Results[2].Error, "unknown sign type")
}

func TestCalculateLoadsMatchesSingle(t *testing.T) {
	var in LoadsBatchInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	res, err := CalculateLoads(in)
	require.NoError(t, err)

	single, err := loads.Calculate(in.Items[0])
	require.NoError(t, err)
	assert.Equal(t, single, *res.Results[0].Response)
}

func TestCalculateLoadsLimits(t *testing.T) {
	_, err := CalculateLoads(LoadsBatchInput{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = CalculateLoads(LoadsBatchInput{Items: make([]loads.Request, MaxItems+1)})
	assert.ErrorIs(t, err, ErrTooMany)
}

func TestHandler(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}

	rec := httptest.NewRecorder()
	h.Loads(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"succeeded":1`)

	rec = httptest.NewRecorder()
	h.Loads(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"items":[]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no items")
}

func TestHandlerLogsSubject(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{Log: zerolog.New(&buf)}
	env := &auth.Authenv{JWTkey: []byte("k"), Log: zerolog.Nop()}
	token, err := env.IssueToken("alice", time.Now(), time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.AuthMiddleware(http.HandlerFunc(h.Loads)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"subject":"alice"`)
}
