package importer

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	all := append([][]any{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportWall(t *testing.T) {
	buf := workbook(t,
		[]any{20, 27, 29, 27, 105, "", 100, "town", 2, 22.1},
		[]any{2, 1, 0.1, 5, 0, "EH1 1YZ"},
		[]any{"wide", 1, 0.1, 5},
		[]any{0, 1, 0.1, 5},
		[]any{2, 1},
	)
	res, err := ImportWall(buf)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 2)
	assert.Equal(t, 540.0, res.Results[0].ARef)
	assert.Equal(t, "C", string(res.Results[0].Zone))
	assert.Equal(t, 24.0, res.Results[1].VMap)

	require.Len(t, res.Skipped, 3)
	assert.Equal(t, 4, res.Skipped[0].Row)
	assert.Contains(t, res.Skipped[0].Error, "sign_width")
	assert.Contains(t, res.Skipped[1].Error, "sign width")
	assert.Equal(t, "expected at least 4 columns, got 2", res.Skipped[2].Error)
}

func TestImportWallEmpty(t *testing.T) {
	_, err := ImportWall(workbook(t))
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, err = ImportWall(bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}

func TestParseWallRowDefaults(t *testing.T) {
	in, err := parseWallRow([]string{"2", "1", "0.1", "5"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, in.SignWidth)
	assert.False(t, in.DistanceToShore.Set)
	assert.Equal(t, 100.0, in.DistanceToShore.Value())
	assert.Empty(t, in.TerrainType)
}

func TestParseWallRowCells(t *testing.T) {
	in, err := parseWallRow([]string{"2", "1", "0.1", "5", "", "", "100+"})
	require.NoError(t, err)
	assert.True(t, in.DistanceToShore.Set)
	assert.Equal(t, 100.0, in.DistanceToShore.Value())

	in, err = parseWallRow([]string{"2", "1", "0.1", "5", "", "", " 12.5 "})
	require.NoError(t, err)
	assert.Equal(t, 12.5, in.DistanceToShore.Value())

	_, err = parseWallRow([]string{"2", "1", "0.1", "5", "12abc"})
	assert.ErrorContains(t, err, "site_altitude")

	_, err = parseWallRow([]string{"2m", "1", "0.1", "5"})
	assert.ErrorContains(t, err, "sign_width")
}

func upload(t *testing.T, buf *bytes.Buffer) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "signs.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandler(t *testing.T) {
	h := &Handler{Log: zerolog.Nop()}

	rec := httptest.NewRecorder()
	h.Wall(rec, upload(t, workbook(t, []any{2, 1, 0.1, 5, 0, "S1 2HE"})))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)

	rec = httptest.NewRecorder()
	h.Wall(rec, upload(t, workbook(t)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Wall(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
