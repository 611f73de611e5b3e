// Package importer reads wall-mounted sign schedules from xlsx workbooks.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/wall"
)

var ErrEmptySheet = errors.New("empty sheet")

// Columns lists the expected header, left to right. Columns after
// building_height may be left blank.
var Columns = []string{
	"sign_width", "sign_height", "sign_depth", "building_height", "site_altitude",
	"postcode", "distance_to_shore", "terrain_type", "distance_into_town", "v_map",
}

const minColumns = 4

type RowError struct {
	Row   int    `json:"row"` // 1-based, as shown in a spreadsheet
	Error string `json:"error"`
}

type WallImportResult struct {
	Count   int           `json:"count"`
	Results []wall.Result `json:"results"`
	Skipped []RowError    `json:"skipped"`
}

// ImportWall calculates every data row of the first sheet. The first row is
// a header and is ignored.
func ImportWall(r io.Reader) (WallImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return WallImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return WallImportResult{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return WallImportResult{}, ErrEmptySheet
	}

	out := WallImportResult{Results: []wall.Result{}, Skipped: []RowError{}}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		res, err := calcRow(row)
		if err != nil {
			out.Skipped = append(out.Skipped, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

func calcRow(row []string) (wall.Result, error) {
	in, err := parseWallRow(row)
	if err != nil {
		return wall.Result{}, err
	}
	if err := in.Validate(); err != nil {
		return wall.Result{}, err
	}
	return wall.Calculate(in)
}

func parseWallRow(row []string) (wall.Input, error) {
	if len(row) < minColumns {
		return wall.Input{}, fmt.Errorf("expected at least %d columns, got %d", minColumns, len(row))
	}
	var in wall.Input
	var err error
	required := []*float64{&in.SignWidth, &in.SignHeight, &in.SignDepth, &in.BuildingHeight}
	for i, dst := range required {
		if *dst, err = toFloat(row[i]); err != nil {
			return wall.Input{}, fmt.Errorf("%s: %w", Columns[i], err)
		}
	}
	if in.SiteAltitude, err = optional(row, 4); err != nil {
		return wall.Input{}, err
	}
	in.Postcode = cell(row, 5)
	if s := cell(row, 6); s != "" {
		in.DistanceToShore = pressure.KM(pressure.ParseDistance(s))
	}
	in.TerrainType = cell(row, 7)
	if in.DistanceIntoTown, err = optional(row, 8); err != nil {
		return wall.Input{}, err
	}
	if in.VMap, err = optional(row, 9); err != nil {
		return wall.Input{}, err
	}
	return in, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optional(row []string, i int) (float64, error) {
	s := cell(row, i)
	if s == "" {
		return 0, nil
	}
	v, err := toFloat(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", Columns[i], err)
	}
	return v, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
