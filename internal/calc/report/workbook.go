package report

import (
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/wall"
)

// Expectation is a published value a calculation is audited against.
// Relative tolerances are in percent.
type Expectation struct {
	Parameter string  `json:"parameter"`
	Expected  float64 `json:"expected"`
	Tolerance float64 `json:"tolerance"`
	Relative  bool    `json:"relative"`
	value     func(wall.Result) float64
}

// Sheffield Bioincubator worked example, P394.
var Sheffield = []Expectation{
	{"v_map (m/s)", 22.1, 0.1, false, func(r wall.Result) float64 { return r.VMap }},
	{"c_alt", 1.10, 0.02, false, func(r wall.Result) float64 { return r.CAlt }},
	{"c_dir", 1.0, 0.01, false, func(r wall.Result) float64 { return r.CDir }},
	{"c_e × c_e,T", 2.9, 0.2, false, func(r wall.Result) float64 { return r.CE * r.CET }},
	{"q_p (Pa)", 1058, 5, true, func(r wall.Result) float64 { return r.QP }},
	{"c_s", 0.85, 5, true, func(r wall.Result) float64 { return r.CS }},
	{"c_d", 1.03, 5, true, func(r wall.Result) float64 { return r.CD }},
	{"c_f", 0.92, 5, true, func(r wall.Result) float64 { return r.CF }},
	{"F_w (kN)", 460, 10, true, func(r wall.Result) float64 { return r.ForceKN }},
}

// SheffieldInput reproduces the worked example.
func SheffieldInput() wall.Input {
	return wall.Input{
		SignWidth:        20,
		SignHeight:       27,
		SignDepth:        29,
		BuildingHeight:   27,
		SiteAltitude:     105,
		VMap:             22.1,
		DistanceToShore:  pressure.KM(100),
		TerrainType:      "town",
		DistanceIntoTown: 2,
	}
}

type Check struct {
	Parameter  string  `json:"parameter"`
	Calculated float64 `json:"calculated"`
	Expected   float64 `json:"expected"`
	Difference float64 `json:"difference"`
	PercentOff float64 `json:"percent_diff"`
	Status     string  `json:"status"`
}

// Audit compares res with each expectation.
func Audit(res wall.Result, exp []Expectation) []Check {
	out := make([]Check, 0, len(exp))
	for _, e := range exp {
		c := Check{Parameter: e.Parameter, Calculated: e.value(res), Expected: e.Expected}
		c.Difference = math.Abs(c.Calculated - c.Expected)
		if c.Expected != 0 {
			c.PercentOff = c.Difference / c.Expected * 100
		}
		off := c.Difference
		if e.Relative {
			off = c.PercentOff
		}
		c.Status = "CHECK"
		if off < e.Tolerance {
			c.Status = "PASS"
		}
		out = append(out, c)
	}
	return out
}

func Passed(checks []Check) bool {
	for _, c := range checks {
		if c.Status != "PASS" {
			return false
		}
	}
	return true
}

// Workbook writes Inputs, Calculations and Validation sheets. exp may be
// nil, in which case the Validation sheet is left out.
func (g *Generator) Workbook(w io.Writer, p Project, in wall.Input, res wall.Result, exp []Expectation) error {
	p = p.withDefaults()
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"667EEA"}},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetName("Sheet1", "Inputs"); err != nil {
		return err
	}
	inputs := [][]any{
		{"Project", p.Name},
		{"Reference", p.Reference},
		{"Client", p.Client},
		{"Date", g.Clock.Now().Format(dateLayout)},
		{},
		{"Parameter", "Value", "Unit"},
		{"Sign width", in.SignWidth, "m"},
		{"Sign height", in.SignHeight, "m"},
		{"Sign depth", in.SignDepth, "m"},
		{"Building height", in.BuildingHeight, "m"},
		{"Site altitude", in.SiteAltitude, "m"},
		{"Postcode", in.Postcode, ""},
		{"Distance to shore", in.DistanceToShore.Value(), "km"},
		{"Terrain", in.TerrainType, ""},
		{"Distance into town", in.DistanceIntoTown, "km"},
	}
	if err := writeRows(f, "Inputs", inputs); err != nil {
		return err
	}
	f.SetCellStyle("Inputs", "A1", "A4", bold)
	f.SetCellStyle("Inputs", "A6", "C6", header)
	f.SetColWidth("Inputs", "A", "A", 22)

	if _, err := f.NewSheet("Calculations"); err != nil {
		return err
	}
	calc := [][]any{{"Symbol", "Stage", "Value", "Unit", "Reference"}}
	for _, s := range res.Stages {
		calc = append(calc, []any{s.Symbol, s.Name, s.Value, s.Unit, s.Reference})
	}
	calc = append(calc,
		[]any{},
		[]any{"M", "Overturning moment", res.MomentKNm, "kNm", ""},
		[]any{"", "Assessment", string(res.Assessment.Overall), "", res.Assessment.Summary},
	)
	if err := writeRows(f, "Calculations", calc); err != nil {
		return err
	}
	f.SetCellStyle("Calculations", "A1", "E1", header)
	f.SetColWidth("Calculations", "B", "B", 34)
	f.SetColWidth("Calculations", "E", "E", 40)

	if exp != nil {
		if _, err := f.NewSheet("Validation"); err != nil {
			return err
		}
		checks := Audit(res, exp)
		rows := [][]any{{"Parameter", "Calculated", "Expected", "Difference", "% Diff", "Status"}}
		for _, c := range checks {
			rows = append(rows, []any{c.Parameter, c.Calculated, c.Expected, c.Difference, c.PercentOff, c.Status})
		}
		overall := "ALL CHECKS PASSED"
		if !Passed(checks) {
			overall = "REVIEW REQUIRED"
		}
		rows = append(rows, []any{}, []any{"OVERALL STATUS:", overall})
		if err := writeRows(f, "Validation", rows); err != nil {
			return err
		}
		f.SetCellStyle("Validation", "A1", "F1", header)
		f.SetColWidth("Validation", "A", "A", 20)
	}

	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
