// Package report renders wall-mounted calculations as a PDF report and as
// an audit workbook.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/phpdave11/gofpdf"

	"Windsign/internal/calc/wall"
)

const dateLayout = "02 January 2006"

type Project struct {
	Name      string `json:"name"`
	Reference string `json:"reference"`
	Client    string `json:"client"`
}

// Request is the body of both report endpoints.
type Request struct {
	Project Project    `json:"project"`
	Input   wall.Input `json:"inputs"`
}

type Generator struct {
	Clock      clockwork.Clock
	PreparedBy string
}

func NewGenerator(preparedBy string) *Generator {
	return &Generator{Clock: clockwork.NewRealClock(), PreparedBy: preparedBy}
}

// withDefaults fills blank project fields. A missing reference gets a
// short random one so printed reports can be told apart.
func (p Project) withDefaults() Project {
	if p.Name == "" {
		p.Name = "Signage Installation"
	}
	if p.Reference == "" {
		p.Reference = "WS-" + strings.ToUpper(uuid.NewString()[:8])
	}
	if p.Client == "" {
		p.Client = "N/A"
	}
	return p
}

var notes = []string{
	"1. Characteristic values: these are characteristic (unfactored) wind loading values.",
	"2. Partial factors: for ultimate limit state design apply EN 1990 factors, gamma_G = 1.35 (unfavourable) or 1.0 (favourable) and gamma_Q = 1.5 for wind.",
	"3. Limitations: orographic effects, complex geometries or local sheltering, dynamic effects for flexible structures and fatigue are not considered.",
	"4. Structural design: foundations, fixings and connections must be verified by a qualified structural engineer. This calculation provides wind loading only.",
	"5. Building control: a full certified structural calculation may be required depending on local authority requirements.",
}

// PDF writes the calculation report for one wall-mounted sign.
func (g *Generator) PDF(w io.Writer, p Project, in wall.Input, res wall.Result) error {
	p = p.withDefaults()
	date := g.Clock.Now().Format(dateLayout)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(g.Clock.Now())
	pdf.SetTitle("Wind Loading Calculation Report", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Wind Loading Calculation Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, res.Methodology, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	heading := func(s string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	}
	table := func(widths []float64, header []string, rows [][]string) {
		if header != nil {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(102, 126, 234)
			pdf.SetTextColor(255, 255, 255)
			for i, h := range header {
				pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
			}
			pdf.Ln(-1)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetFont("Helvetica", "", 9)
		for _, row := range rows {
			for i, c := range row {
				pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	heading("Project Details")
	postcode := in.Postcode
	if postcode == "" {
		postcode = "N/A"
	}
	table([]float64{60, 110}, nil, [][]string{
		{"Project Name:", p.Name},
		{"Project Reference:", p.Reference},
		{"Client:", p.Client},
		{"Date:", date},
		{"Sign Type:", "Wall-Mounted Fascia Sign"},
		{"Sign Dimensions:", fmt.Sprintf("%gm (W) x %gm (H) x %gm (D)", in.SignWidth, in.SignHeight, in.SignDepth)},
		{"Installation Height:", fmt.Sprintf("%gm above ground level", in.BuildingHeight)},
		{"Location:", postcode},
		{"Site Altitude:", fmt.Sprintf("%gm ASL", in.SiteAltitude)},
	})

	heading("Calculation Results")
	table([]float64{80, 40, 30}, []string{"Parameter", "Value", "Unit"}, [][]string{
		{"Design Wind Speed", fmt.Sprintf("%.1f", res.DesignWindSpeed), "m/s"},
		{"Peak Velocity Pressure (q_p)", fmt.Sprintf("%.0f", res.QP), "Pa"},
		{"Characteristic Wind Force", fmt.Sprintf("%.1f", res.ForceKN), "kN"},
		{"Overturning Moment", fmt.Sprintf("%.1f", res.MomentKNm), "kNm"},
		{"Assessment", string(res.Assessment.Overall), ""},
	})

	heading("Calculation Factors (BS EN 1991-1-4)")
	rows := make([][]string, 0, len(res.Stages))
	for _, s := range res.Stages {
		value := fmt.Sprintf("%.3f", s.Value)
		if s.Unit != "" {
			value += " " + s.Unit
		}
		rows = append(rows, []string{s.Name, s.Symbol, value, s.Reference})
	}
	table([]float64{55, 18, 32, 75}, []string{"Factor", "Symbol", "Value", "Reference"}, rows)

	if len(res.Warnings) > 0 {
		heading("Calculation Warnings")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(133, 100, 4)
		for _, msg := range res.Warnings {
			pdf.MultiCell(0, 5, tr("- "+msg), "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)
	}

	heading("Important Notes")
	pdf.SetFont("Helvetica", "", 9)
	for _, n := range notes {
		pdf.MultiCell(0, 5, tr(n), "", "L", false)
	}

	heading("Calculation Methodology")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf(
		"Standard: %s\nReference: %s\nCalculator Version: %s\n\nThis calculation follows the simplified procedure for wind actions on buildings documented in SCI Publication P394 \"Wind Actions to BS EN 1991-1-4\".",
		res.Methodology, res.Reference, res.Version)), "", "L", false)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, "Prepared by:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if g.PreparedBy != "" {
		pdf.MultiCell(0, 5, tr(g.PreparedBy), "", "L", false)
	}
	pdf.CellFormat(0, 6, "Date: "+date, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "This report is provided for indicative purposes. Certified structural calculations are required for building control submission.", "", "L", false)

	return pdf.Output(w)
}
