// Package panel checks sign face panels spanning between horizontal
// channels (BS 8442, EN 1999-1-1) and recommends channel spacings.
package panel

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"Windsign/internal/calc/validate"
)

var ErrUnknownMaterial = errors.New("unknown material")

const (
	DefaultMaterial = "acm_3mm"

	stripWidth   = 1000.0 // mm
	noSection    = 999999.0
	noResistance = 999.0
)

// Material holds per-unit-width properties. Composite panels use the face
// modulus and face yield strength.
type Material struct {
	Name        string  `json:"name"`
	ThicknessMM float64 `json:"thickness"`
	IPerWidth   float64 `json:"I_per_width"` // mm⁴/mm
	WPerWidth   float64 `json:"W_per_width"` // mm³/mm
	E           float64 `json:"E"`           // N/mm²
	Fy          float64 `json:"f_y"`         // N/mm²
	Density     float64 `json:"density"`     // kg/m²
}

var materials = map[string]Material{
	// sandwich: I = 2·t_face·(d/2)² per mm width
	"acm_3mm":             {"3mm Aluminium Composite (ACM/Dibond)", 3, 94.5, 63, 70000, 100, 5.0},
	"aluminium_3mm":       {"3mm Solid Aluminium 1050", 3, 2.25, 1.5, 70000, 100, 8.1},
	"steel_composite_3mm": {"3mm Steel Composite Panel", 3, 472.5, 315, 210000, 235, 12.0},
	"aluminium_4mm":       {"4mm Solid Aluminium 1050", 4, 5.33, 2.67, 70000, 100, 10.8},
}

func Lookup(key string) (Material, error) {
	m, ok := materials[key]
	if !ok {
		return Material{}, fmt.Errorf("%w: %s", ErrUnknownMaterial, key)
	}
	return m, nil
}

// Materials lists the known material keys in sorted order.
func Materials() []string {
	keys := make([]string, 0, len(materials))
	for k := range materials {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type Input struct {
	Material       string  `json:"panel_material" yaml:"panel_material"`
	ChannelSpacing float64 `json:"channel_spacing" yaml:"channel_spacing"` // mm
	WindPressure   float64 `json:"wind_pressure" yaml:"wind_pressure"`     // Pa
	SignHeight     float64 `json:"sign_height" yaml:"sign_height"`         // m
	SignWidth      float64 `json:"sign_width" yaml:"sign_width"`           // m
}

func (in Input) Validate() error {
	return validate.First(
		validate.Positive("channel spacing", in.ChannelSpacing),
		validate.Positive("wind pressure", in.WindPressure),
		validate.Closed("sign height", in.SignHeight, 0, 30, "meters"),
		validate.Closed("sign width", in.SignWidth, 0, 50, "meters"),
	)
}

func (in Input) withDefaults() Input {
	if in.Material == "" {
		in.Material = DefaultMaterial
	}
	if in.SignHeight == 0 {
		in.SignHeight = 2.0
	}
	if in.SignWidth == 0 {
		in.SignWidth = 3.0
	}
	return in
}

type Check struct {
	Calculated  float64 `json:"calculated"`
	Limit       float64 `json:"limit"`
	Status      string  `json:"status"`
	Utilization float64 `json:"utilization"`
}

func newCheck(value, limit float64) Check {
	c := Check{Calculated: value, Limit: limit, Status: "FAIL", Utilization: noResistance}
	if value <= limit {
		c.Status = "PASS"
	}
	if limit > 0 {
		c.Utilization = value / limit
	}
	return c
}

type Result struct {
	Material              string   `json:"material"`
	ChannelSpacing        float64  `json:"channel_spacing"`
	WindPressure          float64  `json:"wind_pressure"`
	Deflection            Check    `json:"deflection"`
	Stress                Check    `json:"stress"`
	OverallStatus         string   `json:"overall_status"`
	ChannelsCurrent       int      `json:"num_channels_current"`
	ChannelsRecommended   int      `json:"num_channels_recommended"`
	MaxSpacingRecommended float64  `json:"max_spacing_recommended"`
	QualityNote           string   `json:"quality_note"`
	Recommendations       []string `json:"recommendations"`
	Warnings              []string `json:"warnings"`
}

// Calculate checks a 1 m strip of panel as a simply supported span between
// channels under uniform pressure.
func Calculate(in Input) (Result, error) {
	in = in.withDefaults()
	mat, err := Lookup(in.Material)
	if err != nil {
		return Result{}, err
	}
	if in.ChannelSpacing <= 0 {
		return Result{}, validate.Positive("channel spacing", in.ChannelSpacing)
	}

	l := in.ChannelSpacing
	i := mat.IPerWidth * stripWidth
	wMod := mat.WPerWidth * stripWidth
	w := in.WindPressure / 1000 // N/mm on the strip

	delta := 5 * w * math.Pow(l, 4) / (384 * mat.E * i)
	moment := w * l * l / 8
	sigma := noSection
	if wMod > 0 {
		sigma = moment / wMod
	}

	res := Result{
		Material:       mat.Name,
		ChannelSpacing: l,
		WindPressure:   in.WindPressure,
		Deflection:     newCheck(delta, l/200),
		Stress:         newCheck(sigma, mat.Fy),
		QualityNote:    Quality(l),
		Warnings:       []string{},
	}
	deflectionOK := res.Deflection.Status == "PASS"
	stressOK := res.Stress.Status == "PASS"

	lDelta, lSigma := l, l
	if !deflectionOK {
		lDelta = SpacingForDeflection(mat, w, res.Deflection.Limit)
	}
	if !stressOK {
		lSigma = SpacingForStress(mat, w, mat.Fy)
	}
	res.MaxSpacingRecommended = math.Min(lDelta, lSigma)

	height := in.SignHeight * 1000
	res.ChannelsCurrent = Channels(height, l)
	res.ChannelsRecommended = Channels(height, res.MaxSpacingRecommended)

	res.OverallStatus = "ADEQUATE"
	if !deflectionOK {
		res.Recommendations = append(res.Recommendations, fmt.Sprintf("Deflection exceeds limit. Reduce spacing to %.0fmm or less.", lDelta))
	}
	if !stressOK {
		res.Recommendations = append(res.Recommendations, fmt.Sprintf("Stress exceeds yield. Reduce spacing to %.0fmm or less.", lSigma))
	}
	if !deflectionOK || !stressOK {
		res.OverallStatus = "INADEQUATE"
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("Recommended: %d channels (spacing ~%.0fmm)", res.ChannelsRecommended, res.MaxSpacingRecommended),
			"OR upgrade to thicker/stiffer panel material",
		)
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	return res, nil
}

// SpacingForDeflection is the span (mm) at which a strip under line load w
// (N/mm) deflects exactly deltaLimit (mm).
func SpacingForDeflection(m Material, w, deltaLimit float64) float64 {
	return math.Pow(384*m.E*m.IPerWidth*stripWidth*deltaLimit/(5*w), 0.25)
}

// SpacingForStress is the span (mm) at which the strip reaches sigmaLimit.
func SpacingForStress(m Material, w, sigmaLimit float64) float64 {
	return math.Sqrt(8 * m.WPerWidth * stripWidth * sigmaLimit / w)
}

// Channels counts channels for a sign of the given height (mm): one at each
// edge plus one per span, never fewer than two.
func Channels(height, spacing float64) int {
	n := int(math.Ceil(height/spacing)) + 1
	return max(n, 2)
}

func Quality(spacing float64) string {
	switch {
	case spacing <= 300:
		return "Highway/Professional grade construction"
	case spacing <= 450:
		return "Good quality construction"
	case spacing <= 600:
		return "Budget construction - marginal for high wind areas"
	default:
		return "Amateur construction - not recommended"
	}
}
