// Package projecting checks signs cantilevered off a wall on brackets:
// EN 1991-1-4 peak pressure, bracket forces, anchors, bracket stresses and
// tip deflection.
package projecting

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"Windsign/internal/calc/validate"
	"Windsign/internal/calc/warn"
)

const (
	AirDensity   = 1.25     // kg/m³, EN 1991-1-4 recommended value
	SteelModulus = 210000.0 // N/mm²
	Methodology  = "EN 1991-1-4:2005"
	Version      = "1.0.0"

	flatPlateCoefficient = 2.0
	gammaG               = 1.35
	gammaQ               = 1.5
	gammaM0              = 1.0

	// returned instead of dividing by zero so the check reports FAIL
	noResistance = 999.0
	noSection    = 999999.0
)

var ErrUnknownTerrain = errors.New("unknown terrain category")

type TerrainCategory struct {
	Z0          float64 `json:"z_0"`
	ZMin        float64 `json:"z_min"`
	KR          float64 `json:"k_r"`
	Description string  `json:"description"`
}

// EN 1991-1-4 Table 4.1
var terrains = map[string]TerrainCategory{
	"0":   {0.003, 1, 0.17, "Sea or coastal area"},
	"II":  {0.05, 2, 0.19, "Low vegetation, isolated obstacles"},
	"III": {0.3, 5, 0.22, "Suburban/industrial"},
	"IV":  {1.0, 10, 0.24, "Urban centres"},
}

func Terrain(category string) (TerrainCategory, error) {
	tc, ok := terrains[strings.ToUpper(strings.TrimSpace(category))]
	if !ok {
		return TerrainCategory{}, fmt.Errorf("%w: %q", ErrUnknownTerrain, category)
	}
	return tc, nil
}

type Input struct {
	SignWidth         float64 `json:"sign_width" yaml:"sign_width"`             // m, parallel to wall
	SignHeight        float64 `json:"sign_height" yaml:"sign_height"`           // m
	Projection        float64 `json:"projection" yaml:"projection"`             // m, wall to sign centroid
	MountingHeight    float64 `json:"mounting_height" yaml:"mounting_height"`   // m, to sign centroid
	TerrainCategory   string  `json:"terrain_category" yaml:"terrain_category"` // 0, II, III, IV
	VB0               float64 `json:"v_b_0" yaml:"v_b_0"`
	CDir              float64 `json:"c_dir" yaml:"c_dir"`
	CSeason           float64 `json:"c_season" yaml:"c_season"`
	SignWeight        float64 `json:"sign_weight" yaml:"sign_weight"` // kN
	Brackets          int     `json:"n_brackets" yaml:"n_brackets"`
	BracketSpacing    float64 `json:"bracket_spacing" yaml:"bracket_spacing"` // m
	FixingsPerBracket int     `json:"n_fixings_per_bracket" yaml:"n_fixings_per_bracket"`
	FixingPitch       float64 `json:"fixing_pitch_vertical" yaml:"fixing_pitch_vertical"`     // m
	AnchorTension     float64 `json:"anchor_tension_capacity" yaml:"anchor_tension_capacity"` // N_Rk, kN
	AnchorShear       float64 `json:"anchor_shear_capacity" yaml:"anchor_shear_capacity"`     // V_Rk, kN
	AnchorGammaM      float64 `json:"anchor_gamma_M" yaml:"anchor_gamma_M"`
	BracketWidthMM    float64 `json:"bracket_width" yaml:"bracket_width"`
	BracketDepthMM    float64 `json:"bracket_depth" yaml:"bracket_depth"`
	BracketThickMM    float64 `json:"bracket_thickness" yaml:"bracket_thickness"`
	BracketFy         float64 `json:"bracket_steel_grade" yaml:"bracket_steel_grade"` // N/mm²
}

// Validate rejects geometry the engine cannot check. Zero counts and factors
// are allowed and take their defaults.
func (in Input) Validate() error {
	return validate.First(
		validate.Sign(in.SignWidth, in.SignHeight),
		validate.Positive("projection", in.Projection),
		validate.Closed("mounting height", in.MountingHeight, 0, 200, "meters"),
		validate.Positive("basic wind velocity", in.VB0),
		validate.Closed("sign weight", in.SignWeight, 0, 100, "kN"),
		validate.Closed("number of brackets", float64(in.Brackets), 0, 20, "brackets"),
		validate.Closed("fixings per bracket", float64(in.FixingsPerBracket), 0, 20, "fixings"),
		validate.Positive("anchor tension capacity", in.AnchorTension),
		validate.Positive("anchor shear capacity", in.AnchorShear),
		validate.Positive("bracket width", in.BracketWidthMM),
		validate.Positive("bracket depth", in.BracketDepthMM),
		validate.Open("bracket thickness", in.BracketThickMM, 0, in.BracketDepthMM/2, "mm"),
		validate.Positive("bracket steel grade", in.BracketFy),
	)
}

// withDefaults fills the fields whose zero value cannot be meant literally.
func (in Input) withDefaults() Input {
	if in.TerrainCategory == "" {
		in.TerrainCategory = "III"
	}
	if in.CDir == 0 {
		in.CDir = 1
	}
	if in.CSeason == 0 {
		in.CSeason = 1
	}
	if in.Brackets == 0 {
		in.Brackets = 2
	}
	if in.BracketSpacing == 0 {
		in.BracketSpacing = 1.0
	}
	if in.FixingsPerBracket == 0 {
		in.FixingsPerBracket = 4
	}
	if in.FixingPitch == 0 {
		in.FixingPitch = 0.15
	}
	if in.AnchorGammaM == 0 {
		in.AnchorGammaM = 1.5
	}
	return in
}

type Result struct {
	SignType           string  `json:"sign_type"`
	SignArea           float64 `json:"sign_area"`
	Projection         float64 `json:"projection"`
	MountingHeight     float64 `json:"mounting_height"`
	Terrain            string  `json:"terrain"`
	TerrainDescription string  `json:"terrain_description"`

	VB    float64 `json:"v_b"`
	VBRef string  `json:"v_b_ref"`
	ZEff  float64 `json:"z_eff"`
	CR    float64 `json:"c_r"`
	CRRef string  `json:"c_r_ref"`
	IV    float64 `json:"I_v"`
	IVRef string  `json:"I_v_ref"`
	VM    float64 `json:"v_m"`
	VMRef string  `json:"v_m_ref"`
	QPPa  float64 `json:"q_p_Pa"`
	QP    float64 `json:"q_p"` // kN/m²
	QPRef string  `json:"q_p_ref"`

	CF      float64 `json:"c_f"`
	CFRef   string  `json:"c_f_ref"`
	FWk     float64 `json:"F_w_k"`
	FWkRef  string  `json:"F_w_k_ref"`
	FWEd    float64 `json:"F_w_Ed"`
	FWEdRef string  `json:"F_w_Ed_ref"`
	GEd     float64 `json:"G_Ed"`

	BracketForces   BracketForces   `json:"bracket_forces"`
	AnchorCheck     AnchorCheck     `json:"anchor_check"`
	BracketCheck    BracketCheck    `json:"bracket_check"`
	DeflectionCheck DeflectionCheck `json:"deflection_check"`

	OverallPass   bool     `json:"overall_pass"`
	OverallStatus string   `json:"overall_status"`
	Warnings      []string `json:"warnings"`
	Methodology   string   `json:"methodology"`
	Version       string   `json:"version"`
}

func Calculate(in Input) (Result, error) {
	in = in.withDefaults()
	tc, err := Terrain(in.TerrainCategory)
	if err != nil {
		return Result{}, err
	}
	var log warn.Log

	vb := in.VB0 * in.CDir * in.CSeason
	zEff := math.Max(in.MountingHeight, tc.ZMin)
	cr := RoughnessFactor(zEff, tc.Z0, tc.KR)
	iv := TurbulenceIntensity(zEff, tc.Z0)
	vm := cr * vb // c_o = 1, flat terrain
	qpPa := PeakPressure(vm, iv)
	qp := qpPa / 1000

	area := in.SignWidth * in.SignHeight
	fwk := flatPlateCoefficient * qp * area
	gEd := gammaG * in.SignWeight
	fEd := gammaQ * fwk

	bf := Brackets(fEd, in.Projection, in.Brackets, in.BracketSpacing, gEd, &log)
	ac := Anchors(bf, in.FixingsPerBracket, in.FixingPitch, in.AnchorTension, in.AnchorShear, in.AnchorGammaM)
	bc := BracketStresses(bf.VPerBracket, in.Projection, RHS{in.BracketWidthMM, in.BracketDepthMM, in.BracketThickMM}, in.BracketFy)
	dc := Deflection(fwk, in.Brackets, in.Projection, SteelModulus, bc.I)

	pass := ac.EtaCombined <= 1 && bc.EtaBending <= 1 && bc.EtaShear <= 1 && dc.EtaDeflection <= 1
	status := "INADEQUATE"
	if pass {
		status = "ADEQUATE"
	}

	return Result{
		SignType:           "projecting",
		SignArea:           area,
		Projection:         in.Projection,
		MountingHeight:     in.MountingHeight,
		Terrain:            strings.ToUpper(strings.TrimSpace(in.TerrainCategory)),
		TerrainDescription: tc.Description,

		VB:    vb,
		VBRef: "EN 1991-1-4 §4.2",
		ZEff:  zEff,
		CR:    cr,
		CRRef: "EN 1991-1-4 Eq 4.4",
		IV:    iv,
		IVRef: "EN 1991-1-4 Eq 4.7",
		VM:    vm,
		VMRef: "EN 1991-1-4 Eq 4.3",
		QPPa:  qpPa,
		QP:    qp,
		QPRef: "EN 1991-1-4 Eq 4.8",

		CF:      flatPlateCoefficient,
		CFRef:   "EN 1991-1-4 Table 7.13",
		FWk:     fwk,
		FWkRef:  "EN 1991-1-4 Eq 5.3",
		FWEd:    fEd,
		FWEdRef: "EN 1990 §6.4.3",
		GEd:     gEd,

		BracketForces:   bf,
		AnchorCheck:     ac,
		BracketCheck:    bc,
		DeflectionCheck: dc,

		OverallPass:   pass,
		OverallStatus: status,
		Warnings:      log.List(),
		Methodology:   Methodology,
		Version:       Version,
	}, nil
}

// RoughnessFactor is EN 1991-1-4 Eq 4.4.
func RoughnessFactor(z, z0, kr float64) float64 {
	return kr * math.Log(z/z0)
}

// TurbulenceIntensity is Eq 4.7 with k_I = c_o = 1.
func TurbulenceIntensity(z, z0 float64) float64 {
	return 1 / math.Log(z/z0)
}

// PeakPressure is Eq 4.8 in Pa.
func PeakPressure(vm, iv float64) float64 {
	return 0.5 * AirDensity * vm * vm * (1 + 7*iv)
}
