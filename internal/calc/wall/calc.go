// Package wall is the wall-mounted fascia sign engine: the full P394
// stage 1-25 procedure followed by a construction adequacy assessment.
package wall

import (
	"math"

	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/validate"
	"Windsign/internal/calc/warn"
)

// sentinel h/d used when the depth is zero
const noDepthRatio = 999.0

type Input struct {
	SignWidth        float64           `json:"sign_width" yaml:"sign_width"`
	SignHeight       float64           `json:"sign_height" yaml:"sign_height"`
	SignDepth        float64           `json:"sign_depth" yaml:"sign_depth"`
	BuildingHeight   float64           `json:"building_height" yaml:"building_height"` // to top of sign
	SiteAltitude     float64           `json:"site_altitude" yaml:"site_altitude"`
	VMap             float64           `json:"v_map,omitempty" yaml:"v_map"`
	Postcode         string            `json:"postcode" yaml:"postcode"`
	DistanceToShore  pressure.Distance `json:"distance_to_shore" yaml:"distance_to_shore"`
	TerrainType      string            `json:"terrain_type" yaml:"terrain_type"`
	DistanceIntoTown float64           `json:"distance_into_town" yaml:"distance_into_town"`
}

// Validate applies the request limits of the public API.
func (in Input) Validate() error {
	return validate.First(
		validate.Sign(in.SignWidth, in.SignHeight),
		validate.Site(in.SignDepth, in.BuildingHeight, in.SiteAltitude),
	)
}

type Result struct {
	pressure.Factors
	CF          float64    `json:"c_f"`
	ARef        float64    `json:"A_ref"`
	ForceN      float64    `json:"force_N"`
	ForceKN     float64    `json:"force_kN"`
	LeverArm    float64    `json:"lever_arm"`
	MomentKNm   float64    `json:"moment_kNm"`
	Warnings    []string   `json:"warnings"`
	Methodology string     `json:"methodology"`
	Reference   string     `json:"reference"`
	Version     string     `json:"version"`
	Assessment  Assessment `json:"assessment"`
}

func Calculate(in Input) (Result, error) {
	terrain, err := pressure.ParseTerrain(in.TerrainType)
	if err != nil {
		return Result{}, err
	}

	var log warn.Log
	f := pressure.Evaluate(pressure.Input{
		Width:            in.SignWidth,
		Height:           in.SignHeight,
		BuildingHeight:   in.BuildingHeight,
		Altitude:         in.SiteAltitude,
		VMap:             in.VMap,
		Postcode:         in.Postcode,
		DistanceToShore:  in.DistanceToShore.Value(),
		Terrain:          terrain,
		DistanceIntoTown: in.DistanceIntoTown,
	}, &log)

	area := in.SignWidth * in.SignHeight
	cf := ForceCoefficient(in.SignHeight, in.SignDepth, &log)
	force := f.QP * f.CS * f.CD * cf * area
	// force acts at the sign centroid
	lever := in.BuildingHeight - in.SignHeight/2

	res := Result{
		Factors:     f,
		CF:          cf,
		ARef:        area,
		ForceN:      force,
		ForceKN:     force / 1000,
		LeverArm:    lever,
		MomentKNm:   force * lever / 1000,
		Warnings:    log.List(),
		Methodology: pressure.Standard,
		Reference:   pressure.Reference,
		Version:     pressure.Version,
	}
	res.Stages = append(res.Stages,
		pressure.Stage{Symbol: "A_ref", Name: "Reference area", Value: area, Unit: "m²", Reference: "P394 Section 5.20, page 41"},
		pressure.Stage{Symbol: "c_f", Name: "Force coefficient", Value: cf, Reference: "P394 Section 5.21, Table 5.3, page 42"},
		pressure.Stage{Symbol: "F_w", Name: "Wind force", Value: res.ForceKN, Unit: "kN", Reference: "P394 Section 5.24, page 44"},
	)
	res.Assessment = Assess(res, in)
	return res, nil
}

// AspectRatio is h/d, or a large sentinel when the depth is zero.
func AspectRatio(height, depth float64) float64 {
	if depth <= 0 {
		return noDepthRatio
	}
	return height / depth
}

// ForceCoefficient is P394 Table 5.3 for cuboids. Ratios above 5 are clamped
// to 5 with a warning.
func ForceCoefficient(height, depth float64, log *warn.Log) float64 {
	r := AspectRatio(height, depth)
	if r > 5 {
		log.Add("h/d = %.2f > 5. Using c_f for h/d=5 (conservative).", r)
		r = 5
	}
	return TableCoefficient(r)
}

// TableCoefficient evaluates the Table 5.3 curve for h/d <= 5 without clamping.
func TableCoefficient(r float64) float64 {
	switch {
	case r < 0.25:
		return 0.68
	case r <= 1:
		return 0.935 + 0.1839*math.Log(r)
	default:
		return (0.8125 + 0.0375*r) * (1.1 + 0.1243*math.Log(r))
	}
}
