// Package loads is the single wind-loading entry point: it validates a
// flat request, routes it to the engine for its sign type and returns a
// rounded summary.
package loads

import (
	"errors"
	"fmt"
	"math"

	"Windsign/internal/calc/post"
	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/projecting"
	"Windsign/internal/calc/validate"
	"Windsign/internal/calc/wall"
)

var (
	ErrMissingField    = errors.New("missing required field")
	ErrUnknownSignType = errors.New("unknown sign type")
)

const (
	WallMounted = wall.SignType
	Projecting  = projecting.SignType
	PostMounted = post.SignType
)

// Request mirrors the public API body. Optional fields are pointers so that
// an explicit zero can be told apart from an omitted value.
type Request struct {
	SignType         string            `json:"sign_type" yaml:"sign_type"`
	SignWidth        *float64          `json:"sign_width" yaml:"sign_width"`
	SignHeight       *float64          `json:"sign_height" yaml:"sign_height"`
	SignDepth        *float64          `json:"sign_depth" yaml:"sign_depth"`
	BuildingHeight   *float64          `json:"building_height" yaml:"building_height"`
	Altitude         *float64          `json:"altitude" yaml:"altitude"`
	Postcode         string            `json:"postcode" yaml:"postcode"`
	VMap             *float64          `json:"v_map" yaml:"v_map"`
	DistanceToShore  pressure.Distance `json:"distance_to_shore" yaml:"distance_to_shore"`
	TerrainType      string            `json:"terrain_type" yaml:"terrain_type"`
	DistanceIntoTown float64           `json:"distance_into_town" yaml:"distance_into_town"`

	// projecting
	Projection        *float64 `json:"projection" yaml:"projection"`
	MountingHeight    *float64 `json:"mounting_height" yaml:"mounting_height"`
	TerrainCategory   string   `json:"terrain_category" yaml:"terrain_category"`
	SignWeight        *float64 `json:"sign_weight" yaml:"sign_weight"`
	Brackets          *int     `json:"n_brackets" yaml:"n_brackets"`
	BracketSpacing    *float64 `json:"bracket_spacing" yaml:"bracket_spacing"`
	FixingsPerBracket *int     `json:"n_fixings_per_bracket" yaml:"n_fixings_per_bracket"`
	FixingPitch       *float64 `json:"fixing_pitch_vertical" yaml:"fixing_pitch_vertical"`
	AnchorTension     *float64 `json:"anchor_tension_capacity" yaml:"anchor_tension_capacity"`
	AnchorShear       *float64 `json:"anchor_shear_capacity" yaml:"anchor_shear_capacity"`
	AnchorGammaM      *float64 `json:"anchor_gamma_M" yaml:"anchor_gamma_M"`
	BracketWidth      *float64 `json:"bracket_width" yaml:"bracket_width"`
	BracketDepth      *float64 `json:"bracket_depth" yaml:"bracket_depth"`
	BracketThickness  *float64 `json:"bracket_thickness" yaml:"bracket_thickness"`
	BracketSteelGrade *float64 `json:"bracket_steel_grade" yaml:"bracket_steel_grade"`

	// post mounted
	SignBaseHeight *float64 `json:"sign_base_height" yaml:"sign_base_height"`
	PostHeight     *float64 `json:"post_height" yaml:"post_height"`
	PostDiameter   *float64 `json:"post_diameter" yaml:"post_diameter"`
	PostThickness  *float64 `json:"post_thickness" yaml:"post_thickness"`
	PostSection    string   `json:"post_section_type" yaml:"post_section_type"`
	PostMaterial   string   `json:"post_material" yaml:"post_material"`
	PostSteelGrade *float64 `json:"post_steel_grade" yaml:"post_steel_grade"`
	FoundationType string   `json:"foundation_type" yaml:"foundation_type"`
	EmbedmentDepth *float64 `json:"embedment_depth" yaml:"embedment_depth"`
}

func or[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Validate checks the fields every sign type needs.
func (r Request) Validate() error {
	required := []struct {
		name string
		v    *float64
	}{
		{"sign_width", r.SignWidth},
		{"sign_height", r.SignHeight},
		{"sign_depth", r.SignDepth},
		{"building_height", r.BuildingHeight},
		{"altitude", r.Altitude},
	}
	for _, f := range required {
		if f.v == nil {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return validate.First(
		validate.Sign(*r.SignWidth, *r.SignHeight),
		validate.Site(*r.SignDepth, *r.BuildingHeight, *r.Altitude),
	)
}

type Summary struct {
	VMap float64  `json:"v_map"`
	CAlt float64  `json:"c_alt"`
	CDir *float64 `json:"c_dir,omitempty"`
	CE   *float64 `json:"c_e,omitempty"`
	CET  *float64 `json:"c_e_T,omitempty"`
	CO   *float64 `json:"c_o,omitempty"`
	CS   *float64 `json:"c_s,omitempty"`
	CD   *float64 `json:"c_d,omitempty"`
	CF   float64  `json:"c_f"`
	Zone string   `json:"zone,omitempty"`
	ARef float64  `json:"A_ref"`
}

type Response struct {
	SignType          string   `json:"sign_type"`
	PeakPressure      float64  `json:"peak_pressure"` // Pa
	WindForce         float64  `json:"wind_force"`    // kN
	DesignWindSpeed   *float64 `json:"design_wind_speed,omitempty"`
	OverturningMoment *float64 `json:"overturning_moment,omitempty"`
	DesignWindForce   *float64 `json:"design_wind_force,omitempty"`
	OverallStatus     string   `json:"overall_status,omitempty"`
	Summary           *Summary `json:"calculation_summary,omitempty"`

	Assessment      *wall.Assessment            `json:"assessment,omitempty"`
	BracketForces   *projecting.BracketForces   `json:"bracket_forces,omitempty"`
	AnchorCheck     *projecting.AnchorCheck     `json:"anchor_check,omitempty"`
	BracketCheck    *projecting.BracketCheck    `json:"bracket_check,omitempty"`
	DeflectionCheck *projecting.DeflectionCheck `json:"deflection_check,omitempty"`
	PostCheck       *post.PostCheck             `json:"post_check,omitempty"`
	FoundationCheck *post.FoundationCheck       `json:"foundation_check,omitempty"`

	Warnings    []string `json:"warnings"`
	Methodology string   `json:"methodology"`
	Reference   string   `json:"reference"`
	Version     string   `json:"version"`
}

// Calculate runs an already validated request.
func Calculate(r Request) (Response, error) {
	switch st := orString(r.SignType, WallMounted); st {
	case WallMounted:
		return wallMounted(r)
	case Projecting:
		return projectingSign(r)
	case PostMounted:
		return postMounted(r)
	default:
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownSignType, st)
	}
}

func wallMounted(r Request) (Response, error) {
	res, err := wall.Calculate(wall.Input{
		SignWidth:        *r.SignWidth,
		SignHeight:       *r.SignHeight,
		SignDepth:        *r.SignDepth,
		BuildingHeight:   *r.BuildingHeight,
		SiteAltitude:     *r.Altitude,
		VMap:             or(r.VMap, 0),
		Postcode:         r.Postcode,
		DistanceToShore:  r.DistanceToShore,
		TerrainType:      orString(r.TerrainType, string(pressure.TerrainCountry)),
		DistanceIntoTown: r.DistanceIntoTown,
	})
	if err != nil {
		return Response{}, err
	}
	return Response{
		SignType:          WallMounted,
		PeakPressure:      round(res.QP, 1),
		WindForce:         round(res.ForceKN, 2),
		DesignWindSpeed:   ptr(round(res.DesignWindSpeed, 2)),
		OverturningMoment: ptr(round(res.MomentKNm, 2)),
		Summary: &Summary{
			VMap: round(res.VMap, 1),
			CAlt: round(res.CAlt, 3),
			CDir: ptr(round(res.CDir, 2)),
			CE:   ptr(round(res.CE, 3)),
			CET:  ptr(round(res.CET, 3)),
			CO:   ptr(round(res.CO, 2)),
			CS:   ptr(round(res.CS, 3)),
			CD:   ptr(round(res.CD, 3)),
			CF:   round(res.CF, 3),
			Zone: string(res.Zone),
			ARef: round(res.ARef, 2),
		},
		Assessment:  &res.Assessment,
		Warnings:    res.Warnings,
		Methodology: res.Methodology,
		Reference:   res.Reference,
		Version:     res.Version,
	}, nil
}

func projectingSign(r Request) (Response, error) {
	res, err := projecting.Calculate(projecting.Input{
		SignWidth:         *r.SignWidth,
		SignHeight:        *r.SignHeight,
		Projection:        or(r.Projection, 0.5),
		MountingHeight:    or(r.MountingHeight, *r.BuildingHeight),
		TerrainCategory:   orString(r.TerrainCategory, "III"),
		VB0:               or(r.VMap, 22.5),
		SignWeight:        or(r.SignWeight, 0.15),
		Brackets:          or(r.Brackets, 2),
		BracketSpacing:    or(r.BracketSpacing, 1.0),
		FixingsPerBracket: or(r.FixingsPerBracket, 4),
		FixingPitch:       or(r.FixingPitch, 0.15),
		AnchorTension:     or(r.AnchorTension, 12.0),
		AnchorShear:       or(r.AnchorShear, 8.0),
		AnchorGammaM:      or(r.AnchorGammaM, 1.5),
		BracketWidthMM:    or(r.BracketWidth, 80),
		BracketDepthMM:    or(r.BracketDepth, 60),
		BracketThickMM:    or(r.BracketThickness, 5),
		BracketFy:         or(r.BracketSteelGrade, 275),
	})
	if err != nil {
		return Response{}, err
	}
	return Response{
		SignType:        Projecting,
		PeakPressure:    round(res.QPPa, 1),
		WindForce:       round(res.FWk, 2),
		DesignWindForce: ptr(round(res.FWEd, 2)),
		OverallStatus:   res.OverallStatus,
		BracketForces:   &res.BracketForces,
		AnchorCheck:     &res.AnchorCheck,
		BracketCheck:    &res.BracketCheck,
		DeflectionCheck: &res.DeflectionCheck,
		Warnings:        res.Warnings,
		Methodology:     res.Methodology,
		Reference:       res.Methodology,
		Version:         res.Version,
	}, nil
}

func postMounted(r Request) (Response, error) {
	res, err := post.Calculate(post.Input{
		SignWidth:        *r.SignWidth,
		SignHeight:       *r.SignHeight,
		SignDepth:        *r.SignDepth,
		SignBaseHeight:   or(r.SignBaseHeight, 2.0),
		PostHeight:       or(r.PostHeight, *r.BuildingHeight),
		SiteAltitude:     *r.Altitude,
		VMap:             or(r.VMap, 22.5),
		Postcode:         r.Postcode,
		DistanceToShore:  r.DistanceToShore,
		TerrainType:      orString(r.TerrainType, string(pressure.TerrainCountry)),
		DistanceIntoTown: r.DistanceIntoTown,
		PostDiameter:     ptr(or(r.PostDiameter, 150)),
		PostThickness:    or(r.PostThickness, 8),
		PostSection:      orString(r.PostSection, post.Circular),
		PostMaterial:     orString(r.PostMaterial, post.Steel),
		PostFy:           or(r.PostSteelGrade, 275),
		FoundationType:   orString(r.FoundationType, post.Concrete),
		EmbedmentDepth:   ptr(or(r.EmbedmentDepth, 1.5)),
	})
	if err != nil {
		return Response{}, err
	}
	return Response{
		SignType:          PostMounted,
		PeakPressure:      round(res.QP, 1),
		WindForce:         round(res.ForceKN, 2),
		DesignWindSpeed:   ptr(round(res.DesignWindSpeed, 2)),
		OverturningMoment: ptr(round(res.MomentKNm, 2)),
		OverallStatus:     res.OverallStatus,
		Summary: &Summary{
			VMap: round(res.VMap, 1),
			CAlt: round(res.CAlt, 3),
			CF:   round(res.CF, 3),
			ARef: round(res.ARef, 2),
		},
		PostCheck:       res.PostCheck,
		FoundationCheck: res.FoundationCheck,
		Warnings:        res.Warnings,
		Methodology:     res.Methodology,
		Reference:       res.Reference,
		Version:         res.Version,
	}, nil
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func ptr[T any](v T) *T { return &v }
