// Package post sizes free-standing signs on one post: sign and post wind
// forces, overturning moment, post stresses and an indicative foundation
// check.
package post

import (
	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/validate"
	"Windsign/internal/calc/wall"
	"Windsign/internal/calc/warn"
)

const (
	SignType = "post_mounted"

	freeStandingFactor = 1.1
	circularPostCf     = 0.7 // P394 Table 5.4
	squarePostCf       = 2.0 // sharp-edged
)

type Input struct {
	SignWidth        float64           `json:"sign_width" yaml:"sign_width"`
	SignHeight       float64           `json:"sign_height" yaml:"sign_height"`
	SignDepth        float64           `json:"sign_depth" yaml:"sign_depth"`
	SignBaseHeight   float64           `json:"sign_base_height" yaml:"sign_base_height"` // ground to sign bottom
	PostHeight       float64           `json:"post_height" yaml:"post_height"`           // 0 means up to the sign top
	SiteAltitude     float64           `json:"site_altitude" yaml:"site_altitude"`
	VMap             float64           `json:"v_map" yaml:"v_map"`
	Postcode         string            `json:"postcode,omitempty" yaml:"postcode"`
	DistanceToShore  pressure.Distance `json:"distance_to_shore" yaml:"distance_to_shore"`
	TerrainType      string            `json:"terrain_type" yaml:"terrain_type"`
	DistanceIntoTown float64           `json:"distance_into_town" yaml:"distance_into_town"`
	PostDiameter     *float64          `json:"post_diameter" yaml:"post_diameter"`   // mm, diameter or width; nil skips the post check
	PostThickness    float64           `json:"post_thickness" yaml:"post_thickness"` // mm
	PostSection      string            `json:"post_section_type" yaml:"post_section_type"`
	PostMaterial     string            `json:"post_material" yaml:"post_material"`
	PostFy           float64           `json:"post_steel_grade" yaml:"post_steel_grade"` // N/mm², bending strength for timber
	FoundationType   string            `json:"foundation_type" yaml:"foundation_type"`
	EmbedmentDepth   *float64          `json:"embedment_depth" yaml:"embedment_depth"` // m, nil skips the foundation check
}

func (in Input) Validate() error {
	errs := []error{
		validate.Sign(in.SignWidth, in.SignHeight),
		validate.Open("sign depth", in.SignDepth, 0, 10, "meters"),
		validate.Closed("sign base height", in.SignBaseHeight, 0, 200, "meters"),
		validate.Closed("post height", in.PostHeight, 0, 200, "meters"),
		validate.Closed("altitude", in.SiteAltitude, 0, 2000, "meters"),
	}
	if d := in.PostDiameter; d != nil {
		errs = append(errs,
			validate.Closed("post diameter", *d, 0, 2000, "mm"),
			validate.Closed("post thickness", in.PostThickness, 0, *d/2, "mm"),
		)
	}
	if e := in.EmbedmentDepth; e != nil {
		errs = append(errs, validate.Closed("embedment depth", *e, 0, 10, "meters"))
	}
	return validate.First(errs...)
}

func (in Input) withDefaults() Input {
	if in.PostHeight == 0 {
		in.PostHeight = in.SignBaseHeight + in.SignHeight
	}
	if in.PostSection == "" {
		in.PostSection = Circular
	}
	if in.PostMaterial == "" {
		in.PostMaterial = Steel
	}
	if in.PostFy == 0 {
		in.PostFy = 275
	}
	if in.FoundationType == "" {
		in.FoundationType = Concrete
	}
	return in
}

type Result struct {
	pressure.Factors
	SignType  string  `json:"sign_type"`
	CF        float64 `json:"c_f"`
	CFRef     string  `json:"c_f_ref"`
	ARef      float64 `json:"A_ref"`
	ZCentroid float64 `json:"z_centroid"`
	ZTop      float64 `json:"z_top"`

	CFPost float64 `json:"c_f_post"`
	APost  float64 `json:"A_post"`
	QPPost float64 `json:"q_p_post"`

	FSign   float64 `json:"F_w_sign"`
	FPost   float64 `json:"F_w_post"`
	ForceN  float64 `json:"force_N"`
	ForceKN float64 `json:"force_kN"`

	MSign     float64 `json:"M_sign"`
	MPost     float64 `json:"M_post"`
	MTotal    float64 `json:"M_total"`
	MomentKNm float64 `json:"moment_kNm"`

	PostCheck       *PostCheck       `json:"post_check"`
	FoundationCheck *FoundationCheck `json:"foundation_check"`

	OverallPass   bool     `json:"overall_pass"`
	OverallStatus string   `json:"overall_status"`
	Warnings      []string `json:"warnings"`
	Methodology   string   `json:"methodology"`
	Reference     string   `json:"reference"`
	Version       string   `json:"version"`
}

func Calculate(in Input) (Result, error) {
	in = in.withDefaults()
	terrain, err := pressure.ParseTerrain(in.TerrainType)
	if err != nil {
		return Result{}, err
	}
	// fail on bad keys before doing any work
	if _, _, err := Resistance(in.PostMaterial, in.PostFy); err != nil {
		return Result{}, err
	}
	if in.EmbedmentDepth != nil {
		if _, err := CheckFoundation(0, *in.EmbedmentDepth, in.FoundationType); err != nil {
			return Result{}, err
		}
	}
	postCf, err := postCoefficient(in.PostSection)
	if err != nil {
		return Result{}, err
	}

	var log warn.Log
	zTop := in.SignBaseHeight + in.SignHeight
	zCentroid := in.SignBaseHeight + in.SignHeight/2
	site := pressure.Input{
		Width:            in.SignWidth,
		Height:           in.SignHeight,
		BuildingHeight:   zCentroid,
		Altitude:         in.SiteAltitude,
		VMap:             in.VMap,
		Postcode:         in.Postcode,
		DistanceToShore:  in.DistanceToShore.Value(),
		Terrain:          terrain,
		DistanceIntoTown: in.DistanceIntoTown,
	}
	f := pressure.Evaluate(site, &log)

	area := in.SignWidth * in.SignHeight
	cf := FreeStandingCoefficient(in.SignHeight, in.SignDepth, &log)
	fSign := f.QP * f.CS * f.CD * cf * area / 1000

	res := Result{
		Factors:     f,
		SignType:    SignType,
		CF:          cf,
		CFRef:       "P394 Table 5.3 (free-standing)",
		ARef:        area,
		ZCentroid:   zCentroid,
		ZTop:        zTop,
		FSign:       fSign,
		Methodology: pressure.Standard,
		Reference:   pressure.Reference,
		Version:     pressure.Version,
	}

	if in.PostDiameter != nil {
		size := *in.PostDiameter / 1000
		// mean pressure over the post taken at mid-height
		postSite := site
		postSite.BuildingHeight = in.PostHeight / 2
		pf := pressure.Evaluate(postSite, &log)
		res.CFPost = postCf
		res.APost = size * in.PostHeight
		res.QPPost = pf.QP
		res.FPost = pf.QP * postCf * res.APost / 1000
	} else {
		log.Add("Post diameter not specified - post wind force neglected")
	}

	total := res.FSign + res.FPost
	res.ForceKN = total
	res.ForceN = total * 1000
	res.MSign = res.FSign * zCentroid
	res.MPost = res.FPost * in.PostHeight / 2
	res.MTotal = res.MSign + res.MPost
	res.MomentKNm = res.MTotal

	pass := true
	// a supplied zero size or depth is checked, and fails
	if in.PostDiameter != nil {
		pc, err := CheckPost(res.MTotal, total, *in.PostDiameter, in.PostThickness, in.PostFy, in.PostSection, in.PostMaterial)
		if err != nil {
			return Result{}, err
		}
		res.PostCheck = &pc
		pass = pc.BendingStatus == "PASS"
	}
	if in.EmbedmentDepth != nil {
		fc, err := CheckFoundation(res.MTotal, *in.EmbedmentDepth, in.FoundationType)
		if err != nil {
			return Result{}, err
		}
		res.FoundationCheck = &fc
		pass = pass && fc.Status == FoundationAdequate
	}

	res.OverallPass = pass
	res.OverallStatus = "REQUIRES REVIEW"
	if pass {
		res.OverallStatus = "ADEQUATE"
	}
	res.Stages = append(res.Stages,
		pressure.Stage{Symbol: "A_ref", Name: "Reference area", Value: area, Unit: "m²", Reference: "P394 Section 5.20, page 41"},
		pressure.Stage{Symbol: "c_f", Name: "Force coefficient (free-standing)", Value: cf, Reference: "P394 Section 5.21, Table 5.3, page 42"},
		pressure.Stage{Symbol: "F_w", Name: "Wind force", Value: total, Unit: "kN", Reference: "P394 Section 5.24, page 44"},
	)
	res.Warnings = log.List()
	return res, nil
}

// FreeStandingCoefficient is the Table 5.3 curve raised by 10% for a sign
// open on both faces. Beyond h/d = 5 it is the flat 1.1.
func FreeStandingCoefficient(height, depth float64, log *warn.Log) float64 {
	r := wall.AspectRatio(height, depth)
	if r > 5 {
		log.Add("h/d = %.2f > 5. Using conservative c_f.", r)
		return freeStandingFactor
	}
	return wall.TableCoefficient(r) * freeStandingFactor
}

func postCoefficient(sectionType string) (float64, error) {
	switch sectionType {
	case Circular:
		return circularPostCf, nil
	case Square:
		return squarePostCf, nil
	}
	_, err := SectionProperties(sectionType, false, 0, 0)
	return 0, err
}
