package post

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrUnknownMaterial = errors.New("unknown post material")
	ErrUnknownSection  = errors.New("unknown post section type")
)

const (
	Circular = "circular"
	Square   = "square"

	Steel     = "steel"
	Aluminium = "aluminium"
	Timber    = "timber"

	noSection    = 999999.0
	noResistance = 999.0
)

// Properties of a post cross-section in mm units.
type Properties struct {
	I     float64 `json:"I"`    // mm⁴
	WEl   float64 `json:"W_el"` // mm³
	Area  float64 `json:"A"`    // mm²
	Solid bool    `json:"solid"`
}

// SectionProperties returns I, W and A for a post of outer size (diameter or
// width) and wall thickness t. Solid sections ignore t. A section with no
// size has zero properties.
func SectionProperties(sectionType string, solid bool, size, t float64) (Properties, error) {
	p := Properties{Solid: solid}
	if size <= 0 && (sectionType == Square || sectionType == Circular) {
		return p, nil
	}
	switch sectionType {
	case Square:
		if solid {
			p.I = math.Pow(size, 4) / 12
			p.WEl = math.Pow(size, 3) / 6
			p.Area = size * size
			break
		}
		bi := size - 2*t
		p.I = (math.Pow(size, 4) - math.Pow(bi, 4)) / 12
		p.WEl = p.I / (size / 2)
		p.Area = size*size - bi*bi
	case Circular:
		if solid {
			p.I = math.Pi * math.Pow(size, 4) / 64
			p.WEl = math.Pi * math.Pow(size, 3) / 32
			p.Area = math.Pi * size * size / 4
			break
		}
		di := size - 2*t
		p.I = math.Pi * (math.Pow(size, 4) - math.Pow(di, 4)) / 64
		p.WEl = p.I / (size / 2)
		p.Area = math.Pi * (size*size - di*di) / 4
	default:
		return Properties{}, fmt.Errorf("%w: %q", ErrUnknownSection, sectionType)
	}
	return p, nil
}

// Resistance returns the design bending and shear strengths (N/mm²) for a
// nominal strength fy. Timber uses k_mod 0.9 and f_v,k 4.0 (C24).
func Resistance(material string, fy float64) (sigmaRd, tauRd float64, err error) {
	switch material {
	case Steel:
		const gammaM0 = 1.0
		return fy / gammaM0, fy / math.Sqrt(3) / gammaM0, nil
	case Aluminium:
		const gammaM1 = 1.1
		return fy / gammaM1, fy / math.Sqrt(3) / gammaM1, nil
	case Timber:
		const gammaM, kMod, fvk = 1.3, 0.9, 4.0
		return fy * kMod / gammaM, fvk * kMod / gammaM, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
}

type PostCheck struct {
	Properties
	Section       string  `json:"section_type"`
	Material      string  `json:"material"`
	SigmaEd       float64 `json:"sigma_Ed"`
	SigmaRd       float64 `json:"sigma_Rd"`
	EtaBending    float64 `json:"eta_bending"`
	TauEd         float64 `json:"tau_Ed"`
	TauRd         float64 `json:"tau_Rd"`
	EtaShear      float64 `json:"eta_shear"`
	BendingStatus string  `json:"bending_status"`
	ShearStatus   string  `json:"shear_status"`
}

// CheckPost verifies the post at ground level under moment m (kNm) and
// shear f (kN). Only timber posts are treated as solid.
func CheckPost(m, f, size, t, fy float64, sectionType, material string) (PostCheck, error) {
	sigmaRd, tauRd, err := Resistance(material, fy)
	if err != nil {
		return PostCheck{}, err
	}
	props, err := SectionProperties(sectionType, material == Timber, size, t)
	if err != nil {
		return PostCheck{}, err
	}

	pc := PostCheck{
		Properties: props,
		Section:    sectionType,
		Material:   material,
		SigmaEd:    noSection,
		SigmaRd:    sigmaRd,
		TauEd:      noSection,
		TauRd:      tauRd,
	}
	if props.WEl > 0 {
		pc.SigmaEd = m * 1e6 / props.WEl
	}
	if props.Area > 0 {
		pc.TauEd = f * 1000 / props.Area
	}
	pc.EtaBending = ratio(pc.SigmaEd, pc.SigmaRd)
	pc.EtaShear = ratio(pc.TauEd, pc.TauRd)
	pc.BendingStatus = status(pc.EtaBending)
	pc.ShearStatus = status(pc.EtaShear)
	return pc, nil
}

func ratio(demand, resistance float64) float64 {
	if resistance > 0 {
		return demand / resistance
	}
	return noResistance
}

func status(eta float64) string {
	if eta <= 1 {
		return "PASS"
	}
	return "FAIL"
}
