package projecting

import (
	"math"

	"Windsign/internal/calc/warn"
)

func status(eta float64) string {
	if eta <= 1 {
		return "PASS"
	}
	return "FAIL"
}

func ratio(demand, resistance float64) float64 {
	if resistance > 0 {
		return demand / resistance
	}
	return noResistance
}

type BracketForces struct {
	VPerBracket float64 `json:"V_per_bracket"` // kN
	MWall       float64 `json:"M_wall"`        // kNm
	MPerBracket float64 `json:"M_per_bracket"` // kNm
	NVertical   float64 `json:"N_vertical"`    // kN
	NMoment     float64 `json:"N_moment"`      // kN
	NTensionMax float64 `json:"N_tension_max"` // kN
}

// Brackets shares the design wind force equally between n brackets. The
// wall moment is resisted as a couple over the bracket spacing.
func Brackets(fEd, projection float64, n int, spacing, gEd float64, log *warn.Log) BracketForces {
	bf := BracketForces{
		VPerBracket: fEd / float64(n),
		MWall:       fEd * projection,
		NVertical:   gEd / float64(n),
	}
	bf.MPerBracket = bf.VPerBracket * projection
	if n >= 2 {
		bf.NMoment = bf.MWall / spacing
	} else {
		log.Add("Single bracket: no moment couple resistance")
	}
	bf.NTensionMax = bf.NMoment + bf.NVertical
	return bf
}

type AnchorCheck struct {
	NEd            float64 `json:"N_Ed"`
	VEd            float64 `json:"V_Ed"`
	NRd            float64 `json:"N_Rd"`
	VRd            float64 `json:"V_Rd"`
	EtaTension     float64 `json:"eta_tension"`
	EtaShear       float64 `json:"eta_shear"`
	EtaCombined    float64 `json:"eta_combined"`
	TensionStatus  string  `json:"tension_status"`
	ShearStatus    string  `json:"shear_status"`
	CombinedStatus string  `json:"combined_status"`
}

// Anchors checks the fixings of one bracket. Half the fixings resist the
// bracket moment in tension; interaction is the linear sum.
func Anchors(bf BracketForces, nFix int, pitch, nRk, vRk, gammaM float64) AnchorCheck {
	n := float64(nFix)
	ac := AnchorCheck{
		VEd: bf.VPerBracket / n,
		NEd: bf.MPerBracket/(pitch*(n/2)) + bf.NVertical/n,
		NRd: nRk / gammaM,
		VRd: vRk / gammaM,
	}
	ac.EtaTension = ratio(ac.NEd, ac.NRd)
	ac.EtaShear = ratio(ac.VEd, ac.VRd)
	ac.EtaCombined = ac.EtaTension + ac.EtaShear
	ac.TensionStatus = status(ac.EtaTension)
	ac.ShearStatus = status(ac.EtaShear)
	ac.CombinedStatus = status(ac.EtaCombined)
	return ac
}

// RHS is a rectangular hollow section in mm. Depth is in the plane of bending.
type RHS struct {
	Width, Depth, Thickness float64
}

// SecondMoment about the major axis, mm⁴.
func (s RHS) SecondMoment() float64 {
	bi := s.Width - 2*s.Thickness
	hi := s.Depth - 2*s.Thickness
	return (s.Width*math.Pow(s.Depth, 3) - bi*math.Pow(hi, 3)) / 12
}

type BracketCheck struct {
	I             float64 `json:"I"`
	WEl           float64 `json:"W_el"`
	MEd           float64 `json:"M_Ed"` // kNm
	SigmaEd       float64 `json:"sigma_Ed"`
	SigmaRd       float64 `json:"sigma_Rd"`
	EtaBending    float64 `json:"eta_bending"`
	TauEd         float64 `json:"tau_Ed"`
	TauRd         float64 `json:"tau_Rd"`
	EtaShear      float64 `json:"eta_shear"`
	BendingStatus string  `json:"bending_status"`
	ShearStatus   string  `json:"shear_status"`
}

// BracketStresses checks one bracket as a cantilever of length L (m) with
// the bracket shear v (kN) at the tip, EN 1993-1-1.
func BracketStresses(v, length float64, sec RHS, fy float64) BracketCheck {
	bc := BracketCheck{I: sec.SecondMoment()}
	if sec.Depth > 0 {
		bc.WEl = 2 * bc.I / sec.Depth
	}
	mEd := v * length * 1e6 // Nmm
	bc.MEd = mEd / 1e6
	bc.SigmaEd = noSection
	if bc.WEl > 0 {
		bc.SigmaEd = mEd / bc.WEl
	}
	bc.SigmaRd = fy / gammaM0
	bc.EtaBending = ratio(bc.SigmaEd, bc.SigmaRd)

	av := 2 * sec.Depth * sec.Thickness
	bc.TauEd = noSection
	if av > 0 {
		bc.TauEd = v * 1000 / av
	}
	bc.TauRd = fy / math.Sqrt(3) / gammaM0
	bc.EtaShear = ratio(bc.TauEd, bc.TauRd)

	bc.BendingStatus = status(bc.EtaBending)
	bc.ShearStatus = status(bc.EtaShear)
	return bc
}

type DeflectionCheck struct {
	Delta            float64 `json:"delta"`       // mm
	DeltaLimit       float64 `json:"delta_limit"` // mm
	EtaDeflection    float64 `json:"eta_deflection"`
	DeflectionStatus string  `json:"deflection_status"`
}

// Deflection is the SLS tip deflection of one bracket under the
// characteristic force. The limit is L/150, capped at 20 mm.
func Deflection(fwk float64, n int, length, e, i float64) DeflectionCheck {
	f := fwk / float64(n) * 1000
	l := length * 1000
	dc := DeflectionCheck{Delta: noSection, DeltaLimit: math.Min(l/150, 20)}
	if i > 0 {
		dc.Delta = f * math.Pow(l, 3) / (3 * e * i)
	}
	dc.EtaDeflection = ratio(dc.Delta, dc.DeltaLimit)
	dc.DeflectionStatus = status(dc.EtaDeflection)
	return dc
}
