// Package pressure implements the SCI P394 simplified procedure for the peak
// velocity pressure q_p and the structural factors that depend on the site
// (stages 1 to 19). The wall-mounted and post-mounted engines both call
// Evaluate and add their own force coefficients on top.
package pressure

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"Windsign/internal/calc/interp"
	"Windsign/internal/calc/warn"
	"Windsign/internal/calc/windmap"
)

const (
	// AirDensity is the UK value used by P394. The projecting-sign engine uses
	// the Eurocode recommended 1.25 kg/m3 instead.
	AirDensity = 1.226

	Standard  = "BS EN 1991-1-4:2005+A1:2010"
	Reference = "SCI Publication P394"
	Version   = "1.0.0"

	minEffectiveHeight = 2.0
)

var ErrUnknownTerrain = errors.New("unknown terrain type")

type Terrain string

const (
	TerrainSea     Terrain = "sea"
	TerrainCountry Terrain = "country"
	TerrainTown    Terrain = "town"
)

// ParseTerrain accepts sea, country or town; an empty string means country.
func ParseTerrain(s string) (Terrain, error) {
	switch t := Terrain(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TerrainCountry, nil
	case TerrainSea, TerrainCountry, TerrainTown:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
	}
}

// Zone is the exposure/size-factor zone of P394 Figure NA.7.
type Zone string

const (
	ZoneA Zone = "A" // sea and coastal
	ZoneB Zone = "B" // country
	ZoneC Zone = "C" // town
)

type zoneCurve struct {
	base, slope float64 // c_e = base + slope*ln(z/10) above 10 m
	csLo, csHi  float64 // c_s at b+h = 300 m for z <= 6 m and z >= 200 m
}

var curves = map[Zone]zoneCurve{
	ZoneA: {base: 2.5, slope: 0.20, csLo: 0.81, csHi: 0.88},
	ZoneB: {base: 2.1, slope: 0.22, csLo: 0.78, csHi: 0.87},
	ZoneC: {base: 2.5, slope: 0.28, csLo: 0.75, csHi: 0.85},
}

func (c zoneCurve) exposure(z float64) float64 {
	if z <= 10 {
		return c.base
	}
	return c.base + c.slope*math.Log(z/10)
}

// dynamic factor, P394 Table 5.2, logarithmic decrement 0.08
var dynamicTable = interp.MustTable(
	[]float64{0.25, 0.5, 1.0, 2.0, 4.0, 10.0},
	[]float64{1.02, 1.03, 1.06, 1.10, 1.17, 1.24},
)

// Input is what the pipeline needs about the sign and its site.
type Input struct {
	Width            float64 // m, cross-wind
	Height           float64 // m, sign panel height
	BuildingHeight   float64 // m, reference height z
	Altitude         float64 // m above sea level
	VMap             float64 // m/s, 0 means look up Postcode
	Postcode         string
	DistanceToShore  float64 // km
	Terrain          Terrain
	DistanceIntoTown float64 // km
}

// Stage is one audited step of the procedure.
type Stage struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
	Reference string  `json:"reference"`
}

type Factors struct {
	VMap            float64 `json:"v_map"`
	CAlt            float64 `json:"c_alt"`
	CSeason         float64 `json:"c_season"`
	CDir            float64 `json:"c_dir"`
	HDis            float64 `json:"h_dis"`
	DistanceToShore float64 `json:"distance_to_shore"`
	CE              float64 `json:"c_e"`
	Zone            Zone    `json:"zone"`
	CET             float64 `json:"c_e_T"`
	QP              float64 `json:"q_p"`
	CO              float64 `json:"c_o"`
	ZEff            float64 `json:"z_eff"`
	CS              float64 `json:"c_s"`
	CD              float64 `json:"c_d"`
	DesignWindSpeed float64 `json:"design_wind_speed"`
	Stages          []Stage `json:"stages"`
}

// Evaluate runs stages 1 to 19. Caveats go to log.
func Evaluate(in Input, log *warn.Log) Factors {
	f := Factors{CSeason: 1.0, CDir: 1.0, CO: 1.0}

	// Stage 1
	if in.VMap > 0 {
		f.VMap = in.VMap
	} else {
		f.VMap = windmap.Lookup(in.Postcode, log)
	}
	// Stage 2
	f.CAlt = AltitudeFactor(in.Altitude, in.BuildingHeight)
	// Stage 4
	log.Add("Non-directional approach used (c_dir = 1.0, conservative)")
	// Stages 5-7
	f.DistanceToShore = in.DistanceToShore
	f.CE, f.Zone = ExposureFactor(in.BuildingHeight, f.HDis, in.DistanceToShore, in.Terrain)
	// Stages 8-9
	f.CET = 1.0
	if in.Terrain == TerrainTown && in.DistanceIntoTown > 0 {
		f.CET = TownCorrection(in.DistanceIntoTown)
	}
	// Stage 11
	f.QP = PeakVelocityPressure(f.VMap, f.CAlt, f.CDir, f.CE, f.CET)
	// Stages 12-17
	log.Add("Orography not considered (c_o = 1.0). Site must not be on/near hills, cliffs, or escarpments.")
	// Stage 18
	f.ZEff = in.BuildingHeight - f.HDis
	f.CS = SizeFactor(in.Width, in.Height, f.ZEff, f.Zone)
	// Stage 19
	f.CD = DynamicFactor(in.BuildingHeight, in.Width)

	f.DesignWindSpeed = f.VMap * f.CAlt * f.CDir
	f.Stages = []Stage{
		{"v_map", "Fundamental wind speed", f.VMap, "m/s", "P394 Section 5.1, page 19"},
		{"c_alt", "Altitude factor", f.CAlt, "", "P394 Section 5.2, page 20"},
		{"c_season", "Seasonal factor", f.CSeason, "", "P394 Section 5.3, page 21"},
		{"c_dir", "Directional factor", f.CDir, "", "P394 Section 5.4, page 21"},
		{"h_dis", "Displacement height", f.HDis, "m", "P394 Section 5.5, page 24"},
		{"d_shore", "Distance to shoreline", f.DistanceToShore, "km", "P394 Section 5.6, page 26"},
		{"c_e", "Exposure factor (zone " + string(f.Zone) + ")", f.CE, "", "P394 Section 5.7, Figure NA.7, page 28"},
		{"c_e,T", "Town terrain correction", f.CET, "", "P394 Section 5.8-5.9, page 29"},
		{"q_p", "Peak velocity pressure", f.QP, "Pa", "P394 Section 5.11, page 30"},
		{"c_o", "Orography factor", f.CO, "", "P394 Section 5.12-5.17, page 31"},
		{"c_s", "Size factor", f.CS, "", "P394 Section 5.18, Table NA.3, page 38"},
		{"c_d", "Dynamic factor", f.CD, "", "P394 Section 5.19, Table 5.2, page 40"},
	}
	return f
}

// AltitudeFactor is P394 Equation 5.1 with the height adjustment for z_s >= 10 m.
func AltitudeFactor(altitude, height float64) float64 {
	zs := 0.6 * height
	if zs >= 10 {
		return 1 + 0.001*altitude*math.Pow(10/zs, 0.2)
	}
	return 1 + 0.001*altitude
}

// ExposureFactor approximates Figure NA.7. Zone B is blended toward zone A
// for sites closer than 100 km to the sea.
func ExposureFactor(height, displacement, distanceToShore float64, terrain Terrain) (float64, Zone) {
	z := math.Max(height-displacement, minEffectiveHeight)

	zone := ZoneB
	switch {
	case terrain == TerrainSea || distanceToShore <= 0.1:
		zone = ZoneA
	case terrain == TerrainTown:
		zone = ZoneC
	}

	ce := curves[zone].exposure(z)
	if zone == ZoneB && distanceToShore < 100 {
		ce = interp.Lerp(curves[ZoneA].exposure(z), curves[ZoneB].exposure(z), math.Min(distanceToShore/100, 1))
	}
	return ce, zone
}

// TownCorrection is a calibrated stand-in for P394 Figure 5.10, valid for
// 0-4 km into town.
func TownCorrection(distanceIntoTown float64) float64 {
	switch {
	case distanceIntoTown <= 0:
		return 1.0
	case distanceIntoTown >= 4:
		return 1.08
	default:
		return 1.0 + 0.02*distanceIntoTown
	}
}

func PeakVelocityPressure(vMap, cAlt, cDir, cE, cET float64) float64 {
	v := vMap * cAlt * cDir
	return 0.5 * AirDensity * v * v * cE * cET
}

// SizeFactor interpolates Table NA.3 by height, then by b+h on a log scale.
// Heights outside the 6-200 m columns take the nearest column for every b+h.
func SizeFactor(width, height, z float64, zone Zone) float64 {
	s := width + height
	if s <= 5 {
		return 1.0
	}
	c := curves[zone]
	var cs300 float64
	switch {
	case z <= 6:
		cs300 = c.csLo
	case z >= 200:
		cs300 = c.csHi
	default:
		cs300 = interp.Lerp(c.csLo, c.csHi, interp.LogFraction(z, 6, 200))
	}
	if s >= 300 {
		return cs300
	}
	return interp.Lerp(1.0, cs300, interp.LogFraction(s, 5, 300))
}

// DynamicFactor returns 1.0 up to 15 m, otherwise Table 5.2 by h/b.
func DynamicFactor(height, breadth float64) float64 {
	if height <= 15 {
		return 1.0
	}
	return dynamicTable.At(height / breadth)
}
