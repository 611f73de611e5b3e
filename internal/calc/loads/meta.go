package loads

import (
	"errors"

	"Windsign/internal/calc/pressure"
	"Windsign/internal/calc/warn"
	"Windsign/internal/calc/windmap"
)

var (
	ErrPostcodeRequired = errors.New("postcode is required")
	ErrPostcodeFormat   = errors.New("invalid UK postcode format")
)

type PostcodeResult struct {
	Valid bool    `json:"valid"`
	VMap  float64 `json:"v_map"`
	Area  string  `json:"area"`
	Note  string  `json:"note"`
}

// CheckPostcode validates a UK postcode and returns its regional wind speed.
// Unknown areas fall back to the default speed.
func CheckPostcode(postcode string) (PostcodeResult, error) {
	if postcode == "" {
		return PostcodeResult{}, ErrPostcodeRequired
	}
	if !windmap.Valid(postcode) {
		return PostcodeResult{}, ErrPostcodeFormat
	}
	var log warn.Log
	return PostcodeResult{
		Valid: true,
		VMap:  round(windmap.Lookup(postcode, &log), 1),
		Area:  windmap.Area(postcode),
		Note:  "Wind speed is approximate based on regional data from BS EN 1991-1-4 wind map",
	}, nil
}

type Health struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Standard string `json:"standard"`
	Service  string `json:"service"`
}

type Info struct {
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	Standard       string   `json:"standard"`
	Reference      string   `json:"reference"`
	SignTypes      []string `json:"supported_sign_types"`
	Limitations    []string `json:"limitations"`
	AirDensityNote string   `json:"air_density_note"`
}

func ServiceHealth() Health {
	return Health{
		Status:   "healthy",
		Version:  pressure.Version,
		Standard: pressure.Standard,
		Service:  "Wind Loading Calculator API",
	}
}

func ServiceInfo() Info {
	return Info{
		Name:      "BS EN 1991-1-4 Wind Loading Calculator",
		Version:   pressure.Version,
		Standard:  pressure.Standard,
		Reference: "SCI Publication P394 + EN 1991-1-4",
		SignTypes: []string{WallMounted, Projecting, PostMounted},
		Limitations: []string{
			"Orography not considered",
			"Non-directional approach (conservative)",
			"Simplified terrain classification",
			"Not suitable for complex geometries",
		},
		AirDensityNote: "Wall and post-mounted signs use 1.226 kg/m³ (P394); projecting signs use 1.25 kg/m³ (EN 1991-1-4)",
	}
}
