// Package windmap maps UK postcode areas to the fundamental wind speed v_map
// read from the BS EN 1991-1-4 UK National Annex wind map.
package windmap

import (
	"regexp"
	"strings"
	"unicode"

	"Windsign/internal/calc/warn"
)

const DefaultSpeed = 22.0 // m/s

var speeds = map[string]float64{
	// Scotland
	"AB": 24.0, "DD": 24.0, "DG": 23.5, "EH": 24.0, "FK": 23.5,
	"G": 23.5, "HS": 26.0, "IV": 25.0, "KA": 23.5, "KW": 26.0,
	"KY": 24.0, "ML": 23.5, "PA": 24.0, "PH": 24.5, "TD": 23.5,
	"ZE": 27.0,
	// Northern England
	"CA": 23.0, "DH": 22.5, "DL": 22.5, "NE": 23.0, "SR": 22.5,
	"TS": 22.5,
	// Wales
	"CF": 23.0, "LL": 23.5, "SA": 23.5, "SY": 22.5, "LD": 22.5,
	"NP": 22.5,
	// South-west England
	"EX": 22.5, "PL": 23.5, "TQ": 22.5, "TR": 24.0,
	// South-east England
	"BN": 22.5, "CT": 23.0, "TN": 22.0, "ME": 22.5, "RH": 22.0,
	// London
	"E": 22.0, "EC": 22.0, "N": 22.0, "NW": 22.0, "SE": 22.0,
	"SW": 22.0, "W": 22.0, "WC": 22.0,
	// Midlands
	"B": 21.5, "CV": 21.5, "DE": 21.5, "LE": 21.5, "NG": 21.5,
	"NN": 21.5, "WS": 21.5, "WV": 21.5,
}

var postcodePattern = regexp.MustCompile(`^[A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2}$`)

// Area returns the letters found in the first two characters of the
// uppercased, trimmed postcode ("s10 1aa" -> "S", "EH1 1YZ" -> "EH").
func Area(postcode string) string {
	pc := []rune(strings.ToUpper(strings.TrimSpace(postcode)))
	if len(pc) > 2 {
		pc = pc[:2]
	}
	var b strings.Builder
	for _, r := range pc {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Speed looks up an area code directly.
func Speed(area string) (float64, bool) {
	v, ok := speeds[area]
	return v, ok
}

// Lookup returns v_map for a postcode, falling back to DefaultSpeed with a
// warning. Only an empty string counts as no postcode.
func Lookup(postcode string, log *warn.Log) float64 {
	if postcode == "" {
		log.Add("No postcode provided, using default v_map = 22.0 m/s")
		return DefaultSpeed
	}
	area := Area(postcode)
	v, ok := speeds[area]
	if !ok {
		log.Add("Postcode area '%s' not in database, using default v_map = 22.0 m/s", area)
		return DefaultSpeed
	}
	return v
}

// Valid reports whether s looks like a full UK postcode.
func Valid(s string) bool {
	return postcodePattern.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}
