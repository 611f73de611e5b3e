package pressure

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultShoreDistance is used for "100+" style inputs and when the distance is absent.
const DefaultShoreDistance = 100.0

// Distance is a distance to the shoreline in km that decodes from either a
// number or a string such as "100+".
type Distance struct {
	KM  float64
	Set bool
}

func KM(v float64) Distance { return Distance{KM: v, Set: true} }

// Value returns the distance, or DefaultShoreDistance when none was given.
func (d Distance) Value() float64 {
	if !d.Set {
		return DefaultShoreDistance
	}
	return d.KM
}

// ParseDistance reads a distance string. Anything containing "+" or that is
// not a number means DefaultShoreDistance.
func ParseDistance(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "+") {
		return DefaultShoreDistance
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return DefaultShoreDistance
	}
	return v
}

func (d *Distance) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Distance{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = KM(ParseDistance(s))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = KM(v)
	return nil
}

func (d Distance) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value())
}

func (d *Distance) UnmarshalYAML(n *yaml.Node) error {
	if n.Tag == "!!null" {
		*d = Distance{}
		return nil
	}
	*d = KM(ParseDistance(n.Value))
	return nil
}
