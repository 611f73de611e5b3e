package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"Windsign/internal/calc/pressure"
)

// loadInput fills dst from path, then re-applies every flag the user set so
// that flags win over the file. JSON files parse as YAML.
func loadInput(path string, dst any, flags *pflag.FlagSet) error {
	if path == "" {
		return nil
	}
	changed := map[string]string{}
	flags.Visit(func(f *pflag.Flag) { changed[f.Name] = f.Value.String() })

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for name, v := range changed {
		if err := flags.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// distanceValue lets a flag set a pressure.Distance, marking it as given.
type distanceValue struct{ d *pressure.Distance }

func (v distanceValue) String() string {
	if v.d == nil || !v.d.Set {
		return ""
	}
	return strconv.FormatFloat(v.d.KM, 'g', -1, 64)
}

// Set accepts anything the API does, including "100+".
func (v distanceValue) Set(s string) error {
	*v.d = pressure.KM(pressure.ParseDistance(s))
	return nil
}

func (v distanceValue) Type() string { return "km" }
