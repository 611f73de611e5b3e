// Package validate checks input ranges before a record reaches an engine.
// The engines themselves trust their input.
package validate

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every range failure.
var ErrOutOfRange = errors.New("out of range")

// Open checks lo < v <= hi.
func Open(name string, v, lo, hi float64, unit string) error {
	if v <= lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g %s", ErrOutOfRange, name, lo, hi, unit)
	}
	return nil
}

// Closed checks lo <= v <= hi.
func Closed(name string, v, lo, hi float64, unit string) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g %s", ErrOutOfRange, name, lo, hi, unit)
	}
	return nil
}

// Positive checks v > 0.
func Positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrOutOfRange, name)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Sign checks the panel dimensions shared by every mounting type.
func Sign(width, height float64) error {
	return First(
		Open("sign width", width, 0, 50, "meters"),
		Open("sign height", height, 0, 30, "meters"),
	)
}

// Site checks the depth, mounting height and altitude limits.
func Site(depth, buildingHeight, altitude float64) error {
	return First(
		Open("sign depth", depth, 0, 10, "meters"),
		Closed("building height", buildingHeight, 2, 200, "meters"),
		Closed("altitude", altitude, 0, 2000, "meters"),
	)
}
