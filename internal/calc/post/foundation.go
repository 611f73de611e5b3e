package post

import (
	"errors"
	"fmt"
	"math"
)

var ErrUnknownFoundation = errors.New("unknown foundation type")

const (
	Concrete  = "concrete"
	SteelBase = "steel_base"

	FoundationAdequate   = "ADEQUATE"
	FoundationMarginal   = "MARGINAL"
	FoundationInadequate = "INADEQUATE"
	FoundationDesign     = "REQUIRES DESIGN"

	foundationCaveat = "Foundation design is simplified - detailed design by structural engineer required"
)

type FoundationCheck struct {
	Embedment     float64 `json:"embedment"`
	RequiredWidth float64 `json:"required_width"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	Warning       string  `json:"warning"`
}

// CheckFoundation is an indicative rule-of-thumb check for moment m (kNm).
func CheckFoundation(m, embedment float64, foundationType string) (FoundationCheck, error) {
	fc := FoundationCheck{Embedment: embedment, Warning: foundationCaveat}
	switch foundationType {
	case Concrete:
		fc.RequiredWidth = math.Sqrt(m / 50)
		switch {
		case embedment < 1.0:
			fc.Status, fc.Message = FoundationInadequate, "Embedment depth too shallow - minimum 1.0m recommended"
		case embedment < 1.5:
			fc.Status, fc.Message = FoundationMarginal, "Embedment adequate but consider deeper foundation"
		default:
			fc.Status, fc.Message = FoundationAdequate, "Embedment depth appears adequate"
		}
	case SteelBase:
		fc.Status, fc.Message = FoundationDesign, "Base plate and anchor bolt design required"
	default:
		return FoundationCheck{}, fmt.Errorf("%w: %q", ErrUnknownFoundation, foundationType)
	}
	return fc, nil
}
