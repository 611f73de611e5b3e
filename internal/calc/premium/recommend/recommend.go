// Package recommend picks panel channel spacings for a target build quality.
package recommend

import (
	"fmt"

	"Windsign/internal/calc/panel"
)

// spacing targets in mm
var qualityTargets = map[string]float64{
	"highway":      300,
	"professional": 400,
	"budget":       600,
}

const defaultQuality = "professional"

type SpacingInput struct {
	Material      string  `json:"panel_material"`
	WindPressure  float64 `json:"wind_pressure"` // Pa
	SignHeight    float64 `json:"sign_height"`   // m
	TargetQuality string  `json:"target_quality"`
}

type SpacingResult struct {
	RecommendedSpacing float64 `json:"recommended_spacing"`
	Channels           int     `json:"num_channels"`
	Status             string  `json:"status"`
	Quality            string  `json:"quality"`
	Note               string  `json:"note,omitempty"`
}

// Spacing checks the target spacing for the requested quality and falls back
// to the largest adequate spacing when the target fails. Unknown qualities
// use the professional target.
func Spacing(in SpacingInput) (SpacingResult, error) {
	if in.WindPressure <= 0 {
		return SpacingResult{}, fmt.Errorf("invalid wind pressure %g", in.WindPressure)
	}
	quality := in.TargetQuality
	if quality == "" {
		quality = defaultQuality
	}
	target, ok := qualityTargets[quality]
	if !ok {
		target = qualityTargets[defaultQuality]
	}

	res, err := panel.Calculate(panel.Input{
		Material:       in.Material,
		ChannelSpacing: target,
		WindPressure:   in.WindPressure,
		SignHeight:     in.SignHeight,
	})
	if err != nil {
		return SpacingResult{}, err
	}
	if res.OverallStatus == "ADEQUATE" {
		return SpacingResult{
			RecommendedSpacing: target,
			Channels:           res.ChannelsCurrent,
			Status:             "ADEQUATE",
			Quality:            quality,
		}, nil
	}
	return SpacingResult{
		RecommendedSpacing: res.MaxSpacingRecommended,
		Channels:           res.ChannelsRecommended,
		Status:             "REQUIRES_CLOSER_SPACING",
		Quality:            "custom",
		Note:               fmt.Sprintf("Target %s spacing inadequate, using calculated maximum", quality),
	}, nil
}
