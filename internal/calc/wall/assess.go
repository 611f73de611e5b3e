package wall

import "fmt"

type Status string

const (
	Pass    Status = "PASS"
	Caution Status = "CAUTION"
	Fail    Status = "FAIL"
	Info    Status = "INFO"
)

// assessment limits for typical sign construction
const (
	panelPressureLimit   = 1200.0 // Pa
	panelPressureCeiling = 1500.0
	frameworkLimit       = 1.5 // kN/m²
	frameworkCeiling     = 2.0
)

type Check struct {
	Name    string `json:"check"`
	Value   string `json:"value"`
	Limit   string `json:"limit"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

type Assessment struct {
	Overall         Status   `json:"overall_status"`
	Summary         string   `json:"summary"`
	Checks          []Check  `json:"checks"`
	Recommendations []string `json:"recommendations"`
}

var summaries = map[Status]string{
	Pass:    "Wind loading is within typical signage construction limits. Standard professional installation should be adequate.",
	Caution: "Wind loading requires careful attention. Enhanced construction methods and/or professional structural assessment recommended.",
	Fail:    "Wind loading exceeds typical signage construction limits. Full structural engineering design and certification required.",
}

// Assess grades a wall-mounted result against typical sign construction
// limits. It is indicative only.
func Assess(res Result, in Input) Assessment {
	a := Assessment{Overall: Pass}
	raise := func(s Status) {
		if a.Overall != Fail {
			a.Overall = s
		}
	}

	qp := res.QP
	pc := Check{Name: "Peak Pressure", Value: fmt.Sprintf("%.0f Pa", qp), Limit: "1200 Pa (typical ACM panel)"}
	switch {
	case qp <= panelPressureLimit:
		pc.Status, pc.Message = Pass, "Within typical aluminum composite panel capacity"
	case qp <= panelPressureCeiling:
		pc.Status, pc.Message = Caution, "Approaching typical panel limits - verify panel specification"
		a.Overall = Caution
		a.Recommendations = append(a.Recommendations, "Verify sign panel material specification can handle this pressure")
	default:
		pc.Status, pc.Message = Fail, "Exceeds typical aluminum composite panel capacity"
		a.Overall = Fail
		a.Recommendations = append(a.Recommendations, "High-specification panels or structural backing required")
	}
	a.Checks = append(a.Checks, pc)

	area := in.SignWidth * in.SignHeight
	var perM2 float64
	if area > 0 {
		perM2 = res.ForceKN / area
	}
	fc := Check{Name: "Wind Force Intensity", Value: fmt.Sprintf("%.2f kN/m²", perM2), Limit: "1.5 kN/m² (typical framework)"}
	switch {
	case perM2 <= frameworkLimit:
		fc.Status, fc.Message = Pass, "Within typical sign framework capacity"
	case perM2 <= frameworkCeiling:
		fc.Status, fc.Message = Caution, "Requires robust framework design"
		if a.Overall == Pass {
			a.Overall = Caution
		}
		a.Recommendations = append(a.Recommendations, "Use heavy-duty framework with adequate bracing")
	default:
		fc.Status, fc.Message = Fail, "Exceeds typical framework capacity"
		a.Overall = Fail
		a.Recommendations = append(a.Recommendations, "Engineered steel framework required")
	}
	a.Checks = append(a.Checks, fc)

	var size, sizeMsg string
	switch {
	case area <= 6:
		size, sizeMsg = "Small", "Standard construction methods typically adequate"
	case area <= 15:
		size, sizeMsg = "Medium", "Professional installation recommended"
	case area <= 30:
		size, sizeMsg = "Large", "Engineered framework and certified installation required"
	default:
		size, sizeMsg = "Extra Large", "Full structural engineering design mandatory"
		raise(Caution)
		a.Recommendations = append(a.Recommendations, "Full structural engineering assessment required for this size")
	}
	a.Checks = append(a.Checks, Check{
		Name: "Sign Size Category", Value: fmt.Sprintf("%.1f m² (%s)", area, size),
		Limit: "N/A", Status: Info, Message: sizeMsg,
	})

	h := in.BuildingHeight
	var level, levelMsg string
	switch {
	case h <= 5:
		level, levelMsg = "Low Level", "Standard fixings typically adequate"
	case h <= 10:
		level, levelMsg = "Medium Height", "Chemical anchors or through-bolts recommended"
	case h <= 20:
		level, levelMsg = "High Level", "Engineered fixings and access equipment required"
	default:
		level, levelMsg = "Very High", "Specialist high-level installation required"
		raise(Caution)
		a.Recommendations = append(a.Recommendations, "High-level work requires specialist contractors and equipment")
	}
	a.Checks = append(a.Checks, Check{
		Name: "Installation Height", Value: fmt.Sprintf("%.1f m (%s)", h, level),
		Limit: "N/A", Status: Info, Message: levelMsg,
	})

	a.Summary = summaries[a.Overall]
	if h > 3 || area > 10 {
		a.Recommendations = append(a.Recommendations, "Building control approval may be required - check with local authority")
	}
	a.Recommendations = append(a.Recommendations, "This assessment is indicative only - professional structural verification required for installation")
	return a
}
