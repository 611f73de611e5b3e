// Package autodesign sizes sign posts from a catalogue of hollow sections.
package autodesign

import (
	"errors"
	"fmt"
	"sort"

	"Windsign/internal/calc/post"
)

var (
	ErrNoSection   = errors.New("no catalogue section satisfies the post checks")
	ErrUnsupported = errors.New("auto-design supports steel and aluminium posts only")
)

// Section is a catalogue entry; Size is the diameter (CHS) or width (SHS).
type Section struct {
	Type      string  `json:"section_type"`
	Size      float64 `json:"size"`      // mm
	Thickness float64 `json:"thickness"` // mm
}

func (s Section) String() string {
	if s.Type == post.Square {
		return fmt.Sprintf("SHS %gx%gx%g", s.Size, s.Size, s.Thickness)
	}
	return fmt.Sprintf("CHS %gx%g", s.Size, s.Thickness)
}

// Catalogue holds common hot-finished CHS and SHS sizes.
var Catalogue = []Section{
	{post.Circular, 60.3, 3.2},
	{post.Circular, 76.1, 3.2},
	{post.Circular, 88.9, 3.2},
	{post.Circular, 114.3, 3.6},
	{post.Circular, 139.7, 5.0},
	{post.Circular, 168.3, 6.3},
	{post.Circular, 193.7, 8.0},
	{post.Circular, 219.1, 8.0},
	{post.Circular, 273.0, 10.0},
	{post.Square, 50, 3},
	{post.Square, 60, 4},
	{post.Square, 80, 4},
	{post.Square, 100, 5},
	{post.Square, 120, 6},
	{post.Square, 150, 8},
	{post.Square, 200, 8},
	{post.Square, 250, 10},
}

var densities = map[string]float64{ // kg/m³
	post.Steel:     7850,
	post.Aluminium: 2700,
}

type PostAutoInput struct {
	post.Input
	// SectionTypes limits the search, e.g. ["circular"]. Empty means all.
	SectionTypes []string `json:"section_types"`
}

type PostAutoResult struct {
	Section     Section     `json:"section"`
	Designation string      `json:"designation"`
	MassPerM    float64     `json:"mass_per_m"` // kg/m
	Tried       int         `json:"sections_tried"`
	Result      post.Result `json:"result"`
	Notes       string      `json:"notes"`
}

type candidate struct {
	Section
	area float64
}

// Post returns the lightest catalogue section whose bending and shear checks
// both pass under the sign's wind load. The post's own wind load changes with
// its size, so each candidate is evaluated in full.
func Post(in PostAutoInput) (PostAutoResult, error) {
	material := in.PostMaterial
	if material == "" {
		material = post.Steel
	}
	density, ok := densities[material]
	if !ok {
		return PostAutoResult{}, fmt.Errorf("%w: %q", ErrUnsupported, material)
	}

	cands, err := candidates(in.SectionTypes)
	if err != nil {
		return PostAutoResult{}, err
	}

	for i, c := range cands {
		trial := in.Input
		trial.PostSection = c.Type
		trial.PostDiameter = &c.Size
		trial.PostThickness = c.Thickness
		res, err := post.Calculate(trial)
		if err != nil {
			return PostAutoResult{}, err
		}
		pc := res.PostCheck
		if pc.BendingStatus != "PASS" || pc.ShearStatus != "PASS" {
			continue
		}
		return PostAutoResult{
			Section:     c.Section,
			Designation: c.String(),
			MassPerM:    c.area * density * 1e-6,
			Tried:       i + 1,
			Result:      res,
			Notes:       "Lightest catalogue section passing bending and shear at ground level.",
		}, nil
	}
	return PostAutoResult{}, ErrNoSection
}

// candidates filters the catalogue and orders it by cross-section area,
// which orders by mass for a single material.
func candidates(types []string) ([]candidate, error) {
	allowed := map[string]bool{}
	for _, t := range types {
		if t != post.Circular && t != post.Square {
			return nil, fmt.Errorf("%w: %q", post.ErrUnknownSection, t)
		}
		allowed[t] = true
	}
	var out []candidate
	for _, s := range Catalogue {
		if len(allowed) > 0 && !allowed[s.Type] {
			continue
		}
		p, err := post.SectionProperties(s.Type, false, s.Size, s.Thickness)
		if err != nil {
			return nil, err
		}
		out = append(out, candidate{Section: s, area: p.Area})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].area < out[j].area })
	return out, nil
}
