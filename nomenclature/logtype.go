// SPDX-License-Identifier: MIT

package nomenclature

import (
	"fmt"
	"strings"
)

// LogType is the closed set of curve categories the toolkit understands.
type LogType int

const (
	Unknown LogType = iota
	GammaRay
	SpontaneousPotential
	Caliper
	BitSize
	Density
	DensityCorrection
	Neutron
	PhotoElectric
	Sonic
	ShearSonic
	ResistivityDeep
	ResistivityMedium
	ResistivityShallow
	ShaleVolume
	ClayVolume
	PorosityEffective
	PorosityTotal
	WaterSaturation
	VelocityP
	VelocityS
	Impedance
	TwoWayTime
	Flag
)

var logTypeNames = [...]string{
	Unknown:              "UNKNOWN",
	GammaRay:             "GR",
	SpontaneousPotential: "SP",
	Caliper:              "CALI",
	BitSize:              "BS",
	Density:              "RHOB",
	DensityCorrection:    "DRHO",
	Neutron:              "NPHI",
	PhotoElectric:        "PEF",
	Sonic:                "DT",
	ShearSonic:           "DTS",
	ResistivityDeep:      "RESDEP",
	ResistivityMedium:    "RESMED",
	ResistivityShallow:   "RESSHAL",
	ShaleVolume:          "VSH",
	ClayVolume:           "VCLAY",
	PorosityEffective:    "PHIE",
	PorosityTotal:        "PHIT",
	WaterSaturation:      "SW",
	VelocityP:            "VP",
	VelocityS:            "VS",
	Impedance:            "AI",
	TwoWayTime:           "TWT",
	Flag:                 "FLAG",
}

// String returns the canonical mnemonic of t.
func (t LogType) String() string {
	if t < 0 || int(t) >= len(logTypeNames) {
		return logTypeNames[Unknown]
	}

	return logTypeNames[t]
}

// LogTypeOf maps a canonical name onto its LogType; anything else is Unknown.
func LogTypeOf(canonical string) LogType {
	c := strings.ToUpper(canonical)
	for i, n := range logTypeNames {
		if i != int(Unknown) && n == c {
			return LogType(i)
		}
	}

	return Unknown
}

// ParseLogType is LogTypeOf with an error for unknown names.
func ParseLogType(s string) (LogType, error) {
	if t := LogTypeOf(s); t != Unknown {
		return t, nil
	}
	if strings.EqualFold(s, logTypeNames[Unknown]) {
		return Unknown, nil
	}

	return Unknown, fmt.Errorf("%w %q", ErrUnknownLogType, s)
}

// Family groups log types for display and cutoff selection.
type Family int

const (
	FamilyOther Family = iota
	FamilyLithology
	FamilyBorehole
	FamilyPorosity
	FamilyResistivity
	FamilyAcoustic
	FamilyInterpretation
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyLithology:
		return "lithology"
	case FamilyBorehole:
		return "borehole"
	case FamilyPorosity:
		return "porosity"
	case FamilyResistivity:
		return "resistivity"
	case FamilyAcoustic:
		return "acoustic"
	case FamilyInterpretation:
		return "interpretation"
	default:
		return "other"
	}
}

// Family returns the group of t.
func (t LogType) Family() Family {
	switch t {
	case GammaRay, SpontaneousPotential, PhotoElectric:
		return FamilyLithology
	case Caliper, BitSize, DensityCorrection:
		return FamilyBorehole
	case Density, Neutron:
		return FamilyPorosity
	case ResistivityDeep, ResistivityMedium, ResistivityShallow:
		return FamilyResistivity
	case Sonic, ShearSonic, VelocityP, VelocityS, Impedance, TwoWayTime:
		return FamilyAcoustic
	case ShaleVolume, ClayVolume, PorosityEffective, PorosityTotal, WaterSaturation, Flag:
		return FamilyInterpretation
	case Unknown:
		return FamilyOther
	default:
		return FamilyOther
	}
}

// IsShaleIndicator reports whether t is a shale or clay volume, the curves a
// net-sand cutoff is applied to.
func (t LogType) IsShaleIndicator() bool {
	switch t {
	case ShaleVolume, ClayVolume:
		return true
	default:
		return false
	}
}

// LogScale reports whether t is conventionally displayed on a logarithmic axis.
func (t LogType) LogScale() bool {
	return t.Family() == FamilyResistivity
}

// Fraction reports whether t is a dimensionless fraction in [0, 1].
func (t LogType) Fraction() bool {
	switch t {
	case ShaleVolume, ClayVolume, PorosityEffective, PorosityTotal, WaterSaturation:
		return true
	default:
		return false
	}
}
