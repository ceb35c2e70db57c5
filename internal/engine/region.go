package engine

import "math"

// Region is the part of the globe currently facing the viewer.
type Region int

const (
	// RegionUnknown is reported when regions are disabled for the subject.
	RegionUnknown Region = iota
	RegionAfricaEurope
	RegionAmericas
	RegionPacific
	RegionAsia
)

// String returns the label shown to the user.
func (r Region) String() string {
	switch r {
	case RegionAfricaEurope:
		return "Africa / Europe"
	case RegionAmericas:
		return "Americas"
	case RegionPacific:
		return "Pacific Ocean"
	case RegionAsia:
		return "Asia"
	}
	return "Unknown"
}

// ClassifyRegion maps an accumulated rotation angle in radians to the region
// in view. The angle is wrapped into [0, 2π) first, so any angle works,
// including negative ones.
func ClassifyRegion(rotation float32) Region {
	// Wrap in float64; float32 loses the boundaries after a few hundred turns.
	a := math.Mod(float64(rotation), 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return regionAt(a * 180 / math.Pi)
}

// regionAt classifies an angle in degrees within [0, 360]. Sector starts are
// inclusive; 330 itself still belongs to Asia.
func regionAt(deg float64) Region {
	if deg >= 360 {
		deg = 0
	}

	switch {
	case deg < 60 || deg > 330:
		return RegionAfricaEurope
	case deg < 160:
		return RegionAmericas
	case deg < 250:
		return RegionPacific
	default:
		return RegionAsia
	}
}

// RegionClassifier applies ClassifyRegion when Enabled. Subjects without
// mapped regions leave it disabled and always get RegionUnknown.
type RegionClassifier struct {
	Enabled bool
}

// Classify returns the region for rotation, or RegionUnknown when disabled.
func (c RegionClassifier) Classify(rotation float32) Region {
	if !c.Enabled {
		return RegionUnknown
	}
	return ClassifyRegion(rotation)
}
