package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func deg(d float64) float32 {
	return float32(d * math.Pi / 180)
}

func TestClassifyRegion_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		want  Region
	}{
		{"zero", 0, RegionAfricaEurope},
		{"59", deg(59), RegionAfricaEurope},
		{"61", deg(61), RegionAmericas},
		{"159", deg(159), RegionAmericas},
		{"161", deg(161), RegionPacific},
		{"249", deg(249), RegionPacific},
		{"251", deg(251), RegionAsia},
		{"329", deg(329), RegionAsia},
		{"331", deg(331), RegionAfricaEurope},
		{"359.9", deg(359.9), RegionAfricaEurope},
		{"negative 30", deg(-30), RegionAfricaEurope},
		{"negative 100", deg(-100), RegionAsia},
		{"negative 150", deg(-150), RegionPacific},
		{"two turns plus 100", deg(720 + 100), RegionAmericas},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyRegion(tt.angle))
		})
	}
}

func TestRegionAt_ExactEdges(t *testing.T) {
	tests := []struct {
		deg  float64
		want Region
	}{
		{0, RegionAfricaEurope},
		{60, RegionAmericas},
		{160, RegionPacific},
		{250, RegionAsia},
		{330, RegionAsia},
		{360, RegionAfricaEurope},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, regionAt(tt.deg), "%v°", tt.deg)
	}
}

func TestClassifyRegion_NearestFloat32Edges(t *testing.T) {
	// float32(60°) rounds just above 60, float32(160°) just below 160,
	// float32(250°) just above 250 and float32(330°) just below 330.
	tests := []struct {
		deg  float64
		want Region
	}{
		{60, RegionAmericas},
		{160, RegionAmericas},
		{250, RegionAsia},
		{330, RegionAsia},
	}

	for _, tt := range tests {
		a := deg(tt.deg)
		assert.Equal(t, tt.want, ClassifyRegion(a), "%v° as %v rad", tt.deg, a)
		assert.Equal(t, ClassifyRegion(a), ClassifyRegion(a), "deterministic at %v°", tt.deg)
	}
}

func TestClassifyRegion_Pure(t *testing.T) {
	for a := float32(-20); a < 20; a += 0.37 {
		assert.Equal(t, ClassifyRegion(a), ClassifyRegion(a))
	}
}

func TestClassifyRegion_Wraparound(t *testing.T) {
	// Stay clear of the boundaries so float32 rounding of a+2π cannot cross one.
	for _, d := range []float64{10, 45, 90, 120, 200, 240, 280, 300, 345} {
		a := deg(d)
		assert.Equal(t, ClassifyRegion(a), ClassifyRegion(a+2*math.Pi), "angle %v°", d)
		assert.Equal(t, ClassifyRegion(a), ClassifyRegion(a-2*math.Pi), "angle %v°", d)
	}
}

func TestRegionClassifier_Disabled(t *testing.T) {
	c := RegionClassifier{}
	assert.Equal(t, RegionUnknown, c.Classify(deg(100)))

	c.Enabled = true
	assert.Equal(t, RegionAmericas, c.Classify(deg(100)))
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "Africa / Europe", RegionAfricaEurope.String())
	assert.Equal(t, "Americas", RegionAmericas.String())
	assert.Equal(t, "Pacific Ocean", RegionPacific.String())
	assert.Equal(t, "Asia", RegionAsia.String())
	assert.Equal(t, "Unknown", RegionUnknown.String())
}
