// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"

	"github.com/katalvlaran/coilfield/geom"
)

// MinBetaField is the floor applied to the centre field before computing
// beta, so a field-free centre reports a large but finite beta.
const MinBetaField = 1e-9

// Summary is the scalar digest of one field solve over a grid.
type Summary struct {
	CenterB    float64 // |B| at the centre sample [T]
	MeanB      float64 // mean |B| over the grid [T]
	MaxB       float64 // max |B| over the grid [T]
	Uniformity float64 // UniformityScore over strictly positive |B|
	Beta       float64 // BetaEstimate(pressure, max(CenterB, MinBetaField))
}

// Summarize reduces field to a Summary. center indexes the sample used for
// CenterB; pressure [Pa] feeds the toy beta.
//
// Uniformity ignores samples with |B| == 0 exactly, which only occur where
// no loop contributes.
func Summarize(field []geom.Vec3, center int, pressure float64) (Summary, error) {
	if center < 0 || center >= len(field) {
		return Summary{}, fmt.Errorf("metrics: centre index %d out of range [0,%d)", center, len(field))
	}
	mags := Magnitudes(field)
	c := mags[center]

	return Summary{
		CenterB:    c,
		MeanB:      Mean(mags),
		MaxB:       Max(mags),
		Uniformity: UniformityScore(Positive(mags)),
		Beta:       BetaEstimate(pressure, max(c, MinBetaField)),
	}, nil
}
