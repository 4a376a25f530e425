package rates

import (
	"math"
	"math/rand"

	"github.com/unotto/genchi"
)

const (
	// Noise amplitudes for the synthetic random walks: tight around a
	// real anchor, wider when even the anchor is made up.
	anchoredWalkNoise = 0.003
	fixedWalkNoise    = 0.01

	// A walk never goes to zero or below.
	walkFloor = 0.0001

	// Anchor when no real rate is obtainable at all.
	fixedAnchor = 100
)

// randomWalk synthesizes one point per day as a multiplicative random
// walk around anchor. Points are rounded to the nearest half unit so a
// fake trend line does not jitter in the last decimals.
func randomWalk(days []string, anchor, noise float64, rng *rand.Rand) []genchi.RatePoint {
	points := make([]genchi.RatePoint, 0, len(days))
	v := anchor

	for _, day := range days {
		step := (rng.Float64() - 0.5) * 2 * noise
		v = math.Max(walkFloor, v*(1+step))
		points = append(points, genchi.RatePoint{Date: day, Rate: math.Round(v*2) / 2})
	}

	return points
}
