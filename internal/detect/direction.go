package detect

import (
	"math"

	"github.com/wavescout/wavetrack-backend-go/internal/models"
	"github.com/wavescout/wavetrack-backend-go/internal/spatial"
)

// StableWave is a candidate that survived the direction stability filter,
// carrying its circular bearing statistics. Both statistics are NaN when
// the candidate collected no bearing samples.
type StableWave struct {
	Candidate
	MeanDirectionDeg float64
	DirectionStdDeg  float64
}

// FilterByStability rejects candidates whose bearing samples spread wider
// than maxStdDegrees of circular standard deviation, i.e. rides where the
// board meandered rather than followed a wave face. Candidates with no
// bearing samples are never rejected here.
func FilterByStability(candidates []Candidate, maxStdDegrees float64) []StableWave {
	stable := make([]StableWave, 0, len(candidates))
	for _, c := range candidates {
		mean := spatial.CircularMeanDegrees(c.Bearings)
		std := spatial.CircularStdDevDegrees(c.Bearings)

		if !math.IsNaN(std) && std > maxStdDegrees {
			continue
		}

		stable = append(stable, StableWave{
			Candidate:        c,
			MeanDirectionDeg: mean,
			DirectionStdDeg:  std,
		})
	}
	return stable
}

// FilterByDirection keeps only waves whose mean travel direction is
// defined and within toleranceDegrees of the target bearing (smaller arc
// around the circle). Returns the kept waves and the rejected count so
// "all waves filtered out" is distinguishable from "no waves detected".
func FilterByDirection(waves []models.Wave, targetDegrees, toleranceDegrees float64) ([]models.Wave, int) {
	kept := make([]models.Wave, 0, len(waves))
	rejected := 0
	for _, w := range waves {
		if w.MeanDirectionDeg == nil {
			rejected++
			continue
		}
		if spatial.AngularDistanceDegrees(*w.MeanDirectionDeg, targetDegrees) <= toleranceDegrees {
			kept = append(kept, w)
		} else {
			rejected++
		}
	}
	return kept, rejected
}
