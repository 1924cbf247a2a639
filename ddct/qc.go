package ddct

import (
	"fmt"

	"github.com/gonum/stat"
)

// outlierSDs is the number of standard deviations beyond which a
// replicate's delta-Ct is flagged relative to its treatment group.
// Small groups cannot produce a z-score this large, so tiny
// experiments never false-flag.
const outlierSDs = 2.0

// minGroupForOutliers is the smallest treatment group for which an SD
// band is meaningful.
const minGroupForOutliers = 3

// flagReplicateSpread lists replicate groups whose technical-replicate
// Ct standard deviation exceeds maxSD. A zero or negative threshold
// disables the check.
func flagReplicateSpread(means []SampleMean, maxSD float64) []string {
	if maxSD <= 0 {
		return nil
	}

	var flagged []string
	for _, mean := range means {
		if mean.Determined >= 2 && mean.StdDev > maxSD {
			flagged = append(flagged, fmt.Sprintf("%s/%s", mean.SampleName, mean.Group))
		}
	}

	return flagged
}

// flagDeltaCtOutliers flags paired samples whose delta-Ct falls beyond
// outlierSDs standard deviations of their treatment's mean. Advisory:
// flagged samples still participate in every downstream computation.
func flagDeltaCtOutliers(pairs []PairedSample, delimiter string) []string {
	byTreatment := make(map[string][]float64)
	for _, p := range pairs {
		byTreatment[p.Treatment] = append(byTreatment[p.Treatment], p.DeltaCt)
	}

	var flagged []string

	// Pairs are already in treatment order, so flags come out ordered
	// too.
	for _, p := range pairs {
		values := byTreatment[p.Treatment]
		if len(values) < minGroupForOutliers {
			continue
		}

		m, s := stat.MeanStdDev(values, nil)
		if s == 0 {
			continue
		}

		if p.DeltaCt < m-outlierSDs*s || p.DeltaCt > m+outlierSDs*s {
			flagged = append(flagged, fmt.Sprintf("%s%s%s", p.Treatment, delimiter, p.Replicate))
		}
	}

	return flagged
}
