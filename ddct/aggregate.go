package ddct

import (
	"sort"

	"github.com/carbocation/runningvariance"
)

// SampleMean is one (sample, primer group)'s Ct averaged across its
// technical replicates. Undetermined readings are excluded from the
// mean, never imputed; a group whose readings are all undetermined
// carries an explicitly undetermined MeanCt.
type SampleMean struct {
	SampleName string
	Group      PrimerGroup

	MeanCt CtValue

	// StdDev is the running standard deviation of the determined
	// readings; 0 when fewer than two are present.
	StdDev float64

	// Determined and Undetermined count the technical replicates that
	// did and did not yield a Ct call.
	Determined   int
	Undetermined int
}

type groupKey struct {
	SampleName string
	Group      PrimerGroup
}

// aggregate collapses measurements into per-(sample, primer group)
// means. Input order does not matter; output is sorted by sample name
// and then primer group so downstream stages are deterministic.
func aggregate(measurements []Measurement) []SampleMean {
	groups := make(map[groupKey]*runningvariance.RunningStat)
	undetermined := make(map[groupKey]int)

	for _, m := range measurements {
		key := groupKey{SampleName: m.SampleName, Group: m.Group}

		stat := groups[key]
		if stat == nil {
			stat = runningvariance.NewRunningStat()
			groups[key] = stat
		}

		if !m.Ct.Valid {
			undetermined[key]++
			continue
		}

		stat.Push(m.Ct.Float64)
	}

	out := make([]SampleMean, 0, len(groups))
	for key, stat := range groups {
		mean := SampleMean{
			SampleName:   key.SampleName,
			Group:        key.Group,
			Undetermined: undetermined[key],
			Determined:   int(stat.N),
		}

		if stat.N == 0 {
			mean.MeanCt = UndeterminedCt()
		} else {
			mean.MeanCt = Ct(stat.Mean())
			mean.StdDev = stat.StandardDeviation()
		}

		out = append(out, mean)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SampleName != out[j].SampleName {
			return out[i].SampleName < out[j].SampleName
		}
		return out[i].Group < out[j].Group
	})

	return out
}
