package ddct

import (
	"fmt"
	"sort"
	"strconv"
)

// PairedSample is one biological replicate's target-vs-housekeeping
// comparison, formed by joining the two primer groups' SampleMeans on
// (treatment, replicate).
type PairedSample struct {
	Treatment string
	Replicate string

	TargetCt       float64
	HousekeepingCt float64

	// DeltaCt is housekeeping minus target; higher means more target
	// template relative to the reference gene.
	DeltaCt float64
}

type pairKey struct {
	Treatment string
	Replicate string
}

// pair inner-joins the target and housekeeping means by sample
// identity. Groups that fail identity decomposition are reported in
// malformed; identities present in only one primer group, or whose
// mean is undetermined, are reported in unpaired. Neither failure is
// fatal: the rest of the join proceeds.
func pair(means []SampleMean, delimiter string) (pairs []PairedSample, malformed, unpaired []string) {
	byKey := make(map[pairKey]map[PrimerGroup]CtValue)
	malformedSeen := make(map[string]struct{})

	for _, mean := range means {
		identity, err := ParseSampleIdentity(mean.SampleName, delimiter)
		if err != nil {
			// The same bad name usually shows up in both primer
			// groups; report it once.
			if _, seen := malformedSeen[mean.SampleName]; !seen {
				malformedSeen[mean.SampleName] = struct{}{}
				malformed = append(malformed, mean.SampleName)
			}
			continue
		}

		key := pairKey{Treatment: identity.Treatment, Replicate: identity.Replicate}

		halves := byKey[key]
		if halves == nil {
			halves = make(map[PrimerGroup]CtValue)
			byKey[key] = halves
		}

		halves[mean.Group] = mean.MeanCt
	}

	for key, halves := range byKey {
		target, hasTarget := halves[Target]
		housekeeping, hasHousekeeping := halves[Housekeeping]

		// An undetermined mean cannot enter the subtraction; treat it
		// the same as a missing partner so it is flagged, not silently
		// dropped.
		if hasTarget && !target.Valid {
			hasTarget = false
		}
		if hasHousekeeping && !housekeeping.Valid {
			hasHousekeeping = false
		}

		if !hasTarget || !hasHousekeeping {
			unpaired = append(unpaired, fmt.Sprintf("%s%s%s", key.Treatment, delimiter, key.Replicate))
			continue
		}

		pairs = append(pairs, PairedSample{
			Treatment:      key.Treatment,
			Replicate:      key.Replicate,
			TargetCt:       target.Float64,
			HousekeepingCt: housekeeping.Float64,
			DeltaCt:        housekeeping.Float64 - target.Float64,
		})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Treatment != pairs[j].Treatment {
			return pairs[i].Treatment < pairs[j].Treatment
		}
		return replicateLess(pairs[i].Replicate, pairs[j].Replicate)
	})

	sort.Strings(malformed)
	sort.Strings(unpaired)

	return pairs, malformed, unpaired
}

// replicateLess orders replicate identifiers numerically when both
// parse as integers ("2" before "10"), falling back to string order.
func replicateLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)

	if aerr == nil && berr == nil {
		return ai < bi
	}

	return a < b
}
