// Package ddct computes relative gene expression from qPCR cycle
// thresholds with the delta-delta-Ct method: technical replicates are
// averaged per sample and primer group, target and housekeeping means
// are joined per biological replicate, and each replicate's delta-Ct
// is compared against a control treatment's baseline to yield a
// fold-change.
package ddct

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyInput is returned when no measurements survive exclusion.
	ErrEmptyInput = errors.New("no measurements to compute over")

	// ErrMissingBaseline is returned when no paired sample matches the
	// control label. Without a baseline there is no meaningful result.
	ErrMissingBaseline = errors.New("no samples match the control label")

	// ErrBadEfficiency is returned for amplification efficiencies at or
	// below 1, which collapse the exponential model to a constant or
	// invert it.
	ErrBadEfficiency = errors.New("amplification efficiency must exceed 1")
)

// DefaultEfficiency models perfect doubling of template per cycle.
const DefaultEfficiency = 2.0

// DefaultDelimiter separates treatment from replicate in sample names.
const DefaultDelimiter = "-"

// Options configures a Compute call.
type Options struct {
	// ControlLabel is the treatment whose mean delta-Ct anchors the
	// baseline. Required.
	ControlLabel string

	// Efficiency is the per-cycle amplification factor. Defaults to
	// DefaultEfficiency; must be > 1.
	Efficiency float64

	// Delimiter splits sample names into treatment and replicate.
	// Defaults to DefaultDelimiter.
	Delimiter string

	// Exclude reports sample names that denote non-template controls
	// or empty wells. Defaults to DefaultExclude.
	Exclude func(sampleName string) bool

	// MaxReplicateSD, when positive, flags replicate groups whose Ct
	// standard deviation exceeds it. Advisory only.
	MaxReplicateSD float64
}

// Compute runs the delta-delta-Ct relative quantification over one
// plate's measurements. It is a pure function: the inputs are never
// mutated, and identical inputs yield identical results. Fatal
// problems (empty input, bad efficiency, missing control) abort with
// an error; per-record problems are collected into Result.Warnings.
func Compute(measurements []Measurement, opts Options) (*Result, error) {
	if opts.Efficiency == 0 {
		opts.Efficiency = DefaultEfficiency
	}
	if opts.Delimiter == "" {
		opts.Delimiter = DefaultDelimiter
	}
	if opts.Exclude == nil {
		opts.Exclude = DefaultExclude
	}

	if opts.Efficiency <= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadEfficiency, opts.Efficiency)
	}
	if opts.ControlLabel == "" {
		return nil, fmt.Errorf("%w: control label is empty", ErrMissingBaseline)
	}

	// Step 1: exclusion. Control wells carry no sample identity and
	// must never enter aggregation.
	retained := make([]Measurement, 0, len(measurements))
	for _, m := range measurements {
		if opts.Exclude(m.SampleName) {
			continue
		}
		retained = append(retained, m)
	}

	if len(retained) == 0 {
		return nil, ErrEmptyInput
	}

	// Step 2: aggregation to per-(sample, primer group) means.
	means := aggregate(retained)

	result := &Result{}
	for _, mean := range means {
		if mean.Undetermined > 0 {
			result.Warnings.UndeterminedGroups = append(result.Warnings.UndeterminedGroups,
				fmt.Sprintf("%s/%s", mean.SampleName, mean.Group))
		}
	}

	result.Warnings.HighReplicateSD = flagReplicateSpread(means, opts.MaxReplicateSD)

	// Steps 3 and 4: identity decomposition and the keyed inner join.
	pairs, malformed, unpaired := pair(means, opts.Delimiter)
	result.Warnings.MalformedIdentities = malformed
	result.Warnings.Unpaired = unpaired
	result.Pairs = pairs

	// Step 6: the control baseline. (Step 5, delta-Ct, is computed
	// during pairing.)
	var baselineSum float64
	var baselineN int
	for _, p := range pairs {
		if p.Treatment == opts.ControlLabel {
			baselineSum += p.DeltaCt
			baselineN++
		}
	}

	if baselineN == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingBaseline, opts.ControlLabel)
	}

	baseline := baselineSum / float64(baselineN)
	result.Baseline = baseline

	// Steps 7 and 8: delta-delta-Ct, relative concentration, and the
	// per-treatment rollup. Pairs arrive sorted, so replicates land in
	// order within each treatment.
	byTreatment := make(map[string][]ReplicateResult)
	for _, p := range pairs {
		ddCt := baseline - p.DeltaCt

		byTreatment[p.Treatment] = append(byTreatment[p.Treatment], ReplicateResult{
			Replicate:    p.Replicate,
			DeltaCt:      p.DeltaCt,
			DeltaDeltaCt: ddCt,
			RelConc:      math.Pow(opts.Efficiency, -ddCt),
		})
	}

	treatments := make([]string, 0, len(byTreatment))
	for treatment := range byTreatment {
		treatments = append(treatments, treatment)
	}
	sort.Strings(treatments)

	for _, treatment := range treatments {
		replicates := byTreatment[treatment]

		var sum float64
		for _, r := range replicates {
			sum += r.RelConc
		}

		result.Summaries = append(result.Summaries, TreatmentSummary{
			Treatment:   treatment,
			MeanRelConc: sum / float64(len(replicates)),
			Replicates:  replicates,
		})
	}

	result.Warnings.DeltaCtOutliers = flagDeltaCtOutliers(pairs, opts.Delimiter)

	return result, nil
}
