package ddct

// ReplicateResult carries the full derivation for one biological
// replicate so downstream display never has to settle for only the
// treatment mean.
type ReplicateResult struct {
	Replicate string

	DeltaCt      float64
	DeltaDeltaCt float64

	// RelConc is the fold-change in target abundance relative to the
	// control baseline under the exponential amplification model.
	RelConc float64
}

// TreatmentSummary is the per-treatment rollup: the mean relative
// concentration alongside every per-replicate value that produced it.
type TreatmentSummary struct {
	Treatment string

	MeanRelConc float64

	Replicates []ReplicateResult
}

// RelConcs returns the per-replicate relative concentrations in
// replicate order.
func (s TreatmentSummary) RelConcs() []float64 {
	out := make([]float64, 0, len(s.Replicates))
	for _, r := range s.Replicates {
		out = append(out, r.RelConc)
	}

	return out
}

// Warnings collects the non-fatal data-quality findings from one
// computation. They accompany a successful result so callers can audit
// input quality without losing the rest of the run.
type Warnings struct {
	// MalformedIdentities lists sample names that did not decompose
	// into treatment and replicate. Their records were skipped.
	MalformedIdentities []string

	// Unpaired lists treatment-replicate identities present in only
	// one primer group (or whose group mean was undetermined). They
	// were dropped from pairing.
	Unpaired []string

	// UndeterminedGroups lists (sample, primer group) pairs containing
	// at least one undetermined reading.
	UndeterminedGroups []string

	// HighReplicateSD lists (sample, primer group) pairs whose
	// technical-replicate spread exceeded Options.MaxReplicateSD.
	HighReplicateSD []string

	// DeltaCtOutliers lists treatment-replicate identities whose
	// delta-Ct sits far outside their treatment's distribution.
	DeltaCtOutliers []string
}

// Count reports the total number of findings across all categories.
func (w Warnings) Count() int {
	return len(w.MalformedIdentities) +
		len(w.Unpaired) +
		len(w.UndeterminedGroups) +
		len(w.HighReplicateSD) +
		len(w.DeltaCtOutliers)
}

// Result is the output of one Compute call.
type Result struct {
	// Summaries is ordered by treatment label.
	Summaries []TreatmentSummary

	// Baseline is the control treatment's mean delta-Ct.
	Baseline float64

	// Pairs retains the joined per-replicate intermediates in
	// treatment order, for inspection.
	Pairs []PairedSample

	Warnings Warnings
}
