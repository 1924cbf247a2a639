package ddct

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// PrimerGroup identifies which of the two primer roles a measurement
// belongs to. The mapping from an instrument's raw primer label to a
// PrimerGroup is supplied by the caller; it is never inferred here.
type PrimerGroup int

const (
	Housekeeping PrimerGroup = iota
	Target
)

func (g PrimerGroup) String() string {
	switch g {
	case Housekeeping:
		return "housekeeping"
	case Target:
		return "target"
	}

	return fmt.Sprintf("PrimerGroup(%d)", int(g))
}

// CtValue is a cycle-threshold reading. Instruments report wells that
// never crossed the fluorescence threshold as "Undetermined"; those
// decode as an invalid CtValue and are excluded from averaging rather
// than being coerced to zero.
type CtValue struct {
	null.Float
}

// Ct returns a determined cycle-threshold value.
func Ct(value float64) CtValue {
	return CtValue{null.FloatFrom(value)}
}

// UndeterminedCt returns the sentinel for a well with no detectable
// amplification.
func UndeterminedCt() CtValue {
	return CtValue{null.NewFloat(0, false)}
}

// Textual markers that instruments emit for wells without a Ct call.
var undeterminedMarkers = map[string]struct{}{
	"":             {},
	"undetermined": {},
	"n/a":          {},
	"na":           {},
}

// UnmarshalCSV satisfies gocsv's TypeUnmarshaller so that CtValue
// fields can be decoded directly from instrument exports.
func (ct *CtValue) UnmarshalCSV(value string) error {
	trimmed := strings.TrimSpace(value)

	if _, undet := undeterminedMarkers[strings.ToLower(trimmed)]; undet {
		*ct = UndeterminedCt()
		return nil
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fmt.Errorf("ct value %q is neither numeric nor a recognized undetermined marker", value)
	}

	if parsed < 0 {
		return fmt.Errorf("ct value %q is negative; cycle thresholds must be non-negative", value)
	}

	*ct = Ct(parsed)

	return nil
}

// MarshalCSV renders a determined Ct as its number and an undetermined
// one as the conventional marker.
func (ct CtValue) MarshalCSV() (string, error) {
	return ct.String(), nil
}

func (ct CtValue) String() string {
	if !ct.Valid {
		return "Undetermined"
	}

	return strconv.FormatFloat(ct.Float64, 'f', -1, 64)
}

// Measurement is one technical-replicate reading from one well.
type Measurement struct {
	// Well is the plate position (e.g., "A1"). Optional; purely
	// informational at this layer.
	Well string

	// SampleName encodes both the treatment and the biological
	// replicate, joined by the configured delimiter (e.g., "RNAi1-1").
	SampleName string

	Group PrimerGroup

	Ct CtValue
}

// SampleIdentity is the decomposition of a sample name into its
// treatment and biological-replicate components.
type SampleIdentity struct {
	Treatment string
	Replicate string
}

// ParseSampleIdentity splits a sample name on the delimiter. The name
// must split into exactly two non-empty parts; anything else is
// malformed and invalidates the record (not the whole run).
func ParseSampleIdentity(sampleName, delimiter string) (SampleIdentity, error) {
	parts := strings.Split(sampleName, delimiter)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return SampleIdentity{}, fmt.Errorf("sample name %q does not split into treatment%sreplicate", sampleName, delimiter)
	}

	return SampleIdentity{Treatment: parts[0], Replicate: parts[1]}, nil
}

// Sentinels commonly used for wells that carry no biological sample.
var controlWellNames = map[string]struct{}{
	"ntc":                 {},
	"no template control": {},
	"ntc control":         {},
	"blank":               {},
	"empty":               {},
	"water":               {},
}

// DefaultExclude reports whether a sample name denotes a no-template
// control or an empty well. These carry no sample identity and must
// never enter aggregation.
func DefaultExclude(sampleName string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(sampleName))
	if trimmed == "" {
		return true
	}

	_, excluded := controlWellNames[trimmed]

	return excluded
}
