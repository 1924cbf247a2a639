package ddct

import (
	"math"
	"testing"
)

func TestAggregate(t *testing.T) {
	measurements := []Measurement{
		{SampleName: "Control-1", Group: Housekeeping, Ct: Ct(20.0)},
		{SampleName: "Control-1", Group: Housekeeping, Ct: Ct(20.5)},
		{SampleName: "Control-1", Group: Housekeeping, Ct: Ct(21.0)},
		{SampleName: "Control-1", Group: Target, Ct: Ct(25.0)},
		{SampleName: "Control-1", Group: Target, Ct: UndeterminedCt()},
		{SampleName: "RNAi1-1", Group: Target, Ct: UndeterminedCt()},
		{SampleName: "RNAi1-1", Group: Target, Ct: UndeterminedCt()},
	}

	means := aggregate(measurements)

	if len(means) != 3 {
		t.Fatalf("Expected 3 groups, got %d: %+v", len(means), means)
	}

	// Sorted by sample name then group, so the order is fixed.
	hk := means[0]
	if hk.SampleName != "Control-1" || hk.Group != Housekeeping {
		t.Fatalf("Unexpected first group: %+v", hk)
	}
	if hk.Determined != 3 || hk.Undetermined != 0 {
		t.Fatalf("Housekeeping counts: %+v", hk)
	}
	if expected := 20.5; math.Abs(hk.MeanCt.Float64-expected) > tolerance {
		t.Fatalf("Housekeeping mean: got %f, expected %f", hk.MeanCt.Float64, expected)
	}
	if hk.StdDev <= 0 {
		t.Fatalf("Expected a positive replicate SD, got %f", hk.StdDev)
	}

	// The undetermined reading is excluded from the mean, not imputed.
	target := means[1]
	if target.Group != Target || target.Determined != 1 || target.Undetermined != 1 {
		t.Fatalf("Target counts: %+v", target)
	}
	if expected := 25.0; math.Abs(target.MeanCt.Float64-expected) > tolerance {
		t.Fatalf("Target mean: got %f, expected %f", target.MeanCt.Float64, expected)
	}

	// An all-undetermined group yields an explicitly undetermined
	// mean, not zero.
	rnai := means[2]
	if rnai.SampleName != "RNAi1-1" {
		t.Fatalf("Unexpected third group: %+v", rnai)
	}
	if rnai.MeanCt.Valid {
		t.Fatalf("Expected an undetermined mean, got %+v", rnai.MeanCt)
	}
	if rnai.Determined != 0 || rnai.Undetermined != 2 {
		t.Fatalf("RNAi1-1 counts: %+v", rnai)
	}
}
