package ddct

import (
	"reflect"
	"testing"
)

func TestFlagReplicateSpread(t *testing.T) {
	means := []SampleMean{
		{SampleName: "Control-1", Group: Housekeeping, Determined: 3, StdDev: 0.2},
		{SampleName: "Control-1", Group: Target, Determined: 3, StdDev: 1.4},
		{SampleName: "RNAi1-1", Group: Target, Determined: 1, StdDev: 0},
	}

	if flagged := flagReplicateSpread(means, 0.5); !reflect.DeepEqual(flagged, []string{"Control-1/target"}) {
		t.Fatalf("Got %v", flagged)
	}

	// A zero threshold disables the check entirely.
	if flagged := flagReplicateSpread(means, 0); flagged != nil {
		t.Fatalf("Expected no flags with the check disabled, got %v", flagged)
	}
}

func TestFlagDeltaCtOutliers(t *testing.T) {
	// Seven well-behaved replicates plus one wild value. The wild one
	// sits beyond two sample standard deviations of the group.
	pairs := []PairedSample{
		{Treatment: "Control", Replicate: "1", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "2", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "3", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "4", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "5", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "6", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "7", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "8", DeltaCt: 50.0},
	}

	if flagged := flagDeltaCtOutliers(pairs, "-"); !reflect.DeepEqual(flagged, []string{"Control-8"}) {
		t.Fatalf("Got %v", flagged)
	}
}

func TestFlagDeltaCtOutliersSmallGroups(t *testing.T) {
	// Groups below the minimum size are never assessed, and identical
	// values (SD 0) never flag.
	pairs := []PairedSample{
		{Treatment: "Control", Replicate: "1", DeltaCt: 5.0},
		{Treatment: "Control", Replicate: "2", DeltaCt: 9.0},
		{Treatment: "RNAi1", Replicate: "1", DeltaCt: 3.0},
		{Treatment: "RNAi1", Replicate: "2", DeltaCt: 3.0},
		{Treatment: "RNAi1", Replicate: "3", DeltaCt: 3.0},
	}

	if flagged := flagDeltaCtOutliers(pairs, "-"); flagged != nil {
		t.Fatalf("Expected no flags, got %v", flagged)
	}
}
