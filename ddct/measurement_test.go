package ddct

import (
	"math"
	"testing"
)

func TestParseSampleIdentity(t *testing.T) {
	for _, v := range []struct {
		Name      string
		Delimiter string
		Treatment string
		Replicate string
		WantErr   bool
	}{
		{"Control-1", "-", "Control", "1", false},
		{"RNAi1-2", "-", "RNAi1", "2", false},
		{"Mock_3", "_", "Mock", "3", false},
		{"nodelimiter", "-", "", "", true},
		{"a-b-c", "-", "", "", true},
		{"-1", "-", "", "", true},
		{"Control-", "-", "", "", true},
		{"", "-", "", "", true},
	} {
		identity, err := ParseSampleIdentity(v.Name, v.Delimiter)

		if v.WantErr {
			if err == nil {
				t.Fatalf("%q: expected an error, got %+v", v.Name, identity)
			}
			continue
		}

		if err != nil {
			t.Fatalf("%q: unexpected error: %v", v.Name, err)
		}
		if identity.Treatment != v.Treatment || identity.Replicate != v.Replicate {
			t.Fatalf("%q: got %+v, expected (%s, %s)", v.Name, identity, v.Treatment, v.Replicate)
		}
	}
}

func TestCtValueUnmarshalCSV(t *testing.T) {
	for _, v := range []struct {
		Input   string
		Valid   bool
		Value   float64
		WantErr bool
	}{
		{"25.5", true, 25.5, false},
		{" 18.25 ", true, 18.25, false},
		{"0", true, 0, false},
		{"Undetermined", false, 0, false},
		{"undetermined", false, 0, false},
		{"NA", false, 0, false},
		{"N/A", false, 0, false},
		{"", false, 0, false},
		{"-3.5", false, 0, true},
		{"not-a-number", false, 0, true},
	} {
		var ct CtValue
		err := ct.UnmarshalCSV(v.Input)

		if v.WantErr {
			if err == nil {
				t.Fatalf("%q: expected an error, got %+v", v.Input, ct)
			}
			continue
		}

		if err != nil {
			t.Fatalf("%q: unexpected error: %v", v.Input, err)
		}
		if ct.Valid != v.Valid {
			t.Fatalf("%q: Valid: got %v, expected %v", v.Input, ct.Valid, v.Valid)
		}
		if v.Valid && math.Abs(ct.Float64-v.Value) > tolerance {
			t.Fatalf("%q: got %f, expected %f", v.Input, ct.Float64, v.Value)
		}
	}
}

func TestCtValueString(t *testing.T) {
	if s := Ct(21.5).String(); s != "21.5" {
		t.Fatalf("Expected 21.5, got %s", s)
	}
	if s := UndeterminedCt().String(); s != "Undetermined" {
		t.Fatalf("Expected Undetermined, got %s", s)
	}
}

func TestDefaultExclude(t *testing.T) {
	for _, v := range []struct {
		Name     string
		Excluded bool
	}{
		{"NTC", true},
		{"ntc", true},
		{" Blank ", true},
		{"water", true},
		{"No Template Control", true},
		{"", true},
		{"Control-1", false},
		{"RNAi2-3", false},
	} {
		if got := DefaultExclude(v.Name); got != v.Excluded {
			t.Fatalf("%q: got %v, expected %v", v.Name, got, v.Excluded)
		}
	}
}
