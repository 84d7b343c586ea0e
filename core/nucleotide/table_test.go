package nucleotide

import "testing"

func TestTablesAreInverse(t *testing.T) {
	if len(PairToBase) != 4 || len(BaseToPair) != 4 {
		t.Fatalf("tables must have 4 entries, got %d/%d", len(PairToBase), len(BaseToPair))
	}
	for pair, base := range PairToBase {
		if got := BaseToPair[rune(base)]; got != pair {
			t.Errorf("BaseToPair[%c] = %q, want %q", base, got, pair)
		}
	}
	for base, pair := range BaseToPair {
		if got := PairToBase[pair]; rune(got) != base {
			t.Errorf("PairToBase[%q] = %c, want %c", pair, got, base)
		}
	}
}

// Snapshot of the substitution code; changing it breaks every stored strand.
func TestPairTable_Snapshot(t *testing.T) {
	want := map[string]byte{"00": 'A', "01": 'T', "10": 'C', "11": 'G'}
	for k, v := range want {
		if PairToBase[k] != v {
			t.Fatalf("PairToBase[%q] = %c, want %c", k, PairToBase[k], v)
		}
	}
}

func TestRevComp(t *testing.T) {
	cases := map[string]string{
		"AGTC":   "GACT",
		"GGCGCC": "GGCGCC",
		"ATG":    "CAT",
		"AXT":    "AXT",
		"":       "",
	}
	for in, want := range cases {
		if got := RevComp(in); got != want {
			t.Errorf("RevComp(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDNA(t *testing.T) {
	if !IsDNA("ATCG") || !IsDNA("") {
		t.Fatalf("ATCG and empty must be DNA")
	}
	if IsDNA("ATXG") || IsDNA("atcg") {
		t.Fatalf("non-ATCG symbols must be rejected")
	}
}
