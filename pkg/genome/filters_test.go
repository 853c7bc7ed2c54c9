package genome

import (
	"slices"
	"testing"
)

func TestFilterChromosomes(t *testing.T) {
	lengths := map[string]int{
		"chr1":                   100,
		"chr2":                   100,
		"chrX":                   100,
		"chrM":                   100, // kept: chrmt filter does not match plain chrM
		"chrMT":                  100,
		"chrUn_KI270302v1":       100,
		"chr1_KI270706v1_random": 100,
		"chr6_GL000250v2_alt":    100,
		"chr11_KI270927v1_fix":   100,
		"Scaffold_102":           100,
	}

	got := filterChromosomes(lengths, DefaultFilters)
	want := []string{"chr1", "chr2", "chrM", "chrX"}
	if !slices.Equal(got, want) {
		t.Errorf("filterChromosomes() = %v, want %v", got, want)
	}
}

func TestFilterChromosomes_EmptyFiltersKeepAll(t *testing.T) {
	lengths := map[string]int{"chrUn_x": 1, "chr1": 1}
	got := filterChromosomes(lengths, nil)
	if !slices.Equal(got, []string{"chr1", "chrUn_x"}) {
		t.Errorf("filterChromosomes() = %v", got)
	}
}
