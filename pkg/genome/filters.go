package genome

import (
	"slices"
	"strings"
)

// DefaultFilters are the case-insensitive substrings used to drop
// non-canonical chromosomes: unplaced fragments (chrUn), mitochondrial
// DNA (chrMT), scaffolds, contigs, and alternate/patched haplotypes.
var DefaultFilters = []string{
	"chrun",
	"chrmt",
	"scaffold",
	"contig",
	"super",
	"chrbin",
	"random",
	"hap",
	"alt",
	"fix",
}

// filterChromosomes returns the sorted chromosome names whose lowercased
// name contains none of the filter substrings.
func filterChromosomes(lengths map[string]int, filters []string) []string {
	var keep []string
	for name := range lengths {
		lower := strings.ToLower(name)
		dropped := false
		for _, f := range filters {
			if strings.Contains(lower, f) {
				dropped = true
				break
			}
		}
		if !dropped {
			keep = append(keep, name)
		}
	}
	slices.Sort(keep)
	return keep
}
