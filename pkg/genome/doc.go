// Package genome retrieves genomic assemblies from the UCSC Genome
// Browser API and persists them in a local on-disk store.
//
// A [Genome] is opened by assembly ID (e.g., "hg38", "sacCer3"). Opening
// loads chromosome sequences from the store when present and downloads the
// rest concurrently, so repeated opens are cheap and offline-friendly.
// Chromosome selection defaults to filtering out unplaced scaffolds,
// alternate haplotypes, and similar non-canonical sequences; an explicit
// chromosome list bypasses the filters.
package genome
