// Package bed implements an algebra over bed-like genomic regions.
//
// A region is a half-open, 0-indexed interval [start, end) on a named
// chromosome. Regions travel in ordered tables ([Table]) whose rows carry
// the interval triple plus arbitrary passthrough columns that every
// transform copies verbatim.
//
// The package provides five pure transforms:
//   - [Gaps] and [Filled] detect maximal runs of unknown (N/n) and known
//     nucleotides in chromosome sequences.
//   - [Tessellate] partitions each region into fixed-size windows.
//   - [Expand] grows each region by a fixed amount.
//   - [Wiggle] generates reproducible randomized translations of each region.
//   - [Extract] slices literal subsequences out of chromosome sequences.
//
// All transforms are stateless and safe for concurrent use on disjoint
// inputs. Failures are surfaced eagerly as structured errors from
// pkg/errors; no transform clamps, truncates, or returns partial results.
package bed
