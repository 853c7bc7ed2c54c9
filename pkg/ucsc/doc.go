// Package ucsc is a client for the UCSC Genome Browser REST API
// (https://api.genome.ucsc.edu). It exposes the three endpoints genomekit
// needs: the assembly catalog, per-assembly chromosome lists, and raw
// nucleotide sequence ranges.
//
// Listing responses are cached through a pluggable cache backend; sequence
// payloads are not response-cached since the genome store persists them
// separately. Transient failures (connection errors, 5xx) are retried with
// exponential backoff.
package ucsc
