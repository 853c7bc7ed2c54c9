package errors

import (
	"regexp"
	"unicode"
)

// assemblyRegex matches UCSC assembly identifiers such as "hg38", "sacCer3"
// or "GCF_000001405.40".
var assemblyRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateAssembly validates a UCSC assembly identifier.
// It rejects names that could be used for path traversal, since the assembly
// name becomes a directory name in the local genome store.
func ValidateAssembly(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAssembly, "assembly name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidAssembly, "assembly name too long (max 128 characters)")
	}

	if !assemblyRegex.MatchString(name) {
		return New(ErrCodeInvalidAssembly, "invalid assembly name: %q", name)
	}

	return nil
}

// ValidateChromosome validates a chromosome identifier such as "chr1" or
// "chrM". The name becomes part of a file name in the local genome store, so
// path separators and control characters are rejected.
func ValidateChromosome(name string) error {
	if name == "" {
		return New(ErrCodeUnknownChromosome, "chromosome name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeUnknownChromosome, "chromosome name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) || r == '/' || r == '\\' {
			return New(ErrCodeUnknownChromosome, "chromosome name contains invalid characters: %q", name)
		}
	}

	return nil
}
