package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidInterval, "interval end %d <= start %d", 5, 10)
	if got := err.Error(); got != "INVALID_INTERVAL: interval end 5 <= start 10" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(ErrCodeNetwork, stderrors.New("connection refused"), "fetching catalog")
	if got := wrapped.Error(); !strings.Contains(got, "connection refused") {
		t.Errorf("wrapped Error() = %q, want cause included", got)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeOutOfBounds, "end beyond chromosome")
	if !Is(err, ErrCodeOutOfBounds) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is() = true for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is() = true for non-Error type")
	}
}

func TestIs_Wrapped(t *testing.T) {
	inner := New(ErrCodeUnknownChromosome, "chromosome chrZZ")
	outer := Wrap(ErrCodeInternal, inner, "loading genome")

	// The outermost code wins; the inner error stays reachable via Unwrap.
	if !Is(outer, ErrCodeInternal) {
		t.Error("Is() = false for outer code")
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is() cannot reach the wrapped cause")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidBed, "bad line")); got != ErrCodeInvalidBed {
		t.Errorf("GetCode() = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidAssembly, "invalid assembly name")
	if got := UserMessage(err); got != "invalid assembly name" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateAssembly(t *testing.T) {
	valid := []string{"hg38", "sacCer3", "GCF_000001405.40", "mm10"}
	for _, name := range valid {
		if err := ValidateAssembly(name); err != nil {
			t.Errorf("ValidateAssembly(%q) = %v", name, err)
		}
	}

	invalid := []string{"", "../etc", "a/b", ".hidden", "-dash", strings.Repeat("x", 129)}
	for _, name := range invalid {
		if err := ValidateAssembly(name); !Is(err, ErrCodeInvalidAssembly) {
			t.Errorf("ValidateAssembly(%q) = %v, want INVALID_ASSEMBLY", name, err)
		}
	}
}

func TestValidateChromosome(t *testing.T) {
	valid := []string{"chr1", "chrM", "chrUn_KI270302v1", "HLA-A*01:01:01:01"}
	for _, name := range valid {
		if err := ValidateChromosome(name); err != nil {
			t.Errorf("ValidateChromosome(%q) = %v", name, err)
		}
	}

	invalid := []string{"", "chr/1", `chr\1`, "chr\x001", strings.Repeat("c", 257)}
	for _, name := range invalid {
		if err := ValidateChromosome(name); !Is(err, ErrCodeUnknownChromosome) {
			t.Errorf("ValidateChromosome(%q) = %v, want UNKNOWN_CHROMOSOME", name, err)
		}
	}
}
