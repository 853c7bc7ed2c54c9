package bed

import (
	"testing"

	"github.com/genomekit/genomekit/pkg/errors"
)

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		chrom   string
		start   int
		end     int
		wantErr bool
	}{
		{"Valid", "chr1", 0, 100, false},
		{"SingleBase", "chrM", 5, 6, false},
		{"EmptyChrom", "", 0, 10, true},
		{"NegativeStart", "chr1", -1, 10, true},
		{"EmptyRange", "chr1", 10, 10, true},
		{"Inverted", "chr1", 20, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := NewInterval(tt.chrom, tt.start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInterval) {
					t.Fatalf("got %v, want INVALID_INTERVAL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewInterval() failed: %v", err)
			}
			if got := iv.Len(); got != tt.end-tt.start {
				t.Errorf("Len() = %d, want %d", got, tt.end-tt.start)
			}
		})
	}
}

func TestIntervalString(t *testing.T) {
	iv := Interval{Chrom: "chr2", Start: 100, End: 250}
	if got, want := iv.String(), "chr2:100-250"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in      string
		want    Alignment
		wantErr bool
	}{
		{"left", AlignLeft, false},
		{"right", AlignRight, false},
		{"center", AlignCenter, false},
		{"Center", AlignCenter, false},
		{" left ", AlignLeft, false},
		{"kebab", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlignment(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidAlignment) {
					t.Fatalf("got %v, want INVALID_ALIGNMENT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlignment(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlignmentSplit(t *testing.T) {
	tests := []struct {
		align       Alignment
		delta       int
		left, right int
	}{
		{AlignLeft, 10, 0, 10},
		{AlignRight, 10, 10, 0},
		{AlignCenter, 10, 5, 5},
		{AlignCenter, 11, 5, 6}, // odd extra unit goes right
		{AlignCenter, 1, 0, 1},
		{AlignCenter, 0, 0, 0},
	}

	for _, tt := range tests {
		left, right := tt.align.split(tt.delta)
		if left != tt.left || right != tt.right {
			t.Errorf("%v.split(%d) = (%d, %d), want (%d, %d)",
				tt.align, tt.delta, left, right, tt.left, tt.right)
		}
		if left+right != tt.delta {
			t.Errorf("%v.split(%d): parts sum to %d", tt.align, tt.delta, left+right)
		}
	}
}
