package bed

import (
	"testing"

	"github.com/genomekit/genomekit/pkg/errors"
)

func singleRowTable(chrom string, start, end int, extra map[string]string) *Table {
	t := NewTable()
	for k := range extra {
		t.ExtraCols = append(t.ExtraCols, k)
	}
	t.Append(Interval{Chrom: chrom, Start: start, End: end}, extra)
	return t
}

func TestTessellate(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		window     int
		align      Alignment
		want       []Interval
	}{
		{
			name:  "LeftRemainderOnLast",
			start: 100, end: 250, window: 100, align: AlignLeft,
			want: []Interval{
				{Chrom: "chr1", Start: 100, End: 200},
				{Chrom: "chr1", Start: 200, End: 250},
			},
		},
		{
			name:  "RightRemainderOnFirst",
			start: 100, end: 250, window: 100, align: AlignRight,
			want: []Interval{
				{Chrom: "chr1", Start: 100, End: 150},
				{Chrom: "chr1", Start: 150, End: 250},
			},
		},
		{
			name:  "CenterEvenRemainder",
			start: 0, end: 260, window: 100, align: AlignCenter,
			// r = 40, split 20/20 across first and last windows
			want: []Interval{
				{Chrom: "chr1", Start: 0, End: 80},
				{Chrom: "chr1", Start: 80, End: 180},
				{Chrom: "chr1", Start: 180, End: 260},
			},
		},
		{
			name:  "CenterOddRemainderTruncatesRightMore",
			start: 0, end: 25, window: 10, align: AlignCenter,
			// r = 5, first loses 2, last loses 3
			want: []Interval{
				{Chrom: "chr1", Start: 0, End: 8},
				{Chrom: "chr1", Start: 8, End: 18},
				{Chrom: "chr1", Start: 18, End: 25},
			},
		},
		{
			name:  "ExactMultiple",
			start: 0, end: 30, window: 10, align: AlignLeft,
			want: []Interval{
				{Chrom: "chr1", Start: 0, End: 10},
				{Chrom: "chr1", Start: 10, End: 20},
				{Chrom: "chr1", Start: 20, End: 30},
			},
		},
		{
			name:  "WindowLargerThanRegion",
			start: 10, end: 40, window: 100, align: AlignLeft,
			want:  []Interval{{Chrom: "chr1", Start: 10, End: 40}},
		},
		{
			name:  "WindowEqualsRegion",
			start: 10, end: 40, window: 30, align: AlignCenter,
			want:  []Interval{{Chrom: "chr1", Start: 10, End: 40}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := singleRowTable("chr1", tt.start, tt.end, map[string]string{"name": "peak1"})
			got, err := Tessellate(in, tt.window, tt.align)
			if err != nil {
				t.Fatalf("Tessellate() failed: %v", err)
			}
			assertIntervals(t, got, tt.want)

			// Windows are contiguous and cover the region exactly.
			total := 0
			pos := tt.start
			for _, row := range got.Rows {
				if row.Start != pos {
					t.Errorf("window at %d not contiguous, want start %d", row.Start, pos)
				}
				total += row.Len()
				pos = row.End

				if row.Extra["name"] != "peak1" {
					t.Errorf("passthrough column lost: %v", row.Extra)
				}
			}
			if total != tt.end-tt.start {
				t.Errorf("window lengths sum to %d, want %d", total, tt.end-tt.start)
			}
		})
	}
}

func TestTessellate_PassthroughIsCopied(t *testing.T) {
	in := singleRowTable("chr1", 0, 50, map[string]string{"name": "a"})
	out, err := Tessellate(in, 20, AlignLeft)
	if err != nil {
		t.Fatalf("Tessellate() failed: %v", err)
	}

	out.Rows[0].Extra["name"] = "mutated"
	if in.Rows[0].Extra["name"] != "a" {
		t.Error("input row shares its Extra map with the output")
	}
	if out.Rows[1].Extra["name"] != "a" {
		t.Error("sibling output row shares its Extra map")
	}
}

func TestTessellate_InvalidWindowSize(t *testing.T) {
	in := singleRowTable("chr1", 0, 50, nil)
	for _, w := range []int{0, -1, -100} {
		_, err := Tessellate(in, w, AlignLeft)
		if !errors.Is(err, errors.ErrCodeInvalidWindowSize) {
			t.Errorf("window %d: got %v, want INVALID_WINDOW_SIZE", w, err)
		}
	}
}
