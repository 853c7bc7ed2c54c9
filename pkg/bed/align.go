package bed

import (
	"fmt"
	"strings"

	"github.com/genomekit/genomekit/pkg/errors"
)

// Alignment selects how a size delta is distributed between the two
// boundaries of an interval when its length must change.
//
// The three policies anchor a different edge:
//   - AlignLeft keeps the start fixed; the whole delta goes to the end.
//   - AlignRight keeps the end fixed; the whole delta goes to the start.
//   - AlignCenter splits the delta as evenly as possible, floor on the
//     left and the odd extra unit on the right.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// ParseAlignment converts a user-supplied token into an Alignment.
// Matching is case-insensitive; anything but "left", "right" or "center"
// fails with an INVALID_ALIGNMENT error. There is no default.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center":
		return AlignCenter, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidAlignment,
			"invalid alignment %q (supported: left, right, center)", s)
	}
}

// String returns the canonical token for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// split distributes delta between the left and right boundary such that
// left+right == delta. The center tie-break is fixed: floor goes left,
// ceiling goes right, so results are reproducible for odd deltas.
func (a Alignment) split(delta int) (left, right int) {
	switch a {
	case AlignLeft:
		return 0, delta
	case AlignRight:
		return delta, 0
	case AlignCenter:
		return delta / 2, delta - delta/2
	default:
		panic(fmt.Sprintf("bed: unknown alignment %d", int(a)))
	}
}
