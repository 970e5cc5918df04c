// SPDX-License-Identifier: MIT

package elimination

// Form selects the normal form computed by Eliminate.
type Form int

const (
	// RowEchelon reduces by row operations only: leading entries move
	// strictly right going down, entries below them vanish, leading entries
	// are normalized. Matrix = Left·A.
	RowEchelon Form = iota

	// ColEchelon is RowEchelon of the transpose, by column operations only.
	// Matrix = A·Right.
	ColEchelon

	// Diagonal uses row and column operations to reach a matrix whose only
	// non-zero entries are normalized pivots at (0,0) … (rank−1, rank−1).
	Diagonal

	// Smith is Diagonal with the divisibility chain d₁ | d₂ | … | d_rank.
	Smith
)

// String implements fmt.Stringer.
func (f Form) String() string {
	switch f {
	case RowEchelon:
		return "RowEchelon"
	case ColEchelon:
		return "ColEchelon"
	case Diagonal:
		return "Diagonal"
	case Smith:
		return "Smith"
	default:
		return "Form(?)"
	}
}

// valid reports whether f is one of the declared forms.
func (f Form) valid() bool { return f >= RowEchelon && f <= Smith }

// diagonal reports whether f is reached with both row and column operations.
func (f Form) diagonal() bool { return f == Diagonal || f == Smith }
