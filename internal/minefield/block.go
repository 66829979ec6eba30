package minefield

import "github.com/vovakirdan/minefield/internal/tiles"

// Block is the concealment state of a cell.
type Block uint8

const (
	Concealed  Block = iota // Covered, no mark
	Flagged                 // Covered, flagged as a mine
	Questioned              // Covered, marked as uncertain
	Revealed                // Uncovered; terminal
)

// String returns a human-readable name for the block state.
func (b Block) String() string {
	switch b {
	case Concealed:
		return "Concealed"
	case Flagged:
		return "Flagged"
	case Questioned:
		return "Questioned"
	case Revealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// IsConcealed reports whether the cell is still covered.
func (b Block) IsConcealed() bool {
	return b != Revealed
}

// Next returns the state after one press of the mark button:
// Concealed -> Flagged -> Questioned -> Concealed. Revealed stays Revealed.
func (b Block) Next() Block {
	switch b {
	case Concealed:
		return Flagged
	case Flagged:
		return Questioned
	case Questioned:
		return Concealed
	default:
		return b
	}
}

// Revealable reports whether the reveal button may uncover this cell.
// Flags protect against accidental reveals.
func (b Block) Revealable() bool {
	return b == Concealed || b == Questioned
}

// Index sets into the block sheet, one per concealed state.
var (
	concealedIndices  = tiles.IndexSet{0, 1, 2, 3}
	flaggedIndices    = tiles.IndexSet{4, 5, 6, 7}
	questionedIndices = tiles.IndexSet{8, 9, 10, 11}
)

// Indices returns the block-sheet quadrant indices for a concealed state.
// The second result is false for Revealed, whose super-tile is blank.
func (b Block) Indices() (tiles.IndexSet, bool) {
	switch b {
	case Concealed:
		return concealedIndices, true
	case Flagged:
		return flaggedIndices, true
	case Questioned:
		return questionedIndices, true
	default:
		return tiles.IndexSet{}, false
	}
}
