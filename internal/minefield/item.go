package minefield

import (
	"errors"
	"fmt"
)

// ItemKind tags the content under a revealed cell.
type ItemKind uint8

const (
	ItemBlank  ItemKind = iota // No neighbouring mines
	ItemNumber                 // 1-8 neighbouring mines
	ItemMine                   // The cell itself is mined
)

// ErrInvalidCount is returned for a neighbour count outside [1,8].
var ErrInvalidCount = errors.New("minefield: neighbour count must be in [1,8]")

// Item is the content of a revealed cell. It is orthogonal to Block:
// a cell has a concealment state and, once revealed, an item.
type Item struct {
	kind  ItemKind
	count int
}

// BlankItem returns the empty-cell item.
func BlankItem() Item {
	return Item{kind: ItemBlank}
}

// MineItem returns the mine item.
func MineItem() Item {
	return Item{kind: ItemMine}
}

// NumberItem returns a numbered item for count neighbouring mines.
func NumberItem(count int) (Item, error) {
	if count < 1 || count > 8 {
		return Item{}, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	return Item{kind: ItemNumber, count: count}, nil
}

// Kind returns the item's tag.
func (i Item) Kind() ItemKind {
	return i.kind
}

// Count returns the neighbour count of a Number item and 0 otherwise.
func (i Item) Count() int {
	return i.count
}

// String returns a human-readable description of the item.
func (i Item) String() string {
	switch i.kind {
	case ItemNumber:
		return fmt.Sprintf("Number(%d)", i.count)
	case ItemMine:
		return "Mine"
	default:
		return "Blank"
	}
}

// NumberTile returns the index into the numbers sheet for this item.
// Blank maps to 0, numbers to their count and a mine to 9. Nothing calls it
// outside tests until mine placement exists.
func (i Item) NumberTile() int {
	switch i.kind {
	case ItemNumber:
		return i.count
	case ItemMine:
		return 9
	default:
		return 0
	}
}
