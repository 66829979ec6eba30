package tiles

import (
	"testing"

	"github.com/vovakirdan/minefield/internal/fixed"
)

func TestNewLayerSize(t *testing.T) {
	if got := NewLayer(fixed.P(13, 8)).Size(); got != fixed.P(MinLayerSize, MinLayerSize) {
		t.Errorf("small grid layer = %v, expected %dx%d", got, MinLayerSize, MinLayerSize)
	}
	if got := NewLayer(fixed.P(20, 17)).Size(); got != fixed.P(40, 34) {
		t.Errorf("large grid layer = %v, expected 40x34", got)
	}
}

func TestLayerDropsOutOfRangeWrites(t *testing.T) {
	l := NewLayer(fixed.P(1, 1))
	set := NewTileSet("blocks", 12)
	l.SetTile(fixed.P(-1, 0), set, TileSetting{Index: 3})
	l.SetTile(fixed.P(MinLayerSize, 0), set, TileSetting{Index: 3})

	n := 0
	l.Visible(func(fixed.Point, Entry) { n++ })
	if n != 0 {
		t.Errorf("%d entries visible, expected none", n)
	}
	if !l.at(fixed.P(-1, 0)).Setting.IsBlank() {
		t.Error("a position outside the layer should read blank")
	}
}

func TestLayerVisibleAppliesScroll(t *testing.T) {
	l := NewLayer(fixed.P(2, 2))
	set := NewTileSet("blocks", 12)
	l.SetTile(fixed.P(1, 2), set, TileSetting{Index: 5})
	l.SetScroll(fixed.P(-16, -8))

	var got []fixed.Point
	l.Visible(func(p fixed.Point, e Entry) {
		if e.Sheet != "blocks" || e.Setting.Index != 5 {
			t.Errorf("entry = %+v, expected blocks/5", e)
		}
		got = append(got, p)
	})

	if len(got) != 1 || got[0] != fixed.P(24, 24) {
		t.Errorf("visible at %v, expected [(24,24)]", got)
	}

	l.Clear()
	if e := l.at(fixed.P(1, 2)); !e.Setting.IsBlank() {
		t.Error("Clear should blank every entry")
	}
}
