package tiles

import (
	"testing"

	"github.com/vovakirdan/minefield/internal/fixed"
)

type tileWrite struct {
	pos     fixed.Point
	set     string
	setting TileSetting
}

type recordingViewport struct {
	writes []tileWrite
	scroll fixed.Point
}

func (r *recordingViewport) SetTile(pos fixed.Point, set TileSet, setting TileSetting) {
	r.writes = append(r.writes, tileWrite{pos: pos, set: set.Name(), setting: setting})
}

func (r *recordingViewport) SetScroll(offset fixed.Point) {
	r.scroll = offset
}

func testData() TileData {
	settings := make([]TileSetting, 12)
	for i := range settings {
		settings[i] = TileSetting{Index: i}
	}
	return TileData{Tiles: NewTileSet("blocks", 12), Settings: settings}
}

func TestDrawQuadrantOrder(t *testing.T) {
	vp := &recordingViewport{}
	Draw(vp, fixed.P(4, 6), testData(), IndexSet{4, 5, 6, 7})

	expected := []tileWrite{
		{fixed.P(4, 6), "blocks", TileSetting{Index: 4}},
		{fixed.P(5, 6), "blocks", TileSetting{Index: 5}},
		{fixed.P(4, 7), "blocks", TileSetting{Index: 6}},
		{fixed.P(5, 7), "blocks", TileSetting{Index: 7}},
	}

	if len(vp.writes) != len(expected) {
		t.Fatalf("got %d writes, expected %d", len(vp.writes), len(expected))
	}
	for i, w := range expected {
		if vp.writes[i] != w {
			t.Errorf("write %d = %+v, expected %+v", i, vp.writes[i], w)
		}
	}
}

func TestClearWritesBlank(t *testing.T) {
	vp := &recordingViewport{}
	Clear(vp, fixed.P(0, 0), testData())

	if len(vp.writes) != 4 {
		t.Fatalf("got %d writes, expected 4", len(vp.writes))
	}
	seen := make(map[fixed.Point]bool)
	for _, w := range vp.writes {
		if !w.setting.IsBlank() {
			t.Errorf("write at %s is not blank: %+v", w.pos, w.setting)
		}
		seen[w.pos] = true
	}
	for _, q := range quadrants {
		if !seen[q] {
			t.Errorf("quadrant %s was not cleared", q)
		}
	}
}

func TestDrawIsIdempotent(t *testing.T) {
	first := &recordingViewport{}
	second := &recordingViewport{}
	set := IndexSet{8, 9, 10, 11}

	Draw(first, fixed.P(2, 2), testData(), set)
	Draw(second, fixed.P(2, 2), testData(), set)
	Draw(second, fixed.P(2, 2), testData(), set)

	// The second viewport saw the same four writes twice; the final state per
	// position must match the single draw.
	final := make(map[fixed.Point]TileSetting)
	for _, w := range second.writes {
		final[w.pos] = w.setting
	}
	for _, w := range first.writes {
		if final[w.pos] != w.setting {
			t.Errorf("at %s: got %+v, expected %+v", w.pos, final[w.pos], w.setting)
		}
	}
}

func TestSettingOutOfRange(t *testing.T) {
	data := testData()

	if got := data.Setting(3); got.Index != 3 {
		t.Errorf("Setting(3).Index = %d, expected 3", got.Index)
	}
	if !data.Setting(12).IsBlank() {
		t.Error("Setting past the table should be blank")
	}
	if !data.Setting(-1).IsBlank() {
		t.Error("negative Setting should be blank")
	}
}

func TestSuperTileOrigin(t *testing.T) {
	if got := SuperTileOrigin(fixed.P(12, 7)); got != fixed.P(24, 14) {
		t.Errorf("SuperTileOrigin = %s, expected (24,14)", got)
	}
}
