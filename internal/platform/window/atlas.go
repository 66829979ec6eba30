package window

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/minefield/internal/minefield"
	"github.com/vovakirdan/minefield/internal/tiles"
)

const sub = tiles.SubTileSize

var (
	colorFace    = color.RGBA{0xb8, 0xb8, 0xb8, 0xff}
	colorLight   = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colorShade   = color.RGBA{0x70, 0x70, 0x70, 0xff}
	colorFloor   = color.RGBA{0xd0, 0xd0, 0xd0, 0xff}
	colorFlag    = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	colorPole    = color.RGBA{0x20, 0x20, 0x20, 0xff}
	colorQuery   = color.RGBA{0xf0, 0xc0, 0x20, 0xff}
	colorMine    = color.RGBA{0x10, 0x10, 0x10, 0xff}
	colorBG      = color.RGBA{0x28, 0x30, 0x38, 0xff}
	colorCursor  = color.RGBA{0x40, 0x80, 0xff, 0xff}
	colorHUDText = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
)

// digitColors follows the usual 1-8 palette.
var digitColors = [9]color.RGBA{
	{},
	{0x20, 0x20, 0xe0, 0xff}, {0x10, 0x80, 0x10, 0xff}, {0xe0, 0x20, 0x20, 0xff},
	{0x10, 0x10, 0x80, 0xff}, {0x80, 0x10, 0x10, 0xff}, {0x10, 0x80, 0x80, 0xff},
	{0x10, 0x10, 0x10, 0xff}, {0x80, 0x80, 0x80, 0xff},
}

// 3x5 digit bitmaps, one row per string.
var digitGlyphs = [9][5]string{
	{},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"##.", "..#", ".#.", "#..", "###"},
	{"##.", "..#", ".#.", "..#", "##."},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "##.", "..#", "##."},
	{".##", "#..", "###", "#.#", "###"},
	{"###", "..#", ".#.", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
}

// 5x7 question mark centred on a 16x16 block.
var queryGlyph = [7]string{
	".###.",
	"#...#",
	"....#",
	"..##.",
	"..#..",
	".....",
	"..#..",
}

// Block kinds in sheet order; each is a 2x2 quad of sub-tiles.
const (
	blockCovered = iota
	blockFlag
	blockQuery
	blockKinds
)

// PaintSheet renders the named sheet as a horizontal strip of 8x8 graphics.
// It reports false for an unknown sheet.
func PaintSheet(name string) (*image.RGBA, bool) {
	switch name {
	case minefield.SheetBlocks:
		return paintBlocks(), true
	case minefield.SheetNumbers:
		return paintNumbers(), true
	default:
		return nil, false
	}
}

func paintBlocks() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, blockKinds*4*sub, sub))
	for kind := 0; kind < blockKinds; kind++ {
		block := paintBlock(kind)
		for q := 0; q < 4; q++ {
			src := image.Pt(q%2*sub, q/2*sub)
			dst := image.Rect((kind*4+q)*sub, 0, (kind*4+q+1)*sub, sub)
			draw.Draw(sheet, dst, block, src, draw.Src)
		}
	}
	return sheet
}

// paintBlock draws one bevelled 16x16 block with its mark.
func paintBlock(kind int) *image.RGBA {
	const size = tiles.SuperTileSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorFace), image.Point{}, draw.Src)
	for i := 0; i < size; i++ {
		img.SetRGBA(i, 0, colorLight)
		img.SetRGBA(0, i, colorLight)
		img.SetRGBA(i, size-1, colorShade)
		img.SetRGBA(size-1, i, colorShade)
	}

	switch kind {
	case blockFlag:
		for y := 3; y < 13; y++ {
			img.SetRGBA(8, y, colorPole)
		}
		for y := 3; y < 8; y++ {
			for x := 8 - (5 - abs(y-5)); x < 8; x++ {
				img.SetRGBA(x, y, colorFlag)
			}
		}
		for x := 5; x < 12; x++ {
			img.SetRGBA(x, 12, colorPole)
		}
	case blockQuery:
		stamp(img, queryGlyph[:], 6, 4, colorQuery)
	}
	return img
}

func paintNumbers() *image.RGBA {
	const count = 10
	sheet := image.NewRGBA(image.Rect(0, 0, count*sub, sub))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(colorFloor), image.Point{}, draw.Src)
	for n := 1; n <= 8; n++ {
		stamp(sheet, digitGlyphs[n][:], n*sub+3, 2, digitColors[n])
	}

	// Mine: a filled disc.
	ox := 9 * sub
	for y := 0; y < sub; y++ {
		for x := 0; x < sub; x++ {
			dx, dy := 2*x-7, 2*y-7
			if dx*dx+dy*dy <= 30 {
				sheet.SetRGBA(ox+x, y, colorMine)
			}
		}
	}
	return sheet
}

// stamp paints the '#' cells of rows at (x, y).
func stamp(img *image.RGBA, rows []string, x, y int, c color.RGBA) {
	for dy, row := range rows {
		for dx, ch := range row {
			if ch == '#' {
				img.SetRGBA(x+dx, y+dy, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Atlas holds the uploaded sheets. Images are created on first use so that
// building a Game never touches the graphics driver.
type Atlas struct {
	sheets map[string]*ebiten.Image
}

// NewAtlas returns an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{sheets: make(map[string]*ebiten.Image)}
}

// Tile returns the sub-image for one graphic, or nil when the sheet or index is unknown.
func (a *Atlas) Tile(sheet string, index int) *ebiten.Image {
	img, ok := a.sheets[sheet]
	if !ok {
		rgba, known := PaintSheet(sheet)
		if !known {
			return nil
		}
		img = ebiten.NewImageFromImage(rgba)
		a.sheets[sheet] = img
	}
	if index < 0 || (index+1)*sub > img.Bounds().Dx() {
		return nil
	}
	return img.SubImage(image.Rect(index*sub, 0, (index+1)*sub, sub)).(*ebiten.Image)
}
