package main

import (
	"fmt"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zucenko/smalldream/model"
	"github.com/zucenko/smalldream/render"
)

// Fonts caches one face per pixel size.
type Fonts struct {
	tt    *truetype.Font
	faces map[int]font.Face
}

func NewFonts() (*Fonts, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Fonts{tt: tt, faces: make(map[int]font.Face)}, nil
}

func (f *Fonts) Face(size float64) font.Face {
	key := int(math.Round(size))
	if key < 1 {
		key = 1
	}
	if face, ok := f.faces[key]; ok {
		return face
	}
	const dpi = 72
	face := truetype.NewFace(f.tt, &truetype.Options{
		Size:    float64(key),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	f.faces[key] = face
	return face
}

var outlineOffsets = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// Draw renders t with its vertical center at pos.
func (f *Fonts) Draw(screen *ebiten.Image, t render.Text, pos model.Vec) {
	if t.Str == "" || t.Color.A <= 0 {
		return
	}
	face := f.Face(t.Size)
	width := font.MeasureString(face, t.Str).Ceil()
	m := face.Metrics()

	x := int(pos.X)
	switch t.Align {
	case render.AlignCenter:
		x -= width / 2
	case render.AlignRight:
		x -= width
	}
	y := int(pos.Y) + (m.Ascent.Ceil()-m.Descent.Ceil())/2

	if t.Outline > 0 {
		o := int(math.Round(t.Outline))
		oc := toColor(t.OutlineColor)
		for _, d := range outlineOffsets {
			text.Draw(screen, t.Str, face, x+d[0]*o, y+d[1]*o, oc)
		}
	}
	text.Draw(screen, t.Str, face, x, y, toColor(t.Color))
}
