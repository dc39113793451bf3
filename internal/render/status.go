package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const defaultStatusSizePt = 14

// StatusLine renders one line of text onto an opaque strip.
type StatusLine struct {
	img    *image.RGBA
	sizePt float64
	tt     *freetype.Context
	face   font.Face // fallback when the TrueType font could not be parsed
	text   string
}

// NewStatusLine prepares a width×height strip. It uses the Go Regular TrueType
// font through freetype and falls back to basicfont if parsing fails; err
// reports that fallback and the returned StatusLine is still usable.
func NewStatusLine(width, height int) (*StatusLine, error) {
	s := &StatusLine{
		img:    image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
		sizePt: defaultStatusSizePt,
	}
	ttFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		s.face = basicfont.Face7x13
		return s, err
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(ttFont)
	c.SetFontSize(s.sizePt)
	c.SetHinting(font.HintingFull)
	c.SetClip(s.img.Bounds())
	c.SetDst(s.img)
	c.SetSrc(image.NewUniform(StatusColor))
	s.tt = c
	return s, nil
}

// Text returns the last rendered text.
func (s *StatusLine) Text() string { return s.text }

// Render draws text left-aligned on a black strip and returns the strip.
func (s *StatusLine) Render(text string) *image.RGBA {
	s.text = text
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: color.RGBA{A: 0xFF}}, image.Point{}, draw.Src)

	if s.tt != nil {
		baseline := (s.img.Bounds().Dy() + int(s.sizePt)) / 2
		_, _ = s.tt.DrawString(text, freetype.Pt(4, baseline))
		return s.img
	}

	ascent := s.face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{Dst: s.img, Src: image.NewUniform(StatusColor), Face: s.face}
	drawer.Dot = fixed.P(4, (s.img.Bounds().Dy()+ascent)/2)
	drawer.DrawString(text)
	return s.img
}
