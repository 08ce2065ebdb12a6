package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// glyphScale converts a target line height in pixels into an integer
// magnification of the bitmap face
func glyphScale(size int) int {
	if s := size / face.Height; s > 1 {
		return s
	}
	return 1
}

// measureText returns the rendered width and height of s at size
func measureText(s string, size int) (int, int) {
	scale := glyphScale(size)
	return font.MeasureString(face, s).Ceil() * scale, face.Height * scale
}

// drawText paints s with its top-left corner at (x, y)
func drawText(dst *image.NRGBA, s string, x, y, size int, col color.Color) {
	w := font.MeasureString(face, s).Ceil()
	if w == 0 {
		return
	}
	glyphs := image.NewNRGBA(image.Rect(0, 0, w, face.Height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	scale := glyphScale(size)
	scaled := imaging.Resize(glyphs, w*scale, face.Height*scale, imaging.NearestNeighbor)
	draw.Draw(dst, scaled.Bounds().Add(image.Pt(x, y)), scaled, image.Point{}, draw.Over)
}

func drawTextCentered(dst *image.NRGBA, s string, r image.Rectangle, size int, col color.Color) {
	w, h := measureText(s, size)
	drawText(dst, s, r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-h)/2, size, col)
}

// wrapText breaks text into lines no wider than maxW. A single word wider
// than maxW gets a line of its own.
func wrapText(text string, maxW, size int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if w, _ := measureText(candidate, size); w > maxW {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// parseHexColor reads #rgb or #rrggbb, returning fallback for anything else
func parseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
