package compositor

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/promocast/internal/domain"
)

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	slate300  = color.NRGBA{R: 203, G: 213, B: 225, A: 255}
	slate400  = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
	slate900  = color.NRGBA{R: 15, G: 23, B: 42, A: 255}
	slate950  = color.NRGBA{R: 2, G: 6, B: 23, A: 220}
	dimWhite  = color.NRGBA{R: 255, G: 255, B: 255, A: 51}
	panelFill = color.NRGBA{R: 255, G: 255, B: 255, A: 13}
)

// drawProduct lays out the product slide: blurred artwork behind a sharp
// cover on the left, details on the right, ticker at the bottom.
func (c *SlideCompositor) drawProduct(frame domain.Frame, cover image.Image) *image.NRGBA {
	w, h := c.res.Width, c.res.Height
	p := frame.Item.Product
	theme := parseHexColor(p.ThemeColor(), parseHexColor(domain.DefaultThemeColor, white))
	unit := textUnit(h)

	var canvas *image.NRGBA
	if cover != nil {
		background := imaging.Fill(cover, w, h, imaging.Center, imaging.Lanczos)
		background = imaging.Blur(background, c.config.BlurRadius)
		canvas = imaging.AdjustBrightness(background, backgroundDimming)
	} else {
		canvas = imaging.New(w, h, slate900)
		glow := theme
		glow.A = 102
		fillRect(canvas, image.Rect(w/8, h/4, w/2-w/16, h*3/4), glow)
	}

	// left column: the cover, kept square when no artwork is available
	coverH := int(float64(h) * c.config.CoverSizePercent)
	coverW := coverH
	if cover != nil {
		b := cover.Bounds()
		coverW = coverH * b.Dx() / b.Dy()
		if coverW > w/2-2*unit {
			coverW = w/2 - 2*unit
			coverH = coverW * b.Dy() / b.Dx()
		}
	}
	coverX := w/4 - coverW/2
	coverY := (h-coverH)/2 - unit*3
	coverRect := image.Rect(coverX, coverY, coverX+coverW, coverY+coverH)
	if cover != nil {
		sharp := imaging.Resize(cover, coverW, coverH, imaging.Lanczos)
		draw.Draw(canvas, coverRect, sharp, image.Point{}, draw.Src)
	} else {
		fillRect(canvas, coverRect, theme)
		drawTextCentered(canvas, initials(p.Name), coverRect, unit*8, white)
	}

	if label := p.PromotionLabel(); label != "" {
		size := unit * 3
		lw, lh := measureText(label, size)
		badge := image.Rect(coverX+unit*2, coverY+unit*2, coverX+unit*4+lw, coverY+unit*4+lh)
		fillRect(canvas, badge, theme)
		drawText(canvas, label, badge.Min.X+unit, badge.Min.Y+unit, size, white)
	}

	// right column
	x := w/2 + unit*2
	maxW := w - x - unit*4
	y := coverY

	storeSize := unit * 2
	sw, sh := measureText(strings.ToUpper(frame.Store.Name), storeSize)
	pill := theme
	pill.A = 51
	fillRect(canvas, image.Rect(x, y, x+sw+unit*2, y+sh+unit), pill)
	drawText(canvas, strings.ToUpper(frame.Store.Name), x+unit, y+unit/2, storeSize, theme)
	y += sh + unit*3

	y = drawWrapped(canvas, p.Name, x, y, maxW, unit*7, white) + unit

	if p.Slogan != "" {
		y = drawWrapped(canvas, `"`+p.Slogan+`"`, x, y, maxW, unit*3, theme) + unit
	}

	y = drawWrapped(canvas, p.DisplayDescription(), x, y, maxW, unit*2, slate300) + unit*2

	_, ch := measureText("PRECIO POR", unit*2)
	drawText(canvas, "PRECIO POR "+strings.ToUpper(string(p.Unit)), x, y, unit*2, slate400)
	y += ch + unit

	dw, _ := measureText("$", unit*5)
	drawText(canvas, "$", x, y, unit*5, theme)
	pw, ph := measureText(domain.FormatPrice(p.Price), unit*9)
	drawText(canvas, domain.FormatPrice(p.Price), x+dw+unit, y, unit*9, white)
	drawText(canvas, "/ "+strings.ToUpper(string(p.Unit)), x+dw+pw+unit*3, y+ph-unit*4, unit*3, slate400)
	y += ph + unit*3

	if frame.Store.Address != "" {
		_, vh := measureText("VISÍTANOS EN", unit*2)
		_, ah := measureText(frame.Store.Address, unit*3)
		fillRect(canvas, image.Rect(x, y, x+maxW, y+vh+ah+unit*4), panelFill)
		drawText(canvas, "VISÍTANOS EN", x+unit*2, y+unit*2, unit*2, slate400)
		drawText(canvas, frame.Store.Address, x+unit*2, y+unit*2+vh+unit/2, unit*3, white)
	}

	c.drawIndicators(canvas, frame, theme)
	c.drawTicker(canvas, strings.ToUpper(p.Name)+" • "+p.MarqueeTag()+" • CALIDAD PREMIUM • ", theme)
	return canvas
}

// drawAnnouncement lays out a full-screen text card in the announcement colors
func (c *SlideCompositor) drawAnnouncement(frame domain.Frame) *image.NRGBA {
	w, h := c.res.Width, c.res.Height
	a := frame.Item.Announcement
	unit := textUnit(h)

	bg := parseHexColor(frame.Item.ThemeColor(), slate900)
	fg := parseHexColor(a.TextColor, white)
	canvas := imaging.New(w, h, bg)

	titleSize := unit * 8
	bodySize := unit * fontScale(a.FontSize)
	maxW := w - unit*16

	// measure first so the block can be vertically centered
	titleLines := wrapText(a.Title, maxW, titleSize)
	bodyLines := wrapText(a.Message, maxW, bodySize)
	_, tlh := measureText("M", titleSize)
	_, blh := measureText("M", bodySize)
	blockH := len(titleLines)*(tlh+unit) + len(bodyLines)*(blh+unit)
	if len(titleLines) > 0 && len(bodyLines) > 0 {
		blockH += unit * 4
	}

	y := (h - blockH) / 2
	for _, line := range titleLines {
		drawAligned(canvas, line, a.TextAlign, y, unit*8, titleSize, fg)
		y += tlh + unit
	}
	if len(titleLines) > 0 {
		y += unit * 4
	}
	for _, line := range bodyLines {
		drawAligned(canvas, line, a.TextAlign, y, unit*8, bodySize, fg)
		y += blh + unit
	}

	accent := fg
	accent.A = 160
	c.drawIndicators(canvas, frame, accent)
	return canvas
}

// drawIndicators draws one dot per slide, the current one wide and colored
func (c *SlideCompositor) drawIndicators(canvas *image.NRGBA, frame domain.Frame, active color.NRGBA) {
	if frame.Count <= 1 {
		return
	}
	unit := textUnit(c.res.Height)
	dot, wide, gap := unit*2, unit*8, unit

	total := (frame.Count-1)*(dot+gap) + wide
	x := (c.res.Width - total) / 2
	y := c.res.Height - unit*14
	for i := 0; i < frame.Count; i++ {
		if i == frame.Index {
			fillRect(canvas, image.Rect(x, y, x+wide, y+unit), active)
			x += wide + gap
			continue
		}
		fillRect(canvas, image.Rect(x, y, x+dot, y+unit), dimWhite)
		x += dot + gap
	}
}

// drawTicker fills the footer band with the repeated marquee text
func (c *SlideCompositor) drawTicker(canvas *image.NRGBA, segment string, theme color.NRGBA) {
	unit := textUnit(c.res.Height)
	size := unit * 2
	_, th := measureText(segment, size)
	top := c.res.Height - th - unit*4

	fillRect(canvas, image.Rect(0, top, c.res.Width, c.res.Height), slate950)
	fillRect(canvas, image.Rect(0, top, c.res.Width, top+1), dimWhite)

	sw, _ := measureText(segment, size)
	for x := unit * 6; x < c.res.Width; x += sw {
		drawText(canvas, segment, x, top+unit*2, size, slate400)
	}
	// the separators carry the theme color
	fillRect(canvas, image.Rect(0, c.res.Height-unit/2, c.res.Width, c.res.Height), theme)
}

func drawAligned(canvas *image.NRGBA, line, align string, y, margin, size int, col color.NRGBA) {
	lw, _ := measureText(line, size)
	width := canvas.Bounds().Dx()

	x := (width - lw) / 2
	switch align {
	case "left", "text-left":
		x = margin
	case "right", "text-right":
		x = width - margin - lw
	}
	drawText(canvas, line, x, y, size, col)
}

func drawWrapped(canvas *image.NRGBA, text string, x, y, maxW, size int, col color.NRGBA) int {
	_, lh := measureText("M", size)
	for _, line := range wrapText(text, maxW, size) {
		drawText(canvas, line, x, y, size, col)
		y += lh + size/8
	}
	return y
}

func fillRect(canvas *image.NRGBA, r image.Rectangle, col color.NRGBA) {
	op := draw.Over
	if col.A == 255 {
		op = draw.Src
	}
	draw.Draw(canvas, r, &image.Uniform{C: col}, image.Point{}, op)
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(word))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// textUnit is the layout grid step, 1/120 of the screen height
func textUnit(height int) int {
	if u := height / 120; u > 1 {
		return u
	}
	return 1
}

// fontScale maps the announcement size classes onto grid steps
func fontScale(class string) int {
	switch class {
	case "text-sm", "small":
		return 2
	case "text-lg", "text-xl":
		return 3
	case "text-2xl", "text-3xl", "large":
		return 4
	case "text-4xl", "text-5xl":
		return 5
	case "text-6xl", "text-7xl", "text-8xl", "huge":
		return 6
	}
	return 4
}
