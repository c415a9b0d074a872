package lenhist

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	plotHeight = 400 // pixels for the bars
	margin     = 60
	barWidth   = 24
	fontSize   = 11
	title      = "AMP Length Distribution"
	xTitle     = "Length Range (aa)"
	yTitle     = "AMP Number"
)

var (
	barColour = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	fontOnce  sync.Once
	goFont    *truetype.Font
	fontErr   error
)

func getFont() (*truetype.Font, error) {
	fontOnce.Do(func() { goFont, fontErr = freetype.ParseFont(goregular.TTF) })
	return goFont, fontErr
}

// Image draws the histogram. Bars are scaled to the biggest count.
// Interval labels are written under the bars, skipping some when they
// would run into each other.
func (h *Hist) Image() (*image.RGBA, error) {
	f, err := getFont()
	if err != nil {
		return nil, err
	}
	nbar := len(h.Counts)
	width := 2*margin + max(nbar, 1)*barWidth
	if width < 2*margin+len(title)*fontSize {
		width = 2*margin + len(title)*fontSize
	}
	height := plotHeight + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	maxCount := 0
	for _, c := range h.Counts {
		maxCount = max(maxCount, c)
	}
	base := margin + plotHeight // y of the x axis
	for i, c := range h.Counts {
		if c == 0 {
			continue
		}
		top := base - c*plotHeight/maxCount
		x0 := margin + i*barWidth + 2
		r := image.Rect(x0, top, x0+barWidth-4, base)
		draw.Draw(img, r, &image.Uniform{barColour}, image.Point{}, draw.Src)
	}
	axis := &image.Uniform{color.Black}
	draw.Draw(img, image.Rect(margin, base, width-margin, base+1), axis, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(margin-1, margin, margin, base), axis, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)
	text := func(s string, x, y int) error {
		_, err := ctx.DrawString(s, freetype.Pt(x, y))
		return err
	}

	if err := text(title, width/2-len(title)*fontSize/4, margin/2); err != nil {
		return nil, err
	}
	if err := text(yTitle, 4, margin-8); err != nil {
		return nil, err
	}
	if err := text(fmt.Sprint(maxCount), 4, margin+fontSize); err != nil {
		return nil, err
	}
	if err := text(xTitle, width/2-len(xTitle)*fontSize/4, height-8); err != nil {
		return nil, err
	}
	labels := h.Labels()
	step := 1
	for _, l := range labels { // a character is about half the font size wide
		for len(l)*fontSize/2 > step*barWidth {
			step++
		}
	}
	for i := 0; i < len(labels); i += step {
		if err := text(labels[i], margin+i*barWidth+1, base+fontSize+4); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// WritePNG draws the histogram as a png.
func (h *Hist) WritePNG(w io.Writer) error {
	img, err := h.Image()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
