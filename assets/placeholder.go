package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

// Block is a solid w×h image. A nil fill draws magenta so missing colors
// stand out.
func Block(w, h int, fill color.Color) *image.NRGBA {
	if fill == nil {
		fill = colornames.Magenta
	}
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
	return img
}

// PlaceholderSheet draws a cols×rows grid of figures on a transparent
// background. Each frame's figure is nudged by its column so stepping
// through the frames is visible, and a darker band on the right marks the
// facing direction.
func PlaceholderSheet(w, h, cols, rows int, fill color.Color) *image.NRGBA {
	if fill == nil {
		fill = colornames.Crimson
	}
	cols, rows = max(cols, 1), max(rows, 1)
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	fw, fh := w/cols, h/rows
	if fw < 4 || fh < 4 {
		draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
		return img
	}
	body := image.NewUniform(fill)
	shade := image.NewUniform(darken(fill))
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x0, y0 := col*fw, row*fh
			bob := (col % 2) * fh / 16
			if row > 0 {
				// airborne rows tuck in
				bob = fh / 8
			}
			r := image.Rect(x0+fw/4, y0+fh/8+bob, x0+fw*3/4, y0+fh)
			draw.Draw(img, r, body, image.Point{}, draw.Src)
			eye := image.Rect(r.Max.X-fw/8, r.Min.Y+fh/8, r.Max.X, r.Min.Y+fh/4)
			draw.Draw(img, eye, shade, image.Point{}, draw.Src)
		}
	}
	return img
}

// ApplyColorKey returns a copy of src with every pixel equal to key made
// fully transparent.
func ApplyColorKey(src image.Image, key color.Color) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	if key == nil {
		return out
	}
	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := out.NRGBAAt(x, y)
			if c.R == k.R && c.G == k.G && c.B == k.B {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return out
}

func darken(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{R: n.R / 2, G: n.G / 2, B: n.B / 2, A: n.A}
}

// CoinSheet draws a single row of frames of a coin turning edge-on and back.
func CoinSheet(w, h, frames int, fill color.Color) *image.NRGBA {
	if fill == nil {
		fill = colornames.Gold
	}
	frames = max(frames, 1)
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	fw := w / frames
	nf := color.NRGBAModel.Convert(fill).(color.NRGBA)
	for f := 0; f < frames; f++ {
		// half-width of the ellipse shrinks toward the middle frame
		turn := float64(f) / float64(frames)
		rx := float64(fw) / 2 * (1 - 2*min(turn, 1-turn))
		rx = max(rx, 1)
		ry := float64(h) / 2
		cx := float64(f*fw) + float64(fw)/2
		for y := 0; y < h; y++ {
			for x := f * fw; x < (f+1)*fw; x++ {
				dx := (float64(x) + 0.5 - cx) / rx
				dy := (float64(y) + 0.5 - ry) / ry
				if dx*dx+dy*dy <= 1 {
					img.SetNRGBA(x, y, nf)
				}
			}
		}
	}
	return img
}

// Skyline draws a row of buildings standing on the bottom edge, on a
// transparent background.
func Skyline(w, h int, fill color.Color) *image.NRGBA {
	if fill == nil {
		fill = colornames.Slategray
	}
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	u := image.NewUniform(fill)
	x := 0
	for i := 0; x < w; i++ {
		bw := 40 + (i*37)%50
		bh := h/4 + (i*53)%(h/3+1)
		draw.Draw(img, image.Rect(x, h-bh, min(x+bw, w), h), u, image.Point{}, draw.Src)
		x += bw + 6
	}
	return img
}
