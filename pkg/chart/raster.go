package chart

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for full circles.
const circleSegments = 48

// Raster is a Surface backed by an RGBA image. Paths are anti-aliased with
// the x/image vector rasterizer; text uses the fixed 7x13 basic font, so
// Font.Size is ignored and Font.Bold is emulated by overstriking.
//
// The image is allocated at the logical size times Scale, so a 400x250
// chart at scale 2 produces an 800x500 image.
type Raster struct {
	Scale float64

	img *image.RGBA
	bg  color.RGBA
}

// NewRaster returns a Raster for a logical width x height surface. A
// non-positive scale is treated as 1. An unparseable background is
// transparent.
func NewRaster(width, height int, scale float64, background string) *Raster {
	if scale <= 0 {
		scale = 1
	}
	bg, _ := ParseHex(background)
	r := &Raster{Scale: scale, bg: bg}
	r.alloc(float64(width), float64(height))
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear resizes the image if the logical size changed and paints the
// background.
func (r *Raster) Clear(width, height float64) {
	w, h := r.px(width), r.px(height)
	if r.img == nil || r.img.Bounds().Dx() != w || r.img.Bounds().Dy() != h {
		r.alloc(width, height)
		return
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

// StrokeLine draws a segment as a filled quad with round caps.
func (r *Raster) StrokeLine(from, to Point, c string, width float64) {
	col, ok := ParseHex(c)
	if !ok {
		return
	}
	r.fillPolygon(segmentQuad(from, to, width/2), col)
}

// StrokePolyline draws each segment and rounds the joins.
func (r *Raster) StrokePolyline(pts []Point, c string, width float64) {
	col, ok := ParseHex(c)
	if !ok {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.fillPolygon(segmentQuad(pts[i-1], pts[i], width/2), col)
	}
	if width > 1 {
		for _, p := range pts {
			r.fillPolygon(arcPolygon(p, width/2, 0, 2*math.Pi, false), col)
		}
	}
}

// FillCircle fills a disc.
func (r *Raster) FillCircle(center Point, radius float64, c string) {
	col, ok := ParseHex(c)
	if !ok || radius <= 0 {
		return
	}
	r.fillPolygon(arcPolygon(center, radius, 0, 2*math.Pi, false), col)
}

// FillRect fills a rectangle row by row so gradients interpolate per pixel
// row.
func (r *Raster) FillRect(rect Rect, paint Paint) {
	from, ok := ParseHex(paint.From)
	if !ok {
		return
	}
	to := from
	if paint.IsGradient() {
		if c, ok := ParseHex(paint.To); ok {
			to = c
		}
	}

	x0, x1 := r.px(rect.X), r.px(rect.X+rect.W)
	y0, y1 := r.px(rect.Y), r.px(rect.Y+rect.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	span := float64(y1 - y0 - 1)
	for y := y0; y < y1; y++ {
		t := 0.0
		if span > 0 {
			t = float64(y-y0) / span
		}
		row := image.Rect(x0, y, x1, y+1)
		draw.Draw(r.img, row, image.NewUniform(mixRGBA(from, to, t)), image.Point{}, draw.Over)
	}
}

// FillWedge fills a circular sector.
func (r *Raster) FillWedge(center Point, radius, start, sweep float64, c string) {
	col, ok := ParseHex(c)
	if !ok || radius <= 0 || sweep <= 0 {
		return
	}
	if sweep >= 2*math.Pi {
		r.fillPolygon(arcPolygon(center, radius, 0, 2*math.Pi, false), col)
		return
	}
	r.fillPolygon(arcPolygon(center, radius, start, sweep, true), col)
}

// FillText draws text with the basic font.
func (r *Raster) FillText(text string, at Point, c string, f Font, align Align) {
	col, ok := ParseHex(c)
	if !ok || text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	w := d.MeasureString(text).Round()
	x := r.px(at.X)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	y := r.px(at.Y)

	d.Dot = fixed.P(x, y)
	d.DrawString(text)
	if f.Bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(text)
	}
}

func (r *Raster) alloc(width, height float64) {
	w, h := r.px(width), r.px(height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

func (r *Raster) px(v float64) int {
	return int(math.Round(v * r.Scale))
}

// fillPolygon rasterizes a closed polygon given in logical units.
func (r *Raster) fillPolygon(pts []Point, col color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	s := float32(r.Scale)
	z.MoveTo(float32(pts[0].X)*s, float32(pts[0].Y)*s)
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X)*s, float32(p.Y)*s)
	}
	z.ClosePath()
	z.Draw(r.img, b, image.NewUniform(col), image.Point{})
}

// segmentQuad returns the rectangle of half-width hw around segment a-b.
func segmentQuad(a, b Point, hw float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return arcPolygon(a, hw, 0, 2*math.Pi, false)
	}
	nx, ny := -dy/length*hw, dx/length*hw
	return []Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}
}

// arcPolygon approximates an arc. With withCenter the polygon starts at the
// center, producing a pie sector.
func arcPolygon(c Point, radius, start, sweep float64, withCenter bool) []Point {
	n := int(math.Ceil(circleSegments * sweep / (2 * math.Pi)))
	if n < 2 {
		n = 2
	}
	pts := make([]Point, 0, n+2)
	if withCenter {
		pts = append(pts, c)
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, Point{X: c.X + math.Cos(a)*radius, Y: c.Y + math.Sin(a)*radius})
	}
	return pts
}
