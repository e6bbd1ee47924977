package image

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// sharpenSigma restores some of the edge detail lost when a chart is
// scaled down for the terminal.
const sharpenSigma = 0.5

// ResizeToFit scales img down to fit maxCols x maxRows cells of
// cellW x cellH pixels, keeping the aspect ratio. Images that already fit
// are returned unchanged; nothing is upscaled.
func ResizeToFit(img image.Image, maxCols, maxRows, cellW, cellH int) image.Image {
	if img == nil {
		return nil
	}
	maxW := max(maxCols, 1) * max(cellW, 1)
	maxH := max(maxRows, 1) * max(cellH, 1)

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 || (srcW <= maxW && srcH <= maxH) {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(int(math.Round(float64(srcW)*scale)), 1)
	dstH := max(int(math.Round(float64(srcH)*scale)), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return imaging.Sharpen(dst, sharpenSigma)
}

// ImageToNRGBA returns src as an *image.NRGBA, converting if needed.
func ImageToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
