package receipt

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/heic"
)

const (
	binarizeThreshold = 160
	contrastPush      = 40
)

// Preprocess normalizes a receipt photo for recognition: decode, grayscale
// with luminance weighting, push contrast around the midpoint, then a hard
// black/white threshold. Output is PNG. Best-effort quality enhancement;
// the orchestrator passes the original image through on failure.
func Preprocess(img []byte) ([]byte, error) {
	src, err := decodeImage(img)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	gray := imaging.Grayscale(src)
	gray = imaging.AdjustContrast(gray, contrastPush)
	bw := binarize(gray, binarizeThreshold)

	var buf bytes.Buffer
	if err := png.Encode(&buf, bw); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeImage handles the common raster formats plus HEIC/HEIF, which
// phone cameras produce and the stdlib cannot decode.
func decodeImage(data []byte) (image.Image, error) {
	if isHEIC(data) {
		return heic.Decode(bytes.NewReader(data))
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	return src, err
}

// isHEIC sniffs the ftyp box brands HEIC/HEIF containers start with.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}

// binarize applies a global threshold to an already-grayscale image.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			var v uint8 = 255
			if uint8(r>>8) <= threshold {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}
