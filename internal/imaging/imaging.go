// Package imaging converts between the scalar fields the engine computes
// and the base64 PNG payloads the HTTP API speaks.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

// Sentinel errors for payload handling.
var (
	// ErrBadImagePayload indicates a payload that is not valid base64 or
	// does not decode as an image.
	ErrBadImagePayload = errors.New("imaging: bad image payload")

	// ErrBadRaster indicates a field whose length does not match the stated
	// dimensions.
	ErrBadRaster = errors.New("imaging: field length does not match dimensions")
)

const dataURLPrefix = "data:image/png;base64,"

// DecodeField converts a base64 PNG (with or without a data-URL prefix)
// into a row-major [0,1] luminance field. Color inputs are collapsed to
// grayscale by the image model.
func DecodeField(payload string) (field []float64, width, height int, err error) {
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrBadImagePayload, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrBadImagePayload, err)
	}

	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	field = make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			field[y*width+x] = float64(g.Y) / 65535
		}
	}

	return field, width, height, nil
}

// EncodeField renders a [0,1] field as a grayscale PNG data URL.
func EncodeField(field []float64, width, height int) (string, error) {
	if len(field) != width*height {
		return "", fmt.Errorf("%w: %d values for %dx%d", ErrBadRaster, len(field), width, height)
	}

	img := image.NewGray16(image.Rect(0, 0, width, height))
	for i, v := range field {
		img.SetGray16(i%width, i/width, color.Gray16{Y: uint16(clamp01(v)*65535 + 0.5)})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("imaging: encode: %w", err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Resize rescales a field to the target dimensions with bilinear filtering,
// preserving the [0,1] range.
func Resize(field []float64, width, height, targetWidth, targetHeight int) ([]float64, error) {
	if len(field) != width*height {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrBadRaster, len(field), width, height)
	}
	if width == targetWidth && height == targetHeight {
		out := make([]float64, len(field))
		copy(out, field)
		return out, nil
	}

	src := image.NewGray16(image.Rect(0, 0, width, height))
	for i, v := range field {
		src.SetGray16(i%width, i/width, color.Gray16{Y: uint16(clamp01(v)*65535 + 0.5)})
	}
	dst := image.NewGray16(image.Rect(0, 0, targetWidth, targetHeight))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := make([]float64, targetWidth*targetHeight)
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			out[y*targetWidth+x] = float64(dst.Gray16At(x, y).Y) / 65535
		}
	}

	return out, nil
}

// RenderPlates paints a labeled grid as a PNG data URL, one palette color
// per plate id, darkening cells on a plate border so the boundaries read at
// a glance.
func RenderPlates(labels []int, width, height int, colors map[int]string) (string, error) {
	if len(labels) != width*height {
		return "", fmt.Errorf("%w: %d labels for %dx%d", ErrBadRaster, len(labels), width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := labels[y*width+x]
			c, err := colorful.Hex(colors[id])
			if err != nil {
				return "", fmt.Errorf("imaging: plate %d color %q: %w", id, colors[id], err)
			}
			if onBorder(labels, width, height, x, y) {
				c = c.BlendLab(colorful.Color{}, 0.35)
			}
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("imaging: encode: %w", err)
	}

	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// onBorder reports whether the cell touches a differently labeled raster
// neighbor.
func onBorder(labels []int, width, height, x, y int) bool {
	id := labels[y*width+x]
	if x+1 < width && labels[y*width+x+1] != id {
		return true
	}
	if x > 0 && labels[y*width+x-1] != id {
		return true
	}
	if y+1 < height && labels[(y+1)*width+x] != id {
		return true
	}
	if y > 0 && labels[(y-1)*width+x] != id {
		return true
	}

	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
