package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin renders a width×height fractal Perlin raster normalized to [0,1].
//
// Persistence maps onto the generator's amplitude divisor (alpha = 1/p) and
// lacunarity onto its frequency multiplier, so the parameter ranges line up
// with the fractal accumulation the other generators use.
func Perlin(width, height int, p PerlinParams) ([]float64, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	gen := perlin.NewPerlin(1/p.Persistence, p.Lacunarity, int32(p.Octaves), p.Seed)

	field := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			field[y*width+x] = gen.Noise2D(float64(x)*p.Scale, float64(y)*p.Scale)
		}
	}
	Normalize(field)

	return field, nil
}
