package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Simplex renders a width×height fractal OpenSimplex raster normalized to
// [0,1]. Octaves accumulate with amplitude falling by Persistence and
// frequency rising by Lacunarity per layer.
func Simplex(width, height int, p SimplexParams) ([]float64, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	gen := opensimplex.New(p.Seed)

	field := make([]float64, width*height)
	amplitude, frequency := 1.0, p.Scale
	for octave := 0; octave < p.Octaves; octave++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				field[y*width+x] += amplitude * gen.Eval2(float64(x)*frequency, float64(y)*frequency)
			}
		}
		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}
	Normalize(field)

	return field, nil
}
