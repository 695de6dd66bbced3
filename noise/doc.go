// Package noise synthesizes the scalar fields the plate pipeline segments:
// Perlin and OpenSimplex gradient noise plus Worley cellular noise, all
// returned as row-major []float64 rasters normalized to [0,1].
//
// What: three generators with the parameter ranges of the reference
// deployment (see the Default*Params constructors), a shared Normalize
// helper, and a Summarize function for the per-field statistics the API
// reports.
//
// Why: watershed segmentation wants a continuous relief map; Worley F1
// produces pre-fractured plate-like cells, while fractal Perlin/Simplex
// relief gives organic basin shapes.
//
// Generation is deterministic for a fixed seed. Complexity is
// O(W×H×octaves) for the gradient generators and O(W×H×25) for Worley.
package noise
