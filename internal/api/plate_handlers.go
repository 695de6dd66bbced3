package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/terragen/tectonic/internal/httputil"
	"github.com/terragen/tectonic/internal/imaging"
	"github.com/terragen/tectonic/noise"
	"github.com/terragen/tectonic/segment"
)

// plateRequest is the body of POST /api/plates/generate. Numeric fields are
// pointers so an omitted field takes the engine default instead of zero.
type plateRequest struct {
	NoiseData string `json:"noise_data"`
	GridSize  struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"grid_size"`
	Sensitivity *float64 `json:"plate_sensitivity"`
	MinPlates   *int     `json:"min_plates"`
	MaxPlates   *int     `json:"max_plates"`
	Complexity  string   `json:"complexity"`
	WrapEdges   bool     `json:"wrap_edges"`
	Seed        int64    `json:"seed"`
}

// toParams folds the request over the engine defaults.
func (req plateRequest) toParams() (segment.Params, error) {
	p := segment.DefaultParams()
	if req.GridSize.Width != 0 {
		p.GridWidth = req.GridSize.Width
	}
	if req.GridSize.Height != 0 {
		p.GridHeight = req.GridSize.Height
	}
	if req.Sensitivity != nil {
		p.Sensitivity = *req.Sensitivity
	}
	if req.MinPlates != nil {
		p.MinPlates = *req.MinPlates
	}
	if req.MaxPlates != nil {
		p.MaxPlates = *req.MaxPlates
	}
	if req.Complexity != "" {
		c, err := segment.ParseComplexity(req.Complexity)
		if err != nil {
			return p, err
		}
		p.Complexity = c
	}
	p.WrapEdges = req.WrapEdges
	p.Seed = req.Seed
	return p, nil
}

func (s *Server) generatePlates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	start := time.Now()

	var req plateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, err.Error(), "request must contain JSON plate parameters")
		return
	}
	if req.NoiseData == "" {
		httputil.BadRequest(w, "missing required parameter: noise_data",
			"provide a base64 PNG noise map")
		return
	}

	p, err := req.toParams()
	if err != nil {
		httputil.BadRequest(w, err.Error(), "parameter validation failed")
		return
	}
	if err := p.Validate(); err != nil {
		httputil.BadRequest(w, err.Error(), "parameter validation failed")
		return
	}

	field, srcW, srcH, err := imaging.DecodeField(req.NoiseData)
	if err != nil {
		httputil.BadRequest(w, err.Error(), "noise_data is not a decodable image")
		return
	}
	field, err = imaging.Resize(field, srcW, srcH, p.GridWidth, p.GridHeight)
	if err != nil {
		httputil.InternalServerError(w, err.Error(), "failed to fit noise map to grid")
		return
	}
	noise.Normalize(field)

	res, err := segment.Segment(field, p)
	if err != nil {
		writeSegmentError(w, err)
		return
	}

	data, err := plateResponse(res)
	if err != nil {
		httputil.InternalServerError(w, err.Error(), "failed to render plate map")
		return
	}

	httputil.WriteGenerated(w, data,
		fmt.Sprintf("generated %d tectonic plates", res.PlateCount),
		time.Since(start).Seconds(), map[string]interface{}{
			"grid_size":   map[string]int{"width": p.GridWidth, "height": p.GridHeight},
			"sensitivity": p.Sensitivity,
			"plate_range": map[string]int{"min": p.MinPlates, "max": p.MaxPlates},
			"complexity":  p.Complexity.String(),
			"wrap_edges":  p.WrapEdges,
			"seed":        p.Seed,
		})
}

// writeSegmentError maps engine sentinels to 400, invariant failures to 500.
func writeSegmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, segment.ErrInvalidParameters),
		errors.Is(err, segment.ErrGridTooSmall),
		errors.Is(err, segment.ErrUnknownComplexity):
		httputil.BadRequest(w, err.Error(), "parameter validation failed")
	default:
		httputil.InternalServerError(w, err.Error(), "failed to generate tectonic plates")
	}
}

// plateResponse shapes a segmentation result for the wire: metadata, the
// plate list, the label grid as rows, a color map, and a rendered preview.
func plateResponse(res *segment.Result) (map[string]interface{}, error) {
	colors := make(map[int]string, len(res.Plates))
	colorsWire := make(map[string]string, len(res.Plates))
	for _, pl := range res.Plates {
		colors[pl.ID] = pl.Color
		colorsWire[strconv.Itoa(pl.ID)] = pl.Color
	}

	image, err := imaging.RenderPlates(res.Labels, res.Width, res.Height, colors)
	if err != nil {
		return nil, err
	}

	rows := make([][]int, res.Height)
	for y := 0; y < res.Height; y++ {
		rows[y] = res.Labels[y*res.Width : (y+1)*res.Width]
	}

	return map[string]interface{}{
		"metadata": map[string]interface{}{
			"grid_size":      map[string]int{"width": res.Width, "height": res.Height},
			"total_hexagons": res.TotalCells,
			"plate_count":    res.PlateCount,
			"wrap_edges":     res.WrapEdges,
			"flags":          res.Flags,
		},
		"plates":     res.Plates,
		"grid":       rows,
		"colors":     colorsWire,
		"image_data": image,
	}, nil
}
