package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/terragen/tectonic/internal/httputil"
	"github.com/terragen/tectonic/internal/imaging"
	"github.com/terragen/tectonic/noise"
)

// noiseRequest is the shared request body of the noise endpoints. The
// parameters block is decoded per algorithm on top of its defaults, so
// omitted fields fall back rather than zeroing.
type noiseRequest struct {
	Type       string          `json:"type"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Parameters json.RawMessage `json:"parameters"`
}

const defaultNoiseSide = 512

// decodeNoiseRequest parses the body and applies dimension defaults.
func decodeNoiseRequest(r *http.Request) (noiseRequest, error) {
	var req noiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if req.Width == 0 {
		req.Width = defaultNoiseSide
	}
	if req.Height == 0 {
		req.Height = defaultNoiseSide
	}
	return req, nil
}

func (s *Server) generateNoise(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	req, err := decodeNoiseRequest(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), "request must contain JSON noise parameters")
		return
	}
	switch req.Type {
	case "", "perlin":
		s.respondPerlin(w, req)
	case "simplex":
		s.respondSimplex(w, req)
	case "worley":
		s.respondWorley(w, req)
	default:
		httputil.BadRequest(w, "unsupported noise type: "+req.Type,
			"supported types: perlin, simplex, worley")
	}
}

func (s *Server) generatePerlin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	req, err := decodeNoiseRequest(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), "request must contain JSON noise parameters")
		return
	}
	s.respondPerlin(w, req)
}

func (s *Server) generateSimplex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	req, err := decodeNoiseRequest(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), "request must contain JSON noise parameters")
		return
	}
	s.respondSimplex(w, req)
}

func (s *Server) generateWorley(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	req, err := decodeNoiseRequest(r)
	if err != nil {
		httputil.BadRequest(w, err.Error(), "request must contain JSON noise parameters")
		return
	}
	s.respondWorley(w, req)
}

func (s *Server) respondPerlin(w http.ResponseWriter, req noiseRequest) {
	p := noise.DefaultPerlinParams()
	if err := overlayParams(req.Parameters, &p); err != nil {
		httputil.BadRequest(w, err.Error(), "malformed perlin parameters")
		return
	}
	start := time.Now()
	field, err := noise.Perlin(req.Width, req.Height, p)
	if err != nil {
		writeNoiseError(w, err)
		return
	}
	writeNoiseResult(w, "perlin", req, field, p, start)
}

func (s *Server) respondSimplex(w http.ResponseWriter, req noiseRequest) {
	p := noise.DefaultSimplexParams()
	if err := overlayParams(req.Parameters, &p); err != nil {
		httputil.BadRequest(w, err.Error(), "malformed simplex parameters")
		return
	}
	start := time.Now()
	field, err := noise.Simplex(req.Width, req.Height, p)
	if err != nil {
		writeNoiseError(w, err)
		return
	}
	writeNoiseResult(w, "simplex", req, field, p, start)
}

func (s *Server) respondWorley(w http.ResponseWriter, req noiseRequest) {
	p := noise.DefaultWorleyParams()
	if err := overlayParams(req.Parameters, &p); err != nil {
		httputil.BadRequest(w, err.Error(), "malformed worley parameters")
		return
	}
	start := time.Now()
	field, err := noise.Worley(req.Width, req.Height, p)
	if err != nil {
		writeNoiseError(w, err)
		return
	}
	writeNoiseResult(w, "worley", req, field, p, start)
}

// overlayParams decodes raw JSON over a defaults-initialized record.
func overlayParams(raw json.RawMessage, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// writeNoiseError maps generator sentinels to 400, everything else to 500.
func writeNoiseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, noise.ErrBadDimensions),
		errors.Is(err, noise.ErrBadParameter),
		errors.Is(err, noise.ErrUnknownDistance),
		errors.Is(err, noise.ErrUnknownCellMode):
		httputil.BadRequest(w, err.Error(), "parameter validation failed")
	default:
		httputil.InternalServerError(w, err.Error(), "failed to generate noise")
	}
}

func writeNoiseResult(w http.ResponseWriter, typ string, req noiseRequest, field []float64, params interface{}, start time.Time) {
	image, err := imaging.EncodeField(field, req.Width, req.Height)
	if err != nil {
		httputil.InternalServerError(w, err.Error(), "failed to encode noise image")
		return
	}
	httputil.WriteGenerated(w, map[string]interface{}{
		"noise_type": typ,
		"dimensions": map[string]int{"width": req.Width, "height": req.Height},
		"image_data": image,
		"statistics": noise.Summarize(field),
	}, typ+" noise generated", time.Since(start).Seconds(), params)
}
