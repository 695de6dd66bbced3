package api

import (
	"net/http"

	"github.com/terragen/tectonic/internal/httputil"
)

// The parameter and preset endpoints serve static range tables so the
// frontend can build its controls without hardcoding the engine limits.

func (s *Server) noiseParameters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteSuccess(w, map[string]interface{}{
		"perlin": map[string]interface{}{
			"scale":       rangeSpec{0.001, 0.1, 0.05},
			"octaves":     rangeSpec{1, 6, 4},
			"persistence": rangeSpec{0.1, 0.8, 0.5},
			"lacunarity":  rangeSpec{1.5, 3.0, 2.0},
		},
		"simplex": map[string]interface{}{
			"scale":       rangeSpec{0.005, 0.05, 0.02},
			"octaves":     rangeSpec{2, 8, 5},
			"persistence": rangeSpec{0.2, 0.7, 0.4},
			"lacunarity":  rangeSpec{2.0, 4.0, 3.0},
		},
		"worley": map[string]interface{}{
			"frequency":         rangeSpec{0.05, 0.5, 0.1},
			"distance_function": enumSpec{[]string{"euclidean", "manhattan", "chebyshev"}, "euclidean"},
			"cell_type":         enumSpec{[]string{"F1", "F2", "F1-F2"}, "F1"},
		},
		"general": map[string]interface{}{
			"max_resolution": 4096,
		},
	}, "parameter specifications for all noise algorithms")
}

func (s *Server) noisePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteSuccess(w, map[string]interface{}{
		"perlin": map[string]interface{}{
			"continental": map[string]interface{}{"scale": 0.02, "octaves": 5, "persistence": 0.6, "lacunarity": 2.5},
			"oceanic":     map[string]interface{}{"scale": 0.08, "octaves": 3, "persistence": 0.3, "lacunarity": 2.0},
			"detailed":    map[string]interface{}{"scale": 0.1, "octaves": 6, "persistence": 0.7, "lacunarity": 2.8},
			"smooth":      map[string]interface{}{"scale": 0.001, "octaves": 2, "persistence": 0.2, "lacunarity": 1.8},
		},
		"simplex": map[string]interface{}{
			"ridged":    map[string]interface{}{"scale": 0.03, "octaves": 6, "persistence": 0.5, "lacunarity": 2.5},
			"turbulent": map[string]interface{}{"scale": 0.025, "octaves": 7, "persistence": 0.6, "lacunarity": 3.5},
			"standard":  map[string]interface{}{"scale": 0.02, "octaves": 5, "persistence": 0.4, "lacunarity": 3.0},
		},
		"worley": map[string]interface{}{
			"plates":     map[string]interface{}{"frequency": 0.08, "distance_function": "euclidean", "cell_type": "F1"},
			"boundaries": map[string]interface{}{"frequency": 0.1, "distance_function": "euclidean", "cell_type": "F1-F2"},
			"volcanic":   map[string]interface{}{"frequency": 0.2, "distance_function": "manhattan", "cell_type": "F2"},
			"fractures":  map[string]interface{}{"frequency": 0.15, "distance_function": "chebyshev", "cell_type": "F1-F2"},
		},
	}, "preset configurations for common geological patterns")
}

func (s *Server) plateParameters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteSuccess(w, map[string]interface{}{
		"grid_size": map[string]interface{}{
			"width":  rangeSpec{20, 500, 100},
			"height": rangeSpec{20, 500, 100},
		},
		"plate_sensitivity": map[string]interface{}{
			"min": 0.05, "max": 0.40, "default": 0.15,
			"description": "ridge threshold for merging; higher yields fewer, larger plates",
		},
		"plate_count": map[string]interface{}{
			"min_plates":    rangeSpec{2, 30, 4},
			"max_plates":    rangeSpec{2, 30, 10},
			"earth_average": 12,
		},
		"complexity": enumSpec{[]string{"low", "medium", "high"}, "medium"},
		"wrap_edges": map[string]interface{}{
			"type": "boolean", "default": false,
			"description": "connect opposite edges for toroidal topology",
		},
	}, "tectonic plate generation parameter specifications")
}

func (s *Server) platePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteSuccess(w, map[string]interface{}{
		"earth_like": platePreset{
			gridSpec{150, 150}, 0.15, 10, 15, "medium", true,
			"earth-like plate distribution",
		},
		"pangaea": platePreset{
			gridSpec{200, 200}, 0.30, 4, 8, "low", true,
			"supercontinent configuration",
		},
		"archipelago": platePreset{
			gridSpec{250, 250}, 0.08, 20, 30, "high", false,
			"many small plates",
		},
		"simple": platePreset{
			gridSpec{100, 100}, 0.25, 5, 10, "low", false,
			"simple plate layout for testing",
		},
	}, "preset configurations for common plate patterns")
}

type rangeSpec struct {
	Min     interface{} `json:"min"`
	Max     interface{} `json:"max"`
	Default interface{} `json:"default"`
}

type enumSpec struct {
	Options []string `json:"options"`
	Default string   `json:"default"`
}

type gridSpec struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type platePreset struct {
	GridSize    gridSpec `json:"grid_size"`
	Sensitivity float64  `json:"plate_sensitivity"`
	MinPlates   int      `json:"min_plates"`
	MaxPlates   int      `json:"max_plates"`
	Complexity  string   `json:"complexity"`
	WrapEdges   bool     `json:"wrap_edges"`
	Description string   `json:"description"`
}
