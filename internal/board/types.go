package board

import (
	"encoding/json"
	"fmt"
	"os"
)

// GridSettings describes a flat grid of markers in the z=0 plane.
// The board is centered on the origin, x grows right, y grows up.
type GridSettings struct {
	Columns    int     `json:"columns"`
	Rows       int     `json:"rows"`
	MarkerSize float32 `json:"marker_size"`
	Separation float32 `json:"separation"`
	FirstID    int     `json:"first_id"`

	// IDs, when set, overrides sequential id assignment. Markers are
	// numbered row-major; entries beyond the marker count are ignored.
	IDs []int `json:"ids,omitempty"`
}

// BoxSettings describes a rectangular prism with one marker centered on
// each face. Markers from the list are assigned to faces in the fixed
// face order forward, back, left, right, up, down.
type BoxSettings struct {
	Width      float32 `json:"width"`
	Height     float32 `json:"height"`
	Depth      float32 `json:"depth"`
	MarkerSize float32 `json:"marker_size"`
	Markers    []int   `json:"markers"`
}

// Concrete is the closed set of board variants. Exactly one field is
// non-nil after a successful unmarshal.
type Concrete struct {
	Grid *GridSettings
	Box  *BoxSettings
}

// UnmarshalJSON decodes a board entry tagged with "type": "grid" or
// "box". Any other tag is a parse failure.
func (c *Concrete) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Type {
	case "grid":
		c.Grid = new(GridSettings)
		return json.Unmarshal(data, c.Grid)
	case "box":
		c.Box = new(BoxSettings)
		return json.Unmarshal(data, c.Box)
	case "":
		return fmt.Errorf("board: entry is missing a variant type")
	default:
		return fmt.Errorf("board: unknown variant type %q", tag.Type)
	}
}

// Load reads a JSON board description file and returns its entries in
// order. A missing file and a malformed document are distinct failures.
func Load(path string) ([]Concrete, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("board: read %s: %w", path, err)
	}

	var boards []Concrete
	if err := json.Unmarshal(raw, &boards); err != nil {
		return nil, fmt.Errorf("board: parse %s: %w", path, err)
	}

	return boards, nil
}
