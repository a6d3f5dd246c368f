package export

import (
	"encoding/json"
	"io"

	"boltgen/internal/geom"
	"boltgen/internal/lightning"
)

type feature struct {
	Type       string         `json:"type"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

func coord(p geom.Point) [2]float64 { return [2]float64{p.X, p.Y} }

// WriteGeoJSON writes the bolt as a FeatureCollection: one LineString per
// segment (kind "segment"), the assembled path (kind "path") when present,
// and the start and end Points.
func WriteGeoJSON(w io.Writer, bolt lightning.Bolt) error {
	fc := featureCollection{Type: "FeatureCollection"}
	for i, s := range bolt.Segments {
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "LineString", Coordinates: [][2]float64{coord(s.A), coord(s.B)}},
			Properties: map[string]any{
				"kind":   "segment",
				"index":  i,
				"origin": s.Origin.String(),
			},
		})
	}
	if len(bolt.Path) > 1 {
		cs := make([][2]float64, len(bolt.Path))
		for i, p := range bolt.Path {
			cs[i] = coord(p)
		}
		fc.Features = append(fc.Features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "LineString", Coordinates: cs},
			Properties: map[string]any{
				"kind":      "path",
				"connected": bolt.Connected,
				"steps":     bolt.Steps,
			},
		})
	}
	for _, m := range []struct {
		name string
		p    geom.Point
	}{{"start", bolt.Start}, {"end", bolt.End}} {
		fc.Features = append(fc.Features, feature{
			Type:       "Feature",
			Geometry:   geometry{Type: "Point", Coordinates: coord(m.p)},
			Properties: map[string]any{"kind": m.name},
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fc)
}
