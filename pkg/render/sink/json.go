package sink

import (
	"encoding/json"

	"github.com/matzehuels/cronut/pkg/render"
	"github.com/matzehuels/cronut/pkg/render/donut"
)

type jsonOutput struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Charts []jsonChart `json:"charts"`
}

type jsonChart struct {
	donut.Chart
	DurationMS int64         `json:"duration_ms"`
	Slices     []donut.Datum `json:"slices"`
}

// RenderJSON exports every chart in the document as data: its geometry and,
// per slice, the ring, original index, proportion, target angles, color,
// label and centroid. Subtrees that are not charts are skipped.
func RenderJSON(doc *render.Document) ([]byte, error) {
	out := jsonOutput{
		Width:  doc.Width,
		Height: doc.Height,
		Charts: []jsonChart{},
	}
	for _, n := range doc.Children() {
		c, ok := n.Data.(donut.Chart)
		if !ok {
			continue
		}
		out.Charts = append(out.Charts, jsonChart{
			Chart:      c,
			DurationMS: render.End(n).Milliseconds(),
			Slices:     collectSlices(n),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func collectSlices(n *render.Node) []donut.Datum {
	var out []donut.Datum
	n.Walk(func(x *render.Node) bool {
		if d, ok := x.Data.(donut.Datum); ok {
			out = append(out, d)
			return false
		}
		return true
	})
	return out
}
