// Package geoexport renders a connected point set as a GeoJSON FeatureCollection
// so it can be inspected in any GeoJSON viewer.
//
// Every point becomes a Point feature with three-element coordinates
// [x, y, z] and the properties "index" and "component". Every connected edge
// becomes a LineString feature with the properties "a", "b" and "weight".
// Component ids number components by their smallest member, starting at 0.
package geoexport

import (
	"github.com/cockroachdb/errors"
	geojson "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/lvlink/components"
	"github.com/katalvlaran/lvlink/core"
	"github.com/katalvlaran/lvlink/distance"
)

// Build connects the first k edges and returns the resulting FeatureCollection.
// Point features come first, in index order, followed by edge features in edge order.
func Build(points core.PointSet, edges []core.Edge, k int) (*geojson.FeatureCollection, error) {
	if err := distance.CheckPrefix(k, len(edges)); err != nil {
		return nil, err
	}
	g := components.New(points.Len())
	for _, e := range edges[:k] {
		if err := g.AddEdge(e.A, e.B); err != nil {
			return nil, errors.Wrap(err, "geoexport")
		}
	}

	label := make([]int, points.Len())
	for id, members := range g.Components() {
		for _, m := range members {
			label[m] = id
		}
	}

	pts := points.Points()
	fc := geojson.NewFeatureCollection()
	for i, p := range pts {
		f := geojson.NewPointFeature(coords(p))
		f.SetProperty("index", i)
		f.SetProperty("component", label[i])
		fc.AddFeature(f)
	}
	for _, e := range edges[:k] {
		f := geojson.NewLineStringFeature([][]float64{coords(pts[e.A]), coords(pts[e.B])})
		f.SetProperty("a", e.A)
		f.SetProperty("b", e.B)
		f.SetProperty("weight", e.Weight)
		fc.AddFeature(f)
	}

	return fc, nil
}

// Marshal is Build followed by JSON encoding.
func Marshal(points core.PointSet, edges []core.Edge, k int) ([]byte, error) {
	fc, err := Build(points, edges, k)
	if err != nil {
		return nil, err
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "geoexport: marshal")
	}

	return data, nil
}

func coords(p core.Point) []float64 {
	return []float64{float64(p.X), float64(p.Y), float64(p.Z)}
}
