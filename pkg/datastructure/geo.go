package datastructure

import "math"

type BoundingBox struct {
	minLat, minLon float64
	maxLat, maxLon float64
}

func NewBoundingBox(minLat, minLon, maxLat, maxLon float64) *BoundingBox {
	return &BoundingBox{minLat: minLat,
		minLon: minLon,
		maxLat: maxLat,
		maxLon: maxLon}
}

func (b *BoundingBox) GetMinCoord() (float64, float64) {
	return b.minLat, b.minLon
}

func (b *BoundingBox) GetMaxCoord() (float64, float64) {
	return b.maxLat, b.maxLon
}

func (b *BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon
}

// GetBoundingBox. smallest box around every vertex, nil for an empty graph.
func (g *Graph) GetBoundingBox() *BoundingBox {
	if len(g.vertices) == 0 {
		return nil
	}
	b := NewBoundingBox(math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1))
	for _, v := range g.vertices {
		b.minLat = math.Min(b.minLat, v.lat)
		b.minLon = math.Min(b.minLon, v.lon)
		b.maxLat = math.Max(b.maxLat, v.lat)
		b.maxLon = math.Max(b.maxLon, v.lon)
	}
	return b
}
