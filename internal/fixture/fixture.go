// Package fixture holds the reference 20-point input shared by the package tests.
package fixture

import "github.com/katalvlaran/lvlink/core"

// Sample is the reference input in its textual "x,y,z" form.
const Sample = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

// Known answers for Sample.
const (
	// SampleConnect is the prefix length used by the component product query.
	SampleConnect = 10
	// SampleProduct is the product of the three largest components after SampleConnect edges.
	SampleProduct = 40
	// SampleBottleneckValue is the X-coordinate product of the bottleneck endpoints.
	SampleBottleneckValue = 25272
)

// Points returns Sample as a slice of points.
func Points() []core.Point {
	return []core.Point{
		{X: 162, Y: 817, Z: 812},
		{X: 57, Y: 618, Z: 57},
		{X: 906, Y: 360, Z: 560},
		{X: 592, Y: 479, Z: 940},
		{X: 352, Y: 342, Z: 300},
		{X: 466, Y: 668, Z: 158},
		{X: 542, Y: 29, Z: 236},
		{X: 431, Y: 825, Z: 988},
		{X: 739, Y: 650, Z: 466},
		{X: 52, Y: 470, Z: 668},
		{X: 216, Y: 146, Z: 977},
		{X: 819, Y: 987, Z: 18},
		{X: 117, Y: 168, Z: 530},
		{X: 805, Y: 96, Z: 715},
		{X: 346, Y: 949, Z: 466},
		{X: 970, Y: 615, Z: 88},
		{X: 941, Y: 993, Z: 340},
		{X: 862, Y: 61, Z: 35},
		{X: 984, Y: 92, Z: 344},
		{X: 425, Y: 690, Z: 689},
	}
}

// PointSet returns Sample as a validated core.PointSet.
func PointSet() core.PointSet {
	set, err := core.NewPointSet(Points())
	if err != nil {
		panic(err)
	}

	return set
}
