package intersect_test

import (
	"fmt"

	"github.com/katalvlaran/boxsect/box"
	"github.com/katalvlaran/boxsect/intersect"
)

// ExampleIntersect finds which crates a set of sensors sees.
func ExampleIntersect() {
	crates := []box.AABB[float64]{
		{Lo: []float64{0, 0}, Hi: []float64{1, 1}},
		{Lo: []float64{4, 4}, Hi: []float64{5, 5}},
		{Lo: []float64{9, 0}, Hi: []float64{10, 1}},
	}
	sensors := []box.AABB[float64]{
		{Lo: []float64{0.5, 0.5}, Hi: []float64{4, 4}},
		{Lo: []float64{8, 8}, Hi: []float64{9, 9}},
	}

	var c intersect.Collector
	err := intersect.Intersect(box.Boxes[float64](crates), box.Boxes[float64](sensors), c.Report)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range c.Pairs() {
		fmt.Printf("crate %d seen by sensor %d\n", p.I, p.J)
	}
	// Output:
	// crate 0 seen by sensor 0
	// crate 1 seen by sensor 0
}

// ExampleSelfIntersect reports each overlapping pair of one sequence once.
func ExampleSelfIntersect() {
	a := []box.Box[int]{
		box.AABB[int]{Lo: []int{0}, Hi: []int{3}},
		box.AABB[int]{Lo: []int{1}, Hi: []int{4}},
		box.AABB[int]{Lo: []int{3}, Hi: []int{6}},
		box.AABB[int]{Lo: []int{8}, Hi: []int{9}},
	}

	for _, topo := range []box.Topology{box.Closed, box.Open} {
		var c intersect.Collector
		if err := intersect.SelfIntersect(a, c.Report, intersect.WithTopology(topo)); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(topo, c.Pairs())
	}
	// Output:
	// closed [{0 1} {0 2} {1 2}]
	// open [{0 1} {1 2}]
}

// ExampleWithConcurrency runs the parallel sweep and counts the pairs.
func ExampleWithConcurrency() {
	var a []box.Box[int]
	for i := 0; i < 100; i++ {
		a = append(a, box.AABB[int]{Lo: []int{i}, Hi: []int{i + 1}})
	}

	var n intersect.Counter
	err := intersect.SelfIntersect(a, n.Report,
		intersect.WithConcurrency(intersect.Parallel),
		intersect.WithMaxWorkers(2))
	fmt.Println(n.Count(), err)
	// Output:
	// 99 <nil>
}
