package box_test

import (
	"fmt"

	"github.com/katalvlaran/boxsect/box"
)

// ExampleIntersects shows how topology decides the fate of two boxes that
// only share a corner.
func ExampleIntersects() {
	a, _ := box.New([]float64{0, 0}, []float64{2, 2})
	b, _ := box.New([]float64{2, 2}, []float64{4, 4})

	fmt.Println(a, b)
	fmt.Println("closed:", box.Intersects[float64](a, b, box.Closed))
	fmt.Println("open:  ", box.Intersects[float64](a, b, box.Open))
	// Output:
	// [0,2]x[0,2] [2,4]x[2,4]
	// closed: true
	// open:   false
}
