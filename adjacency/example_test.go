package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleBuild derives neighbor lists for a 3×3 board with a blocked center.
//
//	0 1 2
//	3 # 5
//	6 7 8
func ExampleBuild() {
	g, _ := grid.New(3)
	_, _ = g.ToggleObstacle(4)

	m := adjacency.Build(g)
	for _, c := range []int{0, 1, 4} {
		fmt.Println(c, m.Has(c), m.Neighbors(c))
	}
	// Output:
	// 0 true [3 1]
	// 1 true [0 2]
	// 4 false []
}
