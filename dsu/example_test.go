package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/lvlink/dsu"
)

func ExampleUnionFind_Union() {
	uf := dsu.New(3)
	first, _ := uf.Union(0, 2)
	again, _ := uf.Union(2, 0)
	fmt.Println(first, again, uf.Components())
	// Output: true false 2
}
