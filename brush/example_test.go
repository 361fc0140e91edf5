package brush_test

import (
	"fmt"

	"github.com/wynnrig/weightcore/adjacency"
	"github.com/wynnrig/weightcore/brush"
	"github.com/wynnrig/weightcore/falloff"
	"github.com/wynnrig/weightcore/weights"
)

// ExampleSmooth blends a hard weight seam between two bones on a chain.
//
//	0───1───2───3
//	A A │ B B        ← group A on the left, group B on the right
func ExampleSmooth() {
	positions := []float32{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0}
	edges := []int32{0, 1, 1, 2, 2, 3}
	g, _ := adjacency.Build(4, edges, positions)

	store, _ := weights.NewFromMaps([]map[int32]float32{
		{0: 1.0},
		{0: 1.0},
		{1: 1.0},
		{1: 1.0},
	})

	targets, _ := falloff.Topological(g, []int32{1, 2}, 0)
	res, _ := brush.Smooth(store, g, targets, 1.0)

	fmt.Println("touched:", res.Touched)
	fmt.Printf("vertex 1: A=%.2f B=%.2f\n", store.Weight(1, 0), store.Weight(1, 1))
	fmt.Printf("vertex 2: A=%.2f B=%.2f\n", store.Weight(2, 0), store.Weight(2, 1))
	// Output:
	// touched: 2
	// vertex 1: A=0.50 B=0.50
	// vertex 2: A=0.25 B=0.75
}

// ExampleAdd paints weight into a bone's group while keeping totals at 1.
func ExampleAdd() {
	store, _ := weights.NewFromMaps([]map[int32]float32{
		{0: 0.5, 1: 0.5},
	})

	_, _ = brush.Add(store, falloff.TargetSet{0: 1.0}, 0, 0.2, true)

	fmt.Printf("A=%.2f B=%.2f total=%.2f\n",
		store.Weight(0, 0), store.Weight(0, 1), store.Total(0))
	// Output:
	// A=0.70 B=0.30 total=1.00
}
