package enumerate_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/enumerate"
)

// ExampleAll lists the two perfect matchings of the 4-cycle K(2,2).
func ExampleAll() {
	g, _ := builder.BuildGraph(nil, nil, builder.CompleteBipartite(2, 2))

	res, err := enumerate.All(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, m := range res.Sorted() {
		fmt.Println(m)
	}
	fmt.Println("size:", res.Size, "complete:", res.Complete)

	// Output:
	// [L0-R0 L1-R1]
	// [L0-R1 L1-R0]
	// size: 2 complete: true
}

// ExampleCount counts the perfect matchings of K(5,5) on four goroutines.
func ExampleCount() {
	g, _ := builder.BuildGraph(nil, nil, builder.CompleteBipartite(5, 5))

	res, _ := enumerate.Count(g, enumerate.WithParallelism(4))
	fmt.Println(res.Found, res.Complete)

	// Output:
	// 120 true
}

// ExampleEach stops after the first three matchings of a crown graph.
func ExampleEach() {
	g, _ := builder.BuildGraph(nil, nil, builder.Crown(4))
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seen := 0
	res, _ := enumerate.Each(g, func(m core.Matching) error {
		seen++
		if seen == 3 {
			return enumerate.ErrStop
		}
		return nil
	}, enumerate.WithContext(ctx))
	fmt.Println(res.Found, res.Complete, res.StopReason)

	// Output:
	// 3 false callback
}
