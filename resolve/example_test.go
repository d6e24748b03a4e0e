package resolve_test

import (
	"fmt"

	"github.com/katalvlaran/temperament/core"
	"github.com/katalvlaran/temperament/resolve"
)

// ExampleResolve builds a chain of fifths below A and normalizes it around C.
func ExampleResolve() {
	g, _ := core.FromDefinitions(map[string]core.Definition{
		"D": {Base: "A", Cents: -700},
		"G": {Base: "D", Cents: -700},
		"C": {Base: "G", Cents: -700},
	})

	res, err := resolve.Resolve(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, name := range []string{"C", "D", "G", "A"} {
		fmt.Printf("%s %+.0f\n", name, res.Offsets[name])
	}
	path, _ := res.Derivation("C")
	fmt.Println(path)

	// Output:
	// C -900
	// D -700
	// G -200
	// A +0
	// [A D G C]
}

// ExampleResolve_conflict shows the error for a contradictory cycle.
func ExampleResolve_conflict() {
	g, _ := core.FromDefinitions(map[string]core.Definition{
		"A": {Base: "C", Cents: 400},
		"C": {Base: "A", Cents: 500},
	})
	_, err := resolve.Resolve(g, "A", "C")
	fmt.Println(err)

	// Output:
	// resolve: conflicting definition for "C" found (-400 vs 500 cents)
}
