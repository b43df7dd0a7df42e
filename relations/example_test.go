package relations_test

import (
	"fmt"

	"github.com/katalvlaran/syracuse/relations"
	"github.com/katalvlaran/syracuse/sequence"
)

// ExampleParse builds a Pell sequence (u_n = u_{n-2} + 2·u_{n-1}) inline.
func ExampleParse() {
	spec, err := relations.Parse("linear:1,2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	seq, _ := sequence.New(spec.Relation, sequence.Terms{0, 1}, sequence.WithArity(spec.Arity))
	for n := 0; n < 8; n++ {
		v, _ := seq.At(n)
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 0 1 2 5 12 29 70 169
}
