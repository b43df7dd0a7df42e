// Package relations ships ready-made recurrence relations for the sequence
// package and a small registry that resolves them by name.
//
// Built-ins:
//
//	collatz     k=1  u_n = u_{n-1}/2 if even, 3·u_{n-1}+1 if odd (alias: syracuse)
//	fibonacci   k=2  u_n = u_{n-2} + u_{n-1}
//	tribonacci  k=3  u_n = u_{n-3} + u_{n-2} + u_{n-1}
//	linear:c…   k=len(c)  u_n = Σ c_j·u_{n-k+j}, coefficients oldest first
//
// Every relation is pure and safe for concurrent use. Arithmetic wraps on
// int64 overflow, like the engine itself.
//
// Usage:
//
//	spec, err := relations.Parse("linear:1,1")   // Fibonacci again
//	seq, err := sequence.New(spec.Relation, sequence.Terms{0, 1},
//		sequence.WithArity(spec.Arity))
package relations
