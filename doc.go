// Package syracuse computes integer sequences defined by recurrence and the
// statistics of their trajectories: how many steps a seed needs to reach a
// target value, and the largest term met on the way.
//
// 🚀 What is syracuse?
//
//	A small library and command built around one engine:
//		• Term Evaluator: u_n for any index, from k initial terms and a relation
//		• Cycle Analyzer: steps and peak term until a target value appears
//		• Batch Runner: the same walk over many seeds at once, results ordered by seed
//
// Packages:
//
//	sequence/   Sequence, Terms, Result, ResultMap and the three engine layers
//	relations/  built-in relations (collatz, fibonacci, tribonacci, linear:c…)
//	metrics/    Prometheus Recorder for walks and batches
//	config/     YAML run configuration
//	cmd/syracuse  command-line front end
//
// Quick example (Syracuse trajectory of 6):
//
//	6 → 3 → 10 → 5 → 16 → 8 → 4 → 2 → 1      cycle=8 max=16
//
//	go install github.com/katalvlaran/syracuse/cmd/syracuse@latest
//	syracuse until 1 --terms 6
package syracuse
