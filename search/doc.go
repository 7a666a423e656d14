// Package search finds a route for an agent crossing an automaton.Automaton
// that advances one generation for every step the agent takes.
//
// What
//
//   - The agent moves Up, Down, Left or Right once per tick and may only
//     stand on cells that are dead in the generation it arrives in.
//   - The search space is a lattice (generation × row × column) that grows
//     without bound; a route advances exactly one generation per step.
//   - Search runs a generation-synchronized breadth-first search: the reached
//     set of generation g+1 is derived entirely from the reached set of
//     generation g and the automaton's generation g+1. Every position is
//     therefore first reached by a shortest route.
//
// Strategies
//
//   - Heuristic keeps, per generation, the movement that first reached each
//     position and drops candidates whose Manhattan distance to the
//     destination exceeds the best distance seen so far by more than
//     MaxPessimism. Memory stays bounded; the shortest route may be missed.
//   - Robust keeps, per generation, only a grid.BitGrid of reached cells and
//     never prunes. If any route exists within MaxGenerations it is found.
//     Movements are re-derived at assembly time by probing which neighbor was
//     reached one generation earlier.
//
// Both strategies share one search loop; they differ only in the history
// layer they allocate and in whether pruning applies.
//
// Termination
//
//   - Reached: the destination is in the reached set of some generation g;
//     the returned Path has length g.
//   - Trapped: a generation's reached set is empty. Generation 0 counts:
//     an automaton whose source is alive yields Trapped with no generations.
//   - BudgetExhausted: MaxGenerations were computed without success.
//
// The last two are not errors: Result.Found is false and Result.Path is a
// best-effort route to Result.Closest, the position closest to the
// destination seen during the search (earliest generation on ties), with
// Result.Distance its Manhattan distance to the destination.
//
// Determinism
//
//	Frontier positions are expanded in insertion order (Heuristic) or
//	row-major order (Robust), and movements in the order Up, Down, Left,
//	Right, so results are fully reproducible. The pruning threshold is
//	frozen for the duration of each generation's expansion.
//
// Verification
//
//	Verify replays a Path through an independently advanced automaton and
//	reports cells where the agent stood on an alive cell ("lives lost").
//	Failures, like reconstruction failures, are internal-consistency errors
//	wrapped in *ConsistencyError.
//
// Concurrency
//
//	A single search is strictly sequential. SearchAll fans independent
//	searches over several candidate automata out to a bounded set of
//	goroutines and collects their results in candidate order.
//
// Complexity
//
//   - Time:  O(G × H × W) for G computed generations.
//   - Space: Heuristic O(Σ|reached_g|) map entries; Robust O(G × H × W) bits.
package search
