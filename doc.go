// Package lifepath finds routes for an agent crossing a two-dimensional
// cellular automaton that advances one generation per step.
//
// What is lifepath?
//
//	The agent starts on a source cell in generation 0 and must reach a
//	destination cell. Each move (Up, Down, Left or Right) takes one
//	generation, and the agent may only stand on dead cells of the
//	generation it arrives in. The search explores the generation × position
//	lattice breadth-first, so the first route found is the shortest.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/         Grid and BitGrid storage, Position and Movement
//	automaton/    transition rule, text format, candidate fillings
//	search/       Heuristic and Robust controllers, Verify, SearchAll
//	config/       YAML/env configuration of budgets and switches
//	cmd/lifepath/ command-line front end: solve, verify, step
//
// Quick example (0 dead, 1 alive, 3 source, 4 destination):
//
//	3 0 0 1 0 0
//	0 1 1 0 1 1        lifepath solve input.txt
//	0 0 1 1 0 0   →    D U D U D D R R R D R L R R
//	0 0 0 0 0 4
//
//	go install github.com/katalvlaran/lifepath/cmd/lifepath@latest
package lifepath
